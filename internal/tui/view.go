package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tagdex/internal/model"
	"tagdex/internal/tui/layout"
)

// renderView creates the complete panel view.
func (a App) renderView() string {
	switch a.mode {
	case ModeBuildTag:
		return a.renderBuildTagModal()
	case ModeHelp:
		return a.renderHelpOverlay()
	}

	panelLayout := layout.CalculatePanelLayout(a.width, a.height, a.layoutConfig.Panel)

	title := a.styles.Title.Render("tagdex")
	if a.chooser {
		title += "  " + a.styles.Empty.Render(fmt.Sprintf("%d chosen", len(a.chosen)))
	}

	input := "> " + a.searchInput.View()

	list := a.renderResultList(panelLayout)
	preview := a.renderPreviewPane(panelLayout)
	panes := lipgloss.JoinHorizontal(lipgloss.Top, list, preview)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, title, "", input, "", panes, a.renderHelpBar()),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderResultList renders the ranked rows with viewport scrolling.
func (a App) renderResultList(panelLayout layout.PanelLayout) string {
	var content strings.Builder

	rowWidth := layout.CalculateRowWidth(panelLayout.ListWidth, a.layoutConfig.Panel)

	if len(a.rows) == 0 {
		content.WriteString(a.styles.Empty.Render("(no tags)"))
	} else {
		offset := layout.CalculateViewportOffset(a.cursor, len(a.rows), panelLayout.ListHeight)

		for i, row := range a.rows {
			// Skip rows before viewport
			if i < offset {
				continue
			}
			// Stop after viewport is filled
			if i >= offset+panelLayout.ListHeight {
				break
			}
			content.WriteString(a.renderRow(row, i == a.cursor, rowWidth) + "\n")
		}
	}

	return lipgloss.NewStyle().
		Width(panelLayout.ListWidth).
		Height(panelLayout.ListHeight).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderRow renders one result row.
func (a App) renderRow(row Row, isCursor bool, maxWidth int) string {
	if row.IsCreate() {
		line, _ := layout.TruncateText("+ Create \""+row.Query+"\"", maxWidth, a.layoutConfig.Text)
		if isCursor {
			for layout.VisibleLength(line) < maxWidth {
				line += " "
			}
			return a.styles.RowSelected.Render(line)
		}
		return a.styles.CreateRow.Render(line)
	}

	label := a.lib.TagDisplayName(row.Tag.ID)
	line, _ := layout.TruncateText(label, maxWidth, a.layoutConfig.Text)

	if isCursor {
		for layout.VisibleLength(line) < maxWidth {
			line += " "
		}
		return a.styles.RowSelected.Render(line)
	}
	return a.styles.Row.Inherit(a.styles.SwatchFor(row.Tag.Color)).Render(line)
}

// renderPreviewPane shows details for the tag under the cursor.
func (a App) renderPreviewPane(panelLayout layout.PanelLayout) string {
	var content strings.Builder

	contentWidth := layout.CalculateRowWidth(panelLayout.PreviewWidth, a.layoutConfig.Panel)

	if row, ok := a.cursorTagRow(); ok {
		tag := *row.Tag
		store := a.lib.Store()

		content.WriteString(a.styles.Title.Render(a.lib.TagDisplayName(tag.ID)) + "\n\n")

		if tag.Shorthand != "" {
			content.WriteString(a.styles.Shorthand.Render(tag.Shorthand) + "\n\n")
		}

		if tag.Color != model.ColorDefault {
			swatch := a.styles.SwatchFor(tag.Color).Render("●")
			content.WriteString(swatch + " " + string(tag.Color) + "\n\n")
		}

		if aliases := store.AliasNamesForTag(tag.ID); len(aliases) > 0 {
			line := "aka " + strings.Join(aliases, ", ")
			content.WriteString(a.styles.Alias.Render(wordwrap.String(line, contentWidth)) + "\n\n")
		}

		if len(tag.ParentIDs) > 0 {
			names := make([]string, 0, len(tag.ParentIDs))
			for _, parentID := range tag.ParentIDs {
				if parent := store.GetTagByID(parentID); parent != nil {
					names = append(names, parent.Name)
				}
			}
			line := "parents: " + strings.Join(names, ", ")
			content.WriteString(wordwrap.String(line, contentWidth) + "\n\n")
		}

		entries := store.EntriesWithTag(tag.ID)
		content.WriteString(a.styles.Count.Render(fmt.Sprintf("%d entries", len(entries))))
	} else if len(a.rows) > 0 && a.cursor < len(a.rows) && a.rows[a.cursor].IsCreate() {
		query := a.rows[a.cursor].Query
		hint := fmt.Sprintf("No tag matches %q yet.\nPress enter to create it.", query)
		content.WriteString(a.styles.Empty.Render(wordwrap.String(hint, contentWidth)))
	}

	return lipgloss.NewStyle().
		Width(panelLayout.PreviewWidth).
		Height(panelLayout.ListHeight).
		PaddingLeft(2).
		Render(strings.TrimRight(content.String(), "\n"))
}

// renderBuildTagModal renders the create/edit tag form.
func (a App) renderBuildTagModal() string {
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	modalWidth := layout.CalculateModalWidth(a.width, a.layoutConfig.Modal.DefaultWidthPercent, a.layoutConfig.Modal)
	modalStyle := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(accent).
		Padding(1, 2).
		Width(modalWidth)

	var content strings.Builder

	if a.buildTag.EditTagID != 0 {
		content.WriteString(a.styles.Title.Render("Edit Tag") + "\n\n")
	} else {
		content.WriteString(a.styles.Title.Render("Create Tag") + "\n\n")
	}

	label := func(text string, field BuildTagField) string {
		if a.buildTag.Focus == field {
			return a.styles.FieldLabel.Render(text)
		}
		return text
	}

	content.WriteString(label("Name:", FieldName) + "\n")
	content.WriteString(a.buildTag.NameInput.View() + "\n\n")
	content.WriteString(label("Shorthand:", FieldShorthand) + "\n")
	content.WriteString(a.buildTag.ShorthandInput.View() + "\n\n")
	content.WriteString(label("Aliases:", FieldAliases) + "\n")
	content.WriteString(a.buildTag.AliasesInput.View() + "\n\n")
	content.WriteString(label("Parents:", FieldParents) + "\n")
	content.WriteString(a.buildTag.ParentsInput.View() + "\n")
	content.WriteString(a.renderParentPreview(modalWidth-6) + "\n")

	colorName := string(a.buildTag.Color())
	if colorName == "" {
		colorName = "default"
	}
	swatch := a.styles.SwatchFor(a.buildTag.Color()).Render("●")
	content.WriteString("Color: " + swatch + " " + colorName + "\n\n")

	content.WriteString(a.renderHintsInline([]Hint{
		{Key: "Enter", Desc: "save"},
		{Key: "Tab", Desc: "field"},
		{Key: "^R", Desc: "color"},
		{Key: "Esc", Desc: "cancel"},
	}))

	// Place modal in center, then add help bar at bottom
	modal := lipgloss.Place(
		a.width,
		a.height-3, // Leave room for help bar
		lipgloss.Center,
		lipgloss.Center,
		modalStyle.Render(content.String()),
	)

	return lipgloss.JoinVertical(lipgloss.Left, modal, a.renderHelpBar())
}

// renderParentPreview lists the parent names the form currently parses
// to, windowed to ModalConfig.ParentsVisible. Names with no matching
// tag keep a trailing "?" marker even when truncated.
func (a App) renderParentPreview(maxWidth int) string {
	names := a.buildTag.ParentNames()
	if len(names) == 0 {
		return ""
	}

	var b strings.Builder
	start, end := layout.CalculateVisibleListItems(a.layoutConfig.Modal.ParentsVisible, 0, len(names))
	for _, name := range names[start:end] {
		marker := ""
		if a.lib.Store().GetTagByName(name) == nil {
			marker = " ?"
		}
		line, _ := layout.TruncateWithSuffix(name, maxWidth-2, marker, a.layoutConfig.Text)
		b.WriteString("\n  " + a.styles.Empty.Render(line))
	}
	if end < len(names) {
		b.WriteString("\n  " + a.styles.Empty.Render(fmt.Sprintf("+%d more", len(names)-end)))
	}
	return b.String()
}

// renderHelpOverlay renders the key reference overlay.
func (a App) renderHelpOverlay() string {
	// Brutalist style: no border, just raw columns
	overlayStyle := lipgloss.NewStyle().Padding(1, 2)

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("search") + "\n")
	b.WriteString("type      refine query\n")
	b.WriteString("up/down   move cursor\n")
	b.WriteString("enter     select / create\n")
	b.WriteString("esc       dismiss\n")
	b.WriteString("\n")
	b.WriteString(a.styles.Title.Render("tags") + "\n")
	b.WriteString("ctrl+e    edit tag\n")
	b.WriteString("ctrl+d    delete tag\n")
	b.WriteString("ctrl+y    yank display name\n")
	b.WriteString("ctrl+r    cycle color (form)\n")
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("[any key] close  [ctrl+c] quit"))

	return lipgloss.Place(
		a.width,
		a.height,
		lipgloss.Left,
		lipgloss.Top,
		overlayStyle.Render(b.String()),
	)
}

func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR message (message replaces the gap)
	if a.messageText != "" {
		lines = append(lines, a.renderMessageLine())
	} else {
		lines = append(lines, "")
	}

	// Line 2: contextual keyboard hints
	hints := a.renderHints(a.getContextualHints())
	if hints != "" {
		lines = append(lines, hints)
	}

	return strings.Join(lines, "\n")
}

// renderMessageLine renders the styled message with prefix icon based on type.
func (a App) renderMessageLine() string {
	var msgStyle lipgloss.Style
	var prefix string

	switch a.messageType {
	case MessageError:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}).
			Bold(true)
		prefix = "✗ "
	case MessageSuccess:
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}).
			Bold(true)
		prefix = "✓ "
	default: // MessageInfo
		msgStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}).
			Bold(true)
	}

	return msgStyle.Render(prefix + a.messageText)
}
