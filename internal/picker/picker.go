package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tagdex/internal/model"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	detailStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)
)

// DisplayNameFunc resolves a tag ID to its display label.
type DisplayNameFunc func(id int) string

// Picker is a simple TUI for selecting one tag from ranked results.
type Picker struct {
	tags        []model.Tag
	query       string
	displayName DisplayNameFunc
	cursor      int
	selected    bool
	cancelled   bool
	width       int
	height      int
}

// New creates a new Picker over ranked tags. Order is preserved.
func New(tags []model.Tag, query string, displayName DisplayNameFunc) Picker {
	return Picker{
		tags:        tags,
		query:       query,
		displayName: displayName,
		cursor:      0,
		width:       80,
		height:      24,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		p.height = msg.Height
		return p, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			p.cancelled = true
			return p, tea.Quit

		case tea.KeyEnter:
			if len(p.tags) > 0 {
				p.selected = true
			} else {
				p.cancelled = true
			}
			return p, tea.Quit

		case tea.KeyDown:
			if p.cursor < len(p.tags)-1 {
				p.cursor++
			}
			return p, nil

		case tea.KeyUp:
			if p.cursor > 0 {
				p.cursor--
			}
			return p, nil
		}

		// Handle j/k vim keys
		if msg.Type == tea.KeyRunes {
			switch string(msg.Runes) {
			case "j":
				if p.cursor < len(p.tags)-1 {
					p.cursor++
				}
				return p, nil
			case "k":
				if p.cursor > 0 {
					p.cursor--
				}
				return p, nil
			case "q":
				p.cancelled = true
				return p, tea.Quit
			}
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	// Header
	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d tags)", p.query, len(p.tags))))
	b.WriteString("\n\n")

	// List items
	for i, tag := range p.tags {
		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}

		label := p.displayName(tag.ID)
		if label == "" {
			label = tag.Name
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, style.Render(label)))
		if tag.Shorthand != "" {
			b.WriteString(fmt.Sprintf("   %s\n", detailStyle.Render(tag.Shorthand)))
		}
	}

	// Footer
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Render("j/k: move  Enter: pick  q/Esc: cancel"))

	return b.String()
}

// SelectedTag returns the picked tag, or nil if cancelled.
func (p Picker) SelectedTag() *model.Tag {
	if p.cancelled || !p.selected {
		return nil
	}
	if p.cursor < len(p.tags) {
		return &p.tags[p.cursor]
	}
	return nil
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
