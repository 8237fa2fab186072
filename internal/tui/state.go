package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"tagdex/internal/model"
	"tagdex/internal/tui/layout"
)

// BuildTagField identifies the focused input in the build-tag form.
type BuildTagField int

const (
	FieldName BuildTagField = iota
	FieldShorthand
	FieldAliases
	FieldParents
	fieldCount
)

// BuildTagState holds state for the build-tag form, used both for
// creating a tag from the search query and for editing an existing one.
type BuildTagState struct {
	NameInput      textinput.Model // tag name
	ShorthandInput textinput.Model // short form used as qualifier
	AliasesInput   textinput.Model // comma-separated alias names
	ParentsInput   textinput.Model // comma-separated parent tag names

	Focus    BuildTagField
	ColorIdx int // index into model.Colors()

	EditTagID int   // 0 = creating, otherwise the tag being edited
	AliasIDs  []int // alias row IDs captured when editing started
}

// NewBuildTagState creates a BuildTagState with initialized inputs.
func NewBuildTagState(cfg layout.LayoutConfig) BuildTagState {
	nameInput := textinput.New()
	nameInput.Placeholder = "Name"
	nameInput.CharLimit = cfg.Input.NameCharLimit
	nameInput.Width = cfg.Input.StandardWidth

	shorthandInput := textinput.New()
	shorthandInput.Placeholder = "Shorthand"
	shorthandInput.CharLimit = cfg.Input.NameCharLimit
	shorthandInput.Width = cfg.Input.StandardWidth

	aliasesInput := textinput.New()
	aliasesInput.Placeholder = "alias1, alias2"
	aliasesInput.CharLimit = cfg.Input.AliasCharLimit
	aliasesInput.Width = cfg.Input.StandardWidth

	parentsInput := textinput.New()
	parentsInput.Placeholder = "parent1, parent2"
	parentsInput.CharLimit = cfg.Input.AliasCharLimit
	parentsInput.Width = cfg.Input.StandardWidth

	return BuildTagState{
		NameInput:      nameInput,
		ShorthandInput: shorthandInput,
		AliasesInput:   aliasesInput,
		ParentsInput:   parentsInput,
	}
}

// Reset clears the form for a new session.
func (b *BuildTagState) Reset() {
	b.NameInput.Reset()
	b.ShorthandInput.Reset()
	b.AliasesInput.Reset()
	b.ParentsInput.Reset()
	b.Focus = FieldName
	b.ColorIdx = 0
	b.EditTagID = 0
	b.AliasIDs = nil
}

// SeedCreate prepares the form for creating a tag named after the query.
func (b *BuildTagState) SeedCreate(query string) {
	b.Reset()
	b.NameInput.SetValue(strings.TrimSpace(query))
	b.NameInput.Focus()
}

// SeedEdit prepares the form from an existing tag.
func (b *BuildTagState) SeedEdit(tag model.Tag, parentNames, aliasNames []string, aliasIDs []int) {
	b.Reset()
	b.NameInput.SetValue(tag.Name)
	b.ShorthandInput.SetValue(tag.Shorthand)
	b.AliasesInput.SetValue(strings.Join(aliasNames, ", "))
	b.ParentsInput.SetValue(strings.Join(parentNames, ", "))
	b.EditTagID = tag.ID
	b.AliasIDs = aliasIDs
	for i, c := range model.Colors() {
		if c == tag.Color {
			b.ColorIdx = i
			break
		}
	}
	b.NameInput.Focus()
}

// Color returns the currently cycled color.
func (b *BuildTagState) Color() model.TagColor {
	colors := model.Colors()
	return colors[b.ColorIdx%len(colors)]
}

// CycleColor advances to the next palette entry.
func (b *BuildTagState) CycleColor() {
	b.ColorIdx = (b.ColorIdx + 1) % len(model.Colors())
}

// NextField moves focus forward through the form.
func (b *BuildTagState) NextField() {
	b.setFocus((b.Focus + 1) % fieldCount)
}

// PrevField moves focus backward through the form.
func (b *BuildTagState) PrevField() {
	b.setFocus((b.Focus + fieldCount - 1) % fieldCount)
}

func (b *BuildTagState) setFocus(field BuildTagField) {
	b.Focus = field
	b.NameInput.Blur()
	b.ShorthandInput.Blur()
	b.AliasesInput.Blur()
	b.ParentsInput.Blur()
	switch field {
	case FieldName:
		b.NameInput.Focus()
	case FieldShorthand:
		b.ShorthandInput.Focus()
	case FieldAliases:
		b.AliasesInput.Focus()
	case FieldParents:
		b.ParentsInput.Focus()
	}
}

// FocusedInput returns a pointer to the currently focused input.
func (b *BuildTagState) FocusedInput() *textinput.Model {
	switch b.Focus {
	case FieldShorthand:
		return &b.ShorthandInput
	case FieldAliases:
		return &b.AliasesInput
	case FieldParents:
		return &b.ParentsInput
	default:
		return &b.NameInput
	}
}

// AliasNames returns the trimmed, non-empty alias names from the form.
func (b *BuildTagState) AliasNames() []string {
	return splitNames(b.AliasesInput.Value())
}

// ParentNames returns the trimmed, non-empty parent names from the form.
func (b *BuildTagState) ParentNames() []string {
	return splitNames(b.ParentsInput.Value())
}

func splitNames(value string) []string {
	var names []string
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			names = append(names, part)
		}
	}
	return names
}
