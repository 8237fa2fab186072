package tui

import (
	"github.com/charmbracelet/lipgloss"

	"tagdex/internal/model"
)

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Row          lipgloss.Style
	RowSelected  lipgloss.Style
	CreateRow    lipgloss.Style
	Shorthand    lipgloss.Style
	Alias        lipgloss.Style
	Count        lipgloss.Style
	Help         lipgloss.Style
	Empty        lipgloss.Style
	HintKey      lipgloss.Style // Key portion of hints (e.g., "Enter", "up")
	HintDesc     lipgloss.Style // Description portion of hints (e.g., "confirm", "move")
	FieldLabel   lipgloss.Style // Active field label in the build-tag form
	TagSwatches  map[model.TagColor]lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Industrial design: grayscale with single desaturated teal accent,
// plus the fixed tag color palette for swatches.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"} // main text
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}  // secondary text
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}  // desaturated teal

	swatch := func(c string) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Row: lipgloss.NewStyle().
			Foreground(primary).
			PaddingLeft(1),

		RowSelected: lipgloss.NewStyle().
			PaddingLeft(1).
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		CreateRow: lipgloss.NewStyle().
			Foreground(accent).
			Italic(true).
			PaddingLeft(1),

		Shorthand: lipgloss.NewStyle().
			Foreground(subtle),

		Alias: lipgloss.NewStyle().
			Foreground(subtle).
			Italic(true),

		Count: lipgloss.NewStyle().
			Foreground(subtle),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			Padding(1, 0),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(subtle),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),

		FieldLabel: lipgloss.NewStyle().
			Foreground(accent),

		TagSwatches: map[model.TagColor]lipgloss.Style{
			model.ColorDefault: swatch("252"),
			model.ColorRed:     swatch("167"),
			model.ColorOrange:  swatch("173"),
			model.ColorYellow:  swatch("179"),
			model.ColorGreen:   swatch("108"),
			model.ColorTeal:    swatch("73"),
			model.ColorBlue:    swatch("110"),
			model.ColorPurple:  swatch("139"),
			model.ColorPink:    swatch("175"),
			model.ColorGray:    swatch("245"),
		},
	}
}

// SwatchFor returns the style for a tag color, falling back to default.
func (s Styles) SwatchFor(color model.TagColor) lipgloss.Style {
	if style, ok := s.TagSwatches[color]; ok {
		return style
	}
	return s.TagSwatches[model.ColorDefault]
}
