package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Panel PanelConfig
	Modal ModalConfig
	Input InputConfig
	Text  TextConfig
}

// PanelConfig holds search panel dimension configuration.
type PanelConfig struct {
	// HeaderReduction is subtracted from terminal height for the result
	// list. Accounts for: padding (1) + title (1) + input (1) + gaps (2)
	// + hint bar (3) = 8
	HeaderReduction int

	// MinListHeight is the minimum number of visible result rows.
	MinListHeight int

	// ListWidthPercent: percentage of width for the result list.
	ListWidthPercent int

	// PreviewWidthPercent: percentage of width for the preview pane.
	PreviewWidthPercent int

	// ContentPadding is subtracted from list width for row rendering.
	ContentPadding int
}

// ModalConfig holds modal dialog configuration.
type ModalConfig struct {
	// DefaultWidthPercent is the modal width as percentage of terminal width.
	DefaultWidthPercent int

	// MinWidth is the minimum modal width in characters.
	MinWidth int

	// MaxWidth is the maximum modal width in characters.
	MaxWidth int

	// ParentsVisible: max parent tags listed in the build-tag form.
	ParentsVisible int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	// Character limits
	NameCharLimit   int
	SearchCharLimit int
	AliasCharLimit  int

	// Display widths
	StandardWidth int
	SearchWidth   int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Panel: PanelConfig{
			HeaderReduction:     8,
			MinListHeight:       3,
			ListWidthPercent:    45,
			PreviewWidthPercent: 50,
			ContentPadding:      4,
		},
		Modal: ModalConfig{
			DefaultWidthPercent: 40,
			MinWidth:            44,
			MaxWidth:            72,
			ParentsVisible:      6,
		},
		Input: InputConfig{
			NameCharLimit:   100,
			SearchCharLimit: 100,
			AliasCharLimit:  200,
			StandardWidth:   36,
			SearchWidth:     40,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
