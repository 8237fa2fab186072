package tui

import "strings"

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "up/down", "Enter")
	Desc string // Short description (e.g., "move", "select")
}

// renderHint renders a single hint as "key:desc" with styling.
func (a App) renderHint(h Hint) string {
	return a.styles.HintKey.Render(h.Key) + ":" + a.styles.HintDesc.Render(h.Desc)
}

// renderHints renders hints in horizontal format for the bottom bar.
func (a App) renderHints(hints HintSet) string {
	allHints := hints.All()
	if len(allHints) == 0 {
		return ""
	}

	parts := make([]string, len(allHints))
	for i, h := range allHints {
		parts[i] = a.renderHint(h)
	}
	return strings.Join(parts, " ")
}

// renderHintsInline renders hints in inline format for modals: "Enter save  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// HintSet is an ordered collection of hints by group.
type HintSet struct {
	Nav    []Hint // Navigation hints (up/down, home/end)
	Action []Hint // Action hints (Enter, ctrl+e)
	System []Hint // System hints (Esc, ctrl+c)
}

// All returns all hints flattened in display order: Nav + Action + System.
func (h HintSet) All() []Hint {
	result := make([]Hint, 0, len(h.Nav)+len(h.Action)+len(h.System))
	result = append(result, h.Nav...)
	result = append(result, h.Action...)
	result = append(result, h.System...)
	return result
}

// getContextualHints returns the appropriate hints for the current mode.
func (a App) getContextualHints() HintSet {
	switch a.mode {
	case ModeSearch:
		return a.getSearchModeHints()
	case ModeBuildTag:
		// Hints are shown inside the modal itself
		return HintSet{}
	case ModeHelp:
		return HintSet{
			System: []Hint{{Key: "any", Desc: "close"}},
		}
	default:
		return HintSet{}
	}
}

// getSearchModeHints returns hints for the main search panel.
func (a App) getSearchModeHints() HintSet {
	hints := HintSet{
		Nav: []Hint{
			{Key: "↑/↓", Desc: "move"},
		},
		Action: []Hint{
			{Key: "Enter", Desc: "select"},
			{Key: "^E", Desc: "edit"},
			{Key: "^Y", Desc: "yank"},
		},
		System: []Hint{
			{Key: "^G", Desc: "help"},
			{Key: "Esc", Desc: "close"},
		},
	}
	if a.chooser {
		hints.Action[0].Desc = "add"
	}
	return hints
}
