package tui

import tea "github.com/charmbracelet/bubbletea"

// TagSelectedMsg is dispatched when the user confirms a tag.
type TagSelectedMsg struct {
	ID int
}

// TagCreatedMsg is dispatched after the build form saves a new tag.
// Selection of the new tag follows.
type TagCreatedMsg struct {
	ID int
}

// TagUpdatedMsg is dispatched after the build form saves an edit.
type TagUpdatedMsg struct {
	ID int
}

// DismissMsg is dispatched when the panel closes without a selection.
type DismissMsg struct{}

func selectTagCmd(id int) tea.Cmd {
	return func() tea.Msg { return TagSelectedMsg{ID: id} }
}

func tagCreatedCmd(id int) tea.Cmd {
	return func() tea.Msg { return TagCreatedMsg{ID: id} }
}

func tagUpdatedCmd(id int) tea.Cmd {
	return func() tea.Msg { return TagUpdatedMsg{ID: id} }
}

func dismissCmd() tea.Cmd {
	return func() tea.Msg { return DismissMsg{} }
}
