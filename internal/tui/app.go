package tui

import (
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tagdex/internal/library"
	"tagdex/internal/model"
	"tagdex/internal/rank"
	"tagdex/internal/tui/layout"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeSearch Mode = iota
	ModeBuildTag
	ModeHelp
)

// MessageType categorizes the transient status message.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

// App is the main bubbletea model for the tag search panel.
type App struct {
	lib          *library.Library
	keys         KeyMap
	styles       Styles
	layoutConfig layout.LayoutConfig

	mode Mode

	// Search state
	searchInput textinput.Model
	ranked      []model.Tag
	rows        []Row
	firstTagID  *int
	cursor      int

	// Tags hidden from results. In chooser mode every confirmed tag
	// joins this set so it cannot be picked twice.
	exclude map[int]bool

	// Chooser mode accumulates selections instead of closing on the
	// first confirm.
	chooser bool
	chosen  []int

	buildTag BuildTagState

	selectedID *int
	dismissed  bool

	messageText string
	messageType MessageType

	// Window dimensions
	width  int
	height int
}

// AppParams holds parameters for creating a new App.
type AppParams struct {
	Lib     *library.Library
	Exclude []int // tag IDs hidden from results
	Chooser bool  // keep the panel open and accumulate selections
	Keys    *KeyMap              // optional, uses default if nil
	Styles  *Styles              // optional, uses default if nil
	Layout  *layout.LayoutConfig // optional, uses default if nil
}

// NewApp creates a new App with the given parameters.
func NewApp(params AppParams) App {
	keys := DefaultKeyMap()
	if params.Keys != nil {
		keys = *params.Keys
	}

	styles := DefaultStyles()
	if params.Styles != nil {
		styles = *params.Styles
	}

	layoutConfig := layout.DefaultConfig()
	if params.Layout != nil {
		layoutConfig = *params.Layout
	}

	searchInput := textinput.New()
	searchInput.Placeholder = "Search tags..."
	searchInput.CharLimit = layoutConfig.Input.SearchCharLimit
	searchInput.Width = layoutConfig.Input.SearchWidth
	searchInput.Focus()

	exclude := make(map[int]bool, len(params.Exclude))
	for _, id := range params.Exclude {
		exclude[id] = true
	}

	app := App{
		lib:          params.Lib,
		keys:         keys,
		styles:       styles,
		layoutConfig: layoutConfig,
		mode:         ModeSearch,
		searchInput:  searchInput,
		exclude:      exclude,
		chooser:      params.Chooser,
		buildTag:     NewBuildTagState(layoutConfig),
		width:        80,
		height:       24,
	}

	app.refreshResults()
	return app
}

// refreshResults reruns the query pipeline and rebuilds the row list.
func (a *App) refreshResults() {
	query := strings.TrimSpace(a.searchInput.Value())
	candidates := a.lib.SearchTags(query)

	a.ranked, a.firstTagID = rank.Rank(query, candidates, a.exclude, a.lib.TagDisplayName)

	a.rows = a.rows[:0]
	for i := range a.ranked {
		a.rows = append(a.rows, Row{Kind: RowTag, Tag: &a.ranked[i]})
	}

	// Nothing in the library matches the query: offer to create it.
	// An empty list caused purely by exclusions gets no affordance.
	if query != "" && len(candidates) == 0 {
		a.rows = append(a.rows, Row{Kind: RowCreate, Query: query})
	}

	if a.cursor >= len(a.rows) {
		a.cursor = 0
	}
}

// Rows returns the current result rows.
func (a App) Rows() []Row {
	return a.rows
}

// FirstTagID returns the ID of the top-ranked tag, or nil when the
// result list is empty.
func (a App) FirstTagID() *int {
	return a.firstTagID
}

// Cursor returns the current cursor position.
func (a App) Cursor() int {
	return a.cursor
}

// SelectedTagID returns the confirmed tag, or nil if the panel was
// dismissed. Meaningless in chooser mode; use ChosenTagIDs there.
func (a App) SelectedTagID() *int {
	return a.selectedID
}

// ChosenTagIDs returns all tags confirmed during a chooser session.
func (a App) ChosenTagIDs() []int {
	return a.chosen
}

// Dismissed returns true if the panel was closed without a selection.
func (a App) Dismissed() bool {
	return a.dismissed
}

func (a *App) setMessage(kind MessageType, text string) {
	a.messageType = kind
	a.messageText = text
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case TagSelectedMsg:
		if a.chooser {
			a.chosen = append(a.chosen, msg.ID)
			a.exclude[msg.ID] = true
			a.searchInput.Reset()
			a.cursor = 0
			a.refreshResults()
			a.setMessage(MessageSuccess, "Added "+a.lib.TagDisplayName(msg.ID))
			return a, nil
		}
		id := msg.ID
		a.selectedID = &id
		return a, tea.Quit

	case TagCreatedMsg:
		a.mode = ModeSearch
		a.setMessage(MessageSuccess, "Created "+a.lib.TagDisplayName(msg.ID))
		return a, selectTagCmd(msg.ID)

	case TagUpdatedMsg:
		a.mode = ModeSearch
		a.setMessage(MessageSuccess, "Updated "+a.lib.TagDisplayName(msg.ID))
		a.refreshResults()
		return a, nil

	case DismissMsg:
		a.dismissed = true
		return a, tea.Quit

	case tea.KeyMsg:
		if key.Matches(msg, a.keys.Quit) {
			a.dismissed = true
			return a, tea.Quit
		}

		switch a.mode {
		case ModeSearch:
			return a.updateSearch(msg)
		case ModeBuildTag:
			return a.updateBuildTag(msg)
		case ModeHelp:
			a.mode = ModeSearch
			return a, nil
		}
	}

	return a, nil
}

// updateSearch handles keys in the main search panel.
func (a App) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Dismiss):
		return a, dismissCmd()

	case key.Matches(msg, a.keys.Help):
		a.mode = ModeHelp
		return a, nil

	case key.Matches(msg, a.keys.Down):
		if len(a.rows) > 0 && a.cursor < len(a.rows)-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(msg, a.keys.Top):
		a.cursor = 0
		return a, nil

	case key.Matches(msg, a.keys.Bottom):
		if len(a.rows) > 0 {
			a.cursor = len(a.rows) - 1
		}
		return a, nil

	case key.Matches(msg, a.keys.YankName):
		if row, ok := a.cursorTagRow(); ok {
			name := a.lib.TagDisplayName(row.Tag.ID)
			if err := clipboard.WriteAll(name); err != nil {
				a.setMessage(MessageError, "Yank failed: "+err.Error())
			} else {
				a.setMessage(MessageInfo, "Yanked "+name)
			}
		}
		return a, nil

	case key.Matches(msg, a.keys.Edit):
		if row, ok := a.cursorTagRow(); ok {
			if row.Tag.IsReserved() {
				a.setMessage(MessageError, "Built-in tags cannot be edited")
				return a, nil
			}
			a.startEdit(*row.Tag)
		}
		return a, nil

	case key.Matches(msg, a.keys.Remove):
		if row, ok := a.cursorTagRow(); ok {
			name := a.lib.TagDisplayName(row.Tag.ID)
			if err := a.lib.RemoveTag(row.Tag.ID); err != nil {
				a.setMessage(MessageError, "Delete failed: "+err.Error())
			} else {
				a.setMessage(MessageSuccess, "Deleted "+name)
				a.refreshResults()
			}
		}
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		return a.confirmSearch()
	}

	// Everything else types into the search field.
	var cmd tea.Cmd
	before := a.searchInput.Value()
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() != before {
		a.cursor = 0
		a.refreshResults()
		a.messageText = ""
	}
	return a, cmd
}

// confirmSearch applies the confirm protocol: an empty query dismisses
// the panel, a query with results selects the row under the cursor, and
// a query with no backing matches opens the build form seeded with it.
func (a App) confirmSearch() (tea.Model, tea.Cmd) {
	query := strings.TrimSpace(a.searchInput.Value())

	if query == "" {
		return a, dismissCmd()
	}

	if len(a.rows) > 0 && a.cursor < len(a.rows) {
		row := a.rows[a.cursor]
		if row.IsCreate() {
			a.mode = ModeBuildTag
			a.buildTag.SeedCreate(row.Query)
			return a, nil
		}
		return a, selectTagCmd(row.TagID())
	}

	a.mode = ModeBuildTag
	a.buildTag.SeedCreate(query)
	return a, nil
}

// updateBuildTag handles keys in the build-tag form.
func (a App) updateBuildTag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Dismiss):
		a.mode = ModeSearch
		a.buildTag.Reset()
		return a, nil

	case key.Matches(msg, a.keys.NextField):
		a.buildTag.NextField()
		return a, nil

	case key.Matches(msg, a.keys.PrevField):
		a.buildTag.PrevField()
		return a, nil

	case key.Matches(msg, a.keys.CycleColor):
		a.buildTag.CycleColor()
		return a, nil

	case key.Matches(msg, a.keys.Confirm):
		return a.saveBuildTag()
	}

	var cmd tea.Cmd
	input := a.buildTag.FocusedInput()
	*input, cmd = input.Update(msg)
	return a, cmd
}

// saveBuildTag validates the form and persists the tag.
func (a App) saveBuildTag() (tea.Model, tea.Cmd) {
	name := strings.TrimSpace(a.buildTag.NameInput.Value())
	if name == "" {
		a.setMessage(MessageError, "Name is required")
		return a, nil
	}

	parentIDs, unknown := a.resolveParents(a.buildTag.ParentNames())
	if unknown != "" {
		a.setMessage(MessageError, "Unknown parent tag: "+unknown)
		return a, nil
	}

	tag := model.Tag{
		ID:        a.buildTag.EditTagID,
		Name:      name,
		Shorthand: strings.TrimSpace(a.buildTag.ShorthandInput.Value()),
		Color:     a.buildTag.Color(),
	}

	if a.buildTag.EditTagID != 0 {
		// Preserve the qualifier choice across edits.
		if existing := a.lib.Store().GetTagByID(tag.ID); existing != nil {
			tag.DisambiguationID = existing.DisambiguationID
		}
		if err := a.lib.UpdateTag(tag, parentIDs, a.buildTag.AliasNames(), a.buildTag.AliasIDs); err != nil {
			a.setMessage(MessageError, "Save failed: "+err.Error())
			return a, nil
		}
		return a, tagUpdatedCmd(tag.ID)
	}

	id, err := a.lib.AddTag(tag, parentIDs, a.buildTag.AliasNames())
	if err != nil {
		a.setMessage(MessageError, "Save failed: "+err.Error())
		return a, nil
	}
	return a, tagCreatedCmd(id)
}

// resolveParents maps parent names to tag IDs. Returns the first
// unknown name, if any.
func (a App) resolveParents(names []string) ([]int, string) {
	var ids []int
	for _, name := range names {
		tag := a.lib.Store().GetTagByName(name)
		if tag == nil {
			return nil, name
		}
		ids = append(ids, tag.ID)
	}
	return ids, ""
}

// startEdit opens the build form seeded from an existing tag.
func (a *App) startEdit(tag model.Tag) {
	store := a.lib.Store()

	var parentNames []string
	for _, parentID := range tag.ParentIDs {
		if parent := store.GetTagByID(parentID); parent != nil {
			parentNames = append(parentNames, parent.Name)
		}
	}

	aliases := store.AliasesForTag(tag.ID)
	aliasNames := make([]string, 0, len(aliases))
	aliasIDs := make([]int, 0, len(aliases))
	for _, alias := range aliases {
		aliasNames = append(aliasNames, alias.Name)
		aliasIDs = append(aliasIDs, alias.ID)
	}

	a.buildTag.SeedEdit(tag, parentNames, aliasNames, aliasIDs)
	a.mode = ModeBuildTag
}

// cursorTagRow returns the tag row under the cursor, if any.
func (a App) cursorTagRow() (Row, bool) {
	if len(a.rows) == 0 || a.cursor >= len(a.rows) {
		return Row{}, false
	}
	row := a.rows[a.cursor]
	if row.IsCreate() {
		return Row{}, false
	}
	return row, true
}

// View implements tea.Model.
func (a App) View() string {
	return a.renderView()
}
