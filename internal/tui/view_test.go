package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"tagdex/internal/model"
	"tagdex/internal/tui"
	"tagdex/internal/tui/layout"
)

// contains checks for a substring in a rendered view, ignoring ANSI styling.
func contains(view, want string) bool {
	return strings.Contains(layout.StripANSI(view), want)
}

func sizedApp(t *testing.T, app tui.App) tui.App {
	t.Helper()
	newModel, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return newModel.(tui.App)
}

func TestView_ShowsAllTagsInitially(t *testing.T) {
	app := sizedApp(t, tui.NewApp(tui.AppParams{Lib: testLibrary(t)}))

	view := app.View()

	for _, name := range []string{"An", "Animal", "Banana", "Fantasy", "Archived", "Favorite"} {
		if !contains(view, name) {
			t.Errorf("expected %q in initial view", name)
		}
	}
}

func TestView_ShowsQueryAndMatches(t *testing.T) {
	app := sizedApp(t, tui.NewApp(tui.AppParams{Lib: testLibrary(t)}))
	app = typeString(t, app, "an")

	view := app.View()

	if !contains(view, "an") {
		t.Error("expected the query in the search field")
	}
	if !contains(view, "Animal") {
		t.Error("expected Animal in the result list")
	}
	if contains(view, "Favorite") {
		t.Error("non-matching tag should be absent")
	}
}

func TestView_CreateAffordanceRow(t *testing.T) {
	app := sizedApp(t, tui.NewApp(tui.AppParams{Lib: testLibrary(t)}))
	app = typeString(t, app, "zzz")

	view := app.View()

	if !contains(view, `+ Create "zzz"`) {
		t.Error("expected the create affordance row")
	}
}

func TestView_PreviewShowsTagDetails(t *testing.T) {
	lib := testLibrary(t)

	games := lib.Store().GetTagByName("Fantasy")
	id, err := lib.AddTag(model.Tag{
		Name:             "Freedom",
		Shorthand:        "free",
		Color:            model.ColorBlue,
		DisambiguationID: &games.ID,
	}, []int{games.ID}, []string{"Liberty"})
	if err != nil {
		t.Fatalf("AddTag failed: %v", err)
	}
	_ = id

	app := sizedApp(t, tui.NewApp(tui.AppParams{Lib: lib}))
	app = typeString(t, app, "freedom")

	view := app.View()

	if !contains(view, "Freedom (Fantasy)") {
		t.Error("expected qualified display name in preview")
	}
	if !contains(view, "aka Liberty") {
		t.Error("expected alias line in preview")
	}
	if !contains(view, "parents: Fantasy") {
		t.Error("expected parent line in preview")
	}
	if !contains(view, "0 entries") {
		t.Error("expected entry count in preview")
	}
}

func TestView_ChooserShowsCount(t *testing.T) {
	app := sizedApp(t, tui.NewApp(tui.AppParams{Lib: testLibrary(t), Chooser: true}))
	app = typeString(t, app, "an")

	app, cmd := pressKey(t, app, tea.KeyEnter)
	app, _ = deliver(t, app, cmd)

	if !contains(app.View(), "1 chosen") {
		t.Error("expected chosen count in header")
	}
}

func TestView_BuildTagModalFields(t *testing.T) {
	app := sizedApp(t, tui.NewApp(tui.AppParams{Lib: testLibrary(t)}))
	app = typeString(t, app, "Cyberpunk")
	app, _ = pressKey(t, app, tea.KeyEnter)

	view := app.View()

	for _, label := range []string{"Create Tag", "Name:", "Shorthand:", "Aliases:", "Parents:", "Color:"} {
		if !contains(view, label) {
			t.Errorf("expected %q in the build form", label)
		}
	}
}

// openParentField opens the create form and moves focus to Parents.
func openParentField(t *testing.T, app tui.App) tui.App {
	t.Helper()
	app = typeString(t, app, "Cyberpunk")
	app, _ = pressKey(t, app, tea.KeyEnter)
	for i := 0; i < 3; i++ {
		app, _ = pressKey(t, app, tea.KeyTab)
	}
	return app
}

func TestView_BuildModalMarksUnknownParents(t *testing.T) {
	app := sizedApp(t, tui.NewApp(tui.AppParams{Lib: testLibrary(t)}))
	app = openParentField(t, app)

	app = typeString(t, app, "Fantasy, Nowhere")

	view := app.View()
	if !contains(view, "Nowhere ?") {
		t.Error("expected unknown parent marked in the form")
	}
	if contains(view, "Fantasy ?") {
		t.Error("known parent must not be marked")
	}
}

func TestView_BuildModalWindowsParentList(t *testing.T) {
	app := sizedApp(t, tui.NewApp(tui.AppParams{Lib: testLibrary(t)}))
	app = openParentField(t, app)

	app = typeString(t, app, "p1,p2,p3,p4,p5,p6,p7,p8")

	view := app.View()
	if !contains(view, "+2 more") {
		t.Error("expected overflow indicator for the parent list")
	}
	if contains(view, "p7") {
		t.Error("parents past the window must be hidden")
	}
}

func TestView_HelpOverlay(t *testing.T) {
	app := sizedApp(t, tui.NewApp(tui.AppParams{Lib: testLibrary(t)}))

	newModel, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	app = newModel.(tui.App)

	view := app.View()
	if !contains(view, "select / create") {
		t.Error("expected help overlay content")
	}
}
