package model_test

import (
	"encoding/json"
	"testing"

	"tagdex/internal/model"
)

func intPtr(i int) *int { return &i }

func TestNewStore_SeedsReservedTags(t *testing.T) {
	store := model.NewStore()

	archived := store.GetTagByID(model.TagArchived)
	if archived == nil || archived.Name != "Archived" {
		t.Fatalf("expected seeded Archived tag, got %+v", archived)
	}

	favorite := store.GetTagByID(model.TagFavorite)
	if favorite == nil || favorite.Name != "Favorite" {
		t.Fatalf("expected seeded Favorite tag, got %+v", favorite)
	}

	if !archived.IsReserved() || !favorite.IsReserved() {
		t.Error("seeded tags should be reserved")
	}
}

func TestStore_NewTagID_SkipsReservedRange(t *testing.T) {
	store := model.NewStore()

	id := store.NewTagID()
	if id < model.ReservedTagEnd {
		t.Errorf("first user tag ID should be >= %d, got %d", model.ReservedTagEnd, id)
	}

	next := store.NewTagID()
	if next != id+1 {
		t.Errorf("expected sequential IDs, got %d then %d", id, next)
	}
}

func TestTag_IsReserved(t *testing.T) {
	tests := []struct {
		name string
		id   int
		want bool
	}{
		{"archived", 0, true},
		{"last reserved", model.ReservedTagEnd - 1, true},
		{"first user tag", model.ReservedTagEnd, false},
		{"large user tag", 50000, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tag := model.Tag{ID: tt.id, Name: "x"}
			if got := tag.IsReserved(); got != tt.want {
				t.Errorf("IsReserved() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStore_GetTagByName_CaseInsensitive(t *testing.T) {
	store := model.NewStore()
	store.Tags = append(store.Tags, model.Tag{ID: 1000, Name: "Fantasy"})

	if tag := store.GetTagByName("fantasy"); tag == nil || tag.ID != 1000 {
		t.Errorf("expected to find Fantasy case-insensitively, got %+v", tag)
	}
	if tag := store.GetTagByName("FANTASY"); tag == nil || tag.ID != 1000 {
		t.Errorf("expected to find FANTASY, got %+v", tag)
	}
	if tag := store.GetTagByName("missing"); tag != nil {
		t.Errorf("expected nil for missing name, got %+v", tag)
	}
}

func TestStore_DisplayName(t *testing.T) {
	store := model.NewStore()
	store.Tags = append(store.Tags,
		model.Tag{ID: 1000, Name: "Stardew Valley", Shorthand: "SDV"},
		model.Tag{ID: 1001, Name: "Freedom", DisambiguationID: intPtr(1000)},
		model.Tag{ID: 1002, Name: "Peace", DisambiguationID: intPtr(1003)},
		model.Tag{ID: 1004, Name: "Villager", DisambiguationID: intPtr(1005)},
		model.Tag{ID: 1005, Name: "Animal Crossing"},
	)

	tests := []struct {
		name string
		id   int
		want string
	}{
		{"plain name", 1000, "Stardew Valley"},
		{"qualified by shorthand", 1001, "Freedom (SDV)"},
		{"dangling disambiguation falls back to name", 1002, "Peace"},
		{"qualified by name when no shorthand", 1004, "Villager (Animal Crossing)"},
		{"unknown id", 9999, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := store.DisplayName(tt.id); got != tt.want {
				t.Errorf("DisplayName(%d) = %q, want %q", tt.id, got, tt.want)
			}
		})
	}
}

func TestStore_AliasHelpers(t *testing.T) {
	store := model.NewStore()
	store.Tags = append(store.Tags, model.Tag{ID: 1000, Name: "Science Fiction"})
	store.Aliases = append(store.Aliases,
		model.Alias{ID: 1, TagID: 1000, Name: "Sci-Fi"},
		model.Alias{ID: 2, TagID: 1000, Name: "SF"},
		model.Alias{ID: 3, TagID: 1001, Name: "Other"},
	)

	names := store.AliasNamesForTag(1000)
	if len(names) != 2 || names[0] != "Sci-Fi" || names[1] != "SF" {
		t.Errorf("unexpected alias names: %v", names)
	}

	rows := store.AliasesForTag(1000)
	if len(rows) != 2 {
		t.Errorf("expected 2 alias rows, got %d", len(rows))
	}
}

func TestStore_EntriesWithTag(t *testing.T) {
	store := model.NewStore()
	e1 := model.NewEntry(model.NewEntryParams{Title: "Photo A"})
	e1.TagIDs = []int{1000, 1001}
	e2 := model.NewEntry(model.NewEntryParams{Title: "Photo B"})
	e2.TagIDs = []int{1001}
	store.AddEntry(e1)
	store.AddEntry(e2)

	if got := store.EntriesWithTag(1000); len(got) != 1 || got[0].Title != "Photo A" {
		t.Errorf("expected only Photo A for tag 1000, got %v", got)
	}
	if got := store.EntriesWithTag(1001); len(got) != 2 {
		t.Errorf("expected 2 entries for tag 1001, got %d", len(got))
	}
	if got := store.EntriesWithTag(1002); len(got) != 0 {
		t.Errorf("expected no entries for tag 1002, got %d", len(got))
	}
}

func TestTag_JSONSerialization(t *testing.T) {
	tag := model.Tag{
		ID:               1000,
		Name:             "Freedom",
		Shorthand:        "free",
		Color:            model.ColorTeal,
		ParentIDs:        []int{1001},
		DisambiguationID: intPtr(1001),
	}

	data, err := json.Marshal(tag)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var got model.Tag
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}

	if got.ID != tag.ID || got.Name != tag.Name || got.Color != tag.Color {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if got.DisambiguationID == nil || *got.DisambiguationID != 1001 {
		t.Errorf("disambiguation lost in round trip: %+v", got.DisambiguationID)
	}
}

func TestNewEntry_GeneratesID(t *testing.T) {
	e1 := model.NewEntry(model.NewEntryParams{Title: "A"})
	e2 := model.NewEntry(model.NewEntryParams{Title: "B"})

	if e1.ID == "" || e2.ID == "" {
		t.Fatal("expected generated IDs")
	}
	if e1.ID == e2.ID {
		t.Error("expected unique IDs")
	}
	if e1.TagIDs == nil {
		t.Error("TagIDs should be initialized")
	}
}
