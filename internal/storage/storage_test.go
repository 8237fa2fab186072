package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"tagdex/internal/model"
	"tagdex/internal/storage"
)

func intPtr(i int) *int { return &i }

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "library.json")

	store := model.NewStore()
	store.Tags = append(store.Tags,
		model.Tag{ID: 1000, Name: "Fantasy", Color: model.ColorPurple},
		model.Tag{ID: 1001, Name: "Epic", ParentIDs: []int{1000}, DisambiguationID: intPtr(1000)},
	)
	store.Aliases = append(store.Aliases,
		model.Alias{ID: 1, TagID: 1000, Name: "Fae"},
	)
	store.NextTagID = 1002
	store.NextAliasID = 2

	s := storage.NewJSONStorage(path)
	if err := s.Save(store); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("library file was not created")
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if len(loaded.Tags) != 4 { // 2 seeded + 2 user tags
		t.Errorf("expected 4 tags, got %d", len(loaded.Tags))
	}
	tag := loaded.GetTagByID(1001)
	if tag == nil {
		t.Fatal("tag 1001 missing after round trip")
	}
	if len(tag.ParentIDs) != 1 || tag.ParentIDs[0] != 1000 {
		t.Errorf("parent ids lost: %v", tag.ParentIDs)
	}
	if tag.DisambiguationID == nil || *tag.DisambiguationID != 1000 {
		t.Error("disambiguation id lost")
	}
	if names := loaded.AliasNamesForTag(1000); len(names) != 1 || names[0] != "Fae" {
		t.Errorf("aliases lost: %v", names)
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	tmpDir := t.TempDir()
	s := storage.NewJSONStorage(filepath.Join(tmpDir, "missing.json"))

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("expected seeded store for missing file, got error: %v", err)
	}

	if loaded.GetTagByID(model.TagArchived) == nil {
		t.Error("missing file should yield a store with built-in tags")
	}
	if loaded.NextTagID < model.ReservedTagEnd {
		t.Errorf("NextTagID should start past the reserved range, got %d", loaded.NextTagID)
	}
}

func TestJSONStorage_LoadRepairsCounters(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "library.json")

	// Store saved with stale counters
	store := model.NewStore()
	store.Tags = append(store.Tags, model.Tag{ID: 5000, Name: "High"})
	store.Aliases = append(store.Aliases, model.Alias{ID: 7, TagID: 5000, Name: "H"})
	store.NextTagID = 0
	store.NextAliasID = 0

	s := storage.NewJSONStorage(path)
	if err := s.Save(store); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	if loaded.NextTagID != 5001 {
		t.Errorf("expected NextTagID 5001, got %d", loaded.NextTagID)
	}
	if loaded.NextAliasID != 8 {
		t.Errorf("expected NextAliasID 8, got %d", loaded.NextAliasID)
	}
}

func TestJSONStorage_CreatesDirectory(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "dir", "library.json")

	s := storage.NewJSONStorage(path)
	if err := s.Save(model.NewStore()); err != nil {
		t.Fatalf("failed to save into nested dir: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file at %s: %v", path, err)
	}
}
