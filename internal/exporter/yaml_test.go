package exporter

import (
	"testing"

	"gopkg.in/yaml.v3"

	"tagdex/internal/model"
)

func TestBuildBackup(t *testing.T) {
	backup := BuildBackup(taggedStore())

	if backup.ExportedAt.IsZero() {
		t.Error("expected export timestamp")
	}

	// Reserved built-ins are not backed up
	if len(backup.Tags) != 2 {
		t.Fatalf("expected 2 tags, got %+v", backup.Tags)
	}

	var freedom *YAMLTag
	for i := range backup.Tags {
		if backup.Tags[i].Name == "Freedom" {
			freedom = &backup.Tags[i]
		}
	}
	if freedom == nil {
		t.Fatal("Freedom missing from backup")
	}
	if freedom.Disambiguation != "Games" {
		t.Errorf("expected disambiguation by name, got %q", freedom.Disambiguation)
	}
	if len(freedom.Aliases) != 1 || freedom.Aliases[0] != "Liberty" {
		t.Errorf("aliases not exported: %v", freedom.Aliases)
	}

	if len(backup.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(backup.Entries))
	}
	entry := backup.Entries[0]
	if entry.Title != "Screenshot" || entry.Path != "/pics/shot.png" {
		t.Errorf("entry fields wrong: %+v", entry)
	}
	if len(entry.Tags) != 1 || entry.Tags[0] != "Freedom" {
		t.Errorf("entry tags should use names, got %v", entry.Tags)
	}
}

func TestBuildBackup_ParentsByName(t *testing.T) {
	store := model.NewStore()
	parent := model.Tag{ID: store.NewTagID(), Name: "Media"}
	child := model.Tag{ID: store.NewTagID(), Name: "Music", ParentIDs: []int{parent.ID}}
	store.Tags = append(store.Tags, parent, child)

	backup := BuildBackup(store)

	var music *YAMLTag
	for i := range backup.Tags {
		if backup.Tags[i].Name == "Music" {
			music = &backup.Tags[i]
		}
	}
	if music == nil {
		t.Fatal("Music missing from backup")
	}
	if len(music.Parents) != 1 || music.Parents[0] != "Media" {
		t.Errorf("expected parent by name, got %v", music.Parents)
	}
}

func TestExportYAML_RoundTripsThroughYAML(t *testing.T) {
	data, err := ExportYAML(taggedStore())
	if err != nil {
		t.Fatalf("ExportYAML failed: %v", err)
	}

	var decoded YAMLBackup
	if err := yaml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("exported document does not parse: %v", err)
	}

	if len(decoded.Tags) != 2 || len(decoded.Entries) != 1 {
		t.Errorf("round trip lost data: %d tags, %d entries", len(decoded.Tags), len(decoded.Entries))
	}
}
