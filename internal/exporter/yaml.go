package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"tagdex/internal/model"
)

// YAMLTag is one tag in a YAML backup. References use names instead of
// IDs so a backup survives restoring into a library with different ID
// assignments.
type YAMLTag struct {
	Name           string   `yaml:"name"`
	Shorthand      string   `yaml:"shorthand,omitempty"`
	Color          string   `yaml:"color,omitempty"`
	Parents        []string `yaml:"parents,omitempty"`
	Disambiguation string   `yaml:"disambiguation,omitempty"`
	Aliases        []string `yaml:"aliases,omitempty"`
}

// YAMLEntry is one entry in a YAML backup.
type YAMLEntry struct {
	Title     string    `yaml:"title"`
	Path      string    `yaml:"path,omitempty"`
	Tags      []string  `yaml:"tags,omitempty"`
	CreatedAt time.Time `yaml:"created_at,omitempty"`
}

// YAMLBackup is the top-level backup document.
type YAMLBackup struct {
	ExportedAt time.Time   `yaml:"exported_at"`
	Tags       []YAMLTag   `yaml:"tags"`
	Entries    []YAMLEntry `yaml:"entries,omitempty"`
}

// DefaultYAMLPath returns the default backup file path.
func DefaultYAMLPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("tagdex-backup-%s.yaml", time.Now().Format("2006-01-02"))
	return filepath.Join(home, "Downloads", filename), nil
}

// BuildBackup converts a store into the backup document. Reserved tags
// are omitted from the tag list since every library seeds them, but
// entries still reference them by name.
func BuildBackup(store *model.Store) YAMLBackup {
	backup := YAMLBackup{ExportedAt: time.Now()}

	for _, tag := range store.Tags {
		if tag.IsReserved() {
			continue
		}
		yt := YAMLTag{
			Name:      tag.Name,
			Shorthand: tag.Shorthand,
			Color:     string(tag.Color),
			Aliases:   store.AliasNamesForTag(tag.ID),
		}
		for _, parentID := range tag.ParentIDs {
			if parent := store.GetTagByID(parentID); parent != nil {
				yt.Parents = append(yt.Parents, parent.Name)
			}
		}
		if tag.DisambiguationID != nil {
			if d := store.GetTagByID(*tag.DisambiguationID); d != nil {
				yt.Disambiguation = d.Name
			}
		}
		backup.Tags = append(backup.Tags, yt)
	}

	for _, entry := range store.Entries {
		ye := YAMLEntry{
			Title:     entry.Title,
			Path:      entry.Path,
			CreatedAt: entry.CreatedAt,
		}
		for _, tagID := range entry.TagIDs {
			if tag := store.GetTagByID(tagID); tag != nil {
				ye.Tags = append(ye.Tags, tag.Name)
			}
		}
		backup.Entries = append(backup.Entries, ye)
	}

	return backup
}

// ExportYAML serializes the library as a YAML backup document.
func ExportYAML(store *model.Store) ([]byte, error) {
	backup := BuildBackup(store)
	data, err := yaml.Marshal(&backup)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backup: %w", err)
	}
	return data, nil
}
