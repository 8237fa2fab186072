package importer

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"tagdex/internal/exporter"
	"tagdex/internal/model"
)

// ParseYAML reads a YAML backup document.
func ParseYAML(r io.Reader) (*exporter.YAMLBackup, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup: %w", err)
	}

	var backup exporter.YAMLBackup
	if err := yaml.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("failed to parse backup: %w", err)
	}
	return &backup, nil
}

// ApplyBackup merges a backup document into the store. Tags are
// matched by name (case-insensitive); existing tags keep their IDs and
// gain any missing aliases, new tags are created. Parent and
// disambiguation references resolve by name after all tags exist.
// Returns the number of tags and entries created.
func ApplyBackup(store *model.Store, backup *exporter.YAMLBackup) (tagsAdded, entriesAdded int, err error) {
	// First pass: ensure every tag exists so name references resolve.
	for _, yt := range backup.Tags {
		name := strings.TrimSpace(yt.Name)
		if name == "" {
			continue
		}
		if store.GetTagByName(name) != nil {
			continue
		}
		store.Tags = append(store.Tags, model.Tag{
			ID:        store.NewTagID(),
			Name:      name,
			Shorthand: yt.Shorthand,
			Color:     model.TagColor(yt.Color),
		})
		tagsAdded++
	}

	// Second pass: wire parents, disambiguation, and aliases.
	for _, yt := range backup.Tags {
		tag := store.GetTagByName(strings.TrimSpace(yt.Name))
		if tag == nil {
			continue
		}

		for _, parentName := range yt.Parents {
			parent := store.GetTagByName(parentName)
			if parent == nil {
				return tagsAdded, entriesAdded, fmt.Errorf("tag %q references unknown parent %q", yt.Name, parentName)
			}
			if !tag.HasParent(parent.ID) {
				tag.ParentIDs = append(tag.ParentIDs, parent.ID)
			}
		}

		if yt.Disambiguation != "" && tag.DisambiguationID == nil {
			d := store.GetTagByName(yt.Disambiguation)
			if d == nil {
				return tagsAdded, entriesAdded, fmt.Errorf("tag %q disambiguates via unknown tag %q", yt.Name, yt.Disambiguation)
			}
			id := d.ID
			tag.DisambiguationID = &id
		}

		existing := make(map[string]bool)
		for _, name := range store.AliasNamesForTag(tag.ID) {
			existing[strings.ToLower(name)] = true
		}
		for _, aliasName := range yt.Aliases {
			aliasName = strings.TrimSpace(aliasName)
			if aliasName == "" || existing[strings.ToLower(aliasName)] {
				continue
			}
			existing[strings.ToLower(aliasName)] = true
			store.Aliases = append(store.Aliases, model.Alias{
				ID:    store.NewAliasID(),
				TagID: tag.ID,
				Name:  aliasName,
			})
		}
	}

	for _, ye := range backup.Entries {
		if strings.TrimSpace(ye.Title) == "" {
			continue
		}
		entry := model.NewEntry(model.NewEntryParams{
			Title: ye.Title,
			Path:  ye.Path,
		})
		if !ye.CreatedAt.IsZero() {
			entry.CreatedAt = ye.CreatedAt
		}
		for _, tagName := range ye.Tags {
			if tag := store.GetTagByName(tagName); tag != nil && !entry.HasTag(tag.ID) {
				entry.TagIDs = append(entry.TagIDs, tag.ID)
			}
		}
		store.Entries = append(store.Entries, entry)
		entriesAdded++
	}

	return tagsAdded, entriesAdded, nil
}
