// Package library is the collaborator the tag panel talks to: backing
// search, display names, and mutations over the persisted tag store.
package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"tagdex/internal/model"
	"tagdex/internal/search"
	"tagdex/internal/storage"
)

var (
	ErrEmptyName     = errors.New("tag name is empty")
	ErrTagNotFound   = errors.New("tag not found")
	ErrEntryNotFound = errors.New("entry not found")
	ErrReservedTag   = errors.New("reserved tags cannot be modified")
)

// Library wraps the store and its persistence backend.
type Library struct {
	store       *model.Store
	backend     storage.Storage
	searchLimit int
}

// Params holds parameters for opening a Library.
type Params struct {
	Store       *model.Store
	Backend     storage.Storage
	SearchLimit int // 0 = search.DefaultLimit
}

// New creates a Library over an already-loaded store.
func New(params Params) *Library {
	limit := params.SearchLimit
	if limit <= 0 {
		limit = search.DefaultLimit
	}
	return &Library{
		store:       params.Store,
		backend:     params.Backend,
		searchLimit: limit,
	}
}

// Store exposes the underlying store for read access.
func (l *Library) Store() *model.Store {
	return l.store
}

// SearchTags runs the backing fuzzy search. Empty query = all tags.
func (l *Library) SearchTags(query string) []model.Tag {
	return search.SearchTags(l.store, query, l.searchLimit)
}

// TagDisplayName resolves a tag's shown label.
func (l *Library) TagDisplayName(id int) string {
	return l.store.DisplayName(id)
}

// AddTag creates a tag with the given relations and persists the
// store. Returns the assigned ID.
func (l *Library) AddTag(tag model.Tag, parentIDs []int, aliasNames []string) (int, error) {
	name := strings.TrimSpace(tag.Name)
	if name == "" {
		return 0, ErrEmptyName
	}

	tag.ID = l.store.NewTagID()
	tag.Name = name
	tag.ParentIDs = dedupeInts(parentIDs)
	l.store.Tags = append(l.store.Tags, tag)

	for _, alias := range dedupeStrings(aliasNames) {
		l.store.Aliases = append(l.store.Aliases, model.Alias{
			ID:    l.store.NewAliasID(),
			TagID: tag.ID,
			Name:  alias,
		})
	}

	logrus.WithFields(logrus.Fields{"id": tag.ID, "name": tag.Name}).Info("tag added")

	if err := l.save(); err != nil {
		return 0, err
	}
	return tag.ID, nil
}

// UpdateTag replaces a tag's fields and reconciles its relations in
// place. aliasIDs names the existing alias rows that survive; alias
// names without a surviving row become new rows.
func (l *Library) UpdateTag(tag model.Tag, parentIDs []int, aliasNames []string, aliasIDs []int) error {
	existing := l.store.GetTagByID(tag.ID)
	if existing == nil {
		return fmt.Errorf("update tag %d: %w", tag.ID, ErrTagNotFound)
	}
	if existing.IsReserved() {
		return fmt.Errorf("update tag %d: %w", tag.ID, ErrReservedTag)
	}

	name := strings.TrimSpace(tag.Name)
	if name == "" {
		return ErrEmptyName
	}

	existing.Name = name
	existing.Shorthand = tag.Shorthand
	existing.Color = tag.Color
	existing.DisambiguationID = tag.DisambiguationID
	existing.ParentIDs = dedupeInts(parentIDs)

	l.reconcileAliases(tag.ID, dedupeStrings(aliasNames), dedupeInts(aliasIDs))

	logrus.WithFields(logrus.Fields{"id": tag.ID, "name": name}).Info("tag updated")

	return l.save()
}

// reconcileAliases brings a tag's alias rows in line with the desired
// name set. Rows keep their IDs only when both the ID and the name are
// still wanted.
func (l *Library) reconcileAliases(tagID int, names []string, keepIDs []int) {
	wantID := make(map[int]bool, len(keepIDs))
	for _, id := range keepIDs {
		wantID[id] = true
	}
	wantName := make(map[string]bool, len(names))
	for _, n := range names {
		wantName[n] = true
	}

	kept := l.store.Aliases[:0]
	surviving := make(map[string]bool)
	for _, a := range l.store.Aliases {
		if a.TagID != tagID {
			kept = append(kept, a)
			continue
		}
		if wantID[a.ID] && wantName[a.Name] {
			kept = append(kept, a)
			surviving[a.Name] = true
		}
	}
	l.store.Aliases = kept

	for _, n := range names {
		if surviving[n] {
			continue
		}
		l.store.Aliases = append(l.store.Aliases, model.Alias{
			ID:    l.store.NewAliasID(),
			TagID: tagID,
			Name:  n,
		})
	}
}

// RemoveTag deletes a tag along with its alias rows and every
// reference from other tags and entries.
func (l *Library) RemoveTag(id int) error {
	tag := l.store.GetTagByID(id)
	if tag == nil {
		return fmt.Errorf("remove tag %d: %w", id, ErrTagNotFound)
	}
	if tag.IsReserved() {
		return fmt.Errorf("remove tag %d: %w", id, ErrReservedTag)
	}

	tags := l.store.Tags[:0]
	for _, t := range l.store.Tags {
		if t.ID == id {
			continue
		}
		t.ParentIDs = removeInt(t.ParentIDs, id)
		if t.DisambiguationID != nil && *t.DisambiguationID == id {
			t.DisambiguationID = nil
		}
		tags = append(tags, t)
	}
	l.store.Tags = tags

	aliases := l.store.Aliases[:0]
	for _, a := range l.store.Aliases {
		if a.TagID != id {
			aliases = append(aliases, a)
		}
	}
	l.store.Aliases = aliases

	for i := range l.store.Entries {
		l.store.Entries[i].TagIDs = removeInt(l.store.Entries[i].TagIDs, id)
	}

	logrus.WithField("id", id).Info("tag removed")

	return l.save()
}

// AttachTag adds a tag to an entry. Attaching an already-attached tag
// is a no-op.
func (l *Library) AttachTag(entryID string, tagID int) error {
	entry := l.store.GetEntryByID(entryID)
	if entry == nil {
		return fmt.Errorf("attach to entry %s: %w", entryID, ErrEntryNotFound)
	}
	if l.store.GetTagByID(tagID) == nil {
		return fmt.Errorf("attach tag %d: %w", tagID, ErrTagNotFound)
	}
	if entry.HasTag(tagID) {
		return nil
	}

	entry.TagIDs = append(entry.TagIDs, tagID)

	logrus.WithFields(logrus.Fields{"entry": entryID, "tag": tagID}).Info("tag attached")

	return l.save()
}

// DetachTag removes a tag from an entry.
func (l *Library) DetachTag(entryID string, tagID int) error {
	entry := l.store.GetEntryByID(entryID)
	if entry == nil {
		return fmt.Errorf("detach from entry %s: %w", entryID, ErrEntryNotFound)
	}

	entry.TagIDs = removeInt(entry.TagIDs, tagID)
	return l.save()
}

// AddEntry creates and persists a library entry.
func (l *Library) AddEntry(params model.NewEntryParams) (model.Entry, error) {
	if strings.TrimSpace(params.Title) == "" {
		return model.Entry{}, errors.New("entry title is empty")
	}

	entry := model.NewEntry(params)
	l.store.AddEntry(entry)
	return entry, l.save()
}

// SearchEntries fuzzy-matches entries by title.
func (l *Library) SearchEntries(query string) []search.EntryResult {
	return search.SearchEntries(l.store, query)
}

func (l *Library) save() error {
	if l.backend == nil {
		return nil
	}
	if err := l.backend.Save(l.store); err != nil {
		return fmt.Errorf("save library: %w", err)
	}
	return nil
}

func dedupeInts(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	var result []int
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		result = append(result, id)
	}
	return result
}

func dedupeStrings(names []string) []string {
	seen := make(map[string]bool, len(names))
	var result []string
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		result = append(result, n)
	}
	return result
}

func removeInt(ids []int, id int) []int {
	var result []int
	for _, v := range ids {
		if v != id {
			result = append(result, v)
		}
	}
	return result
}
