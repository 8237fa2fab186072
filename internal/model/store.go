package model

import "strings"

// Store holds all tags, aliases, and entries.
type Store struct {
	Tags    []Tag   `json:"tags"`
	Aliases []Alias `json:"aliases"`
	Entries []Entry `json:"entries"`

	NextTagID   int `json:"nextTagId"`
	NextAliasID int `json:"nextAliasId"`
}

// NewStore creates a Store seeded with the built-in reserved tags.
func NewStore() *Store {
	return &Store{
		Tags: []Tag{
			{ID: TagArchived, Name: "Archived", Color: ColorRed},
			{ID: TagFavorite, Name: "Favorite", Color: ColorYellow},
		},
		Aliases:     []Alias{},
		Entries:     []Entry{},
		NextTagID:   ReservedTagEnd,
		NextAliasID: 1,
	}
}

// GetTagByID finds a tag by ID, returns nil if not found.
func (s *Store) GetTagByID(id int) *Tag {
	for i := range s.Tags {
		if s.Tags[i].ID == id {
			return &s.Tags[i]
		}
	}
	return nil
}

// GetTagByName finds a tag by exact name, case-insensitive.
// Returns nil if not found.
func (s *Store) GetTagByName(name string) *Tag {
	for i := range s.Tags {
		if strings.EqualFold(s.Tags[i].Name, name) {
			return &s.Tags[i]
		}
	}
	return nil
}

// AliasesForTag returns the alias rows belonging to a tag.
func (s *Store) AliasesForTag(tagID int) []Alias {
	var result []Alias
	for _, a := range s.Aliases {
		if a.TagID == tagID {
			result = append(result, a)
		}
	}
	return result
}

// AliasNamesForTag returns just the alias names of a tag.
func (s *Store) AliasNamesForTag(tagID int) []string {
	var names []string
	for _, a := range s.Aliases {
		if a.TagID == tagID {
			names = append(names, a.Name)
		}
	}
	return names
}

// GetEntryByID finds an entry by ID, returns nil if not found.
func (s *Store) GetEntryByID(id string) *Entry {
	for i := range s.Entries {
		if s.Entries[i].ID == id {
			return &s.Entries[i]
		}
	}
	return nil
}

// EntriesWithTag returns all entries carrying the given tag.
func (s *Store) EntriesWithTag(tagID int) []Entry {
	var result []Entry
	for _, e := range s.Entries {
		if e.HasTag(tagID) {
			result = append(result, e)
		}
	}
	return result
}

// DisplayName resolves a tag's human-facing label. When the tag has a
// disambiguation parent the label is qualified with that parent's
// shorthand (or name): "Freedom (SDV)". Unknown IDs yield "".
func (s *Store) DisplayName(id int) string {
	tag := s.GetTagByID(id)
	if tag == nil {
		return ""
	}
	if tag.DisambiguationID == nil {
		return tag.Name
	}
	parent := s.GetTagByID(*tag.DisambiguationID)
	if parent == nil {
		return tag.Name
	}
	qualifier := parent.Shorthand
	if qualifier == "" {
		qualifier = parent.Name
	}
	return tag.Name + " (" + qualifier + ")"
}

// NewTagID returns the next free tag ID and advances the counter.
func (s *Store) NewTagID() int {
	if s.NextTagID < ReservedTagEnd {
		s.NextTagID = ReservedTagEnd
	}
	id := s.NextTagID
	s.NextTagID++
	return id
}

// NewAliasID returns the next free alias ID and advances the counter.
func (s *Store) NewAliasID() int {
	if s.NextAliasID < 1 {
		s.NextAliasID = 1
	}
	id := s.NextAliasID
	s.NextAliasID++
	return id
}

// AddEntry appends an entry to the store.
func (s *Store) AddEntry(entry Entry) {
	s.Entries = append(s.Entries, entry)
}
