package model

import "time"

// Entry represents a library item that tags attach to.
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Path      string    `json:"path,omitempty"`
	TagIDs    []int     `json:"tagIds"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewEntryParams holds parameters for creating a new Entry.
type NewEntryParams struct {
	Title string
	Path  string
}

// NewEntry creates an Entry with generated UUID and timestamp.
func NewEntry(params NewEntryParams) Entry {
	return Entry{
		ID:        generateUUID(),
		Title:     params.Title,
		Path:      params.Path,
		TagIDs:    []int{},
		CreatedAt: time.Now(),
	}
}

// HasTag returns true if the entry carries the given tag.
func (e Entry) HasTag(tagID int) bool {
	for _, id := range e.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}
