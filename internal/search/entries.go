package search

import (
	"github.com/sahilm/fuzzy"

	"tagdex/internal/model"
)

// EntryResult represents a fuzzy search match against entry titles.
type EntryResult struct {
	Entry          *model.Entry
	MatchedIndexes []int
	Score          int
}

// entryTitles implements fuzzy.Source for entry slices.
type entryTitles []*model.Entry

func (et entryTitles) String(i int) string {
	return et[i].Title
}

func (et entryTitles) Len() int {
	return len(et)
}

// SearchEntries fuzzy-matches entries by title, best score first.
func SearchEntries(store *model.Store, query string) []EntryResult {
	if query == "" {
		return nil
	}

	entries := make(entryTitles, len(store.Entries))
	for i := range store.Entries {
		entries[i] = &store.Entries[i]
	}

	matches := fuzzy.FindFrom(query, entries)

	results := make([]EntryResult, len(matches))
	for i, m := range matches {
		results[i] = EntryResult{
			Entry:          entries[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}

	return results
}
