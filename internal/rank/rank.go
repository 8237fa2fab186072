// Package rank orders backing-search results for the tag panel.
// The backing search decides what matches; this package only filters
// exclusions and decides display order.
package rank

import (
	"sort"
	"strings"
	"unicode/utf8"

	"tagdex/internal/model"
)

// DisplayNameFunc resolves a tag ID to its human-facing label.
type DisplayNameFunc func(id int) string

// Rank filters and orders tags for display.
//
// Tags whose ID is in excluded are dropped. The rest split into two
// segments: prefix matches (non-empty query, tag name starts with the
// query, case-insensitive) ordered by display-name length then display
// name, and everything else ordered by display name. Prefix matches
// come first. Shorter names rank higher among prefix matches because
// they are assumed more relevant.
//
// firstID is the ID of the top-ranked tag, nil when nothing remains.
// Pure function: no inputs are mutated.
func Rank(query string, tags []model.Tag, excluded map[int]bool, displayName DisplayNameFunc) (ranked []model.Tag, firstID *int) {
	var prefix, rest []model.Tag

	lowerQuery := strings.ToLower(query)
	for _, tag := range tags {
		switch {
		case excluded[tag.ID]:
			continue
		case query != "" && strings.HasPrefix(strings.ToLower(tag.Name), lowerQuery):
			prefix = append(prefix, tag)
		default:
			rest = append(rest, tag)
		}
	}

	// Compound key equivalent to a stable sort by name followed by a
	// stable sort by length: length ascending, name breaking ties.
	sort.SliceStable(prefix, func(i, j int) bool {
		ni, nj := displayName(prefix[i].ID), displayName(prefix[j].ID)
		li, lj := utf8.RuneCountInString(ni), utf8.RuneCountInString(nj)
		if li != lj {
			return li < lj
		}
		return ni < nj
	})

	sort.SliceStable(rest, func(i, j int) bool {
		return displayName(rest[i].ID) < displayName(rest[j].ID)
	})

	ranked = append(prefix, rest...)
	if len(ranked) > 0 {
		id := ranked[0].ID
		firstID = &id
	}
	return ranked, firstID
}
