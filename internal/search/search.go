package search

import (
	"github.com/sahilm/fuzzy"

	"tagdex/internal/model"
)

// DefaultLimit caps the number of tags returned by a search.
const DefaultLimit = 100

// candidate is one searchable string of a tag. A tag contributes its
// name plus one candidate per shorthand and alias, so a query can hit
// any of them.
type candidate struct {
	tagIdx int
	text   string
}

// candidateSource implements fuzzy.Source over tag candidates.
type candidateSource []candidate

func (cs candidateSource) String(i int) string {
	return cs[i].text
}

func (cs candidateSource) Len() int {
	return len(cs)
}

// SearchTags performs the backing search over the tag corpus.
// An empty query matches all tags (up to limit, in store order).
// A non-empty query fuzzy-matches against each tag's name, shorthand,
// and aliases; a tag appears once, at its best-scoring position.
// Ranking of the result for display is not done here.
func SearchTags(store *model.Store, query string, limit int) []model.Tag {
	if limit <= 0 {
		limit = DefaultLimit
	}

	if query == "" {
		tags := make([]model.Tag, 0, len(store.Tags))
		for _, t := range store.Tags {
			if len(tags) >= limit {
				break
			}
			tags = append(tags, t)
		}
		return tags
	}

	// Build candidate strings for every tag
	var candidates candidateSource
	for i, t := range store.Tags {
		candidates = append(candidates, candidate{tagIdx: i, text: t.Name})
		if t.Shorthand != "" {
			candidates = append(candidates, candidate{tagIdx: i, text: t.Shorthand})
		}
		for _, alias := range store.AliasNamesForTag(t.ID) {
			candidates = append(candidates, candidate{tagIdx: i, text: alias})
		}
	}

	matches := fuzzy.FindFrom(query, candidates)

	// Deduplicate by tag, keeping best-scoring match order
	seen := make(map[int]bool)
	var results []model.Tag
	for _, m := range matches {
		idx := candidates[m.Index].tagIdx
		if seen[idx] {
			continue
		}
		seen[idx] = true
		results = append(results, store.Tags[idx])
		if len(results) >= limit {
			break
		}
	}

	return results
}
