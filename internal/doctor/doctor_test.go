package doctor

import (
	"testing"

	"tagdex/internal/model"
)

func countKind(findings []Finding, kind Kind) int {
	n := 0
	for _, f := range findings {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

func TestCheck_CleanStore(t *testing.T) {
	store := model.NewStore()
	store.Tags = append(store.Tags, model.Tag{ID: 1000, Name: "Fantasy"})

	findings := Check(store)

	if len(findings) != 0 {
		t.Errorf("expected no findings for clean store, got %v", findings)
	}
}

func TestCheck_DanglingParent(t *testing.T) {
	store := model.NewStore()
	store.Tags = append(store.Tags, model.Tag{ID: 1000, Name: "Child", ParentIDs: []int{9999}})

	findings := Check(store)

	if countKind(findings, DanglingParent) != 1 {
		t.Errorf("expected 1 dangling parent finding, got %v", findings)
	}
}

func TestCheck_DanglingDisambiguation(t *testing.T) {
	missing := 9999
	store := model.NewStore()
	store.Tags = append(store.Tags, model.Tag{ID: 1000, Name: "Lonely", DisambiguationID: &missing})

	findings := Check(store)

	if countKind(findings, DanglingDisambiguation) != 1 {
		t.Errorf("expected 1 dangling disambiguation finding, got %v", findings)
	}
}

func TestCheck_OrphanedAliasAndEntryTag(t *testing.T) {
	store := model.NewStore()
	store.Aliases = append(store.Aliases, model.Alias{ID: 1, TagID: 8888, Name: "Ghost"})
	store.Entries = append(store.Entries, model.Entry{ID: "e1", Title: "Photo", TagIDs: []int{7777}})

	findings := Check(store)

	if countKind(findings, OrphanedAlias) != 1 {
		t.Errorf("expected 1 orphaned alias, got %v", findings)
	}
	if countKind(findings, OrphanedEntryTag) != 1 {
		t.Errorf("expected 1 orphaned entry tag, got %v", findings)
	}
}

func TestCheck_DuplicateName(t *testing.T) {
	store := model.NewStore()
	store.Tags = append(store.Tags,
		model.Tag{ID: 1000, Name: "Fantasy"},
		model.Tag{ID: 1001, Name: "fantasy"},
	)

	findings := Check(store)

	// Reported once, not once per duplicate
	if countKind(findings, DuplicateName) != 1 {
		t.Errorf("expected 1 duplicate name finding, got %v", findings)
	}
}

func TestCheck_ParentCycle(t *testing.T) {
	store := model.NewStore()
	store.Tags = append(store.Tags,
		model.Tag{ID: 1000, Name: "A", ParentIDs: []int{1001}},
		model.Tag{ID: 1001, Name: "B", ParentIDs: []int{1000}},
	)

	findings := Check(store)

	if countKind(findings, ParentCycle) == 0 {
		t.Errorf("expected parent cycle findings, got %v", findings)
	}
}

func TestGroupFindings(t *testing.T) {
	findings := []Finding{
		{Kind: OrphanedAlias, Message: "a"},
		{Kind: DanglingParent, Message: "b"},
		{Kind: OrphanedAlias, Message: "c"},
	}

	groups := GroupFindings(findings)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	// Order follows kind order: parents before aliases
	if groups[0].Kind != DanglingParent {
		t.Errorf("expected DanglingParent first, got %v", groups[0].Kind)
	}
	if len(groups[1].Findings) != 2 {
		t.Errorf("expected 2 alias findings grouped, got %d", len(groups[1].Findings))
	}
}
