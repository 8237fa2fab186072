// Package doctor checks the referential integrity of a tag library:
// dangling parent/disambiguation/alias references, orphaned entry
// tags, and duplicate names.
package doctor

import (
	"fmt"
	"strings"

	"tagdex/internal/model"
)

// Kind categorizes a finding.
type Kind int

const (
	DanglingParent Kind = iota
	DanglingDisambiguation
	OrphanedAlias
	OrphanedEntryTag
	DuplicateName
	ParentCycle
)

// Finding describes one integrity problem.
type Finding struct {
	Kind    Kind
	Message string
}

// Group collects findings of one kind for display.
type Group struct {
	Label       string
	Description string
	Kind        Kind
	Findings    []Finding
}

// Check inspects the store and returns all findings.
func Check(store *model.Store) []Finding {
	var findings []Finding

	known := make(map[int]bool, len(store.Tags))
	for _, t := range store.Tags {
		known[t.ID] = true
	}

	for _, t := range store.Tags {
		for _, parentID := range t.ParentIDs {
			if !known[parentID] {
				findings = append(findings, Finding{
					Kind:    DanglingParent,
					Message: fmt.Sprintf("tag %q (%d) references missing parent %d", t.Name, t.ID, parentID),
				})
			}
		}
		if t.DisambiguationID != nil && !known[*t.DisambiguationID] {
			findings = append(findings, Finding{
				Kind:    DanglingDisambiguation,
				Message: fmt.Sprintf("tag %q (%d) disambiguates via missing tag %d", t.Name, t.ID, *t.DisambiguationID),
			})
		}
	}

	for _, a := range store.Aliases {
		if !known[a.TagID] {
			findings = append(findings, Finding{
				Kind:    OrphanedAlias,
				Message: fmt.Sprintf("alias %q (%d) belongs to missing tag %d", a.Name, a.ID, a.TagID),
			})
		}
	}

	for _, e := range store.Entries {
		for _, tagID := range e.TagIDs {
			if !known[tagID] {
				findings = append(findings, Finding{
					Kind:    OrphanedEntryTag,
					Message: fmt.Sprintf("entry %q carries missing tag %d", e.Title, tagID),
				})
			}
		}
	}

	byName := make(map[string][]int)
	for _, t := range store.Tags {
		key := strings.ToLower(t.Name)
		byName[key] = append(byName[key], t.ID)
	}
	for _, t := range store.Tags {
		ids := byName[strings.ToLower(t.Name)]
		if len(ids) > 1 && ids[0] == t.ID {
			findings = append(findings, Finding{
				Kind:    DuplicateName,
				Message: fmt.Sprintf("name %q is shared by tags %v", t.Name, ids),
			})
		}
	}

	findings = append(findings, findCycles(store, known)...)

	return findings
}

// findCycles walks parent chains looking for loops.
func findCycles(store *model.Store, known map[int]bool) []Finding {
	var findings []Finding
	reported := make(map[int]bool)

	for _, t := range store.Tags {
		if reported[t.ID] {
			continue
		}
		visited := map[int]bool{t.ID: true}
		stack := append([]int(nil), t.ParentIDs...)
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !known[id] {
				continue
			}
			if visited[id] && id == t.ID {
				findings = append(findings, Finding{
					Kind:    ParentCycle,
					Message: fmt.Sprintf("tag %q (%d) is part of a parent cycle", t.Name, t.ID),
				})
				reported[t.ID] = true
				break
			}
			if visited[id] {
				continue
			}
			visited[id] = true
			if parent := store.GetTagByID(id); parent != nil {
				stack = append(stack, parent.ParentIDs...)
			}
		}
	}

	return findings
}

// GroupFindings buckets findings by kind for report output.
func GroupFindings(findings []Finding) []Group {
	labels := map[Kind][2]string{
		DanglingParent:         {"DANGLING PARENT", "tags referencing parents that no longer exist"},
		DanglingDisambiguation: {"DANGLING DISAMBIGUATION", "display-name qualifiers pointing at missing tags"},
		OrphanedAlias:          {"ORPHANED ALIAS", "alias rows whose tag no longer exists"},
		OrphanedEntryTag:       {"ORPHANED ENTRY TAG", "entries carrying tag IDs that no longer exist"},
		DuplicateName:          {"DUPLICATE NAME", "multiple tags sharing a name (case-insensitive)"},
		ParentCycle:            {"PARENT CYCLE", "tags that are their own ancestor"},
	}

	order := []Kind{DanglingParent, DanglingDisambiguation, OrphanedAlias, OrphanedEntryTag, DuplicateName, ParentCycle}

	byKind := make(map[Kind][]Finding)
	for _, f := range findings {
		byKind[f.Kind] = append(byKind[f.Kind], f)
	}

	var groups []Group
	for _, kind := range order {
		if len(byKind[kind]) == 0 {
			continue
		}
		label := labels[kind]
		groups = append(groups, Group{
			Label:       label[0],
			Description: label[1],
			Kind:        kind,
			Findings:    byKind[kind],
		})
	}
	return groups
}
