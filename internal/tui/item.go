package tui

import "tagdex/internal/model"

// RowKind distinguishes tag rows from the create affordance.
type RowKind int

const (
	RowTag RowKind = iota
	RowCreate
)

// Row represents one selectable line in the result list: either a
// ranked tag or the trailing "create" affordance for the current query.
type Row struct {
	Kind  RowKind
	Tag   *model.Tag
	Query string // create affordance only: the name that would be created
}

// IsCreate returns true if this row is the create affordance.
func (r Row) IsCreate() bool {
	return r.Kind == RowCreate
}

// TagID returns the row's tag ID, or -1 for the create affordance.
func (r Row) TagID() int {
	if r.Kind == RowTag && r.Tag != nil {
		return r.Tag.ID
	}
	return -1
}
