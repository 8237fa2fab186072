package model

// Alias is an alternate name for a tag. Aliases are separate rows with
// their own IDs so edits can address them individually.
type Alias struct {
	ID    int    `json:"id"`
	TagID int    `json:"tagId"`
	Name  string `json:"name"`
}
