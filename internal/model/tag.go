package model

// Reserved tag ID range. Built-in tags live below ReservedTagEnd and
// cannot be edited or removed; user tags are assigned IDs from
// ReservedTagEnd upward.
const (
	ReservedTagStart = 0
	ReservedTagEnd   = 1000
)

// Built-in tag IDs.
const (
	TagArchived = 0
	TagFavorite = 1
)

// TagColor is a named palette entry for tag rendering.
type TagColor string

const (
	ColorDefault TagColor = ""
	ColorRed     TagColor = "red"
	ColorOrange  TagColor = "orange"
	ColorYellow  TagColor = "yellow"
	ColorGreen   TagColor = "green"
	ColorTeal    TagColor = "teal"
	ColorBlue    TagColor = "blue"
	ColorPurple  TagColor = "purple"
	ColorPink    TagColor = "pink"
	ColorGray    TagColor = "gray"
)

// Colors lists all palette entries in cycling order.
func Colors() []TagColor {
	return []TagColor{
		ColorDefault, ColorRed, ColorOrange, ColorYellow, ColorGreen,
		ColorTeal, ColorBlue, ColorPurple, ColorPink, ColorGray,
	}
}

// Tag represents a label usable to categorize library entries.
type Tag struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Shorthand string   `json:"shorthand,omitempty"`
	Color     TagColor `json:"color,omitempty"`
	ParentIDs []int    `json:"parentIds,omitempty"`

	// DisambiguationID points at the parent tag used to qualify the
	// display name, e.g. "Freedom (Stardew Valley)". nil = plain name.
	DisambiguationID *int `json:"disambiguationId,omitempty"`
}

// IsReserved returns true for built-in tags that must not be edited
// or removed.
func (t Tag) IsReserved() bool {
	return t.ID >= ReservedTagStart && t.ID < ReservedTagEnd
}

// HasParent returns true if parentID is among the tag's parents.
func (t Tag) HasParent(parentID int) bool {
	for _, id := range t.ParentIDs {
		if id == parentID {
			return true
		}
	}
	return false
}
