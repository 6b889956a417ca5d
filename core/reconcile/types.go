package reconcile

// Item is one entry of the source game catalog.
type Item struct {
	// AppID is the source identifier of the game.
	AppID int64

	// Name is the display name of the game.
	Name string

	// Playtime is the cumulative playtime in minutes.
	Playtime int64
}

// Completion is the achievement completion ratio for one game.
// Known is false when the game defines no achievements or stats could not
// be fetched; in that state Ratio carries no meaning.
type Completion struct {
	Ratio float64
	Known bool
}

// Unknown is the completion used when no ratio could be determined.
var Unknown = Completion{}

// Record is the destination view of one library entry.
type Record struct {
	// Handle is the destination-assigned record identifier.
	Handle string

	// AppID is the source identifier property. Valid only when HasAppID
	// is true; records without the property cannot be matched.
	AppID    int64
	HasAppID bool

	// Name is the current title text.
	Name string

	// Playtime is the stored playtime in minutes, nil when the property
	// was never written.
	Playtime *int64

	// Achievement is the stored completion ratio, nil until the first
	// known value was written.
	Achievement *float64
}

// Destination property names. These are the keys of the destination schema
// and therefore the keys used in deltas and create payloads.
const (
	FieldName        = "name"
	FieldAppID       = "appid"
	FieldPlaytime    = "play_time"
	FieldAchievement = "achievement"
)

// Delta maps property names to new values. It contains exactly the fields
// that must change; an empty delta means no write. A write never touches
// properties the delta does not name.
type Delta map[string]any

// ActionType represents the kind of destination write.
type ActionType string

const (
	// ActionCreate inserts a new destination record.
	ActionCreate ActionType = "create"
	// ActionUpdate patches fields of an existing destination record.
	ActionUpdate ActionType = "update"
)

// Action is one planned destination write.
type Action struct {
	// Type specifies the write to perform.
	Type ActionType

	// Item is the source item the action was planned for.
	Item Item

	// Handle is the destination record to patch. Empty for creates.
	Handle string

	// Delta holds the full initial property set for creates, and only
	// the changed properties for updates.
	Delta Delta
}

// Summary provides aggregate counts for one sync run.
type Summary struct {
	// Total is the number of source items processed.
	Total int `json:"total"`

	// Created counts new destination records.
	Created int `json:"created"`

	// Updated counts patched destination records.
	Updated int `json:"updated"`

	// Skipped counts items whose destination record already matched.
	Skipped int `json:"skipped"`

	// Failed counts items whose write failed and was skipped.
	Failed int `json:"failed"`
}

// Count increments the counter matching the action type.
func (s *Summary) Count(t ActionType) {
	switch t {
	case ActionCreate:
		s.Created++
	case ActionUpdate:
		s.Updated++
	}
}
