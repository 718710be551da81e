package model

import "time"

// Classification pairs one feedback text with its resolved category label.
// The label is either a rule set category or CategoryOther, never empty.
type Classification struct {
	Text     string
	Category string
}

// Suggestion is a candidate keyword mined from uncategorized feedback.
// Category is the fuzzy-matched best guess, or SuggestionIgnore when no
// existing vocabulary or category name is close enough.
type Suggestion struct {
	Term     string
	Category string
	Count    int
}

// RuleChange records one human-accepted rule addition for the audit log.
type RuleChange struct {
	Time     time.Time
	Term     string
	Category string
}
