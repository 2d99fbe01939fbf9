package domain

import "time"

// Category groups workout days so they share warm-ups, cool-downs and aliases
type Category string

const (
	CategoryPull    Category = "pull"
	CategoryPush    Category = "push"
	CategoryLegs    Category = "legs"
	CategoryCardio  Category = "cardio"
	CategoryGeneral Category = "general"
)

// Categories lists every category in classification priority order
var Categories = []Category{CategoryPull, CategoryPush, CategoryLegs, CategoryCardio, CategoryGeneral}

// ListedBareAliases are the bare category aliases shown by list-keys.
// "general" still resolves but is not listed.
var ListedBareAliases = []Category{CategoryPull, CategoryPush, CategoryLegs, CategoryCardio}

// DefaultMaxMessageChars keeps parts safely under the provider limit
const DefaultMaxMessageChars = 1500

// ClosingPrompt ends every workout message
const ClosingPrompt = "Reply *DONE* when finished 💪"

// Plan sheet column headers
const (
	ColumnDay       = "Day"
	ColumnExercise  = "Exercise"
	ColumnPrimary   = "Primary Target"
	ColumnSecondary = "Secondary Target"
	ColumnTertiary  = "Tertiary Target"
)

// RequiredColumns must be present in the plan header row
var RequiredColumns = []string{ColumnDay, ColumnExercise, ColumnPrimary}

// WeekdayIndex returns 0 for Monday through 6 for Sunday.
// Go's time.Weekday starts at Sunday = 0.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
