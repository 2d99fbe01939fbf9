package entity

import "time"

// RunState is the single state row kept between runs.
// RestToday makes the next automatic run resend LastDay once.
type RunState struct {
	LastDay   string
	RestToday bool
	UpdatedAt time.Time
}
