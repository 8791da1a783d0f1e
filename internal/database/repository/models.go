package repository

import "time"

// Session outcomes.
const (
	OutcomeCompleted = "completed"
	OutcomePaused    = "paused"
	OutcomeAbandoned = "abandoned"
)

// Preset represents a named duration.
type Preset struct {
	ID        string
	Name      string
	Seconds   int
	SortOrder int
}

// Session represents one run of the countdown.
type Session struct {
	ID             string
	PlannedSeconds int
	ElapsedSeconds int
	Outcome        string
	StartedAt      time.Time
	EndedAt        time.Time
}

// SessionSummary aggregates sessions over a window.
type SessionSummary struct {
	Sessions       int
	Completed      int
	ElapsedSeconds int
}
