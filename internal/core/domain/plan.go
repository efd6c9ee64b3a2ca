package domain

import "time"

// PlannedTask is a proposed time assignment for a task. Plans are returned to
// the caller and never persisted.
type PlannedTask struct {
	TaskID    uint64
	StartTime time.Time
	EndTime   time.Time
	Reasoning string
}

type Plan struct {
	Assignments []PlannedTask
	// Unplaced holds the ids of tasks that did not fit inside the
	// working-hours window.
	Unplaced []uint64
}
