package planner

import (
	"sort"
	"time"

	"campustasks/internal/core/domain"
)

// Conflicts reports every pair of active entries whose intervals overlap,
// together with the overlap length.
func Conflicts(entries []domain.ScheduleEntry) []domain.Conflict {
	active := make([]domain.ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsActive {
			active = append(active, entry)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].StartTime.Before(active[j].StartTime) })

	var conflicts []domain.Conflict
	for i := 0; i < len(active); i++ {
		for j := i + 1; j < len(active); j++ {
			if !active[i].ConflictsWith(active[j]) {
				continue
			}
			overlapEnd := active[i].EndTime
			if active[j].EndTime.Before(overlapEnd) {
				overlapEnd = active[j].EndTime
			}
			overlapStart := active[i].StartTime
			if active[j].StartTime.After(overlapStart) {
				overlapStart = active[j].StartTime
			}
			conflicts = append(conflicts, domain.Conflict{
				First:           active[i],
				Second:          active[j],
				OverlapDuration: overlapEnd.Sub(overlapStart),
			})
		}
	}
	return conflicts
}

// AvailableSlots scans active entries sorted by start time and returns every
// gap inside [from, to) of at least minDuration, including the stretch before
// the first entry and after the last one.
func AvailableSlots(entries []domain.ScheduleEntry, from, to time.Time, minDuration time.Duration) []domain.Slot {
	busy := activeSortedWithin(entries, from, to)

	var slots []domain.Slot
	cursor := from
	for _, entry := range busy {
		if cursor.Before(entry.StartTime) {
			if gap := entry.StartTime.Sub(cursor); gap >= minDuration {
				slots = append(slots, domain.Slot{StartTime: cursor, EndTime: entry.StartTime, Duration: gap})
			}
		}
		if entry.EndTime.After(cursor) {
			cursor = entry.EndTime
		}
	}
	if cursor.Before(to) {
		if gap := to.Sub(cursor); gap >= minDuration {
			slots = append(slots, domain.Slot{StartTime: cursor, EndTime: to, Duration: gap})
		}
	}
	return slots
}
