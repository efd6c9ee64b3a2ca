// Package planner holds the local scheduling heuristics: the urgency scorer
// and the greedy day planner used when the reasoning service is unavailable.
package planner

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"campustasks/internal/core/domain"
)

const fallbackReasoning = "fallback scheduling based on priority"

// PlanDay lays tasks into the user's working-hours window on the given day,
// highest urgency first. Placements never overlap each other or a committed
// schedule entry, and each is followed by the configured break. Tasks that do
// not fit before the end of the window are reported as unplaced. The input is
// not mutated and the result is not persisted.
func PlanDay(tasks []domain.Task, committed []domain.ScheduleEntry, prefs domain.Preferences, day, now time.Time) domain.Plan {
	if len(tasks) == 0 {
		return domain.Plan{}
	}

	ordered := make([]domain.Task, len(tasks))
	copy(ordered, tasks)
	// Stable: equal scores keep their input order.
	sort.SliceStable(ordered, func(i, j int) bool {
		return UrgencyScore(ordered[i], now) > UrgencyScore(ordered[j], now)
	})

	dayStart := atClock(day, prefs.WorkingHoursStart, 9, 0)
	dayEnd := atClock(day, prefs.WorkingHoursEnd, 18, 0)

	busy := activeSortedWithin(committed, dayStart, dayEnd)

	breakDur := time.Duration(prefs.BreakMins) * time.Minute
	cursor := dayStart

	var plan domain.Plan
	for _, task := range ordered {
		duration := time.Duration(task.EstimatedDuration) * time.Minute
		start := nextFit(cursor, duration, busy)
		end := start.Add(duration)
		if end.After(dayEnd) {
			plan.Unplaced = append(plan.Unplaced, task.ID)
			continue
		}

		plan.Assignments = append(plan.Assignments, domain.PlannedTask{
			TaskID:    task.ID,
			StartTime: start,
			EndTime:   end,
			Reasoning: fallbackReasoning,
		})
		cursor = end.Add(breakDur)
	}

	return plan
}

// nextFit advances the cursor past every committed entry the candidate window
// would overlap.
func nextFit(cursor time.Time, duration time.Duration, busy []domain.ScheduleEntry) time.Time {
	for {
		moved := false
		for _, entry := range busy {
			if entry.StartTime.Before(cursor.Add(duration)) && entry.EndTime.After(cursor) {
				cursor = entry.EndTime
				moved = true
			}
		}
		if !moved {
			return cursor
		}
	}
}

func activeSortedWithin(entries []domain.ScheduleEntry, from, to time.Time) []domain.ScheduleEntry {
	busy := make([]domain.ScheduleEntry, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsActive {
			continue
		}
		if entry.StartTime.Before(to) && entry.EndTime.After(from) {
			busy = append(busy, entry)
		}
	}
	sort.Slice(busy, func(i, j int) bool { return busy[i].StartTime.Before(busy[j].StartTime) })
	return busy
}

// atClock resolves an "HH:MM" preference onto the given day, falling back to
// the provided default when the value is malformed.
func atClock(day time.Time, clock string, defHour, defMin int) time.Time {
	hour, min := defHour, defMin
	if parts := strings.SplitN(clock, ":", 2); len(parts) == 2 {
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		if errH == nil && errM == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
			hour, min = h, m
		}
	}
	return time.Date(day.Year(), day.Month(), day.Day(), hour, min, 0, 0, day.Location())
}
