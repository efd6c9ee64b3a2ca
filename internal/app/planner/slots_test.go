package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"campustasks/internal/core/domain"
)

func TestConflicts_OverlapDetection(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	entries := []domain.ScheduleEntry{
		{ID: 1, IsActive: true, StartTime: at(d, 10, 0), EndTime: at(d, 11, 0)},
		{ID: 2, IsActive: true, StartTime: at(d, 10, 30), EndTime: at(d, 11, 30)},
	}
	conflicts := Conflicts(entries)
	require.Len(t, conflicts, 1)
	require.Equal(t, uint64(1), conflicts[0].First.ID)
	require.Equal(t, uint64(2), conflicts[0].Second.ID)
	require.Equal(t, 30*time.Minute, conflicts[0].OverlapDuration)
}

func TestConflicts_TouchingIntervalsDoNotConflict(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	entries := []domain.ScheduleEntry{
		{ID: 1, IsActive: true, StartTime: at(d, 10, 0), EndTime: at(d, 11, 0)},
		{ID: 2, IsActive: true, StartTime: at(d, 11, 0), EndTime: at(d, 12, 0)},
	}
	require.Empty(t, Conflicts(entries))
}

func TestConflicts_InactiveEntriesExcluded(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	entries := []domain.ScheduleEntry{
		{ID: 1, IsActive: true, StartTime: at(d, 10, 0), EndTime: at(d, 11, 0)},
		{ID: 2, IsActive: false, StartTime: at(d, 10, 30), EndTime: at(d, 11, 30)},
	}
	require.Empty(t, Conflicts(entries))
}

func TestAvailableSlots_SpecExample(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	entries := []domain.ScheduleEntry{
		{ID: 1, IsActive: true, StartTime: at(d, 9, 0), EndTime: at(d, 10, 0)},
		{ID: 2, IsActive: true, StartTime: at(d, 11, 0), EndTime: at(d, 12, 0)},
	}

	slots := AvailableSlots(entries, at(d, 9, 0), at(d, 13, 0), 60*time.Minute)
	require.Len(t, slots, 2)

	require.Equal(t, at(d, 10, 0), slots[0].StartTime)
	require.Equal(t, at(d, 11, 0), slots[0].EndTime)
	require.Equal(t, time.Hour, slots[0].Duration)

	require.Equal(t, at(d, 12, 0), slots[1].StartTime)
	require.Equal(t, at(d, 13, 0), slots[1].EndTime)
	require.Equal(t, time.Hour, slots[1].Duration)
}

func TestAvailableSlots_GapBelowMinimumDropped(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	entries := []domain.ScheduleEntry{
		{ID: 1, IsActive: true, StartTime: at(d, 9, 0), EndTime: at(d, 10, 0)},
		{ID: 2, IsActive: true, StartTime: at(d, 10, 30), EndTime: at(d, 12, 30)},
	}

	slots := AvailableSlots(entries, at(d, 9, 0), at(d, 13, 0), 60*time.Minute)
	require.Empty(t, slots)
}

func TestAvailableSlots_LeadingGap(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	entries := []domain.ScheduleEntry{
		{ID: 1, IsActive: true, StartTime: at(d, 11, 0), EndTime: at(d, 12, 0)},
	}

	slots := AvailableSlots(entries, at(d, 9, 0), at(d, 12, 0), 60*time.Minute)
	require.Len(t, slots, 1)
	require.Equal(t, at(d, 9, 0), slots[0].StartTime)
	require.Equal(t, at(d, 11, 0), slots[0].EndTime)
}

func TestAvailableSlots_NoEntriesWholeWindow(t *testing.T) {
	d := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	slots := AvailableSlots(nil, at(d, 9, 0), at(d, 13, 0), 60*time.Minute)
	require.Len(t, slots, 1)
	require.Equal(t, 4*time.Hour, slots[0].Duration)
}
