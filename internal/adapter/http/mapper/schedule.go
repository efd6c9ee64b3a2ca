package mapper

import (
	"time"

	"campustasks/internal/adapter/http/dto"
	"campustasks/internal/core/domain"
)

func ToScheduleItems(entries []domain.ScheduleEntry) []dto.ScheduleItem {
	items := make([]dto.ScheduleItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, ToScheduleItem(entry))
	}
	return items
}

func ToScheduleItem(entry domain.ScheduleEntry) dto.ScheduleItem {
	item := dto.ScheduleItem{
		ID:               entry.ID,
		Type:             string(entry.Type),
		Title:            entry.Title,
		StartTime:        entry.StartTime.Format(time.RFC3339),
		EndTime:          entry.EndTime.Format(time.RFC3339),
		IsRecurring:      entry.IsRecurring,
		RecurringPattern: string(entry.RecurringPattern),
		Color:            entry.Color,
		IsActive:         entry.IsActive,
		Metadata: dto.ScheduleMetadataItem{
			Room:          entry.Metadata.Room,
			Building:      entry.Metadata.Building,
			Capacity:      entry.Metadata.Capacity,
			Equipment:     entry.Metadata.Equipment,
			GoogleEventID: entry.Metadata.GoogleEventID,
			HTMLLink:      entry.Metadata.HTMLLink,
		},
		CreatedAt: entry.CreatedAt.Format(time.RFC3339),
		UpdatedAt: entry.UpdatedAt.Format(time.RFC3339),
	}

	if entry.Description != nil {
		value := *entry.Description
		item.Description = &value
	}
	if entry.Subject != nil {
		value := *entry.Subject
		item.Subject = &value
	}
	if entry.Instructor != nil {
		value := *entry.Instructor
		item.Instructor = &value
	}
	if entry.Location != nil {
		value := *entry.Location
		item.Location = &value
	}
	if entry.DayOfWeek != nil {
		value := *entry.DayOfWeek
		item.DayOfWeek = &value
	}
	if entry.RecurringEndDate != nil {
		value := entry.RecurringEndDate.Format(time.RFC3339)
		item.RecurringEndDate = &value
	}

	return item
}

func ToConflictItems(conflicts []domain.Conflict) []dto.ConflictItem {
	items := make([]dto.ConflictItem, 0, len(conflicts))
	for _, conflict := range conflicts {
		items = append(items, dto.ConflictItem{
			First:          ToScheduleItem(conflict.First),
			Second:         ToScheduleItem(conflict.Second),
			OverlapMinutes: int(conflict.OverlapDuration / time.Minute),
		})
	}
	return items
}

func ToSlotItems(slots []domain.Slot) []dto.SlotItem {
	items := make([]dto.SlotItem, 0, len(slots))
	for _, slot := range slots {
		items = append(items, dto.SlotItem{
			StartTime:       slot.StartTime.Format(time.RFC3339),
			EndTime:         slot.EndTime.Format(time.RFC3339),
			DurationMinutes: int(slot.Duration / time.Minute),
		})
	}
	return items
}

func ToPlanResponse(plan domain.Plan, tasks []domain.Task, entries []domain.ScheduleEntry) dto.PlanResponse {
	assignments := make([]dto.PlannedTaskItem, 0, len(plan.Assignments))
	for _, assignment := range plan.Assignments {
		assignments = append(assignments, dto.PlannedTaskItem{
			TaskID:    assignment.TaskID,
			StartTime: assignment.StartTime.Format(time.RFC3339),
			EndTime:   assignment.EndTime.Format(time.RFC3339),
			Reasoning: assignment.Reasoning,
		})
	}

	unplaced := plan.Unplaced
	if unplaced == nil {
		unplaced = []uint64{}
	}

	return dto.PlanResponse{
		Assignments: assignments,
		Unplaced:    unplaced,
		Tasks:       ToTaskItems(tasks),
		Schedule:    ToScheduleItems(entries),
	}
}
