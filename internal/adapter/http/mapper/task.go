package mapper

import (
	"time"

	"campustasks/internal/adapter/http/dto"
	"campustasks/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:                task.ID,
		Title:             task.Title,
		Category:          string(task.Category),
		Priority:          string(task.Priority),
		Difficulty:        string(task.Difficulty),
		EstimatedDuration: task.EstimatedDuration,
		Deadline:          task.Deadline.Format(time.RFC3339),
		Status:            string(task.Status),
		Progress:          task.Progress,
		Tags:              task.Tags,
		Dependencies:      task.Dependencies,
		AIGenerated:       task.AIGenerated,
		UrgencyScore:      task.UrgencyScore,
		CreatedAt:         task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:         task.UpdatedAt.Format(time.RFC3339),
	}

	if item.Tags == nil {
		item.Tags = []string{}
	}
	if item.Dependencies == nil {
		item.Dependencies = []uint64{}
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}
	if task.ActualDuration != nil {
		value := *task.ActualDuration
		item.ActualDuration = &value
	}
	if task.StartTime != nil {
		value := task.StartTime.Format(time.RFC3339)
		item.StartTime = &value
	}
	if task.EndTime != nil {
		value := task.EndTime.Format(time.RFC3339)
		item.EndTime = &value
	}
	if task.Location != nil {
		value := *task.Location
		item.Location = &value
	}
	if task.Subject != nil {
		value := *task.Subject
		item.Subject = &value
	}
	if task.Instructor != nil {
		value := *task.Instructor
		item.Instructor = &value
	}

	for _, note := range task.Notes {
		item.Notes = append(item.Notes, dto.TaskNoteItem{
			Content:   note.Content,
			CreatedAt: note.CreatedAt.Format(time.RFC3339),
		})
	}
	for _, attachment := range task.Attachments {
		item.Attachments = append(item.Attachments, dto.TaskAttachmentItem{
			Name: attachment.Name,
			URL:  attachment.URL,
			Type: attachment.Type,
		})
	}

	return item
}

func ToParsedTaskItem(parsed domain.ParsedTask) dto.ParsedTaskItem {
	item := dto.ParsedTaskItem{
		Title:             parsed.Title,
		Description:       parsed.Description,
		Category:          string(parsed.Category),
		Priority:          string(parsed.Priority),
		Difficulty:        string(parsed.Difficulty),
		EstimatedDuration: parsed.EstimatedDuration,
		Tags:              parsed.Tags,
	}
	if item.Tags == nil {
		item.Tags = []string{}
	}
	if parsed.Deadline != nil {
		value := parsed.Deadline.Format(time.RFC3339)
		item.Deadline = &value
	}
	if parsed.Subject != nil {
		value := *parsed.Subject
		item.Subject = &value
	}
	if parsed.Location != nil {
		value := *parsed.Location
		item.Location = &value
	}
	return item
}

func ToTaskAnalyticsResponse(analytics domain.TaskAnalytics) dto.TaskAnalyticsResponse {
	categories := make(map[string]int, len(analytics.Categories))
	for category, count := range analytics.Categories {
		categories[string(category)] = count
	}
	priorities := make(map[string]int, len(analytics.Priorities))
	for priority, count := range analytics.Priorities {
		priorities[string(priority)] = count
	}
	return dto.TaskAnalyticsResponse{
		Total:                 analytics.Total,
		Completed:             analytics.Completed,
		InProgress:            analytics.InProgress,
		Pending:               analytics.Pending,
		Overdue:               analytics.Overdue,
		Categories:            categories,
		Priorities:            priorities,
		AverageCompletionMins: analytics.AverageCompletionMins,
	}
}
