package mapper

import (
	"campustasks/internal/adapter/http/dto"
	"campustasks/internal/core/domain"
)

func ToRecommendationItems(recommendations []domain.Recommendation) []dto.RecommendationItem {
	items := make([]dto.RecommendationItem, 0, len(recommendations))
	for _, rec := range recommendations {
		items = append(items, dto.RecommendationItem{
			Type:           rec.Type,
			Title:          rec.Title,
			Description:    rec.Description,
			Priority:       rec.Priority,
			SuggestedTasks: rec.SuggestedTasks,
		})
	}
	return items
}

func ToSubtaskItems(subtasks []domain.SubtaskSuggestion) []dto.SubtaskItem {
	items := make([]dto.SubtaskItem, 0, len(subtasks))
	for _, subtask := range subtasks {
		items = append(items, dto.SubtaskItem{
			Title:             subtask.Title,
			Description:       subtask.Description,
			EstimatedDuration: subtask.EstimatedDuration,
			Priority:          subtask.Priority,
			Dependencies:      subtask.Dependencies,
		})
	}
	return items
}

func ToAnnouncementAnalysisResponse(analysis domain.AnnouncementAnalysis) dto.AnnouncementAnalysisResponse {
	deadlines := make([]dto.AnnouncementDeadlineItem, 0, len(analysis.Deadlines))
	for _, deadline := range analysis.Deadlines {
		deadlines = append(deadlines, dto.AnnouncementDeadlineItem{
			Date:        deadline.Date,
			Description: deadline.Description,
		})
	}

	actions := make([]dto.AnnouncementActionItem, 0, len(analysis.Actions))
	for _, action := range analysis.Actions {
		actions = append(actions, dto.AnnouncementActionItem{
			Action:   action.Action,
			Priority: action.Priority,
		})
	}

	changes := make([]dto.AnnouncementScheduleChangeItem, 0, len(analysis.ScheduleChanges))
	for _, change := range analysis.ScheduleChanges {
		changes = append(changes, dto.AnnouncementScheduleChangeItem{
			Change: change.Change,
			Date:   change.Date,
		})
	}

	newTasks := make([]dto.AnnouncementTaskItem, 0, len(analysis.NewTasks))
	for _, task := range analysis.NewTasks {
		newTasks = append(newTasks, dto.AnnouncementTaskItem{
			Title:    task.Title,
			Deadline: task.Deadline,
			Category: task.Category,
		})
	}

	reminders := analysis.Reminders
	if reminders == nil {
		reminders = []string{}
	}

	return dto.AnnouncementAnalysisResponse{
		Deadlines:       deadlines,
		Actions:         actions,
		ScheduleChanges: changes,
		NewTasks:        newTasks,
		Reminders:       reminders,
	}
}

func ToStudyStrategyResponse(strategy domain.StudyStrategy) dto.StudyStrategyResponse {
	timeline := make([]dto.StudyPhaseItem, 0, len(strategy.Timeline))
	for _, phase := range strategy.Timeline {
		timeline = append(timeline, dto.StudyPhaseItem{
			Phase:    phase.Phase,
			Duration: phase.Duration,
			Focus:    phase.Focus,
			Tasks:    phase.Tasks,
		})
	}
	return dto.StudyStrategyResponse{
		Strategy:  strategy.Strategy,
		Timeline:  timeline,
		Tips:      strategy.Tips,
		Resources: strategy.Resources,
	}
}

func ToFormTemplateItems(templates []domain.FormTemplate) []dto.FormTemplateItem {
	items := make([]dto.FormTemplateItem, 0, len(templates))
	for _, template := range templates {
		items = append(items, dto.FormTemplateItem{
			ID:          template.ID,
			Name:        template.Name,
			Description: template.Description,
			Fields:      template.Fields,
		})
	}
	return items
}
