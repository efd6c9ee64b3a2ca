package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"campustasks/internal/adapter/http/dto"
	"campustasks/internal/core/domain"
)

var ErrInvalidTaskPayload = errors.New("invalid task payload")

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	deadline, err := time.Parse(time.RFC3339, req.Deadline)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	input := domain.CreateTaskInput{
		Title:             title,
		Description:       req.Description,
		Category:          domain.TaskCategory(req.Category),
		EstimatedDuration: req.EstimatedDuration,
		Deadline:          deadline,
		Tags:              req.Tags,
		Dependencies:      req.Dependencies,
		Location:          req.Location,
		Subject:           req.Subject,
		Instructor:        req.Instructor,
	}
	if req.Priority != nil {
		input.Priority = domain.TaskPriority(*req.Priority)
	}
	if req.Difficulty != nil {
		input.Difficulty = domain.TaskDifficulty(*req.Difficulty)
	}
	return input, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") && req.Title == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	var category *domain.TaskCategory
	if hasJSONField(raw, "category") && req.Category == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Category != nil {
		value := domain.TaskCategory(*req.Category)
		category = &value
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") && req.Priority == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Priority != nil {
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	var difficulty *domain.TaskDifficulty
	if hasJSONField(raw, "difficulty") && req.Difficulty == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Difficulty != nil {
		value := domain.TaskDifficulty(*req.Difficulty)
		difficulty = &value
	}

	var status *domain.TaskStatus
	if hasJSONField(raw, "status") && req.Status == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if req.Status != nil {
		value := domain.TaskStatus(*req.Status)
		status = &value
	}

	if hasJSONField(raw, "estimated_duration") && req.EstimatedDuration == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}
	if hasJSONField(raw, "progress") && req.Progress == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var deadline *time.Time
	if hasJSONField(raw, "deadline") {
		if isJSONNull(raw["deadline"]) || req.Deadline == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsed, err := time.Parse(time.RFC3339, *req.Deadline)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		deadline = &parsed
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	locationSet := hasJSONField(raw, "location")
	if locationSet && !isJSONNull(raw["location"]) && req.Location == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	subjectSet := hasJSONField(raw, "subject")
	if subjectSet && !isJSONNull(raw["subject"]) && req.Subject == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	instructorSet := hasJSONField(raw, "instructor")
	if instructorSet && !isJSONNull(raw["instructor"]) && req.Instructor == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	tagsSet := hasJSONField(raw, "tags")
	if tagsSet && !isJSONNull(raw["tags"]) && req.Tags == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	dependenciesSet := hasJSONField(raw, "dependencies")
	if dependenciesSet && !isJSONNull(raw["dependencies"]) && req.Dependencies == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:             title,
		Description:       req.Description,
		DescriptionSet:    descriptionSet,
		Category:          category,
		Priority:          priority,
		Difficulty:        difficulty,
		EstimatedDuration: req.EstimatedDuration,
		ActualDuration:    req.ActualDuration,
		Deadline:          deadline,
		Status:            status,
		Progress:          req.Progress,
		Tags:              req.Tags,
		TagsSet:           tagsSet,
		Dependencies:      req.Dependencies,
		DependenciesSet:   dependenciesSet,
		Location:          req.Location,
		LocationSet:       locationSet,
		Subject:           req.Subject,
		SubjectSet:        subjectSet,
		Instructor:        req.Instructor,
		InstructorSet:     instructorSet,
	}, nil
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	fields := []string{
		"title", "description", "category", "priority", "difficulty",
		"estimated_duration", "actual_duration", "deadline", "status",
		"progress", "tags", "dependencies", "location", "subject", "instructor",
	}
	for _, field := range fields {
		if hasJSONField(raw, field) {
			return true
		}
	}
	return false
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
