package validation

import (
	"errors"
	"strings"
	"time"

	"campustasks/internal/adapter/http/dto"
	"campustasks/internal/core/domain"
)

var ErrInvalidSchedulePayload = errors.New("invalid schedule payload")

func BuildCreateScheduleInput(req dto.CreateScheduleRequest) (domain.CreateScheduleInput, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateScheduleInput{}, ErrInvalidSchedulePayload
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return domain.CreateScheduleInput{}, ErrInvalidSchedulePayload
	}
	endTime, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return domain.CreateScheduleInput{}, ErrInvalidSchedulePayload
	}
	if !endTime.After(startTime) {
		return domain.CreateScheduleInput{}, ErrInvalidSchedulePayload
	}

	input := domain.CreateScheduleInput{
		Type:        domain.ScheduleType(req.Type),
		Title:       title,
		Description: req.Description,
		Subject:     req.Subject,
		Instructor:  req.Instructor,
		Location:    req.Location,
		StartTime:   startTime,
		EndTime:     endTime,
		DayOfWeek:   req.DayOfWeek,
		IsRecurring: req.IsRecurring,
	}
	if req.RecurringPattern != nil {
		input.RecurringPattern = domain.RecurringPattern(*req.RecurringPattern)
	}
	if req.RecurringEndDate != nil {
		recurringEnd, err := time.Parse(time.RFC3339, *req.RecurringEndDate)
		if err != nil {
			return domain.CreateScheduleInput{}, ErrInvalidSchedulePayload
		}
		input.RecurringEndDate = &recurringEnd
	}
	if req.Color != nil {
		input.Color = *req.Color
	}
	if req.Metadata != nil {
		input.Metadata = domain.ScheduleMetadata{
			Room:      req.Metadata.Room,
			Building:  req.Metadata.Building,
			Capacity:  req.Metadata.Capacity,
			Equipment: req.Metadata.Equipment,
		}
	}
	return input, nil
}

func BuildUpdateScheduleInput(req dto.UpdateScheduleRequest) (domain.UpdateScheduleInput, error) {
	input := domain.UpdateScheduleInput{
		Description: req.Description,
		Subject:     req.Subject,
		Instructor:  req.Instructor,
		Location:    req.Location,
		Color:       req.Color,
		IsActive:    req.IsActive,
	}

	if req.Title != nil {
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
		}
		input.Title = &value
	}
	if req.Type != nil {
		value := domain.ScheduleType(*req.Type)
		input.Type = &value
	}
	if req.StartTime != nil {
		startTime, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
		}
		input.StartTime = &startTime
	}
	if req.EndTime != nil {
		endTime, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
		}
		input.EndTime = &endTime
	}
	if input.StartTime != nil && input.EndTime != nil && !input.EndTime.After(*input.StartTime) {
		return domain.UpdateScheduleInput{}, ErrInvalidSchedulePayload
	}

	return input, nil
}
