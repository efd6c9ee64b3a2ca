package domain

import "errors"

var (
	ErrTaskNotFound            = errors.New("task not found")
	ErrScheduleNotFound        = errors.New("schedule entry not found")
	ErrUserNotFound            = errors.New("user not found")
	ErrEmailTaken              = errors.New("email already registered")
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrInvalidStatusTransition = errors.New("invalid task status transition")
	ErrTaskDependencyCycle     = errors.New("task dependency cycle")
	ErrGoogleNotLinked         = errors.New("google account not linked")
	ErrReasoningUnavailable    = errors.New("reasoning service unavailable")
	ErrFormTemplateNotFound    = errors.New("form template not found")
)
