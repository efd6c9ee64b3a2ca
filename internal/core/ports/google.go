package ports

import (
	"context"
	"time"

	"campustasks/internal/core/domain"
)

type GoogleService interface {
	AuthURL() string
	ExchangeCode(ctx context.Context, userID uint64, code string) (domain.GoogleTokens, error)
	FormTemplates() []domain.FormTemplate
	AutoFillForm(ctx context.Context, user domain.User, formID string, responses map[string]string) error
	AutoFillFormWithTemplate(ctx context.Context, user domain.User, formID, templateID string, custom map[string]string) error
	SheetValues(ctx context.Context, user domain.User, spreadsheetID, readRange string) ([][]interface{}, error)
	UpdateSheetValues(ctx context.Context, user domain.User, spreadsheetID, writeRange string, values [][]interface{}) error
	CreateCalendarEvent(ctx context.Context, user domain.User, input domain.CreateScheduleInput) (string, error)
	ListCalendarEvents(ctx context.Context, user domain.User, from, to time.Time) ([]domain.CreateScheduleInput, error)
	SyncCalendar(ctx context.Context, user domain.User) (int, error)
}
