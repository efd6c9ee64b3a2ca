package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"campustasks/internal/adapter/http/dto"
	"campustasks/internal/adapter/http/handlers"
	"campustasks/internal/adapter/http/middleware"
	"campustasks/internal/core/domain"
	"campustasks/pkg/apierrors"
	"campustasks/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type scheduleServiceMock struct {
	mock.Mock
}

func (m *scheduleServiceMock) Create(ctx context.Context, userID uint64, input domain.CreateScheduleInput) (domain.ScheduleEntry, error) {
	args := m.Called(ctx, userID, input)

	var entry domain.ScheduleEntry
	if value := args.Get(0); value != nil {
		entry = value.(domain.ScheduleEntry)
	}
	return entry, args.Error(1)
}

func (m *scheduleServiceMock) Update(ctx context.Context, userID, entryID uint64, input domain.UpdateScheduleInput) (domain.ScheduleEntry, error) {
	args := m.Called(ctx, userID, entryID, input)

	var entry domain.ScheduleEntry
	if value := args.Get(0); value != nil {
		entry = value.(domain.ScheduleEntry)
	}
	return entry, args.Error(1)
}

func (m *scheduleServiceMock) Delete(ctx context.Context, userID, entryID uint64) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

func (m *scheduleServiceMock) List(ctx context.Context, userID uint64, filter domain.ScheduleFilter) ([]domain.ScheduleEntry, error) {
	args := m.Called(ctx, userID, filter)

	var entries []domain.ScheduleEntry
	if value := args.Get(0); value != nil {
		entries = value.([]domain.ScheduleEntry)
	}
	return entries, args.Error(1)
}

func (m *scheduleServiceMock) ImportTimetable(ctx context.Context, userID uint64, inputs []domain.CreateScheduleInput) (int, error) {
	args := m.Called(ctx, userID, inputs)
	return args.Int(0), args.Error(1)
}

func (m *scheduleServiceMock) Conflicts(ctx context.Context, userID uint64, from, to time.Time) ([]domain.Conflict, error) {
	args := m.Called(ctx, userID, from, to)

	var conflicts []domain.Conflict
	if value := args.Get(0); value != nil {
		conflicts = value.([]domain.Conflict)
	}
	return conflicts, args.Error(1)
}

func (m *scheduleServiceMock) AvailableSlots(ctx context.Context, userID uint64, from, to time.Time, minDuration time.Duration) ([]domain.Slot, error) {
	args := m.Called(ctx, userID, from, to, minDuration)

	var slots []domain.Slot
	if value := args.Get(0); value != nil {
		slots = value.([]domain.Slot)
	}
	return slots, args.Error(1)
}

func (m *scheduleServiceMock) OptimizedDaily(ctx context.Context, user domain.User, day time.Time) (domain.Plan, []domain.Task, []domain.ScheduleEntry, error) {
	args := m.Called(ctx, user, day)

	var plan domain.Plan
	if value := args.Get(0); value != nil {
		plan = value.(domain.Plan)
	}
	var tasks []domain.Task
	if value := args.Get(1); value != nil {
		tasks = value.([]domain.Task)
	}
	var entries []domain.ScheduleEntry
	if value := args.Get(2); value != nil {
		entries = value.([]domain.ScheduleEntry)
	}
	return plan, tasks, entries, args.Error(3)
}

func TestScheduleHandler_ListEntries_Success(t *testing.T) {
	room := "B204"
	start := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 7, 10, 30, 0, 0, time.UTC)

	serviceMock := new(scheduleServiceMock)
	serviceMock.On("List", mock.Anything, uint64(1), mock.Anything).Return(
		[]domain.ScheduleEntry{
			{
				ID:        2,
				UserID:    1,
				Type:      domain.ScheduleTypeTimetable,
				Title:     "Operating Systems",
				StartTime: start,
				EndTime:   end,
				Color:     domain.DefaultScheduleColor,
				IsActive:  true,
				Metadata:  domain.ScheduleMetadata{Room: room},
			},
		},
		nil,
	).Once()
	handler := handlers.NewScheduleHandler(serviceMock)

	router := gin.New()
	router.GET("/api/schedule", middleware.LanguageMiddleware(), withUser(testUser()), handler.ListEntries)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule?type=timetable", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.ScheduleItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, uint64(2), got[0].ID)
	require.Equal(t, "timetable", got[0].Type)
	require.Equal(t, "Operating Systems", got[0].Title)
	require.Equal(t, "2026-09-07T09:00:00Z", got[0].StartTime)
	require.Equal(t, "2026-09-07T10:30:00Z", got[0].EndTime)
	require.Equal(t, "#3B82F6", got[0].Color)
	require.Equal(t, "B204", got[0].Metadata.Room)
	serviceMock.AssertExpectations(t)
}

func TestScheduleHandler_ListEntries_InvalidType(t *testing.T) {
	serviceMock := new(scheduleServiceMock)
	handler := handlers.NewScheduleHandler(serviceMock)

	router := gin.New()
	router.GET("/api/schedule", middleware.LanguageMiddleware(), withUser(testUser()), handler.ListEntries)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule?type=party", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid schedule payload.", got.ErrDetails.Message)
}

func TestScheduleHandler_CreateEntry_EndBeforeStart(t *testing.T) {
	serviceMock := new(scheduleServiceMock)
	handler := handlers.NewScheduleHandler(serviceMock)

	router := gin.New()
	router.POST("/api/schedule", middleware.LanguageMiddleware(), withUser(testUser()), handler.CreateEntry)

	body := `{
		"type": "lab",
		"title": "Physics lab",
		"start_time": "2026-09-07T14:00:00Z",
		"end_time": "2026-09-07T13:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/schedule", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid schedule payload.", got.ErrDetails.Message)
}

func TestScheduleHandler_ImportTimetable_Success(t *testing.T) {
	serviceMock := new(scheduleServiceMock)
	serviceMock.On("ImportTimetable", mock.Anything, uint64(1), mock.MatchedBy(func(inputs []domain.CreateScheduleInput) bool {
		return len(inputs) == 2 && inputs[0].Title == "Algorithms" && inputs[1].Type == domain.ScheduleTypeLab
	})).Return(2, nil).Once()
	handler := handlers.NewScheduleHandler(serviceMock)

	router := gin.New()
	router.POST("/api/schedule/import-timetable", middleware.LanguageMiddleware(), withUser(testUser()), handler.ImportTimetable)

	body := `{
		"entries": [
			{
				"type": "timetable",
				"title": "Algorithms",
				"start_time": "2026-09-07T09:00:00Z",
				"end_time": "2026-09-07T10:00:00Z"
			},
			{
				"type": "lab",
				"title": "Networks lab",
				"start_time": "2026-09-07T11:00:00Z",
				"end_time": "2026-09-07T13:00:00Z"
			}
		]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/schedule/import-timetable", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.ImportTimetableResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 2, got.Imported)
	serviceMock.AssertExpectations(t)
}

func TestScheduleHandler_Conflicts_Success(t *testing.T) {
	first := domain.ScheduleEntry{
		ID:        1,
		Title:     "Lecture",
		Type:      domain.ScheduleTypeTimetable,
		StartTime: time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 7, 11, 0, 0, 0, time.UTC),
	}
	second := domain.ScheduleEntry{
		ID:        2,
		Title:     "Lab",
		Type:      domain.ScheduleTypeLab,
		StartTime: time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC),
	}

	serviceMock := new(scheduleServiceMock)
	serviceMock.On("Conflicts", mock.Anything, uint64(1), mock.Anything, mock.Anything).Return(
		[]domain.Conflict{{First: first, Second: second, OverlapDuration: time.Hour}},
		nil,
	).Once()
	handler := handlers.NewScheduleHandler(serviceMock)

	router := gin.New()
	router.GET("/api/schedule/conflicts", middleware.LanguageMiddleware(), withUser(testUser()), handler.Conflicts)

	url := "/api/schedule/conflicts?start_date=2026-09-07T00:00:00Z&end_date=2026-09-08T00:00:00Z"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.ConflictItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, uint64(1), got[0].First.ID)
	require.Equal(t, uint64(2), got[0].Second.ID)
	require.Equal(t, 60, got[0].OverlapMinutes)
	serviceMock.AssertExpectations(t)
}

func TestScheduleHandler_Conflicts_MissingRange(t *testing.T) {
	serviceMock := new(scheduleServiceMock)
	handler := handlers.NewScheduleHandler(serviceMock)

	router := gin.New()
	router.GET("/api/schedule/conflicts", middleware.LanguageMiddleware(), withUser(testUser()), handler.Conflicts)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/conflicts", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScheduleHandler_AvailableSlots_Success(t *testing.T) {
	serviceMock := new(scheduleServiceMock)
	serviceMock.On("AvailableSlots", mock.Anything, uint64(1), mock.Anything, mock.Anything, 90*time.Minute).Return(
		[]domain.Slot{
			{
				StartTime: time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC),
				EndTime:   time.Date(2026, 9, 7, 14, 0, 0, 0, time.UTC),
				Duration:  2 * time.Hour,
			},
		},
		nil,
	).Once()
	handler := handlers.NewScheduleHandler(serviceMock)

	router := gin.New()
	router.GET("/api/schedule/available-slots", middleware.LanguageMiddleware(), withUser(testUser()), handler.AvailableSlots)

	url := "/api/schedule/available-slots?start_date=2026-09-07T00:00:00Z&end_date=2026-09-08T00:00:00Z&duration=90"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.SlotItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "2026-09-07T12:00:00Z", got[0].StartTime)
	require.Equal(t, 120, got[0].DurationMinutes)
	serviceMock.AssertExpectations(t)
}

func TestScheduleHandler_DeleteEntry_NotFound(t *testing.T) {
	serviceMock := new(scheduleServiceMock)
	serviceMock.On("Delete", mock.Anything, uint64(1), uint64(42)).Return(domain.ErrScheduleNotFound).Once()
	handler := handlers.NewScheduleHandler(serviceMock)

	router := gin.New()
	router.DELETE("/api/schedule/:id", middleware.LanguageMiddleware(), withUser(testUser()), handler.DeleteEntry)

	req := httptest.NewRequest(http.MethodDelete, "/api/schedule/42", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Schedule entry not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestScheduleHandler_OptimizedDaily_Error(t *testing.T) {
	serviceMock := new(scheduleServiceMock)
	serviceMock.On("OptimizedDaily", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil, nil, errors.New("planner broke")).Once()
	handler := handlers.NewScheduleHandler(serviceMock)

	router := gin.New()
	router.GET("/api/schedule/optimized/daily", middleware.LanguageMiddleware(), withUser(testUser()), handler.OptimizedDaily)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule/optimized/daily?date=2026-09-07", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Could not optimize the schedule.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
