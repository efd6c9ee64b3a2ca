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

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) Create(ctx context.Context, userID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, input)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) CreateFromText(ctx context.Context, user domain.User, text string) (domain.Task, domain.ParsedTask, error) {
	args := m.Called(ctx, user, text)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	var parsed domain.ParsedTask
	if value := args.Get(1); value != nil {
		parsed = value.(domain.ParsedTask)
	}
	return task, parsed, args.Error(2)
}

func (m *taskServiceMock) Get(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, userID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, input)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) Delete(ctx context.Context, userID, taskID uint64) error {
	args := m.Called(ctx, userID, taskID)
	return args.Error(0)
}

func (m *taskServiceMock) List(ctx context.Context, userID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, userID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) Start(ctx context.Context, userID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) Complete(ctx context.Context, userID, taskID uint64, actualDuration *int) (domain.Task, error) {
	args := m.Called(ctx, userID, taskID, actualDuration)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) Analytics(ctx context.Context, userID uint64, since time.Time) (domain.TaskAnalytics, error) {
	args := m.Called(ctx, userID, since)

	var analytics domain.TaskAnalytics
	if value := args.Get(0); value != nil {
		analytics = value.(domain.TaskAnalytics)
	}
	return analytics, args.Error(1)
}

func (m *taskServiceMock) UpcomingDeadlines(ctx context.Context, userID uint64, within time.Duration) ([]domain.Task, error) {
	args := m.Called(ctx, userID, within)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	subject := "Databases"
	deadline := time.Date(2026, 9, 15, 23, 59, 0, 0, time.UTC)
	createdAt := time.Date(2026, 9, 1, 10, 20, 30, 0, time.UTC)
	updatedAt := time.Date(2026, 9, 2, 11, 20, 30, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, uint64(1), mock.Anything).Return(
		[]domain.Task{
			{
				ID:                3,
				UserID:            1,
				Title:             "Finish ER diagram",
				Category:          domain.CategoryAssignment,
				Priority:          domain.PriorityHigh,
				Difficulty:        domain.DifficultyMedium,
				EstimatedDuration: 90,
				Deadline:          deadline,
				Status:            domain.TaskStatusPending,
				Progress:          0,
				Tags:              []string{"dbms"},
				Subject:           &subject,
				UrgencyScore:      72,
				CreatedAt:         createdAt,
				UpdatedAt:         updatedAt,
			},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks", middleware.LanguageMiddleware(), withUser(testUser()), handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?status=pending&sort_by=priority", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, uint64(3), got[0].ID)
	require.Equal(t, "Finish ER diagram", got[0].Title)
	require.Equal(t, "assignment", got[0].Category)
	require.Equal(t, "high", got[0].Priority)
	require.Equal(t, "pending", got[0].Status)
	require.Equal(t, "2026-09-15T23:59:00Z", got[0].Deadline)
	require.Equal(t, []string{"dbms"}, got[0].Tags)
	require.Equal(t, "Databases", *got[0].Subject)
	require.Equal(t, 72, got[0].UrgencyScore)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_InvalidStatus(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks", middleware.LanguageMiddleware(), withUser(testUser()), handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks?status=archived", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusBadRequest, got.ErrDetails.Code)
	require.Equal(t, "Invalid task payload.", got.ErrDetails.Message)
}

func TestTaskHandler_ListTasks_Error(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, uint64(1), mock.Anything).Return(nil, errors.New("db is down")).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks", middleware.LanguageMiddleware(), withUser(testUser()), handler.ListTasks)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Could not retrieve tasks.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Get", mock.Anything, uint64(1), uint64(999)).Return(nil, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks/:id", middleware.LanguageMiddleware(), withUser(testUser()), handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/999", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusNotFound, got.ErrDetails.Code)
	require.Equal(t, "Task not found.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetTask_InvalidID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks/:id", middleware.LanguageMiddleware(), withUser(testUser()), handler.GetTask)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/invalid", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task identifier.", got.ErrDetails.Message)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	deadline := time.Date(2026, 10, 1, 18, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, uint64(1), mock.MatchedBy(func(input domain.CreateTaskInput) bool {
		return input.Title == "Revise chapter 4" &&
			input.Category == domain.CategoryExam &&
			input.Priority == domain.PriorityUrgent &&
			input.EstimatedDuration == 120 &&
			input.Deadline.Equal(deadline)
	})).Return(
		domain.Task{
			ID:                10,
			UserID:            1,
			Title:             "Revise chapter 4",
			Category:          domain.CategoryExam,
			Priority:          domain.PriorityUrgent,
			Difficulty:        domain.DifficultyMedium,
			EstimatedDuration: 120,
			Deadline:          deadline,
			Status:            domain.TaskStatusPending,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks", middleware.LanguageMiddleware(), withUser(testUser()), handler.CreateTask)

	body := `{
		"title": "Revise chapter 4",
		"category": "exam",
		"priority": "urgent",
		"estimated_duration": 120,
		"deadline": "2026-10-01T18:00:00Z"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(10), got.ID)
	require.Equal(t, "Revise chapter 4", got.Title)
	require.Equal(t, "pending", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_MissingDeadline(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks", middleware.LanguageMiddleware(), withUser(testUser()), handler.CreateTask)

	body := `{"title": "No deadline", "category": "other", "estimated_duration": 30}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload.", got.ErrDetails.Message)
}

func TestTaskHandler_UpdateTask_NullDeadlineRejected(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/tasks/:id", middleware.LanguageMiddleware(), withUser(testUser()), handler.UpdateTask)

	req := httptest.NewRequest(http.MethodPut, "/api/tasks/3", strings.NewReader(`{"deadline": null}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload.", got.ErrDetails.Message)
}

func TestTaskHandler_UpdateTask_ClearsDescription(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Update", mock.Anything, uint64(1), uint64(3), mock.MatchedBy(func(input domain.UpdateTaskInput) bool {
		return input.DescriptionSet && input.Description == nil && input.Title == nil
	})).Return(domain.Task{ID: 3, Title: "Kept title", Status: domain.TaskStatusPending}, nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/tasks/:id", middleware.LanguageMiddleware(), withUser(testUser()), handler.UpdateTask)

	req := httptest.NewRequest(http.MethodPut, "/api/tasks/3", strings.NewReader(`{"description": null}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CompleteTask_InvalidTransition(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Complete", mock.Anything, uint64(1), uint64(4), (*int)(nil)).
		Return(nil, domain.ErrInvalidStatusTransition).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks/:id/complete", middleware.LanguageMiddleware(), withUser(testUser()), handler.CompleteTask)

	req := httptest.NewRequest(http.MethodPost, "/api/tasks/4/complete", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "This status change is not allowed.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_DependencyCycle(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, uint64(1), mock.Anything).
		Return(nil, domain.ErrTaskDependencyCycle).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/api/tasks", middleware.LanguageMiddleware(), withUser(testUser()), handler.CreateTask)

	body := `{
		"title": "Cyclic",
		"category": "project",
		"estimated_duration": 60,
		"deadline": "2026-10-01T18:00:00Z",
		"dependencies": [7]
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/tasks", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task dependencies must not form a cycle.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, uint64(1), uint64(5)).Return(nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.DELETE("/api/tasks/:id", middleware.LanguageMiddleware(), withUser(testUser()), handler.DeleteTask)

	req := httptest.NewRequest(http.MethodDelete, "/api/tasks/5", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_AnalyticsOverview_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Analytics", mock.Anything, uint64(1), mock.Anything).Return(
		domain.TaskAnalytics{
			Total:      4,
			Completed:  2,
			InProgress: 1,
			Pending:    1,
			Overdue:    1,
			Categories: map[domain.TaskCategory]int{
				domain.CategoryExam: 4,
			},
			Priorities: map[domain.TaskPriority]int{
				domain.PriorityHigh: 4,
			},
			AverageCompletionMins: 55.5,
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks/analytics/overview", middleware.LanguageMiddleware(), withUser(testUser()), handler.AnalyticsOverview)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/analytics/overview?period=month", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskAnalyticsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 4, got.Total)
	require.Equal(t, 2, got.Completed)
	require.Equal(t, 1, got.Overdue)
	require.Equal(t, 4, got.Categories["exam"])
	require.Equal(t, 4, got.Priorities["high"])
	require.InDelta(t, 55.5, got.AverageCompletionMins, 0.001)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_UpcomingDeadlines_InvalidDays(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/api/tasks/upcoming/deadlines", middleware.LanguageMiddleware(), withUser(testUser()), handler.UpcomingDeadlines)

	req := httptest.NewRequest(http.MethodGet, "/api/tasks/upcoming/deadlines?days=-2", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
