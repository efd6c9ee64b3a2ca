package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campustasks/internal/adapter/http/dto"
	"campustasks/internal/adapter/http/mapper"
	"campustasks/internal/adapter/http/middleware"
	"campustasks/internal/adapter/http/validation"
	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
	"campustasks/pkg/apierrors"
)

type TaskHandler struct {
	taskService ports.TaskService
}

func NewTaskHandler(taskService ports.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

func (h *TaskHandler) ListTasks(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	filter, ok := parseTaskFilter(c)
	if !ok {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	tasks, err := h.taskService.List(c.Request.Context(), userID, filter)
	if err != nil {
		zap.L().Error("failed to list tasks", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *TaskHandler) GetTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.Get(c.Request.Context(), userID, taskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to get task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateTaskInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.Create(c.Request.Context(), userID, input)
	if err != nil {
		if h.writeTaskWriteError(c, lang, err) {
			return
		}

		zap.L().Error("failed to create task", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CreateTaskFromText(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	var req dto.CreateTaskFromTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, parsed, err := h.taskService.CreateFromText(c.Request.Context(), user, req.Text)
	if err != nil {
		zap.L().Error("failed to create task from text", zap.Uint64("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTask, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.CreateTaskFromTextResponse{
		Task:   mapper.ToTaskItem(task),
		Parsed: mapper.ToParsedTaskItem(parsed),
	})
}

func (h *TaskHandler) UpdateTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	raw := map[string]json.RawMessage{}
	if err := c.ShouldBindBodyWithJSON(&raw); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	var req dto.UpdateTaskRequest
	if err := c.ShouldBindBodyWithJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateTaskInput(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	task, err := h.taskService.Update(c.Request.Context(), userID, taskID, input)
	if err != nil {
		if h.writeTaskWriteError(c, lang, err) {
			return
		}

		zap.L().Error("failed to update task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) DeleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	if err := h.taskService.Delete(c.Request.Context(), userID, taskID); err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteTask, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TaskHandler) StartTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	task, err := h.taskService.Start(c.Request.Context(), userID, taskID)
	if err != nil {
		if h.writeTaskWriteError(c, lang, err) {
			return
		}

		zap.L().Error("failed to start task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) CompleteTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	taskID, ok := parseTaskID(c, lang)
	if !ok {
		return
	}

	var req dto.CompleteTaskRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
			)
			return
		}
	}

	task, err := h.taskService.Complete(c.Request.Context(), userID, taskID, req.ActualDuration)
	if err != nil {
		if h.writeTaskWriteError(c, lang, err) {
			return
		}

		zap.L().Error("failed to complete task", zap.Uint64("task_id", taskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItem(task))
}

func (h *TaskHandler) AnalyticsOverview(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	since := time.Now()
	switch c.DefaultQuery("period", "week") {
	case "day":
		since = since.AddDate(0, 0, -1)
	case "week":
		since = since.AddDate(0, 0, -7)
	case "month":
		since = since.AddDate(0, -1, 0)
	case "year":
		since = since.AddDate(-1, 0, 0)
	default:
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	analytics, err := h.taskService.Analytics(c.Request.Context(), userID, since)
	if err != nil {
		zap.L().Error("failed to compute analytics", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailTaskAnalytics, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskAnalyticsResponse(analytics))
}

func (h *TaskHandler) UpcomingDeadlines(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	days, err := strconv.Atoi(c.DefaultQuery("days", "7"))
	if err != nil || days <= 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskPayload, lang),
		)
		return
	}

	tasks, err := h.taskService.UpcomingDeadlines(c.Request.Context(), userID, time.Duration(days)*24*time.Hour)
	if err != nil {
		zap.L().Error("failed to list upcoming deadlines", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

// writeTaskWriteError maps domain sentinels shared by the create/update/start/
// complete paths, reporting whether it answered the request.
func (h *TaskHandler) writeTaskWriteError(c *gin.Context, lang string, err error) bool {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
		)
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidStatusTransition, lang),
		)
	case errors.Is(err, domain.ErrTaskDependencyCycle):
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgTaskDependencyCycle, lang),
		)
	default:
		return false
	}
	return true
}

func parseTaskID(c *gin.Context, lang string) (uint64, bool) {
	taskID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || taskID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTaskID, lang),
		)
		return 0, false
	}
	return taskID, true
}

func parseTaskFilter(c *gin.Context) (domain.TaskFilter, bool) {
	filter := domain.TaskFilter{
		Status:   domain.TaskStatus(c.Query("status")),
		Category: domain.TaskCategory(c.Query("category")),
		Priority: domain.TaskPriority(c.Query("priority")),
		SortBy:   domain.TaskSort(c.DefaultQuery("sort_by", "deadline")),
	}

	if filter.Status != "" && !domain.ValidTaskStatus(filter.Status) {
		return domain.TaskFilter{}, false
	}
	if filter.Category != "" && !domain.ValidTaskCategory(filter.Category) {
		return domain.TaskFilter{}, false
	}
	if filter.Priority != "" && !domain.ValidTaskPriority(filter.Priority) {
		return domain.TaskFilter{}, false
	}
	switch filter.SortBy {
	case domain.SortByDeadline, domain.SortByPriority, domain.SortByCreated:
	default:
		return domain.TaskFilter{}, false
	}

	if value := c.Query("deadline_from"); value != "" {
		from, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return domain.TaskFilter{}, false
		}
		filter.DeadlineFrom = &from
	}
	if value := c.Query("deadline_to"); value != "" {
		to, err := time.Parse(time.RFC3339, value)
		if err != nil {
			return domain.TaskFilter{}, false
		}
		filter.DeadlineTo = &to
	}

	return filter, true
}
