package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campustasks/internal/adapter/http/dto"
	"campustasks/internal/adapter/http/mapper"
	"campustasks/internal/adapter/http/middleware"
	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
	"campustasks/pkg/apierrors"
)

type AssistantHandler struct {
	assistant ports.AssistantService
}

func NewAssistantHandler(assistant ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{assistant: assistant}
}

func (h *AssistantHandler) ParseInput(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	var req dto.ParseInputRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}

	parsed, err := h.assistant.ParseText(c.Request.Context(), user, req.Text)
	if err != nil {
		zap.L().Error("failed to parse input", zap.Uint64("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailParseInput, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.ParseInputResponse{Parsed: mapper.ToParsedTaskItem(parsed)})
}

func (h *AssistantHandler) OptimizeSchedule(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	var req dto.OptimizeScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}

	from, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}
	to, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil || !to.After(from) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}

	plan, tasks, entries, err := h.assistant.OptimizeSchedule(c.Request.Context(), user, from, to, nil)
	if err != nil {
		zap.L().Error("failed to optimize schedule", zap.Uint64("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailOptimizeSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanResponse(plan, tasks, entries))
}

func (h *AssistantHandler) Recommendations(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	from := time.Now()
	to := from
	switch c.DefaultQuery("period", "week") {
	case "day":
		to = to.AddDate(0, 0, 1)
	case "week":
		to = to.AddDate(0, 0, 7)
	case "month":
		to = to.AddDate(0, 1, 0)
	default:
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}

	recommendations, err := h.assistant.Recommendations(c.Request.Context(), user, from, to)
	if err != nil {
		zap.L().Error("failed to generate recommendations", zap.Uint64("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRecommendations, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.RecommendationsResponse{
		Recommendations: mapper.ToRecommendationItems(recommendations),
	})
}

func (h *AssistantHandler) PrioritySuggestions(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	tasks, err := h.assistant.PrioritySuggestions(c.Request.Context(), userID)
	if err != nil {
		zap.L().Error("failed to rank tasks", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks))
}

func (h *AssistantHandler) BreakdownTask(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.BreakdownTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}

	task, subtasks, err := h.assistant.BreakdownTask(c.Request.Context(), userID, req.TaskID)
	if err != nil {
		if errors.Is(err, domain.ErrTaskNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgTaskNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to break down task", zap.Uint64("task_id", req.TaskID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailBreakdownTask, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.BreakdownTaskResponse{
		OriginalTask: mapper.ToTaskItem(task),
		Subtasks:     mapper.ToSubtaskItems(subtasks),
	})
}

func (h *AssistantHandler) AnalyzeAnnouncements(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.AnalyzeAnnouncementsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}

	analysis, err := h.assistant.AnalyzeAnnouncements(c.Request.Context(), req.Announcements)
	if err != nil {
		zap.L().Error("failed to analyze announcements", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailAnalyzeAnnounce, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToAnnouncementAnalysisResponse(analysis))
}

func (h *AssistantHandler) StudyStrategies(c *gin.Context) {
	lang := middleware.GetLang(c)

	subject := c.Query("subject")
	examDateRaw := c.Query("exam_date")
	if subject == "" || examDateRaw == "" {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}
	examDate, err := time.Parse(time.RFC3339, examDateRaw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}

	difficulty := domain.TaskDifficulty(c.DefaultQuery("difficulty", string(domain.DifficultyMedium)))
	if !domain.ValidTaskDifficulty(difficulty) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}

	strategy, err := h.assistant.StudyStrategies(c.Request.Context(), subject, examDate, difficulty)
	if err != nil {
		zap.L().Error("failed to generate study strategy", zap.String("subject", subject), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailStudyStrategy, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToStudyStrategyResponse(strategy))
}

func (h *AssistantHandler) Chat(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAssistantPayload, lang),
		)
		return
	}

	response, err := h.assistant.Chat(c.Request.Context(), user, req.Message, req.Context)
	if err != nil {
		zap.L().Error("failed to chat", zap.Uint64("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailChat, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Response: response})
}
