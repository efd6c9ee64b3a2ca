package handlers

import (
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

type ScheduleHandler struct {
	scheduleService ports.ScheduleService
}

func NewScheduleHandler(scheduleService ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

func (h *ScheduleHandler) ListEntries(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	filter := domain.ScheduleFilter{Type: domain.ScheduleType(c.Query("type"))}
	if filter.Type != "" && !domain.ValidScheduleType(filter.Type) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}
	if value := c.Query("start_date"); value != "" {
		from, err := time.Parse(time.RFC3339, value)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
			)
			return
		}
		filter.From = &from
	}
	if value := c.Query("end_date"); value != "" {
		to, err := time.Parse(time.RFC3339, value)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
			)
			return
		}
		filter.To = &to
	}

	entries, err := h.scheduleService.List(c.Request.Context(), userID, filter)
	if err != nil {
		zap.L().Error("failed to list schedule", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToScheduleItems(entries))
}

func (h *ScheduleHandler) CreateEntry(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateScheduleInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}

	entry, err := h.scheduleService.Create(c.Request.Context(), userID, input)
	if err != nil {
		zap.L().Error("failed to create schedule entry", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToScheduleItem(entry))
}

func (h *ScheduleHandler) UpdateEntry(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	entryID, ok := parseScheduleID(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}

	input, err := validation.BuildUpdateScheduleInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}

	entry, err := h.scheduleService.Update(c.Request.Context(), userID, entryID, input)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgScheduleNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to update schedule entry", zap.Uint64("entry_id", entryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdateSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToScheduleItem(entry))
}

func (h *ScheduleHandler) DeleteEntry(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	entryID, ok := parseScheduleID(c, lang)
	if !ok {
		return
	}

	if err := h.scheduleService.Delete(c.Request.Context(), userID, entryID); err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgScheduleNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to delete schedule entry", zap.Uint64("entry_id", entryID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailDeleteSchedule, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ScheduleHandler) ImportTimetable(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.ImportTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}

	inputs := make([]domain.CreateScheduleInput, 0, len(req.Entries))
	for _, entry := range req.Entries {
		input, err := validation.BuildCreateScheduleInput(entry)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
			)
			return
		}
		inputs = append(inputs, input)
	}

	imported, err := h.scheduleService.ImportTimetable(c.Request.Context(), userID, inputs)
	if err != nil {
		zap.L().Error("failed to import timetable", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailImportTimetable, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.ImportTimetableResponse{Imported: imported})
}

func (h *ScheduleHandler) OptimizedDaily(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	day := time.Now()
	if value := c.Query("date"); value != "" {
		parsed, err := time.Parse("2006-01-02", value)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
			)
			return
		}
		day = parsed
	}

	plan, tasks, entries, err := h.scheduleService.OptimizedDaily(c.Request.Context(), user, day)
	if err != nil {
		zap.L().Error("failed to build daily plan", zap.Uint64("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailOptimizeSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToPlanResponse(plan, tasks, entries))
}

func (h *ScheduleHandler) Conflicts(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	from, to, ok := parseDateRange(c, lang)
	if !ok {
		return
	}

	conflicts, err := h.scheduleService.Conflicts(c.Request.Context(), userID, from, to)
	if err != nil {
		zap.L().Error("failed to detect conflicts", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToConflictItems(conflicts))
}

func (h *ScheduleHandler) AvailableSlots(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	from, to, ok := parseDateRange(c, lang)
	if !ok {
		return
	}

	durationMins, err := strconv.Atoi(c.DefaultQuery("duration", "60"))
	if err != nil || durationMins <= 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return
	}

	slots, err := h.scheduleService.AvailableSlots(c.Request.Context(), userID, from, to, time.Duration(durationMins)*time.Minute)
	if err != nil {
		zap.L().Error("failed to find available slots", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSchedule, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToSlotItems(slots))
}

// WeeklyOverview groups the current week's entries under their weekday name.
func (h *ScheduleHandler) WeeklyOverview(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	now := time.Now()
	weekday := (int(now.Weekday()) + 6) % 7 // Monday-based week
	weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -weekday)
	weekEnd := weekStart.AddDate(0, 0, 7)

	entries, err := h.scheduleService.List(c.Request.Context(), userID, domain.ScheduleFilter{From: &weekStart, To: &weekEnd})
	if err != nil {
		zap.L().Error("failed to build weekly overview", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListSchedule, lang),
		)
		return
	}

	days := make(map[string][]dto.ScheduleItem)
	for _, entry := range entries {
		key := entry.StartTime.Weekday().String()
		days[key] = append(days[key], mapper.ToScheduleItem(entry))
	}

	c.JSON(http.StatusOK, dto.WeeklyOverviewResponse{Days: days})
}

func parseScheduleID(c *gin.Context, lang string) (uint64, bool) {
	entryID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || entryID == 0 {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidScheduleID, lang),
		)
		return 0, false
	}
	return entryID, true
}

func parseDateRange(c *gin.Context, lang string) (time.Time, time.Time, bool) {
	from, err := time.Parse(time.RFC3339, c.Query("start_date"))
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return time.Time{}, time.Time{}, false
	}
	to, err := time.Parse(time.RFC3339, c.Query("end_date"))
	if err != nil || !to.After(from) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidSchedulePayload, lang),
		)
		return time.Time{}, time.Time{}, false
	}
	return from, to, true
}
