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
	"campustasks/internal/adapter/http/validation"
	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
	"campustasks/pkg/apierrors"
)

type GoogleHandler struct {
	googleService ports.GoogleService
}

func NewGoogleHandler(googleService ports.GoogleService) *GoogleHandler {
	return &GoogleHandler{googleService: googleService}
}

func (h *GoogleHandler) AuthURL(c *gin.Context) {
	c.JSON(http.StatusOK, dto.GoogleAuthURLResponse{URL: h.googleService.AuthURL()})
}

func (h *GoogleHandler) Callback(c *gin.Context) {
	lang := middleware.GetLang(c)
	userID := middleware.GetUserID(c)

	var req dto.GoogleCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGooglePayload, lang),
		)
		return
	}

	if _, err := h.googleService.ExchangeCode(c.Request.Context(), userID, req.Code); err != nil {
		zap.L().Error("failed to exchange google code", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGoogleRequest, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GoogleHandler) FormTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToFormTemplateItems(h.googleService.FormTemplates()))
}

func (h *GoogleHandler) AutoFillForm(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	var req dto.AutoFillFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGooglePayload, lang),
		)
		return
	}

	if err := h.googleService.AutoFillForm(c.Request.Context(), user, req.FormID, req.Responses); err != nil {
		h.writeGoogleError(c, lang, err, "failed to auto-fill form")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GoogleHandler) AutoFillFormWithTemplate(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	var req dto.AutoFillFormTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGooglePayload, lang),
		)
		return
	}

	err := h.googleService.AutoFillFormWithTemplate(c.Request.Context(), user, req.FormID, req.TemplateID, req.CustomData)
	if err != nil {
		if errors.Is(err, domain.ErrFormTemplateNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgFormTemplateNotFound, lang),
			)
			return
		}
		h.writeGoogleError(c, lang, err, "failed to auto-fill form from template")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GoogleHandler) SheetValues(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	spreadsheetID := c.Param("spreadsheetId")
	readRange := c.DefaultQuery("range", "A1:Z100")

	values, err := h.googleService.SheetValues(c.Request.Context(), user, spreadsheetID, readRange)
	if err != nil {
		h.writeGoogleError(c, lang, err, "failed to read sheet values")
		return
	}

	c.JSON(http.StatusOK, dto.SheetValuesResponse{Values: values})
}

func (h *GoogleHandler) UpdateSheetValues(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	spreadsheetID := c.Param("spreadsheetId")

	var req dto.UpdateSheetValuesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGooglePayload, lang),
		)
		return
	}

	if err := h.googleService.UpdateSheetValues(c.Request.Context(), user, spreadsheetID, req.Range, req.Values); err != nil {
		h.writeGoogleError(c, lang, err, "failed to update sheet values")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *GoogleHandler) CreateCalendarEvent(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGooglePayload, lang),
		)
		return
	}

	input, err := validation.BuildCreateScheduleInput(req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGooglePayload, lang),
		)
		return
	}

	eventID, err := h.googleService.CreateCalendarEvent(c.Request.Context(), user, input)
	if err != nil {
		h.writeGoogleError(c, lang, err, "failed to create calendar event")
		return
	}

	c.JSON(http.StatusCreated, dto.CreateCalendarEventResponse{EventID: eventID})
}

func (h *GoogleHandler) ListCalendarEvents(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	from := time.Now()
	to := from.AddDate(0, 0, 30)
	if value := c.Query("start_date"); value != "" {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGooglePayload, lang),
			)
			return
		}
		from = parsed
	}
	if value := c.Query("end_date"); value != "" {
		parsed, err := time.Parse(time.RFC3339, value)
		if err != nil || !parsed.After(from) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidGooglePayload, lang),
			)
			return
		}
		to = parsed
	}

	events, err := h.googleService.ListCalendarEvents(c.Request.Context(), user, from, to)
	if err != nil {
		h.writeGoogleError(c, lang, err, "failed to list calendar events")
		return
	}

	items := make([]dto.CalendarEventItem, 0, len(events))
	for _, event := range events {
		items = append(items, dto.CalendarEventItem{
			Title:         event.Title,
			Description:   event.Description,
			Location:      event.Location,
			StartTime:     event.StartTime.Format(time.RFC3339),
			EndTime:       event.EndTime.Format(time.RFC3339),
			IsRecurring:   event.IsRecurring,
			GoogleEventID: event.Metadata.GoogleEventID,
			HTMLLink:      event.Metadata.HTMLLink,
		})
	}

	c.JSON(http.StatusOK, items)
}

func (h *GoogleHandler) SyncCalendar(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	synced, err := h.googleService.SyncCalendar(c.Request.Context(), user)
	if err != nil {
		h.writeGoogleError(c, lang, err, "failed to sync calendar")
		return
	}

	c.JSON(http.StatusOK, dto.CalendarSyncResponse{Synced: synced})
}

func (h *GoogleHandler) writeGoogleError(c *gin.Context, lang string, err error, logMsg string) {
	if errors.Is(err, domain.ErrGoogleNotLinked) {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgGoogleNotLinked, lang),
		)
		return
	}

	zap.L().Error(logMsg, zap.Uint64("user_id", middleware.GetUserID(c)), zap.Error(err))
	c.JSON(
		http.StatusInternalServerError,
		apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGoogleRequest, lang),
	)
}
