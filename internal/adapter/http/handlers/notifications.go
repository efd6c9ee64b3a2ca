package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campustasks/internal/adapter/http/middleware"
	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
	"campustasks/pkg/apierrors"
)

type NotificationHandler struct {
	notifications ports.NotificationService
}

func NewNotificationHandler(notifications ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// SendTest mails the authenticated user a sample reminder so they can verify
// their SMTP and preference settings.
func (h *NotificationHandler) SendTest(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	sample := domain.Task{
		Title:    "Test notification",
		Category: domain.CategoryOther,
		Priority: domain.PriorityMedium,
		Deadline: time.Now().Add(24 * time.Hour),
	}

	if err := h.notifications.SendTaskReminder(user, sample); err != nil {
		zap.L().Error("failed to send test notification", zap.Uint64("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailSendNotification, lang),
		)
		return
	}

	c.Status(http.StatusNoContent)
}
