package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"campustasks/internal/adapter/http/dto"
	"campustasks/internal/adapter/http/mapper"
	"campustasks/internal/adapter/http/middleware"
	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
	"campustasks/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAuthPayload, lang),
		)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.University, req.Course, req.Year)
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgEmailTaken, lang),
			)
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegister, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{Token: token, User: mapper.ToUserItem(user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAuthPayload, lang),
		)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log in", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgInvalidCredentials, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Token: token, User: mapper.ToUserItem(user)})
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, mapper.ToUserItem(middleware.GetUser(c)))
}

func (h *AuthHandler) UpdatePreferences(c *gin.Context) {
	lang := middleware.GetLang(c)
	user := middleware.GetUser(c)

	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAuthPayload, lang),
		)
		return
	}

	updated, err := h.authService.UpdatePreferences(c.Request.Context(), user.ID, mapper.MergePreferences(user.Preferences, req))
	if err != nil {
		zap.L().Error("failed to update preferences", zap.Uint64("user_id", user.ID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailUpdatePrefs, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToUserItem(updated))
}
