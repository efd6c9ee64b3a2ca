package tests

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

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

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, name, email, password, university, course string, year int) (domain.User, string, error) {
	args := m.Called(ctx, name, email, password, university, course, year)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *authServiceMock) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	args := m.Called(ctx, email, password)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.String(1), args.Error(2)
}

func (m *authServiceMock) UserFromToken(ctx context.Context, token string) (domain.User, error) {
	args := m.Called(ctx, token)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func (m *authServiceMock) UpdatePreferences(ctx context.Context, userID uint64, prefs domain.Preferences) (domain.User, error) {
	args := m.Called(ctx, userID, prefs)

	var user domain.User
	if value := args.Get(0); value != nil {
		user = value.(domain.User)
	}
	return user, args.Error(1)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("Register", mock.Anything, "Ada Student", "ada@campus.edu", "supersecret", "MIT", "Computer Science", 2).
		Return(testUser(), "signed.jwt.token", nil).Once()
	handler := handlers.NewAuthHandler(serviceMock)

	router := gin.New()
	router.POST("/api/auth/register", middleware.LanguageMiddleware(), handler.Register)

	body := `{
		"name": "Ada Student",
		"email": "ada@campus.edu",
		"password": "supersecret",
		"university": "MIT",
		"course": "Computer Science",
		"year": 2
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "signed.jwt.token", got.Token)
	require.Equal(t, uint64(1), got.User.ID)
	require.Equal(t, "ada@campus.edu", got.User.Email)
	require.False(t, got.User.GoogleLinked)
	require.Equal(t, "09:00", got.User.Preferences.WorkingHoursStart)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, "", domain.ErrEmailTaken).Once()
	handler := handlers.NewAuthHandler(serviceMock)

	router := gin.New()
	router.POST("/api/auth/register", middleware.LanguageMiddleware(), handler.Register)

	body := `{
		"name": "Ada Student",
		"email": "ada@campus.edu",
		"password": "supersecret",
		"university": "MIT",
		"course": "Computer Science",
		"year": 2
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "An account with this email already exists.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	serviceMock := new(authServiceMock)
	handler := handlers.NewAuthHandler(serviceMock)

	router := gin.New()
	router.POST("/api/auth/register", middleware.LanguageMiddleware(), handler.Register)

	body := `{
		"name": "Ada Student",
		"email": "ada@campus.edu",
		"password": "short",
		"university": "MIT",
		"course": "Computer Science",
		"year": 2
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid registration or login payload.", got.ErrDetails.Message)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("Login", mock.Anything, "ada@campus.edu", "wrongpass").
		Return(nil, "", domain.ErrInvalidCredentials).Once()
	handler := handlers.NewAuthHandler(serviceMock)

	router := gin.New()
	router.POST("/api/auth/login", middleware.LanguageMiddleware(), handler.Login)

	body := `{"email": "ada@campus.edu", "password": "wrongpass"}`
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid email or password.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Me_Success(t *testing.T) {
	serviceMock := new(authServiceMock)
	handler := handlers.NewAuthHandler(serviceMock)

	router := gin.New()
	router.GET("/api/auth/me", middleware.LanguageMiddleware(), withUser(testUser()), handler.Me)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(1), got.ID)
	require.Equal(t, "Ada Student", got.Name)
	require.Equal(t, "MIT", got.University)
}

func TestAuthHandler_UpdatePreferences_MergesPresentFields(t *testing.T) {
	updated := testUser()
	updated.Preferences.StudySessionMins = 60

	serviceMock := new(authServiceMock)
	serviceMock.On("UpdatePreferences", mock.Anything, uint64(1), mock.MatchedBy(func(prefs domain.Preferences) bool {
		return prefs.StudySessionMins == 60 && prefs.WorkingHoursStart == "09:00"
	})).Return(updated, nil).Once()
	handler := handlers.NewAuthHandler(serviceMock)

	router := gin.New()
	router.PUT("/api/auth/preferences", middleware.LanguageMiddleware(), withUser(testUser()), handler.UpdatePreferences)

	req := httptest.NewRequest(http.MethodPut, "/api/auth/preferences", strings.NewReader(`{"study_session_mins": 60}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, 60, got.Preferences.StudySessionMins)
	serviceMock.AssertExpectations(t)
}

func TestAuthMiddleware_MissingToken(t *testing.T) {
	serviceMock := new(authServiceMock)

	router := gin.New()
	router.GET("/api/auth/me", middleware.LanguageMiddleware(), middleware.AuthMiddleware(serviceMock), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Authentication required.", got.ErrDetails.Message)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("UserFromToken", mock.Anything, "valid.jwt").Return(testUser(), nil).Once()

	router := gin.New()
	router.GET("/api/auth/me", middleware.LanguageMiddleware(), middleware.AuthMiddleware(serviceMock), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.GetUserID(c)})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	req.Header.Set("Authorization", "Bearer valid.jwt")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"user_id": 1}`, rec.Body.String())
	serviceMock.AssertExpectations(t)
}
