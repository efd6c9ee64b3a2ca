package service

import (
	"context"
	"testing"
	"time"

	"campustasks/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJwtSecret = "test-secret"

func TestAuthService_RegisterAndUserFromToken_RoundTrip(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("Create", mock.Anything, mock.MatchedBy(func(input domain.CreateUserInput) bool {
		if input.Email != "ada@campus.edu" || input.PasswordHash == "supersecret" {
			return false
		}
		return bcrypt.CompareHashAndPassword([]byte(input.PasswordHash), []byte("supersecret")) == nil
	})).Return(domain.User{ID: 7, Email: "ada@campus.edu"}, nil).Once()
	users.On("GetByID", mock.Anything, uint64(7)).Return(domain.User{ID: 7, Email: "ada@campus.edu"}, nil).Once()

	s := NewAuthService(users, testJwtSecret, time.Hour)

	user, token, err := s.Register(context.Background(), "Ada Student", "ada@campus.edu", "supersecret", "MIT", "Computer Science", 2)
	require.NoError(t, err)
	require.Equal(t, uint64(7), user.ID)
	require.NotEmpty(t, token)

	resolved, err := s.UserFromToken(context.Background(), token)
	require.NoError(t, err)
	require.Equal(t, uint64(7), resolved.ID)
	users.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rightpass"), bcrypt.MinCost)
	require.NoError(t, err)

	users := new(userRepositoryMock)
	users.On("GetByEmail", mock.Anything, "ada@campus.edu").Return(domain.User{
		ID:           7,
		Email:        "ada@campus.edu",
		PasswordHash: string(hash),
	}, nil).Once()

	s := NewAuthService(users, testJwtSecret, time.Hour)

	_, _, err = s.Login(context.Background(), "ada@campus.edu", "wrongpass")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	users.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("GetByEmail", mock.Anything, "ghost@campus.edu").Return(nil, domain.ErrUserNotFound).Once()

	s := NewAuthService(users, testJwtSecret, time.Hour)

	_, _, err := s.Login(context.Background(), "ghost@campus.edu", "whatever")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
	users.AssertExpectations(t)
}

func TestAuthService_UserFromToken_GarbageToken(t *testing.T) {
	users := new(userRepositoryMock)

	s := NewAuthService(users, testJwtSecret, time.Hour)

	_, err := s.UserFromToken(context.Background(), "not.a.token")

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_UserFromToken_ExpiredToken(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("Create", mock.Anything, mock.Anything).Return(domain.User{ID: 7}, nil).Once()

	s := NewAuthService(users, testJwtSecret, time.Hour)
	// Issue a token that expired an hour ago.
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	_, token, err := s.Register(context.Background(), "Ada Student", "ada@campus.edu", "supersecret", "MIT", "Computer Science", 2)
	require.NoError(t, err)

	_, err = s.UserFromToken(context.Background(), token)

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_UserFromToken_WrongSecret(t *testing.T) {
	users := new(userRepositoryMock)
	users.On("Create", mock.Anything, mock.Anything).Return(domain.User{ID: 7}, nil).Once()

	issuer := NewAuthService(users, "other-secret", time.Hour)
	_, token, err := issuer.Register(context.Background(), "Ada Student", "ada@campus.edu", "supersecret", "MIT", "Computer Science", 2)
	require.NoError(t, err)

	verifier := NewAuthService(users, testJwtSecret, time.Hour)
	_, err = verifier.UserFromToken(context.Background(), token)

	require.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_UpdatePreferences(t *testing.T) {
	prefs := domain.DefaultPreferences()
	prefs.BreakMins = 20

	users := new(userRepositoryMock)
	users.On("UpdatePreferences", mock.Anything, uint64(7), prefs).Return(nil).Once()
	users.On("GetByID", mock.Anything, uint64(7)).Return(domain.User{ID: 7, Preferences: prefs}, nil).Once()

	s := NewAuthService(users, testJwtSecret, time.Hour)

	user, err := s.UpdatePreferences(context.Background(), 7, prefs)

	require.NoError(t, err)
	require.Equal(t, 20, user.Preferences.BreakMins)
	users.AssertExpectations(t)
}
