package ports

import (
	"context"

	"campustasks/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	GetByID(ctx context.Context, userID uint64) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	UpdatePreferences(ctx context.Context, userID uint64, prefs domain.Preferences) error
	UpdateGoogleTokens(ctx context.Context, userID uint64, tokens domain.GoogleTokens) error
	ListActive(ctx context.Context) ([]domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, name, email, password, university, course string, year int) (domain.User, string, error)
	Login(ctx context.Context, email, password string) (domain.User, string, error)
	UserFromToken(ctx context.Context, token string) (domain.User, error)
	UpdatePreferences(ctx context.Context, userID uint64, prefs domain.Preferences) (domain.User, error)
}
