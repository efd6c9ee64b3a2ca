package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	jwtSecret      []byte
	tokenTTL       time.Duration
	now            func() time.Time
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(userRepository ports.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		jwtSecret:      []byte(jwtSecret),
		tokenTTL:       tokenTTL,
		now:            time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, name, email, password, university, course string, year int) (domain.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", err
	}

	user, err := s.userRepository.Create(ctx, domain.CreateUserInput{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		University:   university,
		Course:       course,
		Year:         year,
	})
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (domain.User, string, error) {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

func (s *AuthService) UserFromToken(ctx context.Context, tokenString string) (domain.User, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	subject, err := claims.GetSubject()
	if err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}
	userID, err := strconv.ParseUint(subject, 10, 64)
	if err != nil {
		return domain.User{}, domain.ErrInvalidCredentials
	}

	return s.userRepository.GetByID(ctx, userID)
}

func (s *AuthService) UpdatePreferences(ctx context.Context, userID uint64, prefs domain.Preferences) (domain.User, error) {
	if err := s.userRepository.UpdatePreferences(ctx, userID, prefs); err != nil {
		return domain.User{}, err
	}
	return s.userRepository.GetByID(ctx, userID)
}

func (s *AuthService) issueToken(userID uint64) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(s.tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
