package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
)

const mysqlDuplicateEntry = 1062

const userColumns = `
  u.id, u.name, u.email, u.password_hash, u.university, u.course, u.year, u.preferences,
  u.google_access_token, u.google_refresh_token, u.google_token_expiry, u.is_active,
  u.created_at, u.updated_at`

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID                 uint64         `db:"id"`
	Name               string         `db:"name"`
	Email              string         `db:"email"`
	PasswordHash       string         `db:"password_hash"`
	University         string         `db:"university"`
	Course             string         `db:"course"`
	Year               int            `db:"year"`
	Preferences        []byte         `db:"preferences"`
	GoogleAccessToken  sql.NullString `db:"google_access_token"`
	GoogleRefreshToken sql.NullString `db:"google_refresh_token"`
	GoogleTokenExpiry  sql.NullTime   `db:"google_token_expiry"`
	IsActive           bool           `db:"is_active"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	prefs, err := json.Marshal(domain.DefaultPreferences())
	if err != nil {
		return domain.User{}, err
	}

	res, err := r.db.ExecContext(ctx, `
INSERT INTO users (name, email, password_hash, university, course, year, preferences)
VALUES (?, ?, ?, ?, ?, ?, ?)`,
		input.Name, strings.ToLower(input.Email), input.PasswordHash,
		input.University, input.Course, input.Year, prefs,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return domain.User{}, domain.ErrEmailTaken
		}
		return domain.User{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return domain.User{}, err
	}
	return r.GetByID(ctx, uint64(id))
}

func (r *UserRepository) GetByID(ctx context.Context, userID uint64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, "SELECT"+userColumns+" FROM users u WHERE u.id = ?", userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, "SELECT"+userColumns+" FROM users u WHERE u.email = ?", strings.ToLower(email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRow(row), nil
}

func (r *UserRepository) UpdatePreferences(ctx context.Context, userID uint64, prefs domain.Preferences) error {
	encoded, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, "UPDATE users SET preferences = ? WHERE id = ?", encoded, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, err := r.GetByID(ctx, userID); err != nil {
			return err
		}
	}
	return nil
}

func (r *UserRepository) UpdateGoogleTokens(ctx context.Context, userID uint64, tokens domain.GoogleTokens) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE users SET google_access_token = ?, google_refresh_token = ?, google_token_expiry = ?
WHERE id = ?`,
		tokens.AccessToken, tokens.RefreshToken, tokens.Expiry, userID)
	return err
}

func (r *UserRepository) ListActive(ctx context.Context) ([]domain.User, error) {
	var rows []userRow
	if err := r.db.SelectContext(ctx, &rows, "SELECT"+userColumns+" FROM users u WHERE u.is_active = 1 ORDER BY u.id"); err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, mapUserRow(row))
	}
	return users, nil
}

func mapUserRow(row userRow) domain.User {
	user := domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		University:   row.University,
		Course:       row.Course,
		Year:         row.Year,
		Preferences:  domain.DefaultPreferences(),
		IsActive:     row.IsActive,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}

	if len(row.Preferences) > 0 {
		_ = json.Unmarshal(row.Preferences, &user.Preferences)
	}

	if row.GoogleAccessToken.Valid && row.GoogleAccessToken.String != "" {
		tokens := domain.GoogleTokens{
			AccessToken:  row.GoogleAccessToken.String,
			RefreshToken: row.GoogleRefreshToken.String,
		}
		if row.GoogleTokenExpiry.Valid {
			tokens.Expiry = row.GoogleTokenExpiry.Time
		}
		user.GoogleTokens = &tokens
	}

	return user
}
