package domain

import "time"

type NotificationPreferences struct {
	Email        bool `json:"email"`
	Push         bool `json:"push"`
	ReminderMins int  `json:"reminder_time"`
}

type Preferences struct {
	WorkingHoursStart string                  `json:"working_hours_start"`
	WorkingHoursEnd   string                  `json:"working_hours_end"`
	StudySessionMins  int                     `json:"study_session_mins"`
	BreakMins         int                     `json:"break_mins"`
	Notifications     NotificationPreferences `json:"notifications"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		WorkingHoursStart: "09:00",
		WorkingHoursEnd:   "18:00",
		StudySessionMins:  45,
		BreakMins:         15,
		Notifications: NotificationPreferences{
			Email:        true,
			Push:         true,
			ReminderMins: 30,
		},
	}
}

type GoogleTokens struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	University   string
	Course       string
	Year         int
	Preferences  Preferences
	GoogleTokens *GoogleTokens
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type CreateUserInput struct {
	Name         string
	Email        string
	PasswordHash string
	University   string
	Course       string
	Year         int
}
