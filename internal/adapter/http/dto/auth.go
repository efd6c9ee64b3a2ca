package dto

type RegisterRequest struct {
	Name       string `json:"name" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8,max=128"`
	University string `json:"university" binding:"required,max=255"`
	Course     string `json:"course" binding:"required,max=255"`
	Year       int    `json:"year" binding:"required,gte=1,lte=10"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type NotificationPreferencesPayload struct {
	Email        bool `json:"email"`
	Push         bool `json:"push"`
	ReminderMins int  `json:"reminder_time"`
}

type PreferencesPayload struct {
	WorkingHoursStart string                         `json:"working_hours_start"`
	WorkingHoursEnd   string                         `json:"working_hours_end"`
	StudySessionMins  int                            `json:"study_session_mins"`
	BreakMins         int                            `json:"break_mins"`
	Notifications     NotificationPreferencesPayload `json:"notifications"`
}

type UpdatePreferencesRequest struct {
	WorkingHoursStart *string                         `json:"working_hours_start"`
	WorkingHoursEnd   *string                         `json:"working_hours_end"`
	StudySessionMins  *int                            `json:"study_session_mins" binding:"omitempty,gt=0"`
	BreakMins         *int                            `json:"break_mins" binding:"omitempty,gte=0"`
	Notifications     *NotificationPreferencesPayload `json:"notifications"`
}

type UserItem struct {
	ID           uint64             `json:"id"`
	Name         string             `json:"name"`
	Email        string             `json:"email"`
	University   string             `json:"university"`
	Course       string             `json:"course"`
	Year         int                `json:"year"`
	Preferences  PreferencesPayload `json:"preferences"`
	GoogleLinked bool               `json:"google_linked"`
	CreatedAt    string             `json:"created_at"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserItem `json:"user"`
}
