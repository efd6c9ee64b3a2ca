package mapper

import (
	"time"

	"campustasks/internal/adapter/http/dto"
	"campustasks/internal/core/domain"
)

func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		University:   user.University,
		Course:       user.Course,
		Year:         user.Year,
		Preferences:  ToPreferencesPayload(user.Preferences),
		GoogleLinked: user.GoogleTokens != nil,
		CreatedAt:    user.CreatedAt.Format(time.RFC3339),
	}
}

func ToPreferencesPayload(prefs domain.Preferences) dto.PreferencesPayload {
	return dto.PreferencesPayload{
		WorkingHoursStart: prefs.WorkingHoursStart,
		WorkingHoursEnd:   prefs.WorkingHoursEnd,
		StudySessionMins:  prefs.StudySessionMins,
		BreakMins:         prefs.BreakMins,
		Notifications: dto.NotificationPreferencesPayload{
			Email:        prefs.Notifications.Email,
			Push:         prefs.Notifications.Push,
			ReminderMins: prefs.Notifications.ReminderMins,
		},
	}
}

// MergePreferences applies only the fields present in the request onto the
// user's current preferences.
func MergePreferences(current domain.Preferences, req dto.UpdatePreferencesRequest) domain.Preferences {
	merged := current
	if req.WorkingHoursStart != nil {
		merged.WorkingHoursStart = *req.WorkingHoursStart
	}
	if req.WorkingHoursEnd != nil {
		merged.WorkingHoursEnd = *req.WorkingHoursEnd
	}
	if req.StudySessionMins != nil {
		merged.StudySessionMins = *req.StudySessionMins
	}
	if req.BreakMins != nil {
		merged.BreakMins = *req.BreakMins
	}
	if req.Notifications != nil {
		merged.Notifications = domain.NotificationPreferences{
			Email:        req.Notifications.Email,
			Push:         req.Notifications.Push,
			ReminderMins: req.Notifications.ReminderMins,
		}
	}
	return merged
}
