package domain

import "time"

type ScheduleType string

const (
	ScheduleTypeTimetable ScheduleType = "timetable"
	ScheduleTypeHoliday   ScheduleType = "holiday"
	ScheduleTypeExam      ScheduleType = "exam"
	ScheduleTypeLab       ScheduleType = "lab"
	ScheduleTypeEvent     ScheduleType = "event"
	ScheduleTypeCalendar  ScheduleType = "calendar"
)

func ValidScheduleType(t ScheduleType) bool {
	switch t {
	case ScheduleTypeTimetable, ScheduleTypeHoliday, ScheduleTypeExam,
		ScheduleTypeLab, ScheduleTypeEvent, ScheduleTypeCalendar:
		return true
	}
	return false
}

type RecurringPattern string

const (
	RecurringDaily   RecurringPattern = "daily"
	RecurringWeekly  RecurringPattern = "weekly"
	RecurringMonthly RecurringPattern = "monthly"
)

const DefaultScheduleColor = "#3B82F6"

type ScheduleMetadata struct {
	Room          string   `json:"room,omitempty"`
	Building      string   `json:"building,omitempty"`
	Capacity      int      `json:"capacity,omitempty"`
	Equipment     []string `json:"equipment,omitempty"`
	GoogleEventID string   `json:"google_event_id,omitempty"`
	HTMLLink      string   `json:"html_link,omitempty"`
}

type ScheduleEntry struct {
	ID               uint64
	UserID           uint64
	Type             ScheduleType
	Title            string
	Description      *string
	Subject          *string
	Instructor       *string
	Location         *string
	StartTime        time.Time
	EndTime          time.Time
	DayOfWeek        *int
	IsRecurring      bool
	RecurringPattern RecurringPattern
	RecurringEndDate *time.Time
	Color            string
	IsActive         bool
	Metadata         ScheduleMetadata
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ConflictsWith reports whether two half-open intervals [start, end) overlap.
// Entries that merely touch do not conflict.
func (e ScheduleEntry) ConflictsWith(other ScheduleEntry) bool {
	return e.StartTime.Before(other.EndTime) && e.EndTime.After(other.StartTime)
}

func (e ScheduleEntry) DurationMinutes() int {
	return int(e.EndTime.Sub(e.StartTime) / time.Minute)
}

type CreateScheduleInput struct {
	Type             ScheduleType
	Title            string
	Description      *string
	Subject          *string
	Instructor       *string
	Location         *string
	StartTime        time.Time
	EndTime          time.Time
	DayOfWeek        *int
	IsRecurring      bool
	RecurringPattern RecurringPattern
	RecurringEndDate *time.Time
	Color            string
	Metadata         ScheduleMetadata
}

type UpdateScheduleInput struct {
	Type        *ScheduleType
	Title       *string
	Description *string
	Subject     *string
	Instructor  *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	Color       *string
	IsActive    *bool
}

type ScheduleFilter struct {
	Type ScheduleType
	From *time.Time
	To   *time.Time
}

// Conflict is a pair of overlapping entries plus the overlap length.
type Conflict struct {
	First           ScheduleEntry
	Second          ScheduleEntry
	OverlapDuration time.Duration
}

// Slot is a free window between committed schedule entries.
type Slot struct {
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}
