package dto

type ScheduleMetadataItem struct {
	Room          string   `json:"room,omitempty"`
	Building      string   `json:"building,omitempty"`
	Capacity      int      `json:"capacity,omitempty"`
	Equipment     []string `json:"equipment,omitempty"`
	GoogleEventID string   `json:"google_event_id,omitempty"`
	HTMLLink      string   `json:"html_link,omitempty"`
}

type ScheduleItem struct {
	ID               uint64               `json:"id"`
	Type             string               `json:"type"`
	Title            string               `json:"title"`
	Description      *string              `json:"description,omitempty"`
	Subject          *string              `json:"subject,omitempty"`
	Instructor       *string              `json:"instructor,omitempty"`
	Location         *string              `json:"location,omitempty"`
	StartTime        string               `json:"start_time"`
	EndTime          string               `json:"end_time"`
	DayOfWeek        *int                 `json:"day_of_week,omitempty"`
	IsRecurring      bool                 `json:"is_recurring"`
	RecurringPattern string               `json:"recurring_pattern,omitempty"`
	RecurringEndDate *string              `json:"recurring_end_date,omitempty"`
	Color            string               `json:"color"`
	IsActive         bool                 `json:"is_active"`
	Metadata         ScheduleMetadataItem `json:"metadata"`
	CreatedAt        string               `json:"created_at"`
	UpdatedAt        string               `json:"updated_at"`
}

type CreateScheduleRequest struct {
	Type             string                `json:"type" binding:"required,oneof=timetable holiday exam lab event calendar"`
	Title            string                `json:"title" binding:"required,max=255"`
	Description      *string               `json:"description" binding:"omitempty,max=65535"`
	Subject          *string               `json:"subject" binding:"omitempty,max=255"`
	Instructor       *string               `json:"instructor" binding:"omitempty,max=255"`
	Location         *string               `json:"location" binding:"omitempty,max=255"`
	StartTime        string                `json:"start_time" binding:"required"`
	EndTime          string                `json:"end_time" binding:"required"`
	DayOfWeek        *int                  `json:"day_of_week" binding:"omitempty,gte=0,lte=6"`
	IsRecurring      bool                  `json:"is_recurring"`
	RecurringPattern *string               `json:"recurring_pattern" binding:"omitempty,oneof=daily weekly monthly"`
	RecurringEndDate *string               `json:"recurring_end_date"`
	Color            *string               `json:"color" binding:"omitempty,max=16"`
	Metadata         *ScheduleMetadataItem `json:"metadata"`
}

type UpdateScheduleRequest struct {
	Type        *string `json:"type" binding:"omitempty,oneof=timetable holiday exam lab event calendar"`
	Title       *string `json:"title" binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Subject     *string `json:"subject" binding:"omitempty,max=255"`
	Instructor  *string `json:"instructor" binding:"omitempty,max=255"`
	Location    *string `json:"location" binding:"omitempty,max=255"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Color       *string `json:"color" binding:"omitempty,max=16"`
	IsActive    *bool   `json:"is_active"`
}

type ImportTimetableRequest struct {
	Entries []CreateScheduleRequest `json:"entries" binding:"required,min=1,dive"`
}

type ImportTimetableResponse struct {
	Imported int `json:"imported"`
}

type ConflictItem struct {
	First          ScheduleItem `json:"first"`
	Second         ScheduleItem `json:"second"`
	OverlapMinutes int          `json:"overlap_minutes"`
}

type SlotItem struct {
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

type PlannedTaskItem struct {
	TaskID    uint64 `json:"task_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Reasoning string `json:"reasoning"`
}

type PlanResponse struct {
	Assignments []PlannedTaskItem `json:"assignments"`
	Unplaced    []uint64          `json:"unplaced"`
	Tasks       []TaskItem        `json:"tasks"`
	Schedule    []ScheduleItem    `json:"schedule"`
}

type WeeklyOverviewResponse struct {
	Days map[string][]ScheduleItem `json:"days"`
}
