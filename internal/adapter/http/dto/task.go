package dto

type TaskNoteItem struct {
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

type TaskAttachmentItem struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type TaskItem struct {
	ID                uint64               `json:"id"`
	Title             string               `json:"title"`
	Description       *string              `json:"description,omitempty"`
	Category          string               `json:"category"`
	Priority          string               `json:"priority"`
	Difficulty        string               `json:"difficulty"`
	EstimatedDuration int                  `json:"estimated_duration"`
	ActualDuration    *int                 `json:"actual_duration,omitempty"`
	Deadline          string               `json:"deadline"`
	StartTime         *string              `json:"start_time,omitempty"`
	EndTime           *string              `json:"end_time,omitempty"`
	Status            string               `json:"status"`
	Progress          int                  `json:"progress"`
	Tags              []string             `json:"tags"`
	Dependencies      []uint64             `json:"dependencies"`
	Location          *string              `json:"location,omitempty"`
	Subject           *string              `json:"subject,omitempty"`
	Instructor        *string              `json:"instructor,omitempty"`
	AIGenerated       bool                 `json:"ai_generated"`
	UrgencyScore      int                  `json:"urgency_score"`
	Notes             []TaskNoteItem       `json:"notes,omitempty"`
	Attachments       []TaskAttachmentItem `json:"attachments,omitempty"`
	CreatedAt         string               `json:"created_at"`
	UpdatedAt         string               `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title             string   `json:"title" binding:"required,max=255"`
	Description       *string  `json:"description" binding:"omitempty,max=65535"`
	Category          string   `json:"category" binding:"required,oneof=academic assignment lab exam project internship attendance personal other"`
	Priority          *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Difficulty        *string  `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	EstimatedDuration int      `json:"estimated_duration" binding:"required,gt=0"`
	Deadline          string   `json:"deadline" binding:"required"`
	Tags              []string `json:"tags" binding:"omitempty,max=20"`
	Dependencies      []uint64 `json:"dependencies" binding:"omitempty,dive,gt=0"`
	Location          *string  `json:"location" binding:"omitempty,max=255"`
	Subject           *string  `json:"subject" binding:"omitempty,max=255"`
	Instructor        *string  `json:"instructor" binding:"omitempty,max=255"`
}

type UpdateTaskRequest struct {
	Title             *string  `json:"title" binding:"omitempty,max=255"`
	Description       *string  `json:"description" binding:"omitempty,max=65535"`
	Category          *string  `json:"category" binding:"omitempty,oneof=academic assignment lab exam project internship attendance personal other"`
	Priority          *string  `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Difficulty        *string  `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	EstimatedDuration *int     `json:"estimated_duration" binding:"omitempty,gt=0"`
	ActualDuration    *int     `json:"actual_duration" binding:"omitempty,gte=0"`
	Deadline          *string  `json:"deadline"`
	Status            *string  `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	Progress          *int     `json:"progress" binding:"omitempty,gte=0,lte=100"`
	Tags              []string `json:"tags" binding:"omitempty,max=20"`
	Dependencies      []uint64 `json:"dependencies" binding:"omitempty,dive,gt=0"`
	Location          *string  `json:"location" binding:"omitempty,max=255"`
	Subject           *string  `json:"subject" binding:"omitempty,max=255"`
	Instructor        *string  `json:"instructor" binding:"omitempty,max=255"`
}

type CompleteTaskRequest struct {
	ActualDuration *int `json:"actual_duration" binding:"omitempty,gte=0"`
}

type CreateTaskFromTextRequest struct {
	Text string `json:"text" binding:"required"`
}

type CreateTaskFromTextResponse struct {
	Task   TaskItem       `json:"task"`
	Parsed ParsedTaskItem `json:"parsed"`
}

type ParsedTaskItem struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Priority          string   `json:"priority"`
	Difficulty        string   `json:"difficulty"`
	EstimatedDuration int      `json:"estimated_duration"`
	Deadline          *string  `json:"deadline,omitempty"`
	Subject           *string  `json:"subject,omitempty"`
	Location          *string  `json:"location,omitempty"`
	Tags              []string `json:"tags"`
}

type TaskAnalyticsResponse struct {
	Total                 int            `json:"total"`
	Completed             int            `json:"completed"`
	InProgress            int            `json:"in_progress"`
	Pending               int            `json:"pending"`
	Overdue               int            `json:"overdue"`
	Categories            map[string]int `json:"categories"`
	Priorities            map[string]int `json:"priorities"`
	AverageCompletionMins float64        `json:"average_completion_mins"`
}
