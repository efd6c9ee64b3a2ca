package dto

type ParseInputRequest struct {
	Text string `json:"text" binding:"required"`
}

type ParseInputResponse struct {
	Parsed ParsedTaskItem `json:"parsed_task"`
}

type OptimizeScheduleRequest struct {
	StartDate string   `json:"start_date" binding:"required"`
	EndDate   string   `json:"end_date" binding:"required"`
	TaskIDs   []uint64 `json:"task_ids" binding:"omitempty,dive,gt=0"`
}

type RecommendationItem struct {
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	SuggestedTasks []string `json:"suggested_tasks,omitempty"`
}

type RecommendationsResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
}

type BreakdownTaskRequest struct {
	TaskID uint64 `json:"task_id" binding:"required,gt=0"`
}

type SubtaskItem struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedDuration int      `json:"estimated_duration"`
	Priority          string   `json:"priority"`
	Dependencies      []string `json:"dependencies,omitempty"`
}

type BreakdownTaskResponse struct {
	OriginalTask TaskItem      `json:"original_task"`
	Subtasks     []SubtaskItem `json:"subtasks"`
}

type AnalyzeAnnouncementsRequest struct {
	Announcements []string `json:"announcements" binding:"required,min=1"`
}

type AnnouncementDeadlineItem struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

type AnnouncementActionItem struct {
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

type AnnouncementScheduleChangeItem struct {
	Change string `json:"change"`
	Date   string `json:"date"`
}

type AnnouncementTaskItem struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
	Category string `json:"category"`
}

type AnnouncementAnalysisResponse struct {
	Deadlines       []AnnouncementDeadlineItem       `json:"deadlines"`
	Actions         []AnnouncementActionItem         `json:"actions"`
	ScheduleChanges []AnnouncementScheduleChangeItem `json:"schedule_changes"`
	NewTasks        []AnnouncementTaskItem           `json:"new_tasks"`
	Reminders       []string                         `json:"reminders"`
}

type StudyPhaseItem struct {
	Phase    string   `json:"phase"`
	Duration string   `json:"duration"`
	Focus    string   `json:"focus"`
	Tasks    []string `json:"tasks"`
}

type StudyStrategyResponse struct {
	Strategy  string           `json:"strategy"`
	Timeline  []StudyPhaseItem `json:"timeline"`
	Tips      []string         `json:"tips"`
	Resources []string         `json:"resources"`
}

type ChatRequest struct {
	Message string `json:"message" binding:"required"`
	Context string `json:"context"`
}

type ChatResponse struct {
	Response string `json:"response"`
}
