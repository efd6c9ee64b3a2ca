package domain

// UserContext is the slice of the user profile handed to the reasoning model
// as prompt context.
type UserContext struct {
	Name       string
	University string
	Course     string
	Year       int
}

func (u User) Context() UserContext {
	return UserContext{
		Name:       u.Name,
		University: u.University,
		Course:     u.Course,
		Year:       u.Year,
	}
}

type Recommendation struct {
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	SuggestedTasks []string `json:"suggestedTasks,omitempty"`
}

type SubtaskSuggestion struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	EstimatedDuration int      `json:"estimatedDuration"`
	Priority          string   `json:"priority"`
	Dependencies      []string `json:"dependencies,omitempty"`
}

type AnnouncementDeadline struct {
	Date        string `json:"date"`
	Description string `json:"description"`
}

type AnnouncementAction struct {
	Action   string `json:"action"`
	Priority string `json:"priority"`
}

type AnnouncementScheduleChange struct {
	Change string `json:"change"`
	Date   string `json:"date"`
}

type AnnouncementTask struct {
	Title    string `json:"title"`
	Deadline string `json:"deadline"`
	Category string `json:"category"`
}

// AnnouncementAnalysis is the actionable digest extracted from raw
// announcement text.
type AnnouncementAnalysis struct {
	Deadlines       []AnnouncementDeadline       `json:"deadlines"`
	Actions         []AnnouncementAction         `json:"actions"`
	ScheduleChanges []AnnouncementScheduleChange `json:"scheduleChanges"`
	NewTasks        []AnnouncementTask           `json:"newTasks"`
	Reminders       []string                     `json:"reminders"`
}

// EmptyAnnouncementAnalysis keeps every list non-nil so callers always
// serialize arrays, never null.
func EmptyAnnouncementAnalysis() AnnouncementAnalysis {
	return AnnouncementAnalysis{
		Deadlines:       []AnnouncementDeadline{},
		Actions:         []AnnouncementAction{},
		ScheduleChanges: []AnnouncementScheduleChange{},
		NewTasks:        []AnnouncementTask{},
		Reminders:       []string{},
	}
}

type StudyPhase struct {
	Phase    string   `json:"phase"`
	Duration string   `json:"duration"`
	Focus    string   `json:"focus"`
	Tasks    []string `json:"tasks"`
}

type StudyStrategy struct {
	Strategy  string       `json:"strategy"`
	Timeline  []StudyPhase `json:"timeline"`
	Tips      []string     `json:"tips"`
	Resources []string     `json:"resources"`
}
