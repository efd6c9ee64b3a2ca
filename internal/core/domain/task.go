package domain

import "time"

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// CanTransitionTo enforces the task lifecycle: pending may start, complete or be
// cancelled; in_progress may complete or be cancelled; completed and cancelled
// are terminal.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case TaskStatusPending:
		return next == TaskStatusInProgress || next == TaskStatusCompleted || next == TaskStatusCancelled
	case TaskStatusInProgress:
		return next == TaskStatusCompleted || next == TaskStatusCancelled
	default:
		return false
	}
}

func ValidTaskStatus(s TaskStatus) bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskCategory string

const (
	CategoryAcademic   TaskCategory = "academic"
	CategoryAssignment TaskCategory = "assignment"
	CategoryLab        TaskCategory = "lab"
	CategoryExam       TaskCategory = "exam"
	CategoryProject    TaskCategory = "project"
	CategoryInternship TaskCategory = "internship"
	CategoryAttendance TaskCategory = "attendance"
	CategoryPersonal   TaskCategory = "personal"
	CategoryOther      TaskCategory = "other"
)

func ValidTaskCategory(c TaskCategory) bool {
	switch c {
	case CategoryAcademic, CategoryAssignment, CategoryLab, CategoryExam,
		CategoryProject, CategoryInternship, CategoryAttendance, CategoryPersonal, CategoryOther:
		return true
	}
	return false
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
	PriorityUrgent TaskPriority = "urgent"
)

func ValidTaskPriority(p TaskPriority) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}

type TaskDifficulty string

const (
	DifficultyEasy   TaskDifficulty = "easy"
	DifficultyMedium TaskDifficulty = "medium"
	DifficultyHard   TaskDifficulty = "hard"
)

func ValidTaskDifficulty(d TaskDifficulty) bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

type TaskNote struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type TaskAttachment struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type Task struct {
	ID                uint64
	UserID            uint64
	Title             string
	Description       *string
	Category          TaskCategory
	Priority          TaskPriority
	Difficulty        TaskDifficulty
	EstimatedDuration int
	ActualDuration    *int
	Deadline          time.Time
	StartTime         *time.Time
	EndTime           *time.Time
	Status            TaskStatus
	Progress          int
	Tags              []string
	Dependencies      []uint64
	Location          *string
	Subject           *string
	Instructor        *string
	AIGenerated       bool
	UrgencyScore      int
	Notes             []TaskNote
	Attachments       []TaskAttachment
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (t Task) IsOverdue(now time.Time) bool {
	return t.Deadline.Before(now) && t.Status != TaskStatusCompleted
}

type CreateTaskInput struct {
	Title             string
	Description       *string
	Category          TaskCategory
	Priority          TaskPriority
	Difficulty        TaskDifficulty
	EstimatedDuration int
	Deadline          time.Time
	Tags              []string
	Dependencies      []uint64
	Location          *string
	Subject           *string
	Instructor        *string
	AIGenerated       bool
}

type UpdateTaskInput struct {
	Title             *string
	Description       *string
	DescriptionSet    bool
	Category          *TaskCategory
	Priority          *TaskPriority
	Difficulty        *TaskDifficulty
	EstimatedDuration *int
	ActualDuration    *int
	Deadline          *time.Time
	Status            *TaskStatus
	Progress          *int
	Tags              []string
	TagsSet           bool
	Dependencies      []uint64
	DependenciesSet   bool
	Location          *string
	LocationSet       bool
	Subject           *string
	SubjectSet        bool
	Instructor        *string
	InstructorSet     bool
}

// TaskFilter narrows list queries; zero values mean "no constraint".
type TaskFilter struct {
	Status       TaskStatus
	Category     TaskCategory
	Priority     TaskPriority
	DeadlineFrom *time.Time
	DeadlineTo   *time.Time
	SortBy       TaskSort
}

type TaskSort string

const (
	SortByDeadline TaskSort = "deadline"
	SortByPriority TaskSort = "priority"
	SortByCreated  TaskSort = "created"
)

// ParsedTask is the structured result of parsing free-text input, after
// validation against the category/priority/difficulty enumerations.
type ParsedTask struct {
	Title             string
	Description       string
	Category          TaskCategory
	Priority          TaskPriority
	Difficulty        TaskDifficulty
	EstimatedDuration int
	Deadline          *time.Time
	Subject           *string
	Location          *string
	Tags              []string
}

type TaskAnalytics struct {
	Total                 int
	Completed             int
	InProgress            int
	Pending               int
	Overdue               int
	Categories            map[TaskCategory]int
	Priorities            map[TaskPriority]int
	AverageCompletionMins float64
}
