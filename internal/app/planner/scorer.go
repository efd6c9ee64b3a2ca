package planner

import (
	"time"

	"campustasks/internal/core/domain"
)

var categoryWeights = map[domain.TaskCategory]int{
	domain.CategoryExam:       35,
	domain.CategoryAssignment: 30,
	domain.CategoryProject:    25,
	domain.CategoryInternship: 25,
	domain.CategoryLab:        20,
	domain.CategoryAcademic:   20,
	domain.CategoryOther:      15,
	domain.CategoryAttendance: 15,
	domain.CategoryPersonal:   10,
}

var difficultyWeights = map[domain.TaskDifficulty]int{
	domain.DifficultyHard:   20,
	domain.DifficultyMedium: 10,
	domain.DifficultyEasy:   5,
}

var priorityWeights = map[domain.TaskPriority]int{
	domain.PriorityUrgent: 30,
	domain.PriorityHigh:   20,
	domain.PriorityMedium: 10,
	domain.PriorityLow:    5,
}

// UrgencyScore ranks a task in [0,100] from its time-to-deadline, category,
// difficulty and user priority. A past deadline scores the same as one due
// within 24 hours. Monotonically non-decreasing as the deadline approaches.
func UrgencyScore(task domain.Task, now time.Time) int {
	score := timeBucket(task.Deadline.Sub(now))
	score += weightOrDefault(categoryWeights, task.Category, 15)
	score += weightOrDefault(difficultyWeights, task.Difficulty, 10)
	score += weightOrDefault(priorityWeights, task.Priority, 10)

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func timeBucket(untilDeadline time.Duration) int {
	hoursLeft := untilDeadline.Hours()
	switch {
	case hoursLeft <= 24:
		return 40
	case hoursLeft <= 72:
		return 30
	case hoursLeft <= 168:
		return 20
	default:
		return 10
	}
}

func weightOrDefault[K comparable](weights map[K]int, key K, fallback int) int {
	if w, ok := weights[key]; ok {
		return w
	}
	return fallback
}
