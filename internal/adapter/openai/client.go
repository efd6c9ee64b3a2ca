package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"campustasks/internal/config"
	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
)

const (
	parseTaskPrompt = `Parse the following natural language input from a college student and extract task information.

Input: %q

User Context:
- University: %s
- Course: %s
- Year: %d

Return strict JSON object:
{
  "title": "Clear task title",
  "description": "Detailed description if available",
  "category": "academic|assignment|lab|exam|project|internship|attendance|personal|other",
  "priority": "low|medium|high|urgent",
  "difficulty": "easy|medium|hard",
  "estimatedDuration": number in minutes,
  "deadline": "ISO date string or null if not specified",
  "subject": "subject name if mentioned or null",
  "location": "location if mentioned or null",
  "tags": ["array", "of", "relevant", "tags"]
}

Rules:
1. If deadline is not specified, estimate based on context (e.g. "this week" = 7 days from now)
2. Estimate duration based on task type and complexity
3. Set priority based on urgency indicators (urgent, ASAP, important)
4. Be conservative with time estimates`

	optimizePrompt = `Optimize the following task schedule for a college student.

Tasks:
%s

Current Schedule:
%s

User Preferences:
- Working hours: %s - %s
- Study session duration: %d minutes
- Break duration: %d minutes

Create an optimized schedule that prioritizes urgent tasks, respects existing
commitments and working hours, and includes breaks.

Return strict JSON object: {"schedule":[{"taskId": number, "scheduledStartTime": "ISO date string", "scheduledEndTime": "ISO date string", "reasoning": "explanation"}]}`

	recommendationsPrompt = `Based on the following information, suggest additional tasks or optimizations for a college student.

Current Tasks:
%s

Schedule:
%s

Suggest missing tasks, task breakdowns, time management improvements, study
strategies for upcoming exams, and preparation tasks for future deadlines.

Return strict JSON object: {"recommendations":[{"type": "missing_task|breakdown|optimization|study_strategy|preparation", "title": "...", "description": "...", "priority": "low|medium|high", "suggestedTasks": ["..."]}]}`

	breakdownPrompt = `Break down the following task into smaller, manageable subtasks.

Task: %s
Description: %s
Category: %s
Difficulty: %s
Estimated Duration: %d minutes
Deadline: %s

Return strict JSON object: {"subtasks":[{"title": "...", "description": "...", "estimatedDuration": number in minutes, "priority": "low|medium|high", "dependencies": ["prerequisite subtask titles"]}]}`

	announcementsPrompt = `Analyze the following academic announcements and extract actionable tasks and important information.

Announcements:
%s

Extract:
1. Deadlines and important dates
2. Required actions (forms to fill, documents to submit)
3. Schedule changes
4. New assignments or projects
5. Important reminders

Return strict JSON object:
{
  "deadlines": [{"date": "ISO string", "description": "what's due"}],
  "actions": [{"action": "what to do", "priority": "high|medium|low"}],
  "scheduleChanges": [{"change": "description", "date": "when"}],
  "newTasks": [{"title": "task title", "deadline": "ISO string", "category": "category"}],
  "reminders": ["array of important reminders"]
}`

	studyStrategyPrompt = `Generate a personalized study strategy for a college student.

Subject: %s
Exam Date: %s
Difficulty: %s
Current Date: %s

Return strict JSON object:
{
  "strategy": "Overall study strategy",
  "timeline": [{"phase": "...", "duration": "Duration in days", "focus": "...", "tasks": ["..."]}],
  "tips": ["..."],
  "resources": ["..."]
}`

	chatPrompt = `You are an assistant for a college student task management system.
Help the student with their academic and campus-related tasks.

Student Context:
- Name: %s
- University: %s
- Course: %s
- Year: %d
%s
Student Message: %s

Provide helpful, actionable advice related to task management, study strategies,
time management, and academic success. Keep responses concise and practical.`
)

// Client talks to an OpenAI-compatible chat completions endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	now        func() time.Time
}

var _ ports.ReasoningGateway = (*Client)(nil)

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:     cfg.OpenAIAPIKey,
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.OpenAIBaseURL), "/"),
		model:      cfg.OpenAIModel,
		httpClient: &http.Client{Timeout: cfg.OpenAITimeout},
		now:        time.Now,
	}
}

type parsedTaskPayload struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	Priority          string   `json:"priority"`
	Difficulty        string   `json:"difficulty"`
	EstimatedDuration int      `json:"estimatedDuration"`
	Deadline          *string  `json:"deadline"`
	Subject           *string  `json:"subject"`
	Location          *string  `json:"location"`
	Tags              []string `json:"tags"`
}

func (c *Client) ParseTaskInput(ctx context.Context, text string, userCtx domain.UserContext) (domain.ParsedTask, error) {
	prompt := fmt.Sprintf(parseTaskPrompt, text, userCtx.University, userCtx.Course, userCtx.Year)
	content, err := c.complete(ctx, prompt, 0.3, 500)
	if err != nil {
		return domain.ParsedTask{}, err
	}

	var payload parsedTaskPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return domain.ParsedTask{}, fmt.Errorf("decode parsed task: %w", err)
	}
	return sanitizeParsedTask(payload), nil
}

// sanitizeParsedTask discards out-of-range model output: unknown enum values
// fall back to defaults, duration is clamped to [15, 480] minutes and at most
// ten tags are kept.
func sanitizeParsedTask(p parsedTaskPayload) domain.ParsedTask {
	out := domain.ParsedTask{
		Title:             strings.TrimSpace(p.Title),
		Description:       p.Description,
		Category:          domain.TaskCategory(p.Category),
		Priority:          domain.TaskPriority(p.Priority),
		Difficulty:        domain.TaskDifficulty(p.Difficulty),
		EstimatedDuration: p.EstimatedDuration,
		Subject:           p.Subject,
		Location:          p.Location,
		Tags:              p.Tags,
	}
	if out.Title == "" {
		out.Title = "Untitled Task"
	}
	if !domain.ValidTaskCategory(out.Category) {
		out.Category = domain.CategoryOther
	}
	if !domain.ValidTaskPriority(out.Priority) {
		out.Priority = domain.PriorityMedium
	}
	if !domain.ValidTaskDifficulty(out.Difficulty) {
		out.Difficulty = domain.DifficultyMedium
	}
	if out.EstimatedDuration == 0 {
		out.EstimatedDuration = 60
	}
	if out.EstimatedDuration < 15 {
		out.EstimatedDuration = 15
	}
	if out.EstimatedDuration > 480 {
		out.EstimatedDuration = 480
	}
	if len(out.Tags) > 10 {
		out.Tags = out.Tags[:10]
	}
	if p.Deadline != nil {
		if deadline, err := time.Parse(time.RFC3339, *p.Deadline); err == nil {
			out.Deadline = &deadline
		}
	}
	return out
}

func (c *Client) OptimizeSchedule(ctx context.Context, tasks []domain.Task, entries []domain.ScheduleEntry, prefs domain.Preferences) ([]domain.PlannedTask, error) {
	taskJSON, err := json.Marshal(taskSummaries(tasks))
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	entryJSON, err := json.Marshal(entrySummaries(entries))
	if err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}

	prompt := fmt.Sprintf(optimizePrompt, taskJSON, entryJSON,
		prefs.WorkingHoursStart, prefs.WorkingHoursEnd, prefs.StudySessionMins, prefs.BreakMins)
	content, err := c.complete(ctx, prompt, 0.2, 1000)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Schedule []struct {
			TaskID    uint64 `json:"taskId"`
			StartTime string `json:"scheduledStartTime"`
			EndTime   string `json:"scheduledEndTime"`
			Reasoning string `json:"reasoning"`
		} `json:"schedule"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode optimized schedule: %w", err)
	}

	planned := make([]domain.PlannedTask, 0, len(payload.Schedule))
	for _, item := range payload.Schedule {
		start, err := time.Parse(time.RFC3339, item.StartTime)
		if err != nil {
			return nil, fmt.Errorf("decode optimized schedule: bad start time %q", item.StartTime)
		}
		end, err := time.Parse(time.RFC3339, item.EndTime)
		if err != nil {
			return nil, fmt.Errorf("decode optimized schedule: bad end time %q", item.EndTime)
		}
		planned = append(planned, domain.PlannedTask{
			TaskID:    item.TaskID,
			StartTime: start,
			EndTime:   end,
			Reasoning: item.Reasoning,
		})
	}
	return planned, nil
}

func (c *Client) Recommendations(ctx context.Context, tasks []domain.Task, entries []domain.ScheduleEntry) ([]domain.Recommendation, error) {
	taskJSON, err := json.Marshal(taskSummaries(tasks))
	if err != nil {
		return nil, fmt.Errorf("marshal tasks: %w", err)
	}
	entryJSON, err := json.Marshal(entrySummaries(entries))
	if err != nil {
		return nil, fmt.Errorf("marshal schedule: %w", err)
	}

	content, err := c.complete(ctx, fmt.Sprintf(recommendationsPrompt, taskJSON, entryJSON), 0.4, 800)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Recommendations []domain.Recommendation `json:"recommendations"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode recommendations: %w", err)
	}
	return payload.Recommendations, nil
}

func (c *Client) BreakdownTask(ctx context.Context, task domain.Task) ([]domain.SubtaskSuggestion, error) {
	description := "No description"
	if task.Description != nil && *task.Description != "" {
		description = *task.Description
	}

	prompt := fmt.Sprintf(breakdownPrompt, task.Title, description,
		task.Category, task.Difficulty, task.EstimatedDuration, task.Deadline.Format(time.RFC3339))
	content, err := c.complete(ctx, prompt, 0.3, 800)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Subtasks []domain.SubtaskSuggestion `json:"subtasks"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("decode subtasks: %w", err)
	}
	return payload.Subtasks, nil
}

func (c *Client) AnalyzeAnnouncements(ctx context.Context, announcements []string) (domain.AnnouncementAnalysis, error) {
	announcementJSON, err := json.MarshalIndent(announcements, "", "  ")
	if err != nil {
		return domain.AnnouncementAnalysis{}, fmt.Errorf("marshal announcements: %w", err)
	}

	content, err := c.complete(ctx, fmt.Sprintf(announcementsPrompt, announcementJSON), 0.3, 600)
	if err != nil {
		return domain.AnnouncementAnalysis{}, err
	}

	var analysis domain.AnnouncementAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return domain.AnnouncementAnalysis{}, fmt.Errorf("decode announcement analysis: %w", err)
	}
	return analysis, nil
}

func (c *Client) StudyStrategy(ctx context.Context, subject string, examDate time.Time, difficulty domain.TaskDifficulty) (domain.StudyStrategy, error) {
	if difficulty == "" {
		difficulty = domain.DifficultyMedium
	}

	prompt := fmt.Sprintf(studyStrategyPrompt, subject,
		examDate.Format(time.RFC3339), difficulty, c.now().Format(time.RFC3339))
	content, err := c.complete(ctx, prompt, 0.4, 1000)
	if err != nil {
		return domain.StudyStrategy{}, err
	}

	var strategy domain.StudyStrategy
	if err := json.Unmarshal([]byte(content), &strategy); err != nil {
		return domain.StudyStrategy{}, fmt.Errorf("decode study strategy: %w", err)
	}
	return strategy, nil
}

func (c *Client) Chat(ctx context.Context, message, extraContext string, userCtx domain.UserContext) (string, error) {
	contextBlock := ""
	if extraContext != "" {
		contextBlock = fmt.Sprintf("\nAdditional Context: %s\n", extraContext)
	}

	prompt := fmt.Sprintf(chatPrompt, userCtx.Name, userCtx.University, userCtx.Course, userCtx.Year, contextBlock, message)
	return c.completeText(ctx, prompt, 0.7, 500)
}

type taskSummary struct {
	ID                uint64   `json:"id"`
	Title             string   `json:"title"`
	Category          string   `json:"category"`
	Priority          string   `json:"priority"`
	Difficulty        string   `json:"difficulty"`
	EstimatedDuration int      `json:"estimatedDuration"`
	Deadline          string   `json:"deadline"`
	Status            string   `json:"status"`
	Dependencies      []uint64 `json:"dependencies,omitempty"`
}

func taskSummaries(tasks []domain.Task) []taskSummary {
	out := make([]taskSummary, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskSummary{
			ID:                t.ID,
			Title:             t.Title,
			Category:          string(t.Category),
			Priority:          string(t.Priority),
			Difficulty:        string(t.Difficulty),
			EstimatedDuration: t.EstimatedDuration,
			Deadline:          t.Deadline.Format(time.RFC3339),
			Status:            string(t.Status),
			Dependencies:      t.Dependencies,
		})
	}
	return out
}

type entrySummary struct {
	Title     string `json:"title"`
	Type      string `json:"type"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func entrySummaries(entries []domain.ScheduleEntry) []entrySummary {
	out := make([]entrySummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, entrySummary{
			Title:     e.Title,
			Type:      string(e.Type),
			StartTime: e.StartTime.Format(time.RFC3339),
			EndTime:   e.EndTime.Format(time.RFC3339),
		})
	}
	return out
}

// complete requests a JSON object response and returns the raw content.
func (c *Client) complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	return c.send(ctx, prompt, temperature, maxTokens, true)
}

// completeText requests plain prose, used for chat.
func (c *Client) completeText(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	return c.send(ctx, prompt, temperature, maxTokens, false)
}

func (c *Client) send(ctx context.Context, prompt string, temperature float64, maxTokens int, jsonMode bool) (string, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return "", fmt.Errorf("%w: missing api key", domain.ErrReasoningUnavailable)
	}
	if c.baseURL == "" {
		return "", fmt.Errorf("%w: missing base url", domain.ErrReasoningUnavailable)
	}

	body := map[string]any{
		"model": c.model,
		"messages": []map[string]string{{
			"role":    "user",
			"content": prompt,
		}},
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}
	if jsonMode {
		body["response_format"] = map[string]string{"type": "json_object"}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrReasoningUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: http %d: %s", domain.ErrReasoningUnavailable, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var decoded struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(respBody, &decoded); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("empty choices in response")
	}
	content := strings.TrimSpace(decoded.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("empty content in response")
	}
	return content, nil
}
