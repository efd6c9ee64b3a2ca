package google

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/forms/v1"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"campustasks/internal/config"
	"campustasks/internal/core/domain"
	"campustasks/internal/core/ports"
)

const syncWindowDays = 30

// formClient posts responder submissions outside the Google API surface, so
// it carries its own timeout.
var formClient = &http.Client{Timeout: 15 * time.Second}

// Service holds the OAuth application credentials and mints per-user API
// clients from stored tokens. Refreshed tokens are written back to the
// user repository.
type Service struct {
	oauthConfig    *oauth2.Config
	userRepository ports.UserRepository
	scheduleRepo   ports.ScheduleRepository
	now            func() time.Time
}

var _ ports.GoogleService = (*Service)(nil)

func NewService(cfg *config.Config, userRepository ports.UserRepository, scheduleRepo ports.ScheduleRepository) *Service {
	return &Service{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Endpoint:     googleoauth.Endpoint,
			Scopes: []string{
				"https://www.googleapis.com/auth/forms",
				"https://www.googleapis.com/auth/spreadsheets",
				"https://www.googleapis.com/auth/drive",
				"https://www.googleapis.com/auth/calendar",
			},
		},
		userRepository: userRepository,
		scheduleRepo:   scheduleRepo,
		now:            time.Now,
	}
}

func (s *Service) AuthURL() string {
	return s.oauthConfig.AuthCodeURL("state",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"))
}

func (s *Service) ExchangeCode(ctx context.Context, userID uint64, code string) (domain.GoogleTokens, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return domain.GoogleTokens{}, fmt.Errorf("exchange authorization code: %w", err)
	}

	tokens := domain.GoogleTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
	if err := s.userRepository.UpdateGoogleTokens(ctx, userID, tokens); err != nil {
		return domain.GoogleTokens{}, err
	}
	return tokens, nil
}

// clientOptions builds API client options backed by the user's token. The
// token source refreshes expired access tokens transparently; the refreshed
// token is persisted so later requests skip the refresh round trip.
func (s *Service) clientOptions(ctx context.Context, user domain.User) ([]option.ClientOption, error) {
	if user.GoogleTokens == nil {
		return nil, domain.ErrGoogleNotLinked
	}

	token := &oauth2.Token{
		AccessToken:  user.GoogleTokens.AccessToken,
		RefreshToken: user.GoogleTokens.RefreshToken,
		Expiry:       user.GoogleTokens.Expiry,
	}
	source := s.oauthConfig.TokenSource(ctx, token)

	refreshed, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("refresh google token: %w", err)
	}
	if refreshed.AccessToken != token.AccessToken {
		_ = s.userRepository.UpdateGoogleTokens(ctx, user.ID, domain.GoogleTokens{
			AccessToken:  refreshed.AccessToken,
			RefreshToken: refreshed.RefreshToken,
			Expiry:       refreshed.Expiry,
		})
	}

	return []option.ClientOption{option.WithTokenSource(oauth2.ReuseTokenSource(refreshed, source))}, nil
}

func (s *Service) FormTemplates() []domain.FormTemplate {
	return []domain.FormTemplate{
		{
			ID:          "attendance",
			Name:        "Attendance Form",
			Description: "Auto-fill attendance forms with student information",
			Fields: map[string]string{
				"name":      "Full Name",
				"studentId": "Student ID",
				"course":    "Course",
				"year":      "Year",
				"date":      "Date",
				"time":      "Time",
			},
		},
		{
			ID:          "internship",
			Name:        "Internship Application",
			Description: "Auto-fill internship application forms",
			Fields: map[string]string{
				"name":       "Full Name",
				"email":      "Email",
				"phone":      "Phone Number",
				"university": "University",
				"course":     "Course",
				"year":       "Year",
				"cgpa":       "CGPA",
				"skills":     "Skills",
				"experience": "Previous Experience",
			},
		},
		{
			ID:          "project",
			Name:        "Project Submission",
			Description: "Auto-fill project submission forms",
			Fields: map[string]string{
				"name":           "Student Name",
				"studentId":      "Student ID",
				"projectTitle":   "Project Title",
				"course":         "Course",
				"instructor":     "Instructor",
				"submissionDate": "Submission Date",
			},
		},
	}
}

// AutoFillForm reads the form structure through the Forms API and submits
// the answers through the form's responder endpoint. The Forms API itself
// only exposes responses read-only.
func (s *Service) AutoFillForm(ctx context.Context, user domain.User, formID string, responses map[string]string) error {
	opts, err := s.clientOptions(ctx, user)
	if err != nil {
		return err
	}
	svc, err := forms.NewService(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create forms client: %w", err)
	}

	form, err := svc.Forms.Get(formID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("get form %s: %w", formID, err)
	}
	if form.ResponderUri == "" {
		return fmt.Errorf("form %s has no responder uri", formID)
	}

	values := url.Values{}
	for questionID, answer := range responses {
		values.Set("entry."+questionID, answer)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, form.ResponderUri, strings.NewReader(values.Encode()))
	if err != nil {
		return fmt.Errorf("create form submission: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := formClient.Do(req)
	if err != nil {
		return fmt.Errorf("submit form response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return fmt.Errorf("submit form response: http %d", resp.StatusCode)
	}
	return nil
}

func (s *Service) AutoFillFormWithTemplate(ctx context.Context, user domain.User, formID, templateID string, custom map[string]string) error {
	var template *domain.FormTemplate
	for _, t := range s.FormTemplates() {
		if t.ID == templateID {
			template = &t
			break
		}
	}
	if template == nil {
		return domain.ErrFormTemplateNotFound
	}

	now := s.now()
	responses := make(map[string]string, len(template.Fields))
	for fieldKey := range template.Fields {
		if value, ok := custom[fieldKey]; ok && value != "" {
			responses[fieldKey] = value
			continue
		}
		switch fieldKey {
		case "name":
			responses[fieldKey] = user.Name
		case "email":
			responses[fieldKey] = user.Email
		case "university":
			responses[fieldKey] = user.University
		case "course":
			responses[fieldKey] = user.Course
		case "year":
			responses[fieldKey] = fmt.Sprintf("%d", user.Year)
		case "date":
			responses[fieldKey] = now.Format("2006-01-02")
		case "time":
			responses[fieldKey] = now.Format("15:04:05")
		default:
			responses[fieldKey] = ""
		}
	}

	return s.AutoFillForm(ctx, user, formID, responses)
}

func (s *Service) SheetValues(ctx context.Context, user domain.User, spreadsheetID, readRange string) ([][]interface{}, error) {
	opts, err := s.clientOptions(ctx, user)
	if err != nil {
		return nil, err
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}

	resp, err := svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get sheet values: %w", err)
	}
	return resp.Values, nil
}

func (s *Service) UpdateSheetValues(ctx context.Context, user domain.User, spreadsheetID, writeRange string, values [][]interface{}) error {
	opts, err := s.clientOptions(ctx, user)
	if err != nil {
		return err
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return fmt.Errorf("create sheets client: %w", err)
	}

	_, err = svc.Spreadsheets.Values.
		Update(spreadsheetID, writeRange, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("update sheet values: %w", err)
	}
	return nil
}

func (s *Service) CreateCalendarEvent(ctx context.Context, user domain.User, input domain.CreateScheduleInput) (string, error) {
	opts, err := s.clientOptions(ctx, user)
	if err != nil {
		return "", err
	}
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("create calendar client: %w", err)
	}

	event := &calendar.Event{
		Summary: input.Title,
		Start:   &calendar.EventDateTime{DateTime: input.StartTime.Format(time.RFC3339), TimeZone: "UTC"},
		End:     &calendar.EventDateTime{DateTime: input.EndTime.Format(time.RFC3339), TimeZone: "UTC"},
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Location != nil {
		event.Location = *input.Location
	}

	created, err := svc.Events.Insert("primary", event).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("insert calendar event: %w", err)
	}
	return created.Id, nil
}

func (s *Service) ListCalendarEvents(ctx context.Context, user domain.User, from, to time.Time) ([]domain.CreateScheduleInput, error) {
	opts, err := s.clientOptions(ctx, user)
	if err != nil {
		return nil, err
	}
	svc, err := calendar.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create calendar client: %w", err)
	}

	events, err := svc.Events.List("primary").
		TimeMin(from.Format(time.RFC3339)).
		TimeMax(to.Format(time.RFC3339)).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list calendar events: %w", err)
	}

	inputs := make([]domain.CreateScheduleInput, 0, len(events.Items))
	for _, event := range events.Items {
		input, ok := eventToScheduleInput(event)
		if !ok {
			continue
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

// SyncCalendar imports the next 30 days of primary-calendar events as
// schedule entries and returns how many were saved.
func (s *Service) SyncCalendar(ctx context.Context, user domain.User) (int, error) {
	from := s.now()
	to := from.AddDate(0, 0, syncWindowDays)

	inputs, err := s.ListCalendarEvents(ctx, user, from, to)
	if err != nil {
		return 0, err
	}
	if len(inputs) == 0 {
		return 0, nil
	}
	return s.scheduleRepo.BulkInsert(ctx, user.ID, inputs)
}

func eventToScheduleInput(event *calendar.Event) (domain.CreateScheduleInput, bool) {
	start, ok := eventTime(event.Start)
	if !ok {
		return domain.CreateScheduleInput{}, false
	}
	end, ok := eventTime(event.End)
	if !ok {
		return domain.CreateScheduleInput{}, false
	}

	title := event.Summary
	if title == "" {
		title = "Untitled Event"
	}

	input := domain.CreateScheduleInput{
		Type:        domain.ScheduleTypeCalendar,
		Title:       title,
		StartTime:   start,
		EndTime:     end,
		IsRecurring: len(event.Recurrence) > 0,
		Color:       domain.DefaultScheduleColor,
		Metadata: domain.ScheduleMetadata{
			GoogleEventID: event.Id,
			HTMLLink:      event.HtmlLink,
		},
	}
	if event.Description != "" {
		input.Description = &event.Description
	}
	if event.Location != "" {
		input.Location = &event.Location
	}
	return input, true
}

func eventTime(edt *calendar.EventDateTime) (time.Time, bool) {
	if edt == nil {
		return time.Time{}, false
	}
	if edt.DateTime != "" {
		t, err := time.Parse(time.RFC3339, edt.DateTime)
		return t, err == nil
	}
	if edt.Date != "" {
		t, err := time.Parse("2006-01-02", edt.Date)
		return t, err == nil
	}
	return time.Time{}, false
}
