package dto

type GoogleAuthURLResponse struct {
	URL string `json:"url"`
}

type GoogleCallbackRequest struct {
	Code string `json:"code" binding:"required"`
}

type AutoFillFormRequest struct {
	FormID    string            `json:"form_id" binding:"required"`
	Responses map[string]string `json:"responses" binding:"required,min=1"`
}

type AutoFillFormTemplateRequest struct {
	FormID     string            `json:"form_id" binding:"required"`
	TemplateID string            `json:"template_id" binding:"required"`
	CustomData map[string]string `json:"custom_data"`
}

type FormTemplateItem struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Fields      map[string]string `json:"fields"`
}

type SheetValuesResponse struct {
	Values [][]interface{} `json:"values"`
}

type UpdateSheetValuesRequest struct {
	Range  string          `json:"range" binding:"required"`
	Values [][]interface{} `json:"values" binding:"required,min=1"`
}

type CalendarEventItem struct {
	Title         string  `json:"title"`
	Description   *string `json:"description,omitempty"`
	Location      *string `json:"location,omitempty"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	IsRecurring   bool    `json:"is_recurring"`
	GoogleEventID string  `json:"google_event_id"`
	HTMLLink      string  `json:"html_link,omitempty"`
}

type CreateCalendarEventResponse struct {
	EventID string `json:"event_id"`
}

type CalendarSyncResponse struct {
	Synced int `json:"synced"`
}
