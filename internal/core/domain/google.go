package domain

// FormTemplate describes an academic form whose fields can be pre-filled from
// the user profile.
type FormTemplate struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Fields      map[string]string `json:"fields"`
}
