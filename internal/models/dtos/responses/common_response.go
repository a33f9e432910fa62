package responses

import "time"

// APIResponse is the envelope every hubgate endpoint answers with. Fields
// carries per-field validation messages when the upstream rejected a form.
type APIResponse[T any] struct {
	Status    string              `json:"status"`
	Timestamp time.Time           `json:"timestamp"`
	Error     string              `json:"error,omitempty"`
	Fields    map[string][]string `json:"fields,omitempty"`
	Data      *T                  `json:"data,omitempty"`
}
