package providers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hckonnect/hubgate/internal/constants"
)

// APIError is the single error taxonomy every upstream failure is normalized
// into at the gateway boundary. The upstream API answers errors in at least
// four shapes (`detail`, `message`, `non_field_errors` arrays, field-keyed
// arrays, plus the odd bare string); callers only ever see this type.
type APIError struct {
	Code       string              `json:"code"`
	Message    string              `json:"message"`
	StatusCode int                 `json:"status_code,omitempty"`
	Fields     map[string][]string `json:"fields,omitempty"`
	Err        error               `json:"-"`
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error { return e.Err }

// AsAPIError unwraps err into an *APIError, nil if it isn't one.
func AsAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return nil
}

// IsUnauthorized reports whether err represents an upstream 401.
func IsUnauthorized(err error) bool {
	apiErr := AsAPIError(err)
	return apiErr != nil && apiErr.Code == constants.ErrCodeUnauthorized
}

// IsNotFound reports whether err represents an upstream 404.
func IsNotFound(err error) bool {
	apiErr := AsAPIError(err)
	return apiErr != nil && apiErr.Code == constants.ErrCodeNotFound
}

func newNetworkError(message string, err error) *APIError {
	if message == "" {
		message = constants.GetErrorMessage(constants.ErrCodeNetworkError)
	}
	return &APIError{
		Code:    constants.ErrCodeNetworkError,
		Message: message,
		Err:     err,
	}
}

func codeForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return constants.ErrCodeValidationFailed
	case http.StatusUnauthorized:
		return constants.ErrCodeUnauthorized
	case http.StatusForbidden:
		return constants.ErrCodeForbidden
	case http.StatusNotFound:
		return constants.ErrCodeNotFound
	case http.StatusTooManyRequests:
		return constants.ErrCodeRateLimited
	default:
		return constants.ErrCodeUpstreamError
	}
}

// normalizeAPIError maps an upstream error response to an APIError.
func normalizeAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Code:       codeForStatus(status),
		StatusCode: status,
	}
	apiErr.Message = constants.GetErrorMessage(apiErr.Code)

	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return apiErr
	}

	// Shape 1: bare JSON string
	var plain string
	if err := json.Unmarshal(body, &plain); err == nil {
		if plain != "" {
			apiErr.Message = plain
		}
		return apiErr
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		// Not JSON at all; surface the raw body, truncated
		if len(trimmed) > 200 {
			trimmed = trimmed[:200]
		}
		apiErr.Message = trimmed
		return apiErr
	}

	// Shape 2: {"detail": "..."} / {"message": "..."} / {"msg": "..."}
	for _, key := range []string{"detail", "message", "msg", "error"} {
		if raw, ok := payload[key]; ok {
			var msg string
			if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
				apiErr.Message = msg
				return apiErr
			}
		}
	}

	// Shape 3: {"non_field_errors": ["...", ...]}
	if raw, ok := payload["non_field_errors"]; ok {
		var msgs []string
		if err := json.Unmarshal(raw, &msgs); err == nil && len(msgs) > 0 {
			apiErr.Message = strings.Join(msgs, "; ")
			return apiErr
		}
	}

	// Shape 4: field-keyed arrays, e.g. {"email": ["Enter a valid email."]}
	fields := make(map[string][]string)
	for key, raw := range payload {
		var msgs []string
		if err := json.Unmarshal(raw, &msgs); err == nil {
			fields[key] = msgs
			continue
		}
		var msg string
		if err := json.Unmarshal(raw, &msg); err == nil {
			fields[key] = []string{msg}
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
		apiErr.Code = constants.ErrCodeValidationFailed
		apiErr.Message = constants.GetErrorMessage(constants.ErrCodeValidationFailed)
	}
	return apiErr
}
