package constants

// Gateway Error Codes
// These constants classify failures of calls to the upstream HCKonnect API

const (
	ErrCodeNetworkError      = "NETWORK_ERROR"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeNotFound          = "RESOURCE_NOT_FOUND"
	ErrCodeRateLimited       = "RATE_LIMITED"
	ErrCodeValidationFailed  = "VALIDATION_FAILED"
	ErrCodeUpstreamError     = "UPSTREAM_ERROR"
	ErrCodeDecodeFailed      = "DECODE_FAILED"
	ErrCodeInvalidDataFormat = "INVALID_DATA_FORMAT"
)

// Error Messages
// Human-readable messages corresponding to error codes

var GatewayErrorMessages = map[string]string{
	ErrCodeNetworkError:      "Unable to reach the HCKonnect server. Please check your connection",
	ErrCodeUnauthorized:      "Your session is no longer valid. Please sign in again",
	ErrCodeForbidden:         "You don't have permission to perform this action",
	ErrCodeNotFound:          "The requested item was not found",
	ErrCodeRateLimited:       "Rate limit exceeded. Please try again later",
	ErrCodeValidationFailed:  "The submitted data was rejected by the server",
	ErrCodeUpstreamError:     "The HCKonnect server returned an unexpected error",
	ErrCodeDecodeFailed:      "The server response could not be decoded",
	ErrCodeInvalidDataFormat: "The data format is invalid",
}

// GetErrorMessage returns the human-readable message for an error code
func GetErrorMessage(code string) string {
	if msg, exists := GatewayErrorMessages[code]; exists {
		return msg
	}
	return "An unknown error occurred"
}
