package api

import (
	"encoding/json"
	"net/http"
	"time"

	"hckonnect/hubgate/internal/models/dtos/responses"
	"hckonnect/hubgate/internal/providers"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := responses.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

// respondWithAPIError relays a normalized upstream error, carrying the
// status code and any field-level validation messages straight through.
func respondWithAPIError(w http.ResponseWriter, err error) {
	apiErr := providers.AsAPIError(err)
	if apiErr == nil {
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	statusCode := apiErr.StatusCode
	if statusCode == 0 {
		statusCode = http.StatusBadGateway
	}

	resp := responses.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     apiErr.Message,
		Fields:    apiErr.Fields,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}
