package providers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"hckonnect/hubgate/internal/constants"
)

func TestNormalizeAPIError_DetailShape(t *testing.T) {
	apiErr := normalizeAPIError(http.StatusUnauthorized, []byte(`{"detail": "Invalid token."}`))

	if apiErr.Code != constants.ErrCodeUnauthorized {
		t.Errorf("Expected code %s, got %s", constants.ErrCodeUnauthorized, apiErr.Code)
	}
	if apiErr.Message != "Invalid token." {
		t.Errorf("Expected detail message, got %q", apiErr.Message)
	}
	if apiErr.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected status 401, got %d", apiErr.StatusCode)
	}
}

func TestNormalizeAPIError_MessageShape(t *testing.T) {
	apiErr := normalizeAPIError(http.StatusBadRequest, []byte(`{"message": "Community not found"}`))

	if apiErr.Message != "Community not found" {
		t.Errorf("Expected message shape to win, got %q", apiErr.Message)
	}
}

func TestNormalizeAPIError_NonFieldErrors(t *testing.T) {
	body := []byte(`{"non_field_errors": ["Unable to log in.", "Account disabled."]}`)
	apiErr := normalizeAPIError(http.StatusBadRequest, body)

	expected := "Unable to log in.; Account disabled."
	if apiErr.Message != expected {
		t.Errorf("Expected joined non_field_errors %q, got %q", expected, apiErr.Message)
	}
}

func TestNormalizeAPIError_FieldKeyedArrays(t *testing.T) {
	body := []byte(`{"email": ["Enter a valid email address."], "password": ["This field is required."]}`)
	apiErr := normalizeAPIError(http.StatusBadRequest, body)

	if apiErr.Code != constants.ErrCodeValidationFailed {
		t.Errorf("Expected validation code, got %s", apiErr.Code)
	}
	if len(apiErr.Fields) != 2 {
		t.Fatalf("Expected 2 field entries, got %d", len(apiErr.Fields))
	}
	if apiErr.Fields["email"][0] != "Enter a valid email address." {
		t.Errorf("Unexpected email field message: %v", apiErr.Fields["email"])
	}
}

func TestNormalizeAPIError_BareString(t *testing.T) {
	apiErr := normalizeAPIError(http.StatusForbidden, []byte(`"You are not a representative"`))

	if apiErr.Message != "You are not a representative" {
		t.Errorf("Expected bare string message, got %q", apiErr.Message)
	}
	if apiErr.Code != constants.ErrCodeForbidden {
		t.Errorf("Expected forbidden code, got %s", apiErr.Code)
	}
}

func TestNormalizeAPIError_NonJSONBody(t *testing.T) {
	apiErr := normalizeAPIError(http.StatusBadGateway, []byte("<html>502 Bad Gateway</html>"))

	if apiErr.Code != constants.ErrCodeUpstreamError {
		t.Errorf("Expected upstream code, got %s", apiErr.Code)
	}
	if apiErr.Message != "<html>502 Bad Gateway</html>" {
		t.Errorf("Expected raw body surfaced, got %q", apiErr.Message)
	}
}

func TestNormalizeAPIError_EmptyBodyFallsBackToCodeMessage(t *testing.T) {
	apiErr := normalizeAPIError(http.StatusNotFound, nil)

	if apiErr.Message != constants.GetErrorMessage(constants.ErrCodeNotFound) {
		t.Errorf("Expected canned not-found message, got %q", apiErr.Message)
	}
}

func TestAsAPIError_Wrapped(t *testing.T) {
	inner := normalizeAPIError(http.StatusNotFound, nil)
	wrapped := fmt.Errorf("fetching event: %w", inner)

	if got := AsAPIError(wrapped); got != inner {
		t.Error("Expected AsAPIError to unwrap through fmt.Errorf")
	}
	if !IsNotFound(wrapped) {
		t.Error("Expected IsNotFound on wrapped 404")
	}
	if IsUnauthorized(wrapped) {
		t.Error("Did not expect IsUnauthorized on a 404")
	}
	if AsAPIError(errors.New("plain")) != nil {
		t.Error("Expected nil for a non-API error")
	}
}
