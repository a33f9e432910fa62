package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"hckonnect/hubgate/internal/auth"
)

func newTestProvider(baseURL string) *HubAPIProvider {
	return &HubAPIProvider{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
		limiter: rate.NewLimiter(rate.Inf, 0),
	}
}

func TestDoGET_InjectsBearerFromContext(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	ctx := auth.SetAccessToken(context.Background(), "test-access-token")

	var result map[string]bool
	status, err := provider.DoGET(ctx, "/contents/announcements/", &result)
	if err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if status != http.StatusOK {
		t.Errorf("Expected 200, got %d", status)
	}
	if gotAuth != "Bearer test-access-token" {
		t.Errorf("Expected bearer header, got %q", gotAuth)
	}
	if !result["ok"] {
		t.Error("Expected decoded response body")
	}
}

func TestDoGET_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	if _, err := provider.DoGET(context.Background(), "/events/event-list/", nil); err != nil {
		t.Fatalf("Expected success, got error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Expected no Authorization header, got %q", gotAuth)
	}
}

func TestExecute_401FiresHookExactlyOnce(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail": "Token expired"}`))
	}))
	defer server.Close()

	var hookCalls int32
	provider := newTestProvider(server.URL)
	provider.OnUnauthorized = func(ctx context.Context) {
		atomic.AddInt32(&hookCalls, 1)
	}

	status, err := provider.DoGET(context.Background(), "/accounts/profile/", nil)
	if status != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", status)
	}
	if !IsUnauthorized(err) {
		t.Errorf("Expected unauthorized error, got %v", err)
	}
	if n := atomic.LoadInt32(&hookCalls); n != 1 {
		t.Errorf("Expected hook fired exactly once, got %d", n)
	}
}

func TestExecute_WithoutAuthHookSuppressesHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"non_field_errors": ["Unable to log in with provided credentials."]}`))
	}))
	defer server.Close()

	var hookCalls int32
	provider := newTestProvider(server.URL)
	provider.OnUnauthorized = func(ctx context.Context) {
		atomic.AddInt32(&hookCalls, 1)
	}

	payload := map[string]string{"email": "x@y.z", "password": "wrong"}
	_, err := provider.DoJSON(context.Background(), http.MethodPost, "/accounts/login/", payload, nil, WithoutAuthHook())
	if err == nil {
		t.Fatal("Expected error on 401")
	}
	if n := atomic.LoadInt32(&hookCalls); n != 0 {
		t.Errorf("Expected hook suppressed for login, fired %d times", n)
	}

	apiErr := AsAPIError(err)
	if apiErr == nil || apiErr.Message != "Unable to log in with provided credentials." {
		t.Errorf("Expected normalized credentials message, got %v", err)
	}
}

func TestExecute_NoRetryOnFailure(t *testing.T) {
	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	if _, err := provider.DoGET(context.Background(), "/contents/post-list/", nil); err == nil {
		t.Fatal("Expected error on 500")
	}
	if n := atomic.LoadInt32(&requests); n != 1 {
		t.Errorf("Expected exactly one attempt, upstream saw %d", n)
	}
}

func TestDoMultipart_SendsFieldsAndFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("Failed to parse multipart body: %v", err)
		}
		if got := r.FormValue("title"); got != "Orientation slides" {
			t.Errorf("Expected form field, got %q", got)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("Expected file part: %v", err)
		}
		defer file.Close()
		if header.Filename != "slides.pdf" {
			t.Errorf("Expected filename slides.pdf, got %q", header.Filename)
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 1}`))
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	fields := map[string]string{"title": "Orientation slides"}
	files := []FilePart{{Field: "file", Name: "slides.pdf", Reader: strings.NewReader("%PDF-1.4")}}

	var result map[string]int
	status, err := provider.DoMultipart(context.Background(), http.MethodPost, "/resources/create/", fields, files, &result)
	if err != nil {
		t.Fatalf("Expected success, got %v", err)
	}
	if status != http.StatusCreated {
		t.Errorf("Expected 201, got %d", status)
	}
	if result["id"] != 1 {
		t.Errorf("Expected decoded id, got %v", result)
	}
}

func TestExecute_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	provider := newTestProvider(server.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := provider.DoGET(ctx, "/discussions/list/", nil); err == nil {
		t.Fatal("Expected error when context deadline passes")
	}
}
