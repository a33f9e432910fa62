package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hckonnect/hubgate/internal/auth"
	"hckonnect/hubgate/internal/constants"
	"hckonnect/hubgate/internal/logging"
	"hckonnect/hubgate/internal/metrics"
)

// HubAPIProvider is the single gateway to the upstream HCKonnect REST API.
// Every request gets the session's bearer token injected from the context,
// exactly one attempt (no retry, no backoff), and a normalized APIError on
// failure. An upstream 401 invalidates the calling session through the
// OnUnauthorized hook before the error is returned.
type HubAPIProvider struct {
	BaseURL string
	Client  *http.Client

	// OnUnauthorized is invoked once per request that the upstream answered
	// with 401. Wired to session invalidation; never fired for the login
	// call itself so a bad password cannot cascade into a logout loop.
	OnUnauthorized func(ctx context.Context)

	limiter *rate.Limiter
	metrics *metrics.MetricsRegistry
}

// NewHubAPIProvider creates a provider for the upstream HCKonnect API
func NewHubAPIProvider(reg *metrics.MetricsRegistry) *HubAPIProvider {
	baseURL := os.Getenv("HUB_API_BASE_URL")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8000" // Default
	}

	return &HubAPIProvider{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: 10 * time.Second,
		},
		// Keeps a chatty feed page from hammering the upstream
		limiter: rate.NewLimiter(rate.Limit(25), 50),
		metrics: reg,
	}
}

// requestOptions tweak a single upstream call.
type requestOptions struct {
	skipAuthHook bool
}

// RequestOption configures one upstream request.
type RequestOption func(*requestOptions)

// WithoutAuthHook suppresses the OnUnauthorized hook for this request.
// Used by login and the other anonymous account flows.
func WithoutAuthHook() RequestOption {
	return func(o *requestOptions) { o.skipAuthHook = true }
}

// FilePart is one file attached to a multipart request.
type FilePart struct {
	Field  string
	Name   string
	Reader io.Reader
}

// DoGET performs a GET request against the upstream API
func (p *HubAPIProvider) DoGET(ctx context.Context, endpoint string, result interface{}, opts ...RequestOption) (int, error) {
	return p.DoJSON(ctx, http.MethodGet, endpoint, nil, result, opts...)
}

// DoJSON performs a request with an optional JSON body against the upstream API
func (p *HubAPIProvider) DoJSON(ctx context.Context, method, endpoint string, payload interface{}, result interface{}, opts ...RequestOption) (int, error) {
	var body io.Reader
	if payload != nil {
		payloadBytes, err := json.Marshal(payload)
		if err != nil {
			return 0, newNetworkError("Failed to marshal request body", err)
		}
		body = bytes.NewReader(payloadBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.BaseURL+endpoint, body)
	if err != nil {
		return 0, newNetworkError("Failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return p.execute(ctx, req, endpoint, result, opts...)
}

// DoMultipart performs a multipart/form-data request, used by the image and
// file upload endpoints. Field validation (size ceilings, extensions) is the
// calling service's job; the gateway only moves bytes.
func (p *HubAPIProvider) DoMultipart(ctx context.Context, method, endpoint string, fields map[string]string, files []FilePart, result interface{}, opts ...RequestOption) (int, error) {
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			return 0, newNetworkError("Failed to encode form field", err)
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return 0, newNetworkError("Failed to create form file", err)
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return 0, newNetworkError("Failed to read upload", err)
		}
	}
	if err := writer.Close(); err != nil {
		return 0, newNetworkError("Failed to finalize multipart body", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.BaseURL+endpoint, buf)
	if err != nil {
		return 0, newNetworkError("Failed to create request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return p.execute(ctx, req, endpoint, result, opts...)
}

// execute runs a prepared request through the limiter, injects the bearer
// token, and funnels every failure through the normalizer.
func (p *HubAPIProvider) execute(ctx context.Context, req *http.Request, endpoint string, result interface{}, opts ...RequestOption) (int, error) {
	options := requestOptions{}
	for _, opt := range opts {
		opt(&options)
	}

	if token := auth.AccessToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return 0, newNetworkError("Request cancelled while rate limited", err)
	}

	start := time.Now()
	resp, err := p.Client.Do(req)
	if err != nil {
		p.recordUpstream(endpoint, req.Method, 0, start)
		return 0, newNetworkError("", err)
	}
	defer resp.Body.Close()

	p.recordUpstream(endpoint, req.Method, resp.StatusCode, start)

	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return resp.StatusCode, newNetworkError("Failed to read response body", readErr)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := normalizeAPIError(resp.StatusCode, bodyBytes)

		if resp.StatusCode == http.StatusUnauthorized && !options.skipAuthHook {
			if p.metrics != nil {
				p.metrics.UpstreamLogoutsTotal.Inc()
			}
			if p.OnUnauthorized != nil {
				p.OnUnauthorized(ctx)
			}
		}

		logging.Warn("Upstream request failed",
			"endpoint", endpoint,
			"method", req.Method,
			"status", resp.StatusCode,
			"code", apiErr.Code,
		)
		return resp.StatusCode, apiErr
	}

	if result == nil || len(bodyBytes) == 0 {
		return resp.StatusCode, nil
	}

	if err := json.Unmarshal(bodyBytes, result); err != nil {
		return resp.StatusCode, &APIError{
			Code:       constants.ErrCodeDecodeFailed,
			Message:    fmt.Sprintf("Failed to decode response from %s", endpoint),
			StatusCode: resp.StatusCode,
			Err:        err,
		}
	}

	return resp.StatusCode, nil
}

func (p *HubAPIProvider) recordUpstream(endpoint, method string, status int, start time.Time) {
	if p.metrics == nil {
		return
	}
	// Strip the query so pagination doesn't explode label cardinality
	if idx := strings.IndexByte(endpoint, '?'); idx >= 0 {
		endpoint = endpoint[:idx]
	}
	p.metrics.UpstreamRequestsTotal.WithLabelValues(endpoint, method, strconv.Itoa(status)).Inc()
	p.metrics.UpstreamRequestDuration.WithLabelValues(endpoint, method).Observe(time.Since(start).Seconds())
}
