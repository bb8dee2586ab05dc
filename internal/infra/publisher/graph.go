package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GraphConfig contains configuration for the Graph API publisher.
type GraphConfig struct {
	// BaseURL is the Graph API endpoint, e.g. "https://graph.facebook.com/v19.0"
	BaseURL string

	// Timeout is the HTTP request timeout for Graph API calls
	Timeout time.Duration

	// RequestsPerSecond caps the sustained publish rate (defaults to 2.0)
	RequestsPerSecond float64

	// Burst is the rate limiter burst capacity (defaults to 5)
	Burst int
}

// GraphPublisher publishes content to pages through a Graph-style REST API.
type GraphPublisher struct {
	config      GraphConfig
	httpClient  *http.Client
	rateLimiter *RateLimiter
}

// NewGraphPublisher creates a GraphPublisher with the given configuration.
func NewGraphPublisher(config GraphConfig) *GraphPublisher {
	if config.RequestsPerSecond <= 0 {
		config.RequestsPerSecond = 2.0
	}
	if config.Burst <= 0 {
		config.Burst = 5
	}
	return &GraphPublisher{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
		rateLimiter: NewRateLimiter(config.RequestsPerSecond, config.Burst),
	}
}

// graphPostResponse is the success response from a feed post.
type graphPostResponse struct {
	ID string `json:"id"`
}

// graphErrorResponse is the error envelope returned by the Graph API.
type graphErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// Publish posts the request to {BaseURL}/{page}/feed and returns the
// external post ID. Status codes are classified: 429 and 5xx as transient,
// other 4xx as permanent.
func (g *GraphPublisher) Publish(ctx context.Context, req Request) (string, error) {
	requestID := uuid.New().String()

	slog.Info("starting graph publish",
		slog.String("request_id", requestID),
		slog.String("page_external_id", req.PageExternalID))

	if err := g.rateLimiter.Allow(ctx); err != nil {
		return "", fmt.Errorf("rate limiter error: %w", err)
	}

	form := url.Values{}
	form.Set("message", req.Message)
	form.Set("access_token", req.AccessToken)
	if len(req.MediaRefs) > 0 {
		form.Set("attached_media", strings.Join(req.MediaRefs, ","))
	}

	endpoint := fmt.Sprintf("%s/%s/feed", strings.TrimRight(g.config.BaseURL, "/"), req.PageExternalID)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create http request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", &PublishError{
			Kind:    KindTransient,
			Message: fmt.Sprintf("execute http request: %v", err),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var post graphPostResponse
		if err := json.Unmarshal(body, &post); err != nil || post.ID == "" {
			return "", &PublishError{
				Kind:    KindTransient,
				Message: fmt.Sprintf("malformed success response: %s", string(body)),
			}
		}
		slog.Info("graph publish successful",
			slog.String("request_id", requestID),
			slog.String("page_external_id", req.PageExternalID),
			slog.String("post_id", post.ID))
		return post.ID, nil
	}

	message := extractGraphError(body)
	kind := KindPermanent
	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
		kind = KindTransient
	}

	slog.Warn("graph publish failed",
		slog.String("request_id", requestID),
		slog.String("page_external_id", req.PageExternalID),
		slog.Int("status", resp.StatusCode),
		slog.String("kind", string(kind)),
		slog.String("message", message))

	return "", &PublishError{
		Kind:       kind,
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}

// extractGraphError pulls the error message out of a Graph API error body,
// falling back to the raw body when it does not match the envelope.
func extractGraphError(body []byte) string {
	var graphErr graphErrorResponse
	if err := json.Unmarshal(body, &graphErr); err == nil && graphErr.Error.Message != "" {
		return graphErr.Error.Message
	}
	return string(body)
}
