package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

// collectPathLabels gathers the path label values currently recorded on a
// counter vector.
func collectPathLabels(t *testing.T, vec *prometheus.CounterVec) map[string]bool {
	t.Helper()

	ch := make(chan prometheus.Metric, 64)
	go func() {
		vec.Collect(ch)
		close(ch)
	}()

	paths := make(map[string]bool)
	for metric := range ch {
		var m dto.Metric
		if err := metric.Write(&m); err != nil {
			t.Fatalf("failed to read metric: %v", err)
		}
		for _, label := range m.GetLabel() {
			if label.GetName() == "path" {
				paths[label.GetValue()] = true
			}
		}
	}
	return paths
}

// TestMetricsMiddleware_PathNormalization tests that the metrics middleware
// properly normalizes paths to prevent cardinality explosion.
func TestMetricsMiddleware_PathNormalization(t *testing.T) {
	// Reset metrics before test
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()

	// Create a test handler
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	tests := []struct {
		name         string
		path         string
		expectedPath string
	}{
		{
			name:         "page with ID should be normalized",
			path:         "/pages/123",
			expectedPath: "/pages/:id",
		},
		{
			name:         "account with ID should be normalized",
			path:         "/accounts/456",
			expectedPath: "/accounts/:id",
		},
		{
			name:         "scheduled item with ID should be normalized",
			path:         "/scheduled-items/789",
			expectedPath: "/scheduled-items/:id",
		},
		{
			name:         "unassigned pages path should not be normalized",
			path:         "/pages/unassigned",
			expectedPath: "/pages/unassigned",
		},
		{
			name:         "health endpoint should not be normalized",
			path:         "/health",
			expectedPath: "/health",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("Expected status 200, got %d", w.Code)
			}
		})
	}

	paths := collectPathLabels(t, httpRequestsTotal)
	for _, tt := range tests {
		if !paths[tt.expectedPath] {
			t.Errorf("expected path label %q to be recorded, got %v", tt.expectedPath, paths)
		}
	}
	for recorded := range paths {
		if strings.ContainsAny(recorded, "0123456789") && recorded != "/pages/:id" && recorded != "/accounts/:id" && recorded != "/scheduled-items/:id" {
			t.Errorf("raw ID leaked into path label: %q", recorded)
		}
	}
}

// TestMetricsMiddleware_CardinalityReduction verifies that many different IDs
// collapse into a single metric label.
func TestMetricsMiddleware_CardinalityReduction(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// Simulate many requests to different scheduled item IDs
	itemIDs := []string{"1", "2", "123", "456", "789", "999", "1000", "5678"}

	for _, id := range itemIDs {
		req := httptest.NewRequest("GET", "/scheduled-items/"+id, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}

	// All these requests should be recorded under a single label: /scheduled-items/:id
	count := testutil.CollectAndCount(httpRequestsTotal)
	if count != 1 {
		t.Errorf("Expected 1 metric series, got %d (cardinality not reduced)", count)
	}
}

// TestMetricsMiddleware_QueryParams verifies that query strings do not create
// separate metric series.
func TestMetricsMiddleware_QueryParams(t *testing.T) {
	httpRequestsTotal.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	paths := []string{
		"/scheduled-items",
		"/scheduled-items?status=pending",
		"/scheduled-items?status=pending&page_id=3",
	}

	for _, p := range paths {
		req := httptest.NewRequest("GET", p, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}

	count := testutil.CollectAndCount(httpRequestsTotal)
	if count != 1 {
		t.Errorf("Expected 1 metric series across query variants, got %d", count)
	}
}

// TestMetricsMiddleware_StatusCodes tests that different status codes are tracked correctly.
func TestMetricsMiddleware_StatusCodes(t *testing.T) {
	// Reset metrics
	httpRequestsTotal.Reset()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"success 200", http.StatusOK},
		{"created 201", http.StatusCreated},
		{"bad request 400", http.StatusBadRequest},
		{"unauthorized 401", http.StatusUnauthorized},
		{"not found 404", http.StatusNotFound},
		{"conflict 409", http.StatusConflict},
		{"server error 500", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))

			req := httptest.NewRequest("GET", "/pages/123", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if w.Code != tt.statusCode {
				t.Errorf("Expected status %d, got %d", tt.statusCode, w.Code)
			}
		})
	}
}

// TestMetricsMiddleware_RequestSize tests that request size is tracked correctly.
func TestMetricsMiddleware_RequestSize(t *testing.T) {
	// Reset metrics
	httpRequestSize.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Read body to simulate processing
		_, _ = io.Copy(io.Discard, r.Body)
		w.WriteHeader(http.StatusCreated)
	}))

	body := strings.NewReader(`{"body":"campaign update","media_refs":[]}`)
	req := httptest.NewRequest("POST", "/contents", body)
	req.Header.Set("Content-Type", "application/json")
	req.ContentLength = int64(body.Len())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if count := testutil.CollectAndCount(httpRequestSize); count == 0 {
		t.Error("Expected request size to be recorded")
	}
}

// TestMetricsMiddleware_ResponseSize tests that response size is tracked correctly.
func TestMetricsMiddleware_ResponseSize(t *testing.T) {
	// Reset metrics
	httpResponseSize.Reset()

	responseBody := []byte(`{"id":123,"status":"pending"}`)

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(responseBody)
	}))

	req := httptest.NewRequest("GET", "/scheduled-items/123", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Body.Len() != len(responseBody) {
		t.Errorf("Expected response size %d, got %d", len(responseBody), w.Body.Len())
	}
}

// TestResponseWriter tests the custom responseWriter wrapper.
func TestResponseWriter(t *testing.T) {
	w := httptest.NewRecorder()
	rw := &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}

	// Test WriteHeader
	rw.WriteHeader(http.StatusCreated)
	if rw.statusCode != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, rw.statusCode)
	}

	// Test Write
	data := []byte("test response")
	n, err := rw.Write(data)
	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if n != len(data) {
		t.Errorf("Expected to write %d bytes, wrote %d", len(data), n)
	}
	if rw.size != len(data) {
		t.Errorf("Expected size %d, got %d", len(data), rw.size)
	}
}

// TestMetricsMiddleware_Integration verifies the complete metrics flow with
// path normalization across a mix of routes.
func TestMetricsMiddleware_Integration(t *testing.T) {
	// Reset all metrics
	httpRequestsTotal.Reset()
	httpRequestDuration.Reset()
	httpRequestSize.Reset()
	httpResponseSize.Reset()

	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}))

	testRequests := []struct {
		method string
		path   string
	}{
		{"GET", "/pages/123"},
		{"GET", "/pages/456"},
		{"GET", "/accounts/1"},
		{"GET", "/accounts/2"},
		{"GET", "/scheduled-items/789"},
		{"GET", "/health"},
		{"GET", "/metrics"},
		{"GET", "/pages/unassigned"},
	}

	for _, tr := range testRequests {
		req := httptest.NewRequest(tr.method, tr.path, nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Errorf("Request %s %s failed with status %d", tr.method, tr.path, rec.Code)
		}
	}

	// Verify metrics were recorded
	count := testutil.CollectAndCount(httpRequestsTotal)
	if count == 0 {
		t.Error("Expected metrics to be recorded, got 0")
	}
}

// BenchmarkMetricsMiddleware benchmarks the complete middleware with normalization.
func BenchmarkMetricsMiddleware(b *testing.B) {
	handler := MetricsMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	paths := []string{
		"/pages/123",
		"/accounts/456",
		"/health",
		"/scheduled-items/789",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		path := paths[i%len(paths)]
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
	}
}

func TestMetricsHandler(t *testing.T) {
	handler := MetricsHandler()

	if handler == nil {
		t.Fatal("MetricsHandler() returned nil")
	}

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("expected status OK; got %v", rr.Code)
	}

	contentType := rr.Header().Get("Content-Type")
	if !strings.Contains(contentType, "text/plain") {
		t.Errorf("expected text/plain content type; got %q", contentType)
	}
}
