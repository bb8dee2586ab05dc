package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// freePort asks the kernel for an available port to avoid collisions
// between parallel test runs.
func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func startHealthServer(t *testing.T) (*HealthServer, string, context.CancelFunc) {
	t.Helper()

	port := freePort(t)
	addr := fmt.Sprintf("127.0.0.1:%d", port)
	server := NewHealthServer(addr, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		_ = server.Start(ctx)
	}()

	// Wait for the server to come up
	baseURL := "http://" + addr
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, 3*time.Second, 20*time.Millisecond, "health server did not start")

	return server, baseURL, cancel
}

func TestHealthServer_Liveness(t *testing.T) {
	_, baseURL, cancel := startHealthServer(t)
	defer cancel()

	resp, err := http.Get(baseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}

func TestHealthServer_Readiness(t *testing.T) {
	server, baseURL, cancel := startHealthServer(t)
	defer cancel()

	// Not ready until SetReady(true)
	resp, err := http.Get(baseURL + "/health/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	server.SetReady(true)

	resp, err = http.Get(baseURL + "/health/ready")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
}

func TestHealthServer_ReadinessToggle(t *testing.T) {
	server, baseURL, cancel := startHealthServer(t)
	defer cancel()

	server.SetReady(true)
	server.SetReady(false)

	resp, err := http.Get(baseURL + "/health/ready")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestHealthServer_GracefulShutdown(t *testing.T) {
	server, baseURL, cancel := startHealthServer(t)
	_ = server

	cancel()

	// After shutdown, requests should fail
	assert.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/health")
		if err != nil {
			return true
		}
		resp.Body.Close()
		return false
	}, 3*time.Second, 20*time.Millisecond, "server did not shut down")
}
