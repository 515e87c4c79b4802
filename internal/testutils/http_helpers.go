package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/task-api/internal/api/middleware"
	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateTestServer creates a httptest server with the given handler.
// Automatically registers cleanup via t.Cleanup() so callers don't need to manually close the server.
func CreateTestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(func() {
		server.Close()
	})
	return server
}

// CleanupResponseBody registers a cleanup function to close the response body
// to prevent resource leaks.
func CleanupResponseBody(t *testing.T, resp *http.Response) {
	t.Helper()
	if resp != nil && resp.Body != nil {
		t.Cleanup(func() {
			if err := resp.Body.Close(); err != nil {
				t.Logf("Warning: failed to close response body: %v", err)
			}
		})
	}
}

// ExecuteRequest sends a request to server, presenting apiKey in the
// X-API-KEY header when it is non-empty. A non-nil body is sent as JSON.
// The response body is closed on cleanup.
func ExecuteRequest(
	t *testing.T,
	server *httptest.Server,
	apiKey string,
	method, path string,
	body interface{},
) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		require.NoError(t, err, "Failed to marshal request body")
		reader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err, "Failed to create request")

	if apiKey != "" {
		req.Header.Set(middleware.APIKeyHeader, apiKey)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := server.Client().Do(req)
	require.NoError(t, err, "Failed to execute request")
	CleanupResponseBody(t, resp)

	return resp
}

// DecodeJSONResponse asserts the status code and decodes the JSON body into v.
func DecodeJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, v interface{}) {
	t.Helper()

	require.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v), "Failed to decode response body")
}

// AssertErrorResponse checks that a response carries the expected status code
// and an error detail containing expectedDetailPart. For 204 it checks the
// body is empty instead.
func AssertErrorResponse(
	t *testing.T,
	resp *http.Response,
	expectedStatus int,
	expectedDetailPart string,
) {
	t.Helper()

	assert.Equal(
		t,
		expectedStatus,
		resp.StatusCode,
		"Expected status code %d but got %d",
		expectedStatus,
		resp.StatusCode,
	)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "Failed to read response body")

	if expectedStatus == http.StatusNoContent {
		assert.Empty(t, body, "Expected empty body for 204 No Content")
		return
	}

	var errResp shared.ErrorResponse
	err = json.Unmarshal(body, &errResp)
	require.NoError(t, err, "Failed to unmarshal error response: %s", string(body))

	assert.Contains(t, errResp.Detail, expectedDetailPart,
		"Error detail should contain '%s' but got '%s'", expectedDetailPart, errResp.Detail)
}
