package middleware

import (
	"fmt"
	"net/http"

	"github.com/phrazzld/task-api/internal/api/shared"
	"github.com/phrazzld/task-api/internal/domain"
)

const (
	// APIKeyHeader is the preferred carrier of the API key.
	APIKeyHeader = "X-API-KEY"
	// APIKeyQueryParam is consulted when the header is absent.
	APIKeyQueryParam = "api_key"
	// UnauthorizedMessage is the detail returned for any rejected key.
	UnauthorizedMessage = "Unauthorized: Invalid API Key"
)

// APIKeyMiddleware rejects requests that do not present the shared API key.
type APIKeyMiddleware struct {
	apiKey string
}

// NewAPIKeyMiddleware creates a new APIKeyMiddleware checking against apiKey.
// An empty apiKey rejects every request.
func NewAPIKeyMiddleware(apiKey string) *APIKeyMiddleware {
	return &APIKeyMiddleware{
		apiKey: apiKey,
	}
}

// Authenticate compares the candidate key from the X-API-KEY header (or the
// api_key query parameter when the header is absent) with the configured key.
func (m *APIKeyMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		candidate, source := CandidateKey(r)

		var reason error
		switch {
		case candidate == "":
			reason = fmt.Errorf("%w: api key missing", domain.ErrUnauthorized)
		case candidate != m.apiKey:
			reason = fmt.Errorf("%w: api key mismatch from %s", domain.ErrUnauthorized, source)
		}

		if reason != nil {
			shared.RespondWithErrorAndLog(
				w,
				r,
				http.StatusUnauthorized,
				UnauthorizedMessage,
				reason,
				shared.WithElevatedLogLevel(),
			)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// CandidateKey extracts the key a request presents and names where it came
// from ("header" or "query"). An empty header counts as absent.
func CandidateKey(r *http.Request) (string, string) {
	if key := r.Header.Get(APIKeyHeader); key != "" {
		return key, "header"
	}
	if key := r.URL.Query().Get(APIKeyQueryParam); key != "" {
		return key, "query"
	}
	return "", ""
}
