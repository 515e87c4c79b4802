package shared

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/task-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	var target struct {
		Title string `json:"title"`
	}

	req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"title":"Buy milk"}`))
	require.NoError(t, DecodeJSON(req, &target))
	assert.Equal(t, "Buy milk", target.Title)

	req = httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(`{"title":}`))
	assert.Error(t, DecodeJSON(req, &target))
}

func TestDecodeOptionalJSON(t *testing.T) {
	type body struct {
		Title *string `json:"title"`
	}

	tests := []struct {
		name        string
		contentType string
		body        string
		wantTitle   *string
		wantErr     bool
	}{
		{name: "json body", contentType: "application/json", body: `{"title":"x"}`, wantTitle: strPtr("x")},
		{name: "json with charset", contentType: "application/json; charset=utf-8", body: `{"title":""}`, wantTitle: strPtr("")},
		{name: "empty json body", contentType: "application/json", body: ``},
		{name: "not json", contentType: "application/x-www-form-urlencoded", body: `title=x`},
		{name: "malformed", contentType: "application/json", body: `{"title":`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tc.body))
			req.Header.Set("Content-Type", tc.contentType)

			var b body
			err := DecodeOptionalJSON(req, &b)
			if tc.wantErr {
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantTitle, b.Title)
		})
	}
}

func strPtr(s string) *string { return &s }

func TestParam(t *testing.T) {
	t.Run("query", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test?title=Buy+milk&empty=", nil)
		v, ok := Param(req, "title")
		assert.True(t, ok)
		assert.Equal(t, "Buy milk", v)

		v, ok = Param(req, "empty")
		assert.True(t, ok, "an empty value is still supplied")
		assert.Empty(t, v)

		_, ok = Param(req, "missing")
		assert.False(t, ok)
	})

	t.Run("form body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/test", strings.NewReader("description=2%25"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		v, ok := Param(req, "description")
		assert.True(t, ok)
		assert.Equal(t, "2%", v)
	})

	t.Run("query wins over form", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/test?title=q", strings.NewReader("title=f"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		v, _ := Param(req, "title")
		assert.Equal(t, "q", v)
	})
}

func TestParseBool(t *testing.T) {
	for _, s := range []string{"true", "TRUE", "1", "yes", "on", "t"} {
		v, err := ParseBool(s)
		require.NoError(t, err, s)
		assert.True(t, v, s)
	}
	for _, s := range []string{"false", "False", "0", "no", "off", "f"} {
		v, err := ParseBool(s)
		require.NoError(t, err, s)
		assert.False(t, v, s)
	}

	_, err := ParseBool("maybe")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseInt(t *testing.T) {
	n, err := ParseInt("42")
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	_, err = ParseInt("abc")
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestValidateRequestUsesJSONNames(t *testing.T) {
	type request struct {
		Title *string `json:"title" validate:"required"`
	}

	err := ValidateRequest(request{})
	var validationErrs validator.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, "title", validationErrs[0].Field())
	assert.Equal(t, "required", validationErrs[0].Tag())

	// A supplied empty string satisfies required on a pointer
	empty := ""
	assert.NoError(t, ValidateRequest(request{Title: &empty}))
}
