package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/task-api/internal/domain"
)

// Validate is the shared validator instance. Field names in validation
// errors use the json tag so they match what clients send.
var Validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// ValidateRequest validates the given struct using the validator package.
func ValidateRequest(v interface{}) error {
	// Check if the object implements the Validate interface
	if validator, ok := v.(interface{ Validate() error }); ok {
		return validator.Validate()
	}

	return Validate.Struct(v)
}

// IsJSONRequest reports whether the request declares a JSON body.
func IsJSONRequest(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// DecodeOptionalJSON decodes a JSON body into v when the request declares
// one. An empty body is not an error.
func DecodeOptionalJSON(r *http.Request, v interface{}) error {
	if r.Body == nil || !IsJSONRequest(r) {
		return nil
	}
	if err := DecodeJSON(r, v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: malformed JSON body: %w", domain.ErrValidation, err)
	}
	return nil
}

// Param returns the named parameter from the query string, falling back to
// an urlencoded form body. The second return value reports
// whether the parameter was supplied at all.
func Param(r *http.Request, name string) (string, bool) {
	if values, ok := r.URL.Query()[name]; ok && len(values) > 0 {
		return values[0], true
	}
	if IsJSONRequest(r) {
		return "", false
	}
	// ParseForm ignores bodies that are not form-encoded.
	if err := r.ParseForm(); err == nil {
		if values, ok := r.PostForm[name]; ok && len(values) > 0 {
			return values[0], true
		}
	}
	return "", false
}

// ParseBool converts the usual textual booleans ("true", "1", "yes", "on"
// and their opposites) case-insensitively.
func ParseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "t", "1", "yes", "y", "on":
		return true, nil
	case "false", "f", "0", "no", "n", "off":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q is not a boolean", domain.ErrValidation, s)
	}
}

// ParseInt converts s into an int; used for path identifiers.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", domain.ErrInvalidID, s)
	}
	return n, nil
}
