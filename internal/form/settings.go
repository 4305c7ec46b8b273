package form

import (
	"bytes"
	"encoding/json"

	gerr "github.com/jekabolt/waitlister/internal/errors"
)

// ValidateSettings accepts a JSON object or null. Anything else is rejected.
// The document is otherwise opaque and is stored byte for byte.
func ValidateSettings(body []byte) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return gerr.Validation("Settings body is required.")
	}
	if !json.Valid(trimmed) {
		return gerr.Validation("Settings must be valid JSON.")
	}
	if trimmed[0] != '{' && !bytes.Equal(trimmed, []byte("null")) {
		return gerr.Validation("Settings must be a JSON object.")
	}
	return nil
}

// IsNullSettings reports whether the document clears the settings.
func IsNullSettings(body []byte) bool {
	return bytes.Equal(bytes.TrimSpace(body), []byte("null"))
}
