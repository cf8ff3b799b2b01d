package errors

import (
	"strings"
	"unicode"
)

// ValidateEntityID validates an entity identifier from the model.
// Identifiers end up verbatim in rendered markup and error messages, so
// the rules are intentionally conservative:
//   - No empty ids
//   - No control characters or null bytes
//   - No characters that would break an SVG attribute ("<>&)
//   - Maximum length of 128 characters
func ValidateEntityID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidEntity, "entity id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidEntity, "entity id too long (max 128 characters): %.32q...", id)
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidEntity, "entity id contains control characters: %q", id)
		}
	}

	if strings.ContainsAny(id, `"<>&`) {
		return New(ErrCodeInvalidEntity, "entity id contains markup characters: %q", id)
	}

	return nil
}
