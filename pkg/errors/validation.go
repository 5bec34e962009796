package errors

import (
	"strings"
	"unicode"
)

// MaxDocumentIDLength bounds a single document id.
const MaxDocumentIDLength = 1024

// ValidateDocuments checks a document list before layout.
//
// The layout engine itself accepts any list, including an empty one. Outer
// surfaces (CLI, HTTP) call this to reject input that cannot produce a
// useful graph:
//   - The list must not be empty
//   - No id may be empty or longer than MaxDocumentIDLength
//   - No id may contain control characters or null bytes
func ValidateDocuments(ids []string) error {
	if len(ids) == 0 {
		return New(ErrCodeInvalidInput, "at least one document is required")
	}
	for i, id := range ids {
		if err := ValidateDocumentID(id); err != nil {
			return Wrap(ErrCodeInvalidInput, err, "document %d", i)
		}
	}
	return nil
}

// ValidateDocumentID validates a single document id.
func ValidateDocumentID(id string) error {
	if strings.TrimSpace(id) == "" {
		return New(ErrCodeInvalidInput, "document id cannot be empty")
	}
	if len(id) > MaxDocumentIDLength {
		return New(ErrCodeInvalidInput, "document id too long (max %d characters)", MaxDocumentIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "document id %q contains control characters", id)
		}
	}
	return nil
}

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed ...string) error {
	for _, a := range allowed {
		if format == a {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported format %q (want one of: %s)", format, strings.Join(allowed, ", "))
}
