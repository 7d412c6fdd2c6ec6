package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// graphIDRegex matches stored-graph identifiers (UUIDs and legacy hex ids).
var graphIDRegex = regexp.MustCompile(`^[a-fA-F0-9-]{8,64}$`)

// ValidateGraphID validates an identifier used to look up a stored graph.
// It rejects ids that could be used for path traversal or query injection
// before they reach a store backend.
func ValidateGraphID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidID, "graph id cannot be empty")
	}

	if !graphIDRegex.MatchString(id) {
		return New(ErrCodeInvalidID, "invalid graph id: %q", id)
	}

	return nil
}

// ValidateGraphName validates a user-supplied name for a stored graph.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateGraphName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "graph name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "graph name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "graph name contains invalid control characters")
		}
	}

	return nil
}

// ValidateCacheKey validates a cache key before it is handed to a backend.
// Keys become file names in the file backend, so path separators, traversal
// sequences, and null bytes are rejected.
func ValidateCacheKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "cache key cannot be empty")
	}

	dangerousPatterns := []string{
		"..",   // Parent directory
		"/",    // Path separator
		"\\",   // Backslash (Windows path)
		"\x00", // Null byte
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(key, pattern) {
			return New(ErrCodeInvalidInput, "cache key contains invalid sequence: %q", pattern)
		}
	}

	return nil
}
