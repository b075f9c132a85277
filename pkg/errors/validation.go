package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates a destination file path for safety.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
//
// Absolute paths are allowed: the output file is chosen by the local user,
// not received from an untrusted source.
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "output path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid characters")
		}
	}

	return nil
}

// ValidateScriptSource validates the rendering-library URL embedded in the
// generated document. It ensures the URL has a safe scheme (http or https).
func ValidateScriptSource(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidConfig, "script source cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidConfig, "script source must use http or https scheme")
	}

	return nil
}
