package errors

import (
	"strings"
	"unicode"
)

// ValidateOutputPath validates an output file path for figure artifacts.
// It rejects paths that could not map to a writable file.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
//   - No trailing path separator (must name a file, not a directory)
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

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, "\\") {
		return New(ErrCodeInvalidPath, "output path must name a file, not a directory")
	}

	return nil
}

// ValidateDPI validates a raster resolution value.
func ValidateDPI(dpi int) error {
	if dpi <= 0 {
		return New(ErrCodeInvalidInput, "dpi must be positive, got %d", dpi)
	}

	// Anything beyond print resolution is almost certainly a typo.
	const maxDPI = 2400
	if dpi > maxDPI {
		return New(ErrCodeInvalidInput, "dpi too large (max %d), got %d", maxDPI, dpi)
	}

	return nil
}

// ValidateFontScale validates a font scale multiplier.
func ValidateFontScale(scale float64) error {
	if scale <= 0 {
		return New(ErrCodeInvalidStyle, "font scale must be positive, got %g", scale)
	}
	return nil
}
