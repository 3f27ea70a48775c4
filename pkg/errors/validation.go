package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Output formats understood by the renderer.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// MaxCanvasSize bounds both canvas dimensions.
const MaxCanvasSize = 16384

// ValidateFormat checks that format is a supported output format.
func ValidateFormat(format string) error {
	switch format {
	case FormatSVG, FormatPNG:
		return nil
	case "":
		return New(ErrCodeInvalidFormat, "output format cannot be empty")
	}
	return New(ErrCodeInvalidFormat, "unsupported output format %q (want %s or %s)", format, FormatSVG, FormatPNG)
}

// ValidateCanvasSize checks that both dimensions are positive and at most
// MaxCanvasSize.
func ValidateCanvasSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return New(ErrCodeInvalidScene, "canvas size must be positive, got %dx%d", width, height)
	}
	if width > MaxCanvasSize || height > MaxCanvasSize {
		return New(ErrCodeInvalidScene, "canvas size %dx%d exceeds %d", width, height, MaxCanvasSize)
	}
	return nil
}

// ValidatePath validates a scene or output file path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
//   - Must not name a directory (trailing separator)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "path %q names a directory", path)
	}

	return nil
}

// ValidateSceneFile validates the path of a scene file. In addition to
// ValidatePath it requires a .toml extension.
func ValidateSceneFile(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if !strings.EqualFold(filepath.Ext(path), ".toml") {
		return New(ErrCodeInvalidPath, "scene file %q must have a .toml extension", path)
	}
	return nil
}
