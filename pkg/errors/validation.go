package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// pageNameRegex matches valid manual page names: the command or topic part
// of the filename, as in "grep" of grep.1.
var pageNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._+-]*$`)

// ValidatePageName validates a manual page name for safety and correctness.
// It rejects names that could be used for path traversal or that would
// produce unusable filenames.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - No path separators or traversal sequences
//   - Maximum length of 256 characters
func ValidatePageName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidManifest, "page name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidManifest, "page name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidManifest, "page name contains invalid control characters")
		}
	}

	if !pageNameRegex.MatchString(name) {
		return New(ErrCodeInvalidManifest, "invalid page name: %q", name)
	}

	return nil
}

// sectionRegex matches manual section identifiers: a digit 1-8 with an
// optional lowercase suffix, as in "3" or "3pm".
var sectionRegex = regexp.MustCompile(`^[1-8][a-z]*$`)

// ValidateSection validates a manual section identifier.
func ValidateSection(section string) error {
	if section == "" {
		return New(ErrCodeInvalidSection, "section cannot be empty")
	}

	if !sectionRegex.MatchString(section) {
		return New(ErrCodeInvalidSection, "invalid manual section: %q (want a digit 1-8, optionally suffixed)", section)
	}

	return nil
}

// ValidateManifestFilename validates a manifest filename for safety.
// It ensures the filename is a simple basename without path components.
func ValidateManifestFilename(filename string) error {
	if filename == "" {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be empty")
	}

	// Must be a simple filename, not a path
	if strings.ContainsAny(filename, "/\\") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot contain path separators")
	}

	if strings.HasPrefix(filename, ".") {
		return New(ErrCodeInvalidManifest, "manifest filename cannot be a hidden file")
	}

	if !strings.HasSuffix(filename, ".toml") {
		return New(ErrCodeInvalidManifest, "manifest filename must end in .toml")
	}

	return nil
}

// ValidateOutputPath validates an output file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}
