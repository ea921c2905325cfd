// Package output writes generated documentation files to disk.
//
// Generated files are typically committed to the repository, so writes
// are skipped when the content is already current. This keeps file
// modification times stable and makes "did anything change" checks in CI
// a single boolean.
package output

import (
	"bytes"
	"os"

	"github.com/pacak/semantic/pkg/errors"
)

// WriteUpdated writes data to path unless the file already holds exactly
// that content. It reports whether the file was created or rewritten.
//
// A CI pipeline can regenerate documentation and fail the build when
// WriteUpdated returns true, meaning the committed files were stale.
func WriteUpdated(path string, data []byte) (bool, error) {
	current, err := os.ReadFile(path)
	switch {
	case err == nil:
		if bytes.Equal(current, data) {
			return false, nil
		}
	case !os.IsNotExist(err):
		return false, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read %s", path)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, errors.Wrap(errors.ErrCodeWriteFailed, err, "failed to write %s", path)
	}
	return true, nil
}

// IsStale reports whether the file at path differs from data, without
// writing anything. A missing file is stale.
func IsStale(path string, data []byte) (bool, error) {
	current, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, errors.Wrap(errors.ErrCodeFileNotFound, err, "failed to read %s", path)
	}
	return !bytes.Equal(current, data), nil
}
