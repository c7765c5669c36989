// Package assets loads small resource files, such as shader sources, into
// memory.
package assets

import (
	"bytes"
	"errors"
	"fmt"
	"os"
)

// ErrNulByte is returned for a file containing a NUL byte. Assets are
// handed to consumers that expect text without embedded terminators.
var ErrNulByte = errors.New("assets: file contains a NUL byte")

// Load reads the whole file at path into a buffer owned by the caller.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", path, err)
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return nil, fmt.Errorf("%w: %s at offset %d", ErrNulByte, path, i)
	}
	return data, nil
}

// LoadString is Load returning a string.
func LoadString(path string) (string, error) {
	data, err := Load(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
