// Package pathutil provides path validation for safebackup.
package pathutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/safebackup/safebackup/pkg/errclass"
)

const parentDir = ".."

// IsValid reports whether input is free of parent-directory traversal.
// It never touches the filesystem.
func IsValid(input string) bool {
	// NFC normalize
	input = norm.NFC.String(input)

	if strings.Contains(input, parentDir) {
		return false
	}

	// Both separators are checked so a Windows-style path is judged the
	// same on every platform.
	for _, seg := range strings.FieldsFunc(input, isSeparator) {
		if seg == parentDir {
			return false
		}
	}
	return true
}

// Validate is IsValid returning an errclass error naming the rejected input.
func Validate(input string) error {
	if !IsValid(input) {
		return errclass.ErrInvalidPath.WithMessagef("path traversal detected: %q", input)
	}
	return nil
}

func isSeparator(r rune) bool {
	return r == '/' || r == '\\'
}
