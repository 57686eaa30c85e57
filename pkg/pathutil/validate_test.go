package pathutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/safebackup/safebackup/pkg/errclass"
	"github.com/safebackup/safebackup/pkg/pathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValid_RejectsTraversal(t *testing.T) {
	invalid := []string{
		"..",
		"../etc/passwd",
		"a/../b",
		"a/b/..",
		"..\\windows\\system32",
		"dir\\..\\file",
		"/tmp/../../root",
		"file..txt",
		"...",
		"./..",
	}
	for _, p := range invalid {
		assert.False(t, pathutil.IsValid(p), "should reject: %s", p)
	}
}

func TestIsValid_AcceptsPlainPaths(t *testing.T) {
	valid := []string{
		"a.txt",
		"/tmp/a.txt",
		"./notes/today.md",
		"backups/2024/report.pdf",
		"C:\\data\\file.bin",
		".hidden",
		"",
	}
	for _, p := range valid {
		assert.True(t, pathutil.IsValid(p), "should accept: %s", p)
	}
}

func TestIsValid_ExistingFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.txt", "report.final.pdf", "no-ext"} {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte("x"), 0644))
		assert.True(t, pathutil.IsValid(p), "should accept: %s", p)
	}
}

func TestIsValid_FullwidthDotsAreNotParent(t *testing.T) {
	// U+FF0E does not fold to '.' under NFC.
	assert.True(t, pathutil.IsValid("\uff0e\uff0e/secret"))
}

func TestValidate_ErrorClass(t *testing.T) {
	err := pathutil.Validate("../secret")
	require.ErrorIs(t, err, errclass.ErrInvalidPath)
	assert.Contains(t, err.Error(), "../secret")

	assert.NoError(t, pathutil.Validate("/tmp/a.txt"))
}
