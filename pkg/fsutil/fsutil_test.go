package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/safebackup/safebackup/pkg/fsutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(file, []byte("hi"), 0644))

	assert.True(t, fsutil.IsRegularFile(file))
	assert.False(t, fsutil.IsRegularFile(dir), "directory is not a regular file")
	assert.False(t, fsutil.IsRegularFile(filepath.Join(dir, "missing")))
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	assert.True(t, fsutil.Exists(dir))
	assert.False(t, fsutil.Exists(filepath.Join(dir, "nope")))
}

func TestWriteAllSync(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.bin")
	f, err := os.Create(path)
	require.NoError(t, err)

	require.NoError(t, fsutil.WriteAllSync(f, []byte{0x00, 0xff, 'x'}))
	require.NoError(t, f.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0xff, 'x'}, content)
}

func TestAppendLine_CreatesAndAppends(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "log.txt")

	require.NoError(t, fsutil.AppendLine(path, []byte("one\n"), 0644))
	require.NoError(t, fsutil.AppendLine(path, []byte("two\n"), 0644))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(content))
}

func TestAppendLine_MissingDirFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "log.txt")
	assert.Error(t, fsutil.AppendLine(path, []byte("x\n"), 0644))
}

func TestFsyncDir(t *testing.T) {
	assert.NoError(t, fsutil.FsyncDir(t.TempDir()))
	assert.Error(t, fsutil.FsyncDir(filepath.Join(t.TempDir(), "missing")))
}
