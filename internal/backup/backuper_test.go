package backup_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/safebackup/safebackup/internal/audit"
	"github.com/safebackup/safebackup/internal/backup"
	"github.com/safebackup/safebackup/pkg/errclass"
	"github.com/safebackup/safebackup/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRecorder struct {
	mock.Mock
}

func (m *mockRecorder) Record(action model.Action, status string) error {
	args := m.Called(action, status)
	return args.Error(0)
}

func setup(t *testing.T) (src, backupDir string) {
	t.Helper()
	root := t.TempDir()
	src = filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(src, []byte("hi"), 0644))
	backupDir = filepath.Join(root, "bk")
	require.NoError(t, os.Mkdir(backupDir, 0755))
	return src, backupDir
}

func requireSingleEntry(t *testing.T, m *audit.MemoryLogger, status string) {
	t.Helper()
	entries := m.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, model.ActionBackup, entries[0].Action)
	assert.Equal(t, status, entries[0].Status)
}

func TestBackup_CopiesFileByName(t *testing.T) {
	src, backupDir := setup(t)
	log := audit.NewMemoryLogger()

	result, err := backup.NewBackuper(log).Backup(src, backupDir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(backupDir, "a.txt"), result.Destination)
	assert.Equal(t, 2, result.Bytes)
	assert.False(t, result.Overwrote)

	content, err := os.ReadFile(result.Destination)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(content))
	requireSingleEntry(t, log, model.StatusSuccess)
}

func TestBackup_DropsDirectoryStructure(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "deep", "er")
	require.NoError(t, os.MkdirAll(nested, 0755))
	src := filepath.Join(nested, "report.csv")
	require.NoError(t, os.WriteFile(src, []byte("a,b\n"), 0644))
	backupDir := filepath.Join(root, "bk")
	require.NoError(t, os.Mkdir(backupDir, 0755))

	result, err := backup.NewBackuper(audit.NewMemoryLogger()).Backup(src, backupDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(backupDir, "report.csv"), result.Destination)
}

func TestBackup_BinaryContentIsExact(t *testing.T) {
	src, backupDir := setup(t)
	data := []byte{0x00, 0xff, 0xfe, 'x', 0x80}
	require.NoError(t, os.WriteFile(src, data, 0644))

	result, err := backup.NewBackuper(audit.NewMemoryLogger()).Backup(src, backupDir)
	require.NoError(t, err)

	content, err := os.ReadFile(result.Destination)
	require.NoError(t, err)
	assert.Equal(t, data, content)
}

func TestBackup_PathTraversal(t *testing.T) {
	_, backupDir := setup(t)
	log := audit.NewMemoryLogger()

	_, err := backup.NewBackuper(log).Backup("../a.txt", backupDir)
	require.ErrorIs(t, err, errclass.ErrInvalidPath)

	requireSingleEntry(t, log, "Invalid input - path traversal detected")
	entries, _ := os.ReadDir(backupDir)
	assert.Empty(t, entries)
}

func TestBackup_MissingSourceCreatesNothing(t *testing.T) {
	_, backupDir := setup(t)
	log := audit.NewMemoryLogger()
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, err := backup.NewBackuper(log).Backup(missing, backupDir)
	require.ErrorIs(t, err, errclass.ErrNotFound)

	requireSingleEntry(t, log, "Invalid input - file does not exist")
	assert.NoFileExists(t, filepath.Join(backupDir, "missing.txt"))
}

func TestBackup_DirectorySourceIsNotFound(t *testing.T) {
	_, backupDir := setup(t)
	log := audit.NewMemoryLogger()

	_, err := backup.NewBackuper(log).Backup(t.TempDir(), backupDir)
	require.ErrorIs(t, err, errclass.ErrNotFound)
	requireSingleEntry(t, log, model.StatusFileNotExist)
}

func TestBackup_MissingBackupDir(t *testing.T) {
	src, _ := setup(t)
	log := audit.NewMemoryLogger()
	backupDir := filepath.Join(t.TempDir(), "nope")

	_, err := backup.NewBackuper(log).Backup(src, backupDir)
	require.ErrorIs(t, err, errclass.ErrIO)
	assert.True(t, errors.Is(err, os.ErrNotExist), "OS cause must be preserved")

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Status, "Failed to create backup file: ")
	assert.NoDirExists(t, backupDir)
}

func TestBackup_UnreadableSource(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any file")
	}
	src, backupDir := setup(t)
	require.NoError(t, os.Chmod(src, 0000))
	t.Cleanup(func() { os.Chmod(src, 0644) })
	log := audit.NewMemoryLogger()

	_, err := backup.NewBackuper(log).Backup(src, backupDir)
	require.ErrorIs(t, err, errclass.ErrIO)

	entries := log.Entries()
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Status, "Failed to open source file: ")
}

// Existing backups are replaced without warning; the result reports it.
func TestBackup_OverwritesExistingSilently(t *testing.T) {
	src, backupDir := setup(t)
	dest := filepath.Join(backupDir, "a.txt")
	require.NoError(t, os.WriteFile(dest, []byte("older and longer"), 0644))
	log := audit.NewMemoryLogger()

	result, err := backup.NewBackuper(log).Backup(src, backupDir)
	require.NoError(t, err)
	assert.True(t, result.Overwrote)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(content))
	requireSingleEntry(t, log, model.StatusSuccess)
}

func TestBackup_IntoOwnDirectoryKeepsContent(t *testing.T) {
	src, _ := setup(t)

	result, err := backup.NewBackuper(audit.NewMemoryLogger()).Backup(src, filepath.Dir(src))
	require.NoError(t, err)
	assert.Equal(t, src, result.Destination)

	content, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "hi", string(content))
}

func TestBackup_AuditFailureIsFatal(t *testing.T) {
	src, backupDir := setup(t)
	rec := &mockRecorder{}
	rec.On("Record", model.ActionBackup, model.StatusSuccess).Return(errors.New("log unwritable"))

	result, err := backup.NewBackuper(rec).Backup(src, backupDir)
	require.ErrorIs(t, err, errclass.ErrAuditUnavailable)
	assert.Nil(t, result)
	rec.AssertExpectations(t)
}

func TestBackup_ValidationFailureAuditedBeforeReturn(t *testing.T) {
	rec := &mockRecorder{}
	rec.On("Record", model.ActionBackup, model.StatusPathTraversal).Return(nil).Once()

	_, err := backup.NewBackuper(rec).Backup("x/../y", t.TempDir())
	require.ErrorIs(t, err, errclass.ErrInvalidPath)
	rec.AssertExpectations(t)
}
