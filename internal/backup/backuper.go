// Package backup copies a single file into a backup directory.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/safebackup/safebackup/internal/audit"
	"github.com/safebackup/safebackup/internal/integrity"
	"github.com/safebackup/safebackup/pkg/errclass"
	"github.com/safebackup/safebackup/pkg/fsutil"
	"github.com/safebackup/safebackup/pkg/logging"
	"github.com/safebackup/safebackup/pkg/model"
	"github.com/safebackup/safebackup/pkg/pathutil"
)

// Backuper handles backup operations.
type Backuper struct {
	recorder audit.Recorder
}

// NewBackuper creates a new backuper that audits through rec.
func NewBackuper(rec audit.Recorder) *Backuper {
	return &Backuper{recorder: rec}
}

// Backup reads source fully into memory and writes it to backupDir under the
// source's base name. An existing file at the destination is overwritten.
// Only the final path element of source is kept.
func (b *Backuper) Backup(source, backupDir string) (*model.BackupResult, error) {
	if err := pathutil.Validate(source); err != nil {
		return nil, b.fail(model.StatusPathTraversal, err)
	}

	if !fsutil.IsRegularFile(source) {
		return nil, b.fail(model.StatusFileNotExist,
			errclass.ErrNotFound.WithMessagef("source file does not exist or is not a file: %s", source))
	}

	content, err := readAll(source)
	if err != nil {
		return nil, b.fail(err.Message, err)
	}

	dest := filepath.Join(backupDir, filepath.Base(source))
	overwrote := fsutil.Exists(dest)

	if err := writeAll(dest, content); err != nil {
		return nil, b.fail(err.Message, err)
	}

	logging.Debug("backup written", map[string]any{
		"source":      source,
		"destination": dest,
		"bytes":       len(content),
		"overwrote":   overwrote,
	})

	result := &model.BackupResult{
		Source:      source,
		Destination: dest,
		Bytes:       len(content),
		SHA256:      integrity.ContentHash(content),
		Overwrote:   overwrote,
	}
	if err := audit.Conclude(b.recorder, model.ActionBackup, model.StatusSuccess, nil); err != nil {
		return nil, err
	}
	return result, nil
}

func (b *Backuper) fail(status string, opErr error) error {
	return audit.Conclude(b.recorder, model.ActionBackup, status, opErr)
}

func readAll(path string) ([]byte, *errclass.SafeError) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errclass.ErrIO.Wrap(err, fmt.Sprintf("Failed to open source file: %v", err))
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, errclass.ErrIO.Wrap(err, fmt.Sprintf("Failed to read source file: %v", err))
	}
	return content, nil
}

func writeAll(dest string, content []byte) *errclass.SafeError {
	f, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return errclass.ErrIO.Wrap(err, fmt.Sprintf("Failed to create backup file: %v", err))
	}
	if err := fsutil.WriteAllSync(f, content); err != nil {
		f.Close()
		return errclass.ErrIO.Wrap(err, fmt.Sprintf("Failed to write backup file: %v", err))
	}
	if err := f.Close(); err != nil {
		return errclass.ErrIO.Wrap(err, fmt.Sprintf("Failed to write backup file: %v", err))
	}
	return nil
}
