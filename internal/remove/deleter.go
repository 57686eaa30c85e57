// Package remove deletes a file after explicit operator confirmation.
package remove

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/safebackup/safebackup/internal/audit"
	"github.com/safebackup/safebackup/internal/prompt"
	"github.com/safebackup/safebackup/pkg/errclass"
	"github.com/safebackup/safebackup/pkg/fsutil"
	"github.com/safebackup/safebackup/pkg/logging"
	"github.com/safebackup/safebackup/pkg/model"
	"github.com/safebackup/safebackup/pkg/pathutil"
)

const confirmWord = "yes"

// Deleter handles delete operations.
type Deleter struct {
	recorder  audit.Recorder
	confirmer prompt.Confirmer
}

// NewDeleter creates a new deleter.
func NewDeleter(rec audit.Recorder, confirmer prompt.Confirmer) *Deleter {
	return &Deleter{recorder: rec, confirmer: confirmer}
}

// Question returns the confirmation prompt shown for path.
func Question(path string) string {
	return fmt.Sprintf("Are you sure you want to delete '%s'? (yes/no):", path)
}

// Confirmed reports whether response is an affirmative answer.
func Confirmed(response string) bool {
	return strings.ToLower(strings.TrimSpace(response)) == confirmWord
}

// Delete removes path once the operator answers "yes". Any other answer
// cancels; cancellation is reported in the result, not as an error.
func (d *Deleter) Delete(path string) (*model.DeleteResult, error) {
	if err := pathutil.Validate(path); err != nil {
		return nil, d.conclude(model.StatusPathTraversal, err)
	}

	response, err := d.confirmer.Confirm(Question(path))
	if err != nil {
		opErr := errclass.ErrIO.Wrap(err, fmt.Sprintf("Failed to read input: %v", err))
		return nil, d.conclude(opErr.Message, opErr)
	}

	if !Confirmed(response) {
		if err := d.conclude(model.StatusCancelledByUser, nil); err != nil {
			return nil, err
		}
		return &model.DeleteResult{Path: path, Cancelled: true}, nil
	}

	// os.Remove would also take an empty directory.
	if info, err := os.Lstat(path); err == nil && info.IsDir() {
		opErr := errclass.ErrIO.WithMessagef("Failed to delete file: %s is a directory", path)
		return nil, d.conclude(opErr.Message, opErr)
	}

	if err := os.Remove(path); err != nil {
		opErr := errclass.ErrIO.Wrap(err, fmt.Sprintf("Failed to delete file: %v", err))
		return nil, d.conclude(opErr.Message, opErr)
	}

	if err := fsutil.FsyncDir(filepath.Dir(path)); err != nil {
		logging.Debug("fsync after delete failed", map[string]any{"path": path, "error": err.Error()})
	}

	if err := d.conclude(model.StatusSuccess, nil); err != nil {
		return nil, err
	}
	return &model.DeleteResult{Path: path, Deleted: true}, nil
}

func (d *Deleter) conclude(status string, opErr error) error {
	return audit.Conclude(d.recorder, model.ActionDelete, status, opErr)
}
