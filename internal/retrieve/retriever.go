// Package retrieve reads a backup file back into memory.
package retrieve

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"

	"github.com/safebackup/safebackup/internal/audit"
	"github.com/safebackup/safebackup/internal/integrity"
	"github.com/safebackup/safebackup/pkg/errclass"
	"github.com/safebackup/safebackup/pkg/model"
	"github.com/safebackup/safebackup/pkg/pathutil"
)

// Retriever handles retrieve operations.
type Retriever struct {
	recorder audit.Recorder
}

// NewRetriever creates a new retriever that audits through rec.
func NewRetriever(rec audit.Recorder) *Retriever {
	return &Retriever{recorder: rec}
}

// Retrieve reads the whole file at path. A missing file is an I/O error,
// not ErrNotFound.
func (r *Retriever) Retrieve(path string) (*model.RetrieveResult, error) {
	if err := pathutil.Validate(path); err != nil {
		return nil, r.conclude(model.StatusPathTraversal, err)
	}

	f, err := os.Open(path)
	if err != nil {
		opErr := errclass.ErrIO.Wrap(err, fmt.Sprintf("Failed to open backup file: %v", err))
		return nil, r.conclude(opErr.Message, opErr)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		opErr := errclass.ErrIO.Wrap(err, fmt.Sprintf("Failed to read backup file: %v", err))
		return nil, r.conclude(opErr.Message, opErr)
	}

	if err := r.conclude(model.StatusSuccess, nil); err != nil {
		return nil, err
	}
	return &model.RetrieveResult{
		Path:   path,
		Bytes:  len(data),
		SHA256: integrity.ContentHash(data),
		Text:   DecodeLossy(data),
		Data:   data,
	}, nil
}

func (r *Retriever) conclude(status string, opErr error) error {
	return audit.Conclude(r.recorder, model.ActionRetrieve, status, opErr)
}

// DecodeLossy decodes data as UTF-8, replacing invalid bytes with U+FFFD.
func DecodeLossy(data []byte) string {
	out, err := unicode.UTF8.NewDecoder().Bytes(data)
	if err != nil {
		// The UTF-8 decoder substitutes rather than fails; keep the raw
		// bytes if that ever changes.
		return string(data)
	}
	return string(out)
}
