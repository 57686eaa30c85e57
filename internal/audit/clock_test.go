package audit

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/safebackup/safebackup/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileLogger_TimestampCarriesOffset(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logfile.txt")
	logger := NewFileLogger(logPath)
	logger.now = func() time.Time {
		return time.Date(2024, 6, 30, 23, 59, 59, 0, time.FixedZone("CEST", 2*3600))
	}

	require.NoError(t, logger.Record(model.ActionBackup, model.StatusSuccess))

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-30T23:59:59+02:00, backup, Success\n", string(data))
}
