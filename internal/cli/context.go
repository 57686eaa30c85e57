package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/safebackup/safebackup/internal/audit"
	"github.com/safebackup/safebackup/pkg/errclass"
)

// openAuditLog returns the audit logger for this run. The log is opened once
// up front so that an unwritable trail stops the run before any file is
// touched.
func (o *options) openAuditLog() (*audit.FileLogger, error) {
	logger := audit.NewFileLogger(o.cfg.AuditLog)
	if err := logger.Probe(); err != nil {
		return nil, errclass.ErrAuditUnavailable.Wrap(err, fmt.Sprintf("cannot write audit log: %v", err))
	}
	return logger, nil
}

// exactArgs is cobra.ExactArgs with the operator-facing message used in the
// usage summary.
func exactArgs(n int, msg string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errclass.ErrUsage.WithMessage(msg)
		}
		return nil
	}
}

func isUsageError(err error) bool {
	if errors.Is(err, errclass.ErrUsage) {
		return true
	}
	// cobra's own parse errors
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") ||
		strings.HasPrefix(msg, "unknown flag") ||
		strings.HasPrefix(msg, "unknown shorthand flag")
}
