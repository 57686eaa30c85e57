package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/safebackup/safebackup/internal/audit"
	"github.com/safebackup/safebackup/pkg/color"
	"github.com/safebackup/safebackup/pkg/errclass"
	"github.com/safebackup/safebackup/pkg/model"
)

func newLogCmd(o *options) *cobra.Command {
	var (
		tail   int
		action string
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the audit trail",
		Long: `Show the audit trail, oldest entry first.

Examples:
  safebackup log                     # every entry
  safebackup log --tail 20           # the last 20 entries
  safebackup log --action delete     # only delete attempts`,
		Args: exactArgs(0, "log command takes no arguments"),
		RunE: func(cmd *cobra.Command, args []string) error {
			if action != "" && !model.Action(action).Valid() {
				return errclass.ErrUsage.WithMessagef("unknown action %q (want backup, retrieve or delete)", action)
			}
			if tail < 0 {
				return errclass.ErrUsage.WithMessage("--tail must not be negative")
			}

			entries, err := audit.ReadEntries(o.cfg.AuditLog)
			if err != nil {
				return errclass.ErrIO.Wrap(err, err.Error())
			}
			entries = filterEntries(entries, model.Action(action), tail)

			if o.wantJSON() {
				if entries == nil {
					entries = []model.LogEntry{}
				}
				return outputJSON(cmd.OutOrStdout(), entries)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(out, color.Dim("No audit entries."))
				return nil
			}
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %-8s  %s\n", color.Dim(e.Timestamp.Format(time.RFC3339)), e.Action, statusColor(e))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&tail, "tail", "n", 0, "show only the last N entries")
	cmd.Flags().StringVar(&action, "action", "", "show only entries for this action")
	return cmd
}

// filterEntries keeps entries for action (all when empty), then the last
// tail of those (all when tail is 0).
func filterEntries(entries []model.LogEntry, action model.Action, tail int) []model.LogEntry {
	var kept []model.LogEntry
	for _, e := range entries {
		if action == "" || e.Action == action {
			kept = append(kept, e)
		}
	}
	if tail > 0 && len(kept) > tail {
		kept = kept[len(kept)-tail:]
	}
	return kept
}

func statusColor(e model.LogEntry) string {
	switch {
	case e.Succeeded():
		return color.Success(e.Status)
	case e.Status == model.StatusCancelledByUser:
		return color.Warning(e.Status)
	default:
		return color.Error(e.Status)
	}
}
