package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safebackup/safebackup/internal/backup"
	"github.com/safebackup/safebackup/pkg/color"
)

func newBackupCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "backup <source_file> <backup_directory>",
		Short: "Copy a file into a backup directory",
		Long: `Copy a file into a backup directory.

Only the file name is kept: backing up /data/reports/q1.csv into /bk
produces /bk/q1.csv. An existing file with the same name is overwritten.
The backup directory must already exist.`,
		Args: exactArgs(2, "backup command requires source file and backup directory"),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := o.openAuditLog()
			if err != nil {
				return err
			}

			result, err := backup.NewBackuper(logger).Backup(args[0], args[1])
			if err != nil {
				return err
			}

			if o.wantJSON() {
				return outputJSON(cmd.OutOrStdout(), result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.Success("Backup successful:"), result.Destination)
			return nil
		},
	}
}
