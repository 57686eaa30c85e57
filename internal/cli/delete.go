package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safebackup/safebackup/internal/prompt"
	"github.com/safebackup/safebackup/internal/remove"
	"github.com/safebackup/safebackup/pkg/color"
	"github.com/safebackup/safebackup/pkg/logging"
)

func newDeleteCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <file_path>",
		Short: "Delete a file after confirmation",
		Long: `Delete a file after confirmation.

You are asked to type "yes" (any case). Any other answer cancels the
delete; a cancelled delete is not an error.`,
		Args: exactArgs(1, "delete command requires file path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := o.openAuditLog()
			if err != nil {
				return err
			}

			// Keep stdout clean for the JSON document.
			promptOut := cmd.OutOrStdout()
			if o.wantJSON() {
				promptOut = cmd.ErrOrStderr()
			}
			confirmer := prompt.NewLineConfirmer(cmd.InOrStdin(), promptOut)
			logging.Debug("awaiting delete confirmation", map[string]any{
				"path":        args[0],
				"interactive": confirmer.IsInteractive(),
			})

			result, err := remove.NewDeleter(logger, confirmer).Delete(args[0])
			if err != nil {
				return err
			}

			if o.wantJSON() {
				return outputJSON(cmd.OutOrStdout(), result)
			}
			if result.Cancelled {
				fmt.Fprintln(cmd.OutOrStdout(), color.Warning("Delete operation cancelled."))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), color.Success("File deleted successfully"))
			return nil
		},
	}
}
