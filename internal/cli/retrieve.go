package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safebackup/safebackup/internal/retrieve"
	"github.com/safebackup/safebackup/pkg/color"
)

func newRetrieveCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "retrieve <backup_file>",
		Short: "Print the contents of a backup file",
		Long: `Print the contents of a backup file.

Bytes that are not valid UTF-8 are shown as the replacement character.`,
		Args: exactArgs(1, "retrieve command requires backup file path"),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := o.openAuditLog()
			if err != nil {
				return err
			}

			result, err := retrieve.NewRetriever(logger).Retrieve(args[0])
			if err != nil {
				return err
			}

			if o.wantJSON() {
				return outputJSON(cmd.OutOrStdout(), result)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, color.Header(fmt.Sprintf("Retrieved content (%d bytes):", result.Bytes)))
			fmt.Fprintln(out, result.Text)
			return nil
		},
	}
}
