package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/safebackup/safebackup/pkg/color"
	"github.com/safebackup/safebackup/pkg/config"
	"github.com/safebackup/safebackup/pkg/errclass"
	"github.com/safebackup/safebackup/pkg/logging"
)

const usageText = `Usage:
  safebackup backup <source_file> <backup_directory>
  safebackup retrieve <backup_file>
  safebackup delete <file_path>
  safebackup log [--tail N]`

// options holds the global flags and the configuration resolved from them.
type options struct {
	cfgFile    string
	auditLog   string
	jsonOutput bool
	noColor    bool
	debug      bool

	// cfg is resolved before any subcommand runs.
	cfg *config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	o := &options{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "safebackup",
		Short: "safebackup - audited backup, retrieve and delete of single files",
		Long: `safebackup copies a file into a backup directory, reads a backup back,
and deletes files after confirmation. Every path argument is checked for
path traversal, and every attempt is recorded in an append-only audit log.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: o.loadConfig,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errclass.ErrUsage.WithMessage("missing command")
		},
	}

	cmd.PersistentFlags().StringVar(&o.cfgFile, "config", "", "config file (default is ./"+config.DefaultFile+")")
	cmd.PersistentFlags().StringVar(&o.auditLog, "log-file", "", "audit log path (default is ./logfile.txt)")
	cmd.PersistentFlags().BoolVar(&o.jsonOutput, "json", false, "output in JSON format")
	cmd.PersistentFlags().BoolVar(&o.noColor, "no-color", false, "disable colored output")
	cmd.PersistentFlags().BoolVar(&o.debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(
		newBackupCmd(o),
		newRetrieveCmd(o),
		newDeleteCmd(o),
		newLogCmd(o),
	)
	return cmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		reportError(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}

// loadConfig resolves file, environment and flag settings, then configures
// logging and color for the run.
func (o *options) loadConfig(cmd *cobra.Command, args []string) error {
	v := config.NewViper()
	if err := v.BindPFlag("audit_log", cmd.Flags().Lookup("log-file")); err != nil {
		return err
	}
	if err := v.BindPFlag("no_color", cmd.Flags().Lookup("no-color")); err != nil {
		return err
	}

	cfg, err := config.Resolve(o.cfgFile, v)
	if err != nil {
		return errclass.ErrUsage.WithMessagef("load config: %v", err)
	}
	if o.jsonOutput {
		cfg.OutputFormat = "json"
	}
	if o.debug {
		cfg.Logging.Level = "debug"
	}
	o.cfg = cfg

	if _, err := logging.Configure(cfg.Logging.Level, cfg.Logging.Format, cmd.ErrOrStderr()); err != nil {
		return errclass.ErrUsage.WithMessagef("configure logging: %v", err)
	}
	color.Init(cfg.NoColor)

	logging.Debug("config resolved", map[string]any{
		"audit_log":     cfg.AuditLog,
		"output_format": cfg.OutputFormat,
		"config_file":   o.cfgFile,
	})
	return nil
}

func (o *options) wantJSON() bool {
	return o.cfg.OutputFormat == "json"
}

// outputJSON prints v as indented JSON.
func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// reportError prints err for the operator. Usage problems also print the
// usage summary.
func reportError(w io.Writer, err error) {
	msg := err.Error()
	var se *errclass.SafeError
	if errors.As(err, &se) {
		msg = se.Detail()
	}
	fmt.Fprintf(w, "%s %s\n", color.Error("Error:"), msg)

	if isUsageError(err) {
		fmt.Fprintln(w, usageText)
	}
}
