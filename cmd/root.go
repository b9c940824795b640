package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	errUtils "github.com/mlstack/gcpdoctor/errors"
	"github.com/mlstack/gcpdoctor/pkg/config"
	"github.com/mlstack/gcpdoctor/pkg/doctor"
	log "github.com/mlstack/gcpdoctor/pkg/logger"
	"github.com/mlstack/gcpdoctor/pkg/ui"
)

const (
	flagConfig       = "config"
	flagLogsLevel    = "logs-level"
	flagNoColor      = "no-color"
	flagStrict       = "strict"
	flagVerifyBucket = "verify-bucket"
)

// cfg is the configuration resolved by PersistentPreRunE for the running command.
var cfg *config.Config

// newDoctor builds the Doctor for a command. Tests replace it to inject fakes.
var newDoctor = func(cmd *cobra.Command) *doctor.Doctor {
	return doctor.New(cfg, doctor.WithPrinter(newPrinter(cmd)))
}

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "gcpdoctor",
	Short: "Diagnose and set up GCP authentication for DVC and MLflow",
	Long: `gcpdoctor checks that Application Default Credentials use service-account impersonation,
that DVC has the GCP storage remote configured, and that MLflow can track to Cloud Storage.
Without a subcommand it runs every check, like 'gcpdoctor doctor'.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initConfig,
	RunE:              runDoctor,
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the root command with ctx as the parent of every check.
func ExecuteContext(ctx context.Context) error {
	return RootCmd.ExecuteContext(ctx)
}

func init() {
	pf := RootCmd.PersistentFlags()
	pf.String(flagConfig, "", "Path to a gcpdoctor.yaml config file. Defaults to ./gcpdoctor.yaml or ~/.config/gcpdoctor/gcpdoctor.yaml")
	pf.String(flagLogsLevel, config.DefaultLogsLevel, "Logs level. Supported log levels are Trace, Debug, Info, Warning, Off")
	pf.Bool(flagNoColor, false, "Disable colored output")
	pf.Bool(flagStrict, false, "Exit with a non-zero code when any check fails")
	pf.Bool(flagVerifyBucket, false, "Also read the configured bucket's metadata during the API check")
}

// initConfig loads .env, the optional config file, environment and flags, in increasing
// order of precedence, and configures logging.
func initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadDotEnv(config.DotEnvFileName); err != nil {
		return err
	}

	v := config.NewViper()
	flags := cmd.Flags()
	if err := v.BindPFlag(config.KeyLogsLevel, flags.Lookup(flagLogsLevel)); err != nil {
		return err
	}
	if err := v.BindPFlag(config.KeyVerifyBucket, flags.Lookup(flagVerifyBucket)); err != nil {
		return err
	}

	configFile, _ := flags.GetString(flagConfig)
	loaded, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	level, err := log.ParseLogLevel(loaded.Logs.Level)
	if err != nil {
		return err
	}
	log.Configure(level, os.Stderr)
	log.Debug("Configuration loaded", "command", cmd.Name(), "config_file", loaded.ConfigFile)

	cfg = loaded
	return nil
}

func newPrinter(cmd *cobra.Command) *ui.Printer {
	var opts []ui.Option
	if noColor, _ := cmd.Flags().GetBool(flagNoColor); noColor {
		opts = append(opts, ui.WithoutColor())
	}
	return ui.NewPrinter(cmd.OutOrStdout(), opts...)
}

// checkResult turns a failed check into an error only under --strict.
func checkResult(cmd *cobra.Command, ok bool) error {
	if ok {
		return nil
	}
	if strict, _ := cmd.Flags().GetBool(flagStrict); !strict {
		return nil
	}
	return errUtils.Build(errUtils.ErrChecksFailed).WithExitCode(1).Err()
}
