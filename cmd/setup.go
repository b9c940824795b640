package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mlstack/gcpdoctor/pkg/doctor"
)

const flagConfigure = "configure"

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Export credentials and wire DVC and MLflow to GCP",
	Long: `Exports GOOGLE_APPLICATION_CREDENTIALS for child processes, checks the DVC GCP remote and
points MLflow at the GCS tracking URI. With --configure a missing DVC remote is added as the default.`,
	Example: "gcpdoctor setup --configure",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		configure, _ := cmd.Flags().GetBool(flagConfigure)
		ok := newDoctor(cmd).Setup(cmd.Context(), doctor.SetupOptions{Configure: configure})
		return checkResult(cmd, ok)
	},
}

func init() {
	setupCmd.Flags().Bool(flagConfigure, false, "Add the DVC GCP remote when it is missing")
	RootCmd.AddCommand(setupCmd)
}
