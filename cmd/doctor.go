package cmd

import (
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:     "doctor",
	Short:   "Run the authentication, DVC and MLflow checks",
	Long:    `Runs the GCP authentication, DVC remote and MLflow tracking checks in order and prints a summary. Every check runs even when an earlier one fails.`,
	Example: "gcpdoctor doctor --strict",
	Args:    cobra.NoArgs,
	RunE:    runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	report := newDoctor(cmd).Run(cmd.Context())
	return checkResult(cmd, report.OK())
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}
