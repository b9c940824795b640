package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mlstack/gcpdoctor/pkg/doctor"
)

// newCheckCmd creates a subcommand that runs a single check.
func newCheckCmd(use, short string, check func(*doctor.Doctor, context.Context) bool) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Example: "gcpdoctor " + use,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return checkResult(cmd, check(newDoctor(cmd), cmd.Context()))
		},
	}
}

func init() {
	RootCmd.AddCommand(
		newCheckCmd(doctor.CheckAuth, "Check Application Default Credentials and GCP API access", (*doctor.Doctor).CheckAuth),
		newCheckCmd(doctor.CheckDVC, "Check the DVC GCP remote and run dvc status", (*doctor.Doctor).CheckDVC),
		newCheckCmd(doctor.CheckMLflow, "Check that MLflow can use the GCS tracking URI", (*doctor.Doctor).CheckMLflow),
	)
}
