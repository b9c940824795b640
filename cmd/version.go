package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mlstack/gcpdoctor/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Display the version of gcpdoctor you are running",
	Example: "gcpdoctor version",
	Args:    cobra.NoArgs,
	// Printing the version must not depend on a valid configuration.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "gcpdoctor %s %s/%s\n", version.Version, runtime.GOOS, runtime.GOARCH)
		return err
	},
}

func init() {
	RootCmd.AddCommand(versionCmd)
}
