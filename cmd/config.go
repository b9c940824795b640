package cmd

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	errUtils "github.com/mlstack/gcpdoctor/errors"
)

var configCmd = &cobra.Command{
	Use:     "config",
	Short:   "Print the resolved configuration as YAML",
	Long:    `Prints the configuration after merging defaults, the config file, .env, environment variables and flags.`,
	Example: "gcpdoctor config",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return errUtils.Build(errUtils.ErrInvalidConfig).WithCause(err).Err()
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
