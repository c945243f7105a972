package cmd

import (
	"github.com/spf13/cobra"

	"github.com/aravindvh/portfolio-api/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a configuration file with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the server, model fallback chain, and optional SMTP relay, then writes the result to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
