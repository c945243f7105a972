package cmd

import (
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "portfolio-api",
	Short: "Backend API for the portfolio website",
	Long: `portfolio-api serves the portfolio website backend: an AI chat
assistant that answers questions about the owner's work using a
keyword-scored prompt over a chain of Gemini models, a contact form
that relays submissions over SMTP, and read-only profile endpoints.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".portfolio.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
