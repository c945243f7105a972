package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aravindvh/portfolio-api/internal/config"
	"github.com/aravindvh/portfolio-api/internal/llm"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Show the configured model fallback chain and available Gemini models",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		fmt.Println("Fallback chain (tried in order):")
		for i, m := range cfg.Chat.Models {
			fmt.Printf("  %d. %s\n", i+1, m)
		}

		if !llm.Configured() {
			fmt.Fprintf(os.Stderr, "\nSet %s to list models available to your key.\n", llm.APIKeyEnvVar)
			return nil
		}

		client := llm.NewGeminiProvider(os.Getenv(llm.APIKeyEnvVar))
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		models, err := client.ListModels(ctx)
		if err != nil {
			return fmt.Errorf("listing models: %w", err)
		}

		fmt.Println("\nAvailable for generation:")
		for _, m := range models {
			if m.SupportsGeneration() {
				fmt.Printf("  %s\n", m.ShortName())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}
