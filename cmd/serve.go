package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aravindvh/portfolio-api/internal/chat"
	"github.com/aravindvh/portfolio-api/internal/config"
	"github.com/aravindvh/portfolio-api/internal/contact"
	"github.com/aravindvh/portfolio-api/internal/llm"
	"github.com/aravindvh/portfolio-api/internal/profile"
	"github.com/aravindvh/portfolio-api/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio API server",
	Long:  `Starts the HTTP server with the chat assistant, contact form, and profile endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Local development convenience; missing .env is fine.
		_ = godotenv.Load()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = servePort
		}

		prof, err := profile.Load(cfg.ProfilePath)
		if err != nil {
			return fmt.Errorf("loading profile: %w", err)
		}

		// The chat endpoint degrades to a 500 with contact details when
		// no API key is present; the rest of the API still works.
		var provider llm.Provider
		if llm.Configured() {
			provider, err = llm.NewFromEnv(cfg.Chat.RateLimitRPM)
			if err != nil {
				return fmt.Errorf("creating LLM provider: %w", err)
			}
		} else {
			log.Printf("serve: %s not set, chat endpoint disabled", llm.APIKeyEnvVar)
		}

		srv := server.New(server.Config{
			Port:      cfg.Server.Port,
			StaticDir: cfg.Server.StaticDir,
			AllowAll:  cfg.Server.AllowAll,
		})
		r := srv.Router()

		chatSvc := chat.NewService(provider, cfg.Chat.Models, prof)
		chat.RegisterRoutes(r, chatSvc)

		profile.RegisterRoutes(r, prof)

		if cfg.MailEnabled() {
			transport := contact.NewSMTPTransport(contact.SMTPConfig{
				Host:       cfg.SMTP.Host,
				Port:       cfg.SMTP.Port,
				User:       cfg.SMTP.User,
				Password:   os.Getenv("SMTP_PASSWORD"),
				AdminEmail: cfg.SMTP.AdminEmail,
			})
			dispatcher := contact.NewDispatcher(transport, cfg.SMTP.AdminEmail, prof)
			contact.RegisterRoutes(r, dispatcher)
		} else {
			log.Printf("serve: smtp not configured, contact endpoint disabled")
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "portfolio-api v%s starting on port %d\n", Version, cfg.Server.Port)
		fmt.Fprintf(os.Stderr, "  Chat models: %v\n", cfg.Chat.Models)
		fmt.Fprintf(os.Stderr, "  Contact form: %v\n", cfg.MailEnabled())

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
