package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to the given path.
func RunWizard(configPath string) (*Config, error) {
	fmt.Println("Welcome! Let's configure the portfolio API.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 2. CORS policy.
	corsPrompt := promptui.Select{
		Label: "CORS policy",
		Items: []string{
			"allow all origins (development)",
			"same-origin only (production, behind a proxy)",
		},
	}
	corsIdx, _, err := corsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("cors: %w", err)
	}
	cfg.Server.AllowAll = corsIdx == 0

	// 3. Fallback model chain.
	modelsPrompt := promptui.Prompt{
		Label:   "Model fallback chain (comma-separated, tried in order)",
		Default: strings.Join(cfg.Chat.Models, ","),
	}
	modelsStr, err := modelsPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("models: %w", err)
	}
	cfg.Chat.Models = splitAndTrim(modelsStr)

	// 4. Optional SMTP relay for the contact form.
	smtpPrompt := promptui.Select{
		Label: "Enable the contact form (requires an SMTP relay)?",
		Items: []string{"yes", "no"},
	}
	smtpIdx, _, err := smtpPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("smtp: %w", err)
	}
	if smtpIdx == 0 {
		hostPrompt := promptui.Prompt{
			Label:   "SMTP host",
			Default: "smtp.gmail.com",
		}
		if cfg.SMTP.Host, err = hostPrompt.Run(); err != nil {
			return nil, fmt.Errorf("smtp host: %w", err)
		}

		smtpPortPrompt := promptui.Prompt{
			Label:   "SMTP port",
			Default: strconv.Itoa(cfg.SMTP.Port),
		}
		smtpPortStr, err := smtpPortPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("smtp port: %w", err)
		}
		cfg.SMTP.Port, _ = strconv.Atoi(smtpPortStr)

		userPrompt := promptui.Prompt{
			Label: "SMTP username (sender address)",
		}
		if cfg.SMTP.User, err = userPrompt.Run(); err != nil {
			return nil, fmt.Errorf("smtp user: %w", err)
		}

		adminPrompt := promptui.Prompt{
			Label:   "Admin email (receives contact submissions)",
			Default: cfg.SMTP.User,
		}
		if cfg.SMTP.AdminEmail, err = adminPrompt.Run(); err != nil {
			return nil, fmt.Errorf("admin email: %w", err)
		}
	} else {
		cfg.SMTP = SMTPConfig{}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Secrets stay out of the file.
	if os.Getenv("GEMINI_API_KEY") == "" {
		fmt.Println("\nNote: Set GEMINI_API_KEY in your environment before starting the server.")
	}
	if cfg.SMTP.Host != "" && os.Getenv("SMTP_PASSWORD") == "" {
		fmt.Println("Note: Set SMTP_PASSWORD in your environment to enable the contact form.")
	}

	if err := cfg.Save(configPath); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", configPath)
	return cfg, nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
