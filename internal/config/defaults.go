package config

// DefaultModels is the fallback model list shipped out of the box,
// ordered by speed.
var DefaultModels = []string{
	"gemini-2.5-flash",
	"gemini-2.0-flash",
	"gemini-flash-latest",
	"gemini-pro-latest",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:     8080,
			AllowAll: false,
		},
		Chat: ChatConfig{
			Models:       append([]string(nil), DefaultModels...),
			RateLimitRPM: 0,
		},
		SMTP: SMTPConfig{
			Port: 587,
		},
	}
}
