package config

// ServerConfig holds the HTTP server settings.
type ServerConfig struct {
	Port      int    `yaml:"port" koanf:"port"`
	AllowAll  bool   `yaml:"allow_all" koanf:"allow_all"`
	StaticDir string `yaml:"static_dir" koanf:"static_dir"`
}

// ChatConfig holds the chat endpoint settings. Models are tried strictly
// in the listed order.
type ChatConfig struct {
	Models       []string `yaml:"models" koanf:"models"`
	RateLimitRPM int      `yaml:"rate_limit_rpm" koanf:"rate_limit_rpm"`
}

// SMTPConfig holds the mail relay settings. The password is not part of
// the file; it comes from the SMTP_PASSWORD environment variable.
type SMTPConfig struct {
	Host       string `yaml:"host" koanf:"host"`
	Port       int    `yaml:"port" koanf:"port"`
	User       string `yaml:"user" koanf:"user"`
	AdminEmail string `yaml:"admin_email" koanf:"admin_email"`
}

// Config is the top-level configuration, corresponding to .portfolio.yml.
type Config struct {
	Server      ServerConfig `yaml:"server" koanf:"server"`
	Chat        ChatConfig   `yaml:"chat" koanf:"chat"`
	SMTP        SMTPConfig   `yaml:"smtp" koanf:"smtp"`
	ProfilePath string       `yaml:"profile_path" koanf:"profile_path"`
}
