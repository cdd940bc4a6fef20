package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wealthdesk/advisor-agent/internal/llm"
	"github.com/wealthdesk/advisor-agent/internal/mail"
)

// Config holds all application configuration
// Supports environment variables with sensible defaults
//
// Environment Variables:
// LLM Configuration:
// - LLM_API_KEY: API key for the LLM provider (required)
// - LLM_API_URL: API endpoint URL (default: https://api.openai.com/v1)
// - LLM_MODEL: Model name to use (default: gpt-4o-mini)
// - LLM_MAX_TOKENS: Maximum tokens for responses (default: 2000)
// - LLM_TEMPERATURE: Temperature for responses (default: 0)
// - LLM_TIMEOUT: Request timeout in seconds (default: 120)
//
// Mail Configuration:
// - SMTP_HOST: Mail relay host (default: smtp.gmail.com)
// - SMTP_PORT: Mail relay port, implicit TLS (default: 465)
// - SMTP_USER: Account and From address (optional; sends fail closed without it)
// - SMTP_PASSWORD: Account password or app password
// - SMTP_SENDER_NAME: Optional display name for the From header
// - MAIL_AUDIT_LOG: Optional file path; every send attempt is recorded there
//
// Agent Configuration:
// - AGENT_MAX_ITERATIONS: Max tool-calling round-trips per turn (default: 10)
//
// Session Configuration:
// - SESSION_TTL_MINUTES: Idle minutes before a session is pruned (default: 60)
// - SESSION_SWEEP_CRON: Cron expression for the prune sweep (default: every 10 minutes)
//
// Server Configuration:
// - HTTP_ADDR: Listen address (default: :8080)
// - UI_STATIC_DIR: Directory with the web UI assets (optional)
// - UI_ENABLED: Serve the web UI (default: false)
// - LOG_LEVEL: debug/info/warn/error (default: info)
type Config struct {
	// LLM Configuration
	LLM llm.Config `json:"llm"`

	// Mail Configuration
	Mail mail.Config `json:"mail"`

	// Agent Configuration
	Agent AgentConfig `json:"agent"`

	// Session Configuration
	Session SessionConfig `json:"session"`

	// Server Configuration
	Server ServerConfig `json:"server"`
}

// AgentConfig holds the configuration for the agent
type AgentConfig struct {
	MaxIterations int `json:"max_iterations"` // Max tool calling iterations
}

// SessionConfig holds the configuration for session housekeeping
type SessionConfig struct {
	TTLMinutes int    `json:"ttl_minutes"`
	SweepCron  string `json:"sweep_cron"`
}

// ServerConfig holds the configuration for the HTTP server
type ServerConfig struct {
	Addr        string `json:"addr"`
	UIStaticDir string `json:"ui_static_dir"`
	UIEnabled   bool   `json:"ui_enabled"`
	LogLevel    string `json:"log_level"`
}

// Option is a function type for configuring Config
type Option func(*Config)

// NewFromEnv creates a new Config instance with values from environment variables and options
func NewFromEnv(opts ...Option) (*Config, error) {
	config := &Config{
		LLM: llm.Config{
			APIKey:      getEnvString("LLM_API_KEY", ""),
			APIURL:      getEnvString("LLM_API_URL", "https://api.openai.com/v1"),
			Model:       getEnvString("LLM_MODEL", "gpt-4o-mini"),
			MaxTokens:   getEnvInt("LLM_MAX_TOKENS", 2000),
			Temperature: getEnvFloat("LLM_TEMPERATURE", 0),
			Timeout:     getEnvInt("LLM_TIMEOUT", 120),
		},
		Mail: mail.Config{
			Host:       getEnvString("SMTP_HOST", "smtp.gmail.com"),
			Port:       getEnvInt("SMTP_PORT", 465),
			User:       getEnvString("SMTP_USER", ""),
			Password:   getEnvString("SMTP_PASSWORD", ""),
			SenderName: getEnvString("SMTP_SENDER_NAME", ""),
			AuditLog:   getEnvString("MAIL_AUDIT_LOG", ""),
		},
		Agent: AgentConfig{
			MaxIterations: getEnvInt("AGENT_MAX_ITERATIONS", 10),
		},
		Session: SessionConfig{
			TTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 60),
			SweepCron:  getEnvString("SESSION_SWEEP_CRON", "*/10 * * * *"),
		},
		Server: ServerConfig{
			Addr:        getEnvString("HTTP_ADDR", ":8080"),
			UIStaticDir: getEnvString("UI_STATIC_DIR", ""),
			UIEnabled:   getEnvBool("UI_ENABLED", false),
			LogLevel:    getEnvString("LOG_LEVEL", "info"),
		},
	}

	// Apply custom options
	for _, opt := range opts {
		opt(config)
	}

	// Validate required configuration
	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks if all required configuration is properly set
func (c *Config) validate() error {
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	if c.Agent.MaxIterations < 1 {
		return fmt.Errorf("AGENT_MAX_ITERATIONS must be greater than 0")
	}
	if c.Session.TTLMinutes < 1 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be greater than 0")
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat gets a float value from environment variables with default
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvBool gets a boolean value from environment variables with default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
