package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables carrying the two required secrets.
const (
	EnvBotToken     = "TELEGRAM_BOT_TOKEN"
	EnvGeminiAPIKey = "GEMINI_API_KEY"
)

type Config struct {
	// Secrets are populated from the environment by LoadSecrets, never
	// from the config file.
	BotToken     string `toml:"-"`
	GeminiAPIKey string `toml:"-"`

	DefaultLanguage string       `toml:"defaultLanguage"`
	LogConfig       LogConfig    `toml:"logConfig"`
	Gemini          GeminiConfig `toml:"gemini"`
	Auth            AuthConfig   `toml:"auth"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

type GeminiConfig struct {
	BaseURL               string `toml:"baseURL"`
	TextModel             string `toml:"textModel"`
	ImageModel            string `toml:"imageModel"`
	RequestTimeoutSeconds int    `toml:"requestTimeoutSeconds"`
}

type AuthConfig struct {
	// Empty list means the bot answers everyone.
	AuthorizedUserIDs []int64 `toml:"authorizedUserIDs"`
}

func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the settings used when the config file omits a field.
func Default() *Config {
	return &Config{
		DefaultLanguage: "en",
		LogConfig: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Gemini: GeminiConfig{
			BaseURL:               "https://generativelanguage.googleapis.com",
			TextModel:             "gemini-1.5-flash",
			ImageModel:            "imagen-3.0-generate-001",
			RequestTimeoutSeconds: 120,
		},
	}
}

// LoadSecrets reads the bot token and the Gemini API key from the process
// environment. A .env file next to the binary is honored when present.
func LoadSecrets(cfg *Config) error {
	_ = godotenv.Load()

	cfg.BotToken = os.Getenv(EnvBotToken)
	cfg.GeminiAPIKey = os.Getenv(EnvGeminiAPIKey)

	if cfg.BotToken == "" {
		return fmt.Errorf("environment variable %s is required", EnvBotToken)
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("environment variable %s is required", EnvGeminiAPIKey)
	}
	return nil
}

func ValidateURL(urlString string) bool {
	if urlString == "" {
		return false
	}
	u, err := url.Parse(urlString)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// MaskedPrint keeps only the last 4 characters of a secret visible.
func MaskedPrint(str string) string {
	if len(str) <= 4 {
		return strings.Repeat("*", len(str))
	}
	return strings.Repeat("*", len(str)-4) + str[len(str)-4:]
}

func ValidateConfig(cfg *Config) error {
	if cfg.BotToken == "" {
		return fmt.Errorf("%s is required", EnvBotToken)
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("%s is required", EnvGeminiAPIKey)
	}
	if !ValidateURL(cfg.Gemini.BaseURL) {
		return fmt.Errorf("gemini.baseURL must be a valid URL")
	}
	if cfg.Gemini.TextModel == "" {
		return fmt.Errorf("gemini.textModel is required")
	}
	if cfg.Gemini.ImageModel == "" {
		return fmt.Errorf("gemini.imageModel is required")
	}
	if cfg.Gemini.RequestTimeoutSeconds <= 0 {
		return fmt.Errorf("gemini.requestTimeoutSeconds must be greater than 0")
	}
	if cfg.DefaultLanguage == "" {
		return fmt.Errorf("defaultLanguage is required")
	}
	if cfg.LogConfig.Level == "" {
		return fmt.Errorf("logConfig.level is required")
	}
	if cfg.LogConfig.Format == "" {
		return fmt.Errorf("logConfig.format is required")
	}
	return nil
}
