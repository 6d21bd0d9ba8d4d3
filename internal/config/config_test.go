package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	path := writeConfigFile(t, "")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "en", cfg.DefaultLanguage)
	require.Equal(t, "https://generativelanguage.googleapis.com", cfg.Gemini.BaseURL)
	require.Equal(t, "gemini-1.5-flash", cfg.Gemini.TextModel)
	require.Equal(t, "imagen-3.0-generate-001", cfg.Gemini.ImageModel)
	require.Equal(t, 120, cfg.Gemini.RequestTimeoutSeconds)
	require.Equal(t, "info", cfg.LogConfig.Level)
}

func TestLoadConfig_OverridesDefaults(t *testing.T) {
	path := writeConfigFile(t, `
defaultLanguage = "zh"

[logConfig]
level = "debug"
format = "json"

[gemini]
textModel = "gemini-2.0-flash"
requestTimeoutSeconds = 30

[auth]
authorizedUserIDs = [1, 2, 3]
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "zh", cfg.DefaultLanguage)
	require.Equal(t, "debug", cfg.LogConfig.Level)
	require.Equal(t, "gemini-2.0-flash", cfg.Gemini.TextModel)
	require.Equal(t, 30, cfg.Gemini.RequestTimeoutSeconds)
	require.Equal(t, []int64{1, 2, 3}, cfg.Auth.AuthorizedUserIDs)
	// untouched defaults survive
	require.Equal(t, "imagen-3.0-generate-001", cfg.Gemini.ImageModel)
}

func TestLoadSecrets(t *testing.T) {
	cfg := Default()
	t.Setenv(EnvBotToken, "123456:token")
	t.Setenv(EnvGeminiAPIKey, "gm-key")
	require.NoError(t, LoadSecrets(cfg))
	require.Equal(t, "123456:token", cfg.BotToken)
	require.Equal(t, "gm-key", cfg.GeminiAPIKey)
}

func TestLoadSecrets_MissingBotToken(t *testing.T) {
	cfg := Default()
	t.Setenv(EnvBotToken, "")
	t.Setenv(EnvGeminiAPIKey, "gm-key")
	err := LoadSecrets(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), EnvBotToken)
}

func TestLoadSecrets_MissingGeminiKey(t *testing.T) {
	cfg := Default()
	t.Setenv(EnvBotToken, "123456:token")
	t.Setenv(EnvGeminiAPIKey, "")
	err := LoadSecrets(cfg)
	require.Error(t, err)
	require.Contains(t, err.Error(), EnvGeminiAPIKey)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		cfg := Default()
		cfg.BotToken = "t"
		cfg.GeminiAPIKey = "k"
		return cfg
	}

	require.NoError(t, ValidateConfig(valid()))

	cfg := valid()
	cfg.Gemini.BaseURL = "not a url"
	require.Error(t, ValidateConfig(cfg))

	cfg = valid()
	cfg.Gemini.TextModel = ""
	require.Error(t, ValidateConfig(cfg))

	cfg = valid()
	cfg.Gemini.RequestTimeoutSeconds = 0
	require.Error(t, ValidateConfig(cfg))

	cfg = valid()
	cfg.DefaultLanguage = ""
	require.Error(t, ValidateConfig(cfg))
}

func TestMaskedPrint(t *testing.T) {
	require.Equal(t, "****", MaskedPrint("abcd"))
	require.Equal(t, "********WXYZ", MaskedPrint("ABCDEFGHWXYZ"))
}
