// Package config loads settings from .env, an optional config file and the
// environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/rcliao/reflect-journal/internal/llm"
)

const (
	EnvPrefix  = "REFLECT"
	ConfigName = ".reflect-journal" // extension is implicit
	DefaultDB  = "~/.reflect-journal/entries.db"
)

// Config is the resolved application configuration.
type Config struct {
	DBPath     string
	Format     string
	LLM        llm.Config
	ConfigFile string // file that was read, if any
}

// Load reads settings in increasing precedence: defaults, config file,
// environment (REFLECT_*). A .env file in the working directory, or the
// given envFiles, are loaded into the environment first; a missing .env is
// not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.SetDefault("db", DefaultDB)
	v.SetDefault("format", "json")
	v.SetDefault("provider", llm.ProviderTogether)
	v.SetDefault("timeout", llm.DefaultTimeout.String())
	v.SetDefault("max_retries", 2)

	v.SetConfigName(ConfigName)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if override := os.Getenv("REFLECT_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	dbPath, err := ExpandPath(v.GetString("db"))
	if err != nil {
		return nil, err
	}

	timeout := v.GetDuration("timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid timeout %q", v.GetString("timeout"))
	}

	provider := v.GetString("provider")
	return &Config{
		DBPath: dbPath,
		Format: v.GetString("format"),
		LLM: llm.Config{
			Provider:       provider,
			Model:          v.GetString("model"),
			BaseURL:        v.GetString("base_url"),
			APIKey:         apiKey(v.GetString("api_key"), provider),
			Timeout:        timeout,
			MaxRetries:     v.GetInt("max_retries"),
			StaticResponse: v.GetString("static_response"),
		},
		ConfigFile: v.ConfigFileUsed(),
	}, nil
}

// apiKey falls back to the provider's conventional variables.
func apiKey(explicit, provider string) string {
	if explicit != "" {
		return explicit
	}
	keys := []string{"TOGETHER_API_KEY", "together_api"}
	if provider == llm.ProviderOpenAI {
		keys = []string{"OPENAI_API_KEY"}
	}
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// ExpandPath resolves a leading ~ and cleans the path.
func ExpandPath(p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", p, err)
	}
	return filepath.Clean(expanded), nil
}
