// Package config loads process configuration: feature toggles, server
// address, and collaborator credentials. The core treats everything here as
// read-only input supplied at process start.
package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/jonathan/resume-analyzer/internal/types"
)

const envPrefix = "RESUME_ANALYZER"

// Features are the pipeline toggles. Disabling a stage removes its
// dimensions from the breakdown; it never degrades an enabled stage.
type Features struct {
	IndustryAnalysis bool `mapstructure:"industry-analysis"`
	ATSChecks        bool `mapstructure:"ats-checks"`
	LLMAugmentation  bool `mapstructure:"llm-augmentation"`
}

// Config is the full process configuration.
type Config struct {
	ServerAddr   string   `mapstructure:"server-addr" validate:"required"`
	DatabaseURL  string   `mapstructure:"database-url"`
	GeminiAPIKey string   `mapstructure:"gemini-api-key"`
	GeminiModel  string   `mapstructure:"gemini-model"`
	Debug        bool     `mapstructure:"debug"`
	JSONLogs     bool     `mapstructure:"json-logs"`
	Features     Features `mapstructure:"features"`
}

// Load reads configuration from an optional file plus environment variables
// (RESUME_ANALYZER_* with dashes mapped to underscores). File values win over
// defaults; environment wins over the file.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server-addr", ":8080")
	v.SetDefault("gemini-model", "gemini-2.0-flash")
	v.SetDefault("features.industry-analysis", true)
	v.SetDefault("features.ats-checks", true)
	v.SetDefault("features.llm-augmentation", false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, types.NewConfigurationError("reading config file %s: %v", cfgFile, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("resume-analyzer")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, types.NewConfigurationError("reading config: %v", err)
			}
			// No config file is fine; defaults and env apply.
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, types.NewConfigurationError("parsing config: %v", err)
	}
	if err := validator.New().Struct(&cfg); err != nil {
		return nil, types.NewConfigurationError("invalid config: %v", err)
	}
	return &cfg, nil
}
