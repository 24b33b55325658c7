package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Client struct {
		BaseURL string        `mapstructure:"base_url"`
		Timeout time.Duration `mapstructure:"timeout"` // 0 keeps the platform default
	} `mapstructure:"client"`

	Server struct {
		Addr string `mapstructure:"addr"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Provider struct {
		Name         string `mapstructure:"name"` // "gemini" or "openai"
		Model        string `mapstructure:"model"`
		GoogleApiKey string `mapstructure:"google_api_key"`
		OpenaiApiKey string `mapstructure:"openai_api_key"`
	} `mapstructure:"provider"`

	Prompts struct {
		Summary string `mapstructure:"summary"` // path to a template, empty for the built-in one
		Notes   string `mapstructure:"notes"`
		Quiz    string `mapstructure:"quiz"`
	} `mapstructure:"prompts"`

	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("client.base_url", "http://localhost:5000")
	v.SetDefault("client.timeout", time.Duration(0))
	v.SetDefault("server.addr", "localhost")
	v.SetDefault("server.port", "5000")
	v.SetDefault("provider.name", "gemini")
	v.SetDefault("provider.model", "gemini-2.0-flash")
	v.SetDefault("log.level", "info")
}

// LoadConfig reads config.yaml from the working directory, the environment and
// an optional .env file. A missing config file is not an error.
func LoadConfig() (*Config, error) {
	// The backend has always read its API key from .env.
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded environment from .env")
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BRIEFLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider keys keep their conventional names.
	v.BindEnv("provider.google_api_key", "GEMINI_API_KEY", "GOOGLE_API_KEY")
	v.BindEnv("provider.openai_api_key", "OPENAI_API_KEY")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug("Config file not found, using defaults and environment.")
	} else {
		log.Debugf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	return &config, nil
}
