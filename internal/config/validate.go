package config

import (
	"errors"
	"fmt"
	"net/url"

	log "github.com/sirupsen/logrus"
)

// Validate checks the settings every command relies on.
func (c *Config) Validate() error {
	if c.Client.BaseURL == "" {
		return errors.New("client.base_url is required")
	}
	u, err := url.Parse(c.Client.BaseURL)
	if err != nil {
		return fmt.Errorf("client.base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("client.base_url must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("client.base_url must include a host")
	}
	if c.Client.Timeout < 0 {
		return errors.New("client.timeout must not be negative")
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// ValidateServer checks the settings needed to run the backend.
func (c *Config) ValidateServer() error {
	if c.Server.Port == "" {
		return errors.New("server.port is required")
	}
	switch c.Provider.Name {
	case "gemini":
		if c.Provider.GoogleApiKey == "" {
			return errors.New("provider.google_api_key (or GEMINI_API_KEY) is required when provider.name is gemini")
		}
	case "openai":
		if c.Provider.OpenaiApiKey == "" {
			return errors.New("provider.openai_api_key (or OPENAI_API_KEY) is required when provider.name is openai")
		}
	default:
		return fmt.Errorf("provider.name must be 'gemini' or 'openai', got %q", c.Provider.Name)
	}
	if c.Provider.Model == "" {
		return errors.New("provider.model is required")
	}
	return nil
}
