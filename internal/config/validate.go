package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateRadarr(); err != nil {
		return err
	}
	if err := c.validateKeepList(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateRadarr() error {
	if strings.TrimSpace(c.Radarr.URL) == "" {
		return errors.New("radarr.url must be set (or export RADARR_URL)")
	}
	parsed, err := url.Parse(c.Radarr.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("radarr.url %q is not a valid URL", c.Radarr.URL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("radarr.url scheme %q is not supported", parsed.Scheme)
	}
	if c.Radarr.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/prunarr/config.toml"
		}
		return fmt.Errorf("radarr.api_key is required. Set RADARR_API_KEY env var or edit %s (create with 'prunarr config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateKeepList() error {
	if strings.TrimSpace(c.KeepList.Path) == "" {
		return errors.New("keep_list.path must be set")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format %q is not supported (use console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level %q is not supported", c.Logging.Level)
	}
	return nil
}
