package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeRadarr(); err != nil {
		return err
	}
	if err := c.normalizeKeepList(); err != nil {
		return err
	}
	c.normalizeFilter()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeRadarr() error {
	if strings.TrimSpace(c.Radarr.URL) == "" || c.Radarr.URL == defaultRadarrURL {
		if value, ok := os.LookupEnv("RADARR_URL"); ok && strings.TrimSpace(value) != "" {
			c.Radarr.URL = value
		}
	}
	if c.Radarr.APIKey == "" {
		if value, ok := os.LookupEnv("RADARR_API_KEY"); ok {
			c.Radarr.APIKey = value
		}
	}
	c.Radarr.URL = strings.TrimRight(strings.TrimSpace(c.Radarr.URL), "/")
	c.Radarr.APIKey = strings.TrimSpace(c.Radarr.APIKey)
	if c.Radarr.TimeoutSeconds <= 0 {
		c.Radarr.TimeoutSeconds = defaultRadarrTimeout
	}
	return nil
}

func (c *Config) normalizeKeepList() error {
	if strings.TrimSpace(c.KeepList.Path) == "" || c.KeepList.Path == defaultKeepListPath {
		if value, ok := os.LookupEnv("KEEP_LIST_PATH"); ok && strings.TrimSpace(value) != "" {
			c.KeepList.Path = value
		}
	}
	expanded, err := expandPath(c.KeepList.Path)
	if err != nil {
		return fmt.Errorf("keep_list.path: %w", err)
	}
	c.KeepList.Path = expanded
	return nil
}

func (c *Config) normalizeFilter() {
	c.Filter.Genre = strings.TrimSpace(c.Filter.Genre)
	if c.Filter.Genre == "" {
		c.Filter.Genre = defaultFilterGenre
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
