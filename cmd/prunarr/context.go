package main

import (
	"log/slog"
	"strings"
	"sync"

	"prunarr/internal/config"
	"prunarr/internal/keeplist"
	"prunarr/internal/logging"
	"prunarr/internal/radarr"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
		})
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

func (c *commandContext) radarrClient() (*radarr.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	client := radarr.New(radarr.Config{
		URL:            cfg.Radarr.URL,
		APIKey:         cfg.Radarr.APIKey,
		TimeoutSeconds: cfg.Radarr.TimeoutSeconds,
	}, radarr.WithLogger(c.ensureLogger()))
	return client, nil
}

func (c *commandContext) openKeepList() (*keeplist.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return keeplist.Open(cfg.KeepList.Path, c.ensureLogger())
}
