package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"cdinventory/internal/config"
	"cdinventory/internal/logging"
	"cdinventory/internal/storage"
)

type commandContext struct {
	configFlag *string
	fileFlag   *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, fileFlag *string) *commandContext {
	return &commandContext{
		configFlag: configFlag,
		fileFlag:   fileFlag,
	}
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
		if c.fileFlag != nil {
			if err := cfg.OverrideStoragePath(*c.fileFlag); err != nil {
				c.configErr = err
				return
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// sessionLogger builds the file logger and tags it with a fresh session ID.
// The caller closes the log file with the returned function.
func (c *commandContext) sessionLogger() (*slog.Logger, func() error, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	logger, closeLog, err := logging.NewFromConfig(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	return logging.WithSessionID(logger, logging.NewSessionID()), closeLog, nil
}

func (c *commandContext) withGateway(logger *slog.Logger, fn func(storage.Gateway) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	gw, err := storage.Open(cfg, logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer gw.Close()
	return fn(gw)
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
