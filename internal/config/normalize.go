package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLimits()
	c.normalizeGenerate()
	c.normalizeAuth()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.StateDir) == "" {
		c.Paths.StateDir = defaultStateDir
	}
	if c.Paths.StateDir, err = expandPath(c.Paths.StateDir); err != nil {
		return fmt.Errorf("paths.state_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeLimits() {
	if c.Limits.MaxNames <= 0 {
		c.Limits.MaxNames = defaultMaxNames
	}
	if c.Limits.MaxFileSizeMiB <= 0 {
		c.Limits.MaxFileSizeMiB = defaultMaxFileSizeMiB
	}
}

func (c *Config) normalizeGenerate() {
	c.Generate.DefaultMethod = strings.ToLower(strings.TrimSpace(c.Generate.DefaultMethod))
	if c.Generate.DefaultMethod == "" {
		c.Generate.DefaultMethod = defaultMethod
	}
	if c.Generate.CSVDelimiter == "" {
		c.Generate.CSVDelimiter = defaultCSVDelimiter
	}
}

func (c *Config) normalizeAuth() {
	users := make(map[string]User, len(c.Auth.Users))
	for name, user := range c.Auth.Users {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		user.Role = strings.TrimSpace(user.Role)
		if user.Role == "" {
			user.Role = "user"
		}
		users[name] = user
	}
	c.Auth.Users = users
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
