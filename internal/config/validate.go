package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"subjectid/internal/pipeline"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateGenerate(); err != nil {
		return err
	}
	if err := c.validateAuth(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateGenerate() error {
	if _, err := pipeline.ParseMethod(c.Generate.DefaultMethod); err != nil {
		return fmt.Errorf("generate.default_method: %w", err)
	}
	if utf8.RuneCountInString(c.Generate.CSVDelimiter) != 1 {
		return fmt.Errorf("generate.csv_delimiter must be a single character, got %q", c.Generate.CSVDelimiter)
	}
	if c.Generate.CSVDelimiter == "\n" || c.Generate.CSVDelimiter == "\r" {
		return errors.New("generate.csv_delimiter must not be a line break")
	}
	return nil
}

func (c *Config) validateAuth() error {
	if !c.Auth.Enabled {
		return nil
	}
	if len(c.Auth.Users) == 0 {
		return errors.New("auth.users must define at least one user when auth.enabled is true")
	}
	for name, user := range c.Auth.Users {
		if user.Password == "" {
			return fmt.Errorf("auth.users.%s.password must be set", name)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
