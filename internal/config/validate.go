package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable. Errors name the offending
// option so the user can fix the file directly.
func (c *Config) Validate() error {
	if err := c.validateLayout(); err != nil {
		return err
	}
	if err := c.validateStyle(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateLayout() error {
	if c.Layout.MaxCharsPerLine <= 0 {
		return errors.New("layout.max_chars_per_line must be positive")
	}
	if c.Layout.MaxLinesPerCue < 1 {
		return errors.New("layout.max_lines_per_cue must be at least 1")
	}
	return nil
}

func (c *Config) validateStyle() error {
	style := c.ASSStyle()
	if err := style.Validate(); err != nil {
		return err
	}
	if c.Style.Alignment < 1 {
		return fmt.Errorf("style.alignment must be an ASS numpad position 1-9, got %d", c.Style.Alignment)
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
