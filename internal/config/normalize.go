package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeHistory(); err != nil {
		return err
	}
	c.normalizeStyle()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeHistory() error {
	if strings.TrimSpace(c.History.Dir) == "" {
		c.History.Dir = defaultHistoryDir
	}
	var err error
	if c.History.Dir, err = expandPath(c.History.Dir); err != nil {
		return fmt.Errorf("history.dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeStyle() {
	c.Style.FontName = strings.TrimSpace(c.Style.FontName)
	c.Style.PrimaryColor = strings.TrimSpace(c.Style.PrimaryColor)
	c.Style.OutlineColor = strings.TrimSpace(c.Style.OutlineColor)
	c.Style.BackColor = strings.TrimSpace(c.Style.BackColor)
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
