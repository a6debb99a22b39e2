package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"cueburn/internal/ass"
	"cueburn/internal/layout"
)

//go:embed sample_config.toml
var sampleConfig string

// Layout contains the cue splitting and line wrapping limits.
type Layout struct {
	MaxCharsPerLine int `toml:"max_chars_per_line"`
	MaxLinesPerCue  int `toml:"max_lines_per_cue"`
}

// Style contains the visual parameters embedded in the subtitle document.
type Style struct {
	FontName     string `toml:"font_name"`
	FontSize     int    `toml:"font_size"`
	PrimaryColor string `toml:"primary_color"`
	OutlineColor string `toml:"outline_color"`
	BackColor    string `toml:"back_color"`
	Alignment    int    `toml:"alignment"`
	MarginL      int    `toml:"margin_l"`
	MarginR      int    `toml:"margin_r"`
	MarginV      int    `toml:"margin_v"`
	PlayResX     int    `toml:"play_res_x"`
	PlayResY     int    `toml:"play_res_y"`
}

// History contains configuration for the render ledger.
type History struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for cueburn.
type Config struct {
	Layout  Layout  `toml:"layout"`
	Style   Style   `toml:"style"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cueburn/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file existed at the resolved path; when it does not, defaults
// are used.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			var strict *toml.StrictMissingError
			if errors.As(err, &strict) {
				return nil, "", false, fmt.Errorf("parse config: unrecognized option: %s", strings.TrimSpace(strict.String()))
			}
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cueburn.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// LayoutOptions converts the layout section into the options struct the
// splitter and wrapper take.
func (c *Config) LayoutOptions() layout.Options {
	return layout.Options{
		MaxChars: c.Layout.MaxCharsPerLine,
		MaxLines: c.Layout.MaxLinesPerCue,
	}
}

// ASSStyle converts the style section into the writer's style value.
func (c *Config) ASSStyle() ass.Style {
	return ass.Style{
		FontName:     c.Style.FontName,
		FontSize:     c.Style.FontSize,
		PrimaryColor: c.Style.PrimaryColor,
		OutlineColor: c.Style.OutlineColor,
		BackColor:    c.Style.BackColor,
		Alignment:    c.Style.Alignment,
		MarginL:      c.Style.MarginL,
		MarginR:      c.Style.MarginR,
		MarginV:      c.Style.MarginV,
		PlayResX:     c.Style.PlayResX,
		PlayResY:     c.Style.PlayResY,
	}
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
