package config

import "cueburn/internal/layout"

const (
	defaultHistoryDir = "~/.local/share/cueburn"
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
	defaultFontName   = "Arial"
	defaultFontSize   = 48
	defaultAlignment  = 2
	defaultMarginL    = 40
	defaultMarginR    = 40
	defaultMarginV    = 60
	defaultPlayResX   = 1920
	defaultPlayResY   = 1080
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Layout: Layout{
			MaxCharsPerLine: layout.DefaultMaxChars,
			MaxLinesPerCue:  layout.DefaultMaxLines,
		},
		Style: Style{
			FontName:  defaultFontName,
			FontSize:  defaultFontSize,
			Alignment: defaultAlignment,
			MarginL:   defaultMarginL,
			MarginR:   defaultMarginR,
			MarginV:   defaultMarginV,
			PlayResX:  defaultPlayResX,
			PlayResY:  defaultPlayResY,
		},
		History: History{
			Enabled: true,
			Dir:     defaultHistoryDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
