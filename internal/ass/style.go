package ass

import (
	"fmt"
	"strings"

	"cueburn/internal/services"
)

// Default style values for burned-in subtitles on a 1080p canvas.
const (
	defaultFontName     = "Arial"
	defaultFontSize     = 48
	defaultPrimaryColor = "&H00FFFFFF"
	defaultOutlineColor = "&H00000000"
	defaultBackColor    = "&H80000000"
	defaultAlignment    = 2 // bottom center
	defaultMarginL      = 40
	defaultMarginR      = 40
	defaultMarginV      = 60
	defaultPlayResX     = 1920
	defaultPlayResY     = 1080
)

// Style holds the visual parameters embedded in the document header. Color
// fields accept the grammar enforced by ValidateColor; empty colors fall
// back to the package defaults.
type Style struct {
	FontName     string
	FontSize     int
	PrimaryColor string
	OutlineColor string
	BackColor    string
	// Alignment uses ASS numpad positions 1-9.
	Alignment int
	MarginL   int
	MarginR   int
	MarginV   int
	PlayResX  int
	PlayResY  int
}

// DefaultStyle returns the standard burn-in style.
func DefaultStyle() Style {
	return Style{
		FontName:  defaultFontName,
		FontSize:  defaultFontSize,
		Alignment: defaultAlignment,
		MarginL:   defaultMarginL,
		MarginR:   defaultMarginR,
		MarginV:   defaultMarginV,
		PlayResX:  defaultPlayResX,
		PlayResY:  defaultPlayResY,
	}
}

// Validate rejects style parameters that cannot be serialized safely.
func (s Style) Validate() error {
	if strings.ContainsAny(s.FontName, ",\r\n") {
		return services.Wrap(services.ErrInjection, "ass", "validate style",
			"style field font_name contains ASS structural characters", nil)
	}
	for _, color := range []struct {
		field string
		value string
	}{
		{"primary_color", s.PrimaryColor},
		{"outline_color", s.OutlineColor},
		{"back_color", s.BackColor},
	} {
		if err := ValidateColor(color.field, color.value); err != nil {
			return err
		}
	}
	if s.FontSize < 0 {
		return services.Wrap(services.ErrValidation, "ass", "validate style",
			"font_size must not be negative", nil)
	}
	if s.Alignment < 0 || s.Alignment > 9 {
		return services.Wrap(services.ErrValidation, "ass", "validate style",
			fmt.Sprintf("alignment must be an ASS numpad position 1-9, got %d", s.Alignment), nil)
	}
	if s.MarginL < 0 || s.MarginR < 0 || s.MarginV < 0 {
		return services.Wrap(services.ErrValidation, "ass", "validate style",
			"margins must not be negative", nil)
	}
	if s.PlayResX < 0 || s.PlayResY < 0 {
		return services.Wrap(services.ErrValidation, "ass", "validate style",
			"play resolution must not be negative", nil)
	}
	return nil
}

// withDefaults fills zero-valued fields so a partially specified style still
// serializes into a complete header line.
func (s Style) withDefaults() Style {
	if s.FontName == "" {
		s.FontName = defaultFontName
	}
	if s.FontSize == 0 {
		s.FontSize = defaultFontSize
	}
	if s.Alignment == 0 {
		s.Alignment = defaultAlignment
	}
	if s.PlayResX == 0 {
		s.PlayResX = defaultPlayResX
	}
	if s.PlayResY == 0 {
		s.PlayResY = defaultPlayResY
	}
	s.PrimaryColor = NormalizeColor(s.PrimaryColor, defaultPrimaryColor)
	s.OutlineColor = NormalizeColor(s.OutlineColor, defaultOutlineColor)
	s.BackColor = NormalizeColor(s.BackColor, defaultBackColor)
	return s
}
