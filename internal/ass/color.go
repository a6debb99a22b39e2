package ass

import (
	"fmt"
	"regexp"
	"strings"

	"cueburn/internal/services"
)

// Accepted color forms: ASS alpha-styled hex (&H followed by 1-8 hex
// digits) or conventional hex (# followed by 3-8 hex digits).
var (
	alphaHexPattern = regexp.MustCompile(`^&[Hh][0-9A-Fa-f]{1,8}$`)
	plainHexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{3,8}$`)
)

// ValidateColor checks a style color value against the accepted grammar.
// Empty values are permitted and mean "use the built-in default". Error
// messages name the offending field but never echo the raw value, which
// could itself be markup.
func ValidateColor(field, value string) error {
	if value == "" {
		return nil
	}
	if strings.ContainsAny(value, ",\r\n") {
		return services.Wrap(services.ErrInjection, "ass", "validate color",
			fmt.Sprintf("style field %s contains ASS structural characters", field), nil)
	}
	if alphaHexPattern.MatchString(value) || plainHexPattern.MatchString(value) {
		return nil
	}
	return services.Wrap(services.ErrValidation, "ass", "validate color",
		fmt.Sprintf("style field %s is not a recognized color format (&Hhex or #hex)", field), nil)
}

// NormalizeColor converts a validated color value into canonical ASS
// &HAABBGGRR form. Empty input yields fallback unchanged. The value must
// have passed ValidateColor; unvalidated input panics rather than emitting
// a possibly unsafe token.
func NormalizeColor(value, fallback string) string {
	if value == "" {
		return fallback
	}
	if alphaHexPattern.MatchString(value) {
		digits := strings.ToUpper(value[2:])
		return "&H" + strings.Repeat("0", 8-len(digits)) + digits
	}
	if !plainHexPattern.MatchString(value) {
		panic("ass: NormalizeColor called with unvalidated color")
	}

	digits := strings.ToUpper(value[1:])
	switch len(digits) {
	case 3, 4: // #RGB / #RGBA shorthand: double each digit.
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 5, 7: // Odd lengths are zero-padded to the next even form.
		digits = "0" + digits
	}

	rr, gg, bb := digits[0:2], digits[2:4], digits[4:6]
	alpha := "00" // ASS alpha is transparency; opaque by default.
	if len(digits) == 8 {
		// Web alpha (FF = opaque) inverts into ASS transparency.
		var web int
		fmt.Sscanf(digits[6:8], "%02X", &web)
		alpha = fmt.Sprintf("%02X", 0xFF-web)
	}
	return "&H" + alpha + bb + gg + rr
}
