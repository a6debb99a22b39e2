package ass

import (
	"fmt"
	"io"
	"strings"
)

// Event is one ordered dialogue entry: a displayed interval plus its
// already-wrapped text (lines joined with \N).
type Event struct {
	Start float64
	End   float64
	Text  string
}

// LineBreak is the ASS in-event line separator.
const LineBreak = `\N`

var textEscaper = strings.NewReplacer(
	"\\", "⧵", // reverse solidus would start an override sequence
	"{", "(",
	"}", ")",
	"\r", " ",
	"\n", " ",
)

// EscapeText neutralizes characters in transcript text that ASS would
// interpret as override tags or event structure. Applied to each display
// line before lines are joined with LineBreak.
func EscapeText(value string) string {
	return strings.TrimSpace(textEscaper.Replace(value))
}

// WriteDocument validates the style and serializes a complete ASS document:
// script info, the style header, and the ordered event list. Any validation
// failure aborts before a single byte is written.
func WriteDocument(w io.Writer, style Style, events []Event) error {
	if err := style.Validate(); err != nil {
		return err
	}
	s := style.withDefaults()

	var b strings.Builder
	b.Grow(512 + len(events)*64)

	b.WriteString("[Script Info]\n")
	b.WriteString("ScriptType: v4.00+\n")
	fmt.Fprintf(&b, "PlayResX: %d\n", s.PlayResX)
	fmt.Fprintf(&b, "PlayResY: %d\n", s.PlayResY)
	// Layout owns wrapping; the renderer must not re-wrap.
	b.WriteString("WrapStyle: 2\n")
	b.WriteString("ScaledBorderAndShadow: yes\n\n")

	b.WriteString("[V4+ Styles]\n")
	b.WriteString("Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n")
	fmt.Fprintf(&b, "Style: Default,%s,%d,%s,%s,%s,%s,0,0,0,0,100,100,0,0,1,2,0,%d,%d,%d,%d,1\n\n",
		s.FontName, s.FontSize,
		s.PrimaryColor, s.PrimaryColor, s.OutlineColor, s.BackColor,
		s.Alignment, s.MarginL, s.MarginR, s.MarginV)

	b.WriteString("[Events]\n")
	b.WriteString("Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n")
	for _, event := range events {
		start, end := eventInterval(event.Start, event.End)
		fmt.Fprintf(&b, "Dialogue: 0,%s,%s,Default,,0,0,0,,%s\n", start, end, event.Text)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Document renders the full document as a string.
func Document(style Style, events []Event) (string, error) {
	var b strings.Builder
	if err := WriteDocument(&b, style, events); err != nil {
		return "", err
	}
	return b.String(), nil
}
