package layout

import (
	"cueburn/internal/textutil"
)

// Wrap lays out words into at most opts.MaxLines display lines, balancing
// width across lines while respecting the hard cap. dropped reports how
// many trailing words were truncated away when even the cap could not fit
// the text into the allowed line count; the caller surfaces that loss.
//
// A single word wider than the effective width sits alone on its own line,
// never broken mid-word, even when it exceeds the cap: an overflowing line
// is a visible layout failure, a silently mangled word is not.
//
// The layout is deterministic: identical inputs yield identical lines.
func Wrap(words []string, opts Options) (lines [][]string, dropped int) {
	if len(words) == 0 {
		return nil, 0
	}

	total := textutil.JoinedWidth(words)
	// Ideal balanced width, then clamped into the renderable band.
	target := (total + opts.MaxLines - 1) / opts.MaxLines
	effective := clamp(target, minLineWidth, opts.widthCap())

	var current []string
	width := 0
	for _, word := range words {
		next := width + textutil.Width(word)
		if len(current) > 0 {
			next++
		}
		if len(current) > 0 && next > effective {
			lines = append(lines, current)
			current = []string{word}
			width = textutil.Width(word)
			continue
		}
		current = append(current, word)
		width = next
	}
	lines = append(lines, current)

	if len(lines) > opts.MaxLines {
		for _, line := range lines[opts.MaxLines:] {
			dropped += len(line)
		}
		lines = lines[:opts.MaxLines]
	}
	return lines, dropped
}

func clamp(value, low, high int) int {
	if high < low {
		high = low
	}
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
