package layout

import (
	"errors"
)

// Default layout limits. 40 characters and two lines track common broadcast
// subtitle guidelines.
const (
	DefaultMaxChars = 40
	DefaultMaxLines = 2
)

// minLineWidth keeps the balanced target from collapsing into a column of
// tiny lines when the text is short.
const minLineWidth = 15

// Options carries the layout limits for splitting and wrapping. An explicit
// struct is passed to every call site; there is no ambient configuration.
type Options struct {
	// MaxChars is the hard per-line character cap and the cue splitting
	// budget.
	MaxChars int
	// MaxLines is the maximum number of display lines per cue.
	MaxLines int
}

// DefaultOptions returns the standard layout limits.
func DefaultOptions() Options {
	return Options{MaxChars: DefaultMaxChars, MaxLines: DefaultMaxLines}
}

// Validate ensures the limits are usable.
func (o Options) Validate() error {
	if o.MaxChars <= 0 {
		return errors.New("layout.max_chars_per_line must be positive")
	}
	if o.MaxLines < 1 {
		return errors.New("layout.max_lines_per_cue must be at least 1")
	}
	return nil
}

// widthCap returns the hard cap applied during wrapping. Single-line cues
// may run half again as wide rather than force an awkward mid-sentence
// break when the caller explicitly asked for one line.
func (o Options) widthCap() int {
	if o.MaxLines == 1 {
		return o.MaxChars * 3 / 2
	}
	return o.MaxChars
}
