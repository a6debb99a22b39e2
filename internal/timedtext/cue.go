package timedtext

import (
	"fmt"
	"strings"

	"cueburn/internal/services"
)

// Word is a single recognized spoken word with its timing and confidence.
type Word struct {
	Start       float64
	End         float64
	Text        string
	Probability float64
}

// Cue is a single subtitle display unit. Words is nil when the transcription
// engine supplied no word-level timing for the segment.
type Cue struct {
	Start float64
	End   float64
	Text  string
	Words []Word
}

// Duration returns the cue's displayed interval in seconds.
func (c Cue) Duration() float64 {
	return c.End - c.Start
}

// JoinWords returns the word texts joined by single spaces.
func JoinWords(words []Word) string {
	parts := make([]string, len(words))
	for i, w := range words {
		parts[i] = w.Text
	}
	return strings.Join(parts, " ")
}

// FromWords builds a cue spanning the given non-empty word sequence. Text is
// derived from the words so the two can never disagree.
func FromWords(words []Word) Cue {
	return Cue{
		Start: words[0].Start,
		End:   words[len(words)-1].End,
		Text:  JoinWords(words),
		Words: words,
	}
}

// Validate checks the cue invariants. index identifies the cue within its
// transcript for error reporting.
func (c Cue) Validate(index int) error {
	if c.Start > c.End {
		return services.Wrap(services.ErrMalformedInput, "timedtext", "validate cue",
			fmt.Sprintf("cue %d: start %.3f after end %.3f", index, c.Start, c.End), nil)
	}
	if strings.TrimSpace(c.Text) == "" {
		return services.Wrap(services.ErrMalformedInput, "timedtext", "validate cue",
			fmt.Sprintf("cue %d: empty text", index), nil)
	}
	if c.Words == nil {
		return nil
	}
	if len(c.Words) == 0 {
		return services.Wrap(services.ErrMalformedInput, "timedtext", "validate cue",
			fmt.Sprintf("cue %d: claims word timing but has no words", index), nil)
	}
	for i, w := range c.Words {
		if w.Start > w.End {
			return services.Wrap(services.ErrMalformedInput, "timedtext", "validate cue",
				fmt.Sprintf("cue %d word %d: start %.3f after end %.3f", index, i, w.Start, w.End), nil)
		}
		if i > 0 && w.Start < c.Words[i-1].Start {
			return services.Wrap(services.ErrMalformedInput, "timedtext", "validate cue",
				fmt.Sprintf("cue %d word %d: out of chronological order", index, i), nil)
		}
	}
	if JoinWords(c.Words) != c.Text {
		return services.Wrap(services.ErrMalformedInput, "timedtext", "validate cue",
			fmt.Sprintf("cue %d: text disagrees with its word sequence", index), nil)
	}
	return nil
}
