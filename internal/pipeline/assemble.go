package pipeline

import (
	"log/slog"
	"strings"

	"cueburn/internal/ass"
	"cueburn/internal/layout"
	"cueburn/internal/logging"
	"cueburn/internal/textutil"
	"cueburn/internal/timedtext"
)

// Result is the outcome of assembling one transcript. Warnings flag cues
// that degraded (unsplit or truncated) without stopping the run.
type Result struct {
	// Cues are the post-split display cues in chronological order.
	Cues []timedtext.Cue
	// Events carry the wrapped, escaped text ready for serialization.
	Events []ass.Event
	// Warnings lists lossy layout conditions, in cue order.
	Warnings []layout.Warning
}

// Assemble validates raw transcript cues, splits and wraps each in order,
// and returns the renderable event stream. Malformed input aborts with an
// error; layout degradations are collected as warnings and logged.
func Assemble(cues []timedtext.Cue, opts layout.Options, logger *slog.Logger) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := logging.NewComponentLogger(logger, "pipeline")

	result := &Result{}
	for i, cue := range cues {
		if err := cue.Validate(i); err != nil {
			return nil, err
		}

		pieces, ok := layout.Split(cue, opts.MaxChars)
		if !ok {
			warning := layout.Warning{
				Code:     layout.WarnUnsplitCue,
				CueIndex: i,
				Detail:   "cue exceeds character budget but has no word timing",
			}
			result.Warnings = append(result.Warnings, warning)
			log.Warn("over-long cue left unsplit",
				logging.Int(logging.FieldCueIndex, i),
				logging.Int("text_width", textutil.Width(cue.Text)),
				logging.Int("max_chars", opts.MaxChars),
				logging.String(logging.FieldEventType, string(layout.WarnUnsplitCue)))
		}

		for _, piece := range pieces {
			lines, dropped := layout.Wrap(wrapWords(piece), opts)
			if dropped > 0 {
				warning := layout.Warning{
					Code:         layout.WarnTruncatedLines,
					CueIndex:     i,
					DroppedWords: dropped,
					Detail:       "wrapped layout exceeded the line limit",
				}
				result.Warnings = append(result.Warnings, warning)
				log.Warn("display lines truncated",
					logging.Int(logging.FieldCueIndex, i),
					logging.Int("dropped_words", dropped),
					logging.Int("max_lines", opts.MaxLines),
					logging.String(logging.FieldEventType, string(layout.WarnTruncatedLines)))
			}

			result.Cues = append(result.Cues, piece)
			result.Events = append(result.Events, ass.Event{
				Start: piece.Start,
				End:   piece.End,
				Text:  eventText(lines),
			})
		}
	}
	return result, nil
}

// Render assembles the transcript and serializes it in one step.
func Render(cues []timedtext.Cue, opts layout.Options, style ass.Style, logger *slog.Logger) (string, *Result, error) {
	result, err := Assemble(cues, opts, logger)
	if err != nil {
		return "", nil, err
	}
	doc, err := ass.Document(style, result.Events)
	if err != nil {
		return "", nil, err
	}
	return doc, result, nil
}

// wrapWords yields the word list the wrapper lays out. Cues without word
// timing fall back to whitespace-separated tokens of the text.
func wrapWords(cue timedtext.Cue) []string {
	if len(cue.Words) > 0 {
		words := make([]string, len(cue.Words))
		for i, w := range cue.Words {
			words[i] = w.Text
		}
		return words
	}
	return strings.Fields(cue.Text)
}

func eventText(lines [][]string) string {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = ass.EscapeText(strings.Join(line, " "))
	}
	return strings.Join(rendered, ass.LineBreak)
}
