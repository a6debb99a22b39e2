package timedtext

import (
	"encoding/json"
	"fmt"
	"strings"

	"cueburn/internal/services"
	"cueburn/internal/textutil"
)

type transcriptWord struct {
	Word  string   `json:"word"`
	Start float64  `json:"start"`
	End   float64  `json:"end"`
	Score *float64 `json:"score"`
}

type transcriptSegment struct {
	Text  string           `json:"text"`
	Start float64          `json:"start"`
	End   float64          `json:"end"`
	Words []transcriptWord `json:"words"`
}

type transcriptPayload struct {
	Segments []transcriptSegment `json:"segments"`
}

// ParseTranscript decodes a WhisperX-style transcript and returns validated
// cues in the order the engine emitted them. Segments must already be
// chronological; the parser rejects malformed input rather than coercing it.
func ParseTranscript(data []byte) ([]Cue, error) {
	var payload transcriptPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, services.Wrap(services.ErrMalformedInput, "timedtext", "parse transcript", "invalid JSON", err)
	}
	if len(payload.Segments) == 0 {
		return nil, services.Wrap(services.ErrMalformedInput, "timedtext", "parse transcript", "transcript has no segments", nil)
	}

	cues := make([]Cue, 0, len(payload.Segments))
	for i, segment := range payload.Segments {
		cue, err := cueFromSegment(i, segment)
		if err != nil {
			return nil, err
		}
		if err := cue.Validate(i); err != nil {
			return nil, err
		}
		cues = append(cues, cue)
	}
	return cues, nil
}

func cueFromSegment(index int, segment transcriptSegment) (Cue, error) {
	words := make([]Word, 0, len(segment.Words))
	for _, w := range segment.Words {
		text := textutil.Normalize(w.Word)
		if text == "" {
			continue
		}
		probability := 1.0
		if w.Score != nil {
			probability = *w.Score
		}
		words = append(words, Word{Start: w.Start, End: w.End, Text: text, Probability: probability})
	}

	if len(words) > 0 {
		cue := FromWords(words)
		// Segment bounds win over word bounds so leading/trailing silence
		// inside the segment stays covered.
		if segment.Start < cue.Start {
			cue.Start = segment.Start
		}
		if segment.End > cue.End {
			cue.End = segment.End
		}
		return cue, nil
	}

	text := textutil.Normalize(segment.Text)
	if strings.TrimSpace(text) == "" {
		return Cue{}, services.Wrap(services.ErrMalformedInput, "timedtext", "parse transcript",
			fmt.Sprintf("segment %d: no text and no words", index), nil)
	}
	return Cue{Start: segment.Start, End: segment.End, Text: text}, nil
}
