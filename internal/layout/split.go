package layout

import (
	"cueburn/internal/textutil"
	"cueburn/internal/timedtext"
)

// Split divides a cue whose text exceeds maxChars into multiple shorter
// cues along word timing boundaries. Cues already within budget come back
// unchanged as the single element. ok is false when the cue exceeds the
// budget but carries no word timing: timing cannot be fabricated, so the
// cue is returned unsplit and the caller decides how to surface it.
func Split(cue timedtext.Cue, maxChars int) (cues []timedtext.Cue, ok bool) {
	if textutil.Width(cue.Text) <= maxChars {
		return []timedtext.Cue{cue}, true
	}
	if len(cue.Words) == 0 {
		return []timedtext.Cue{cue}, false
	}

	var out []timedtext.Cue
	var chunk []timedtext.Word
	running := 0
	for _, word := range cue.Words {
		// Each word charges its width plus one trailing separator.
		cost := textutil.Width(word.Text) + 1
		if len(chunk) > 0 && running+cost > maxChars {
			out = append(out, timedtext.FromWords(chunk))
			chunk = nil
			running = 0
		}
		chunk = append(chunk, word)
		running += cost
	}
	out = append(out, timedtext.FromWords(chunk))

	// Word timings can under-run the segment's acoustic boundaries on
	// either side. Stretch the outer chunks back to the original cue
	// interval so the pieces cover it without opening gaps.
	if cue.Start < out[0].Start {
		out[0].Start = cue.Start
	}
	last := &out[len(out)-1]
	if cue.End > last.End {
		last.End = cue.End
	}
	return out, true
}
