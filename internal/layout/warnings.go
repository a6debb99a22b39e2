package layout

import "fmt"

// WarningCode identifies a class of lossy layout behavior.
type WarningCode string

const (
	// WarnUnsplitCue marks a cue that exceeded the character budget but
	// carried no word timing, so it was passed through unsplit.
	WarnUnsplitCue WarningCode = "unsplit_overlong_cue"
	// WarnTruncatedLines marks a cue whose wrapped layout needed more lines
	// than allowed; trailing words were dropped from display.
	WarnTruncatedLines WarningCode = "truncated_lines"
)

// Warning records a lossy layout condition for one cue. Warnings are
// attached to the pipeline result instead of raised as errors so a batch
// runs to completion while flagging the affected cues.
type Warning struct {
	Code WarningCode
	// CueIndex is the position of the cue in the original transcript.
	CueIndex int
	// DroppedWords counts words removed from display (truncation only).
	DroppedWords int
	Detail       string
}

func (w Warning) String() string {
	if w.DroppedWords > 0 {
		return fmt.Sprintf("cue %d: %s (%d words dropped)", w.CueIndex, w.Code, w.DroppedWords)
	}
	return fmt.Sprintf("cue %d: %s", w.CueIndex, w.Code)
}
