// Package layout divides over-long cues along word timing boundaries and
// wraps cue text into balanced display lines under hard width caps.
//
// Both operations are pure: they take value inputs and produce new values.
// Degradations that lose information (truncated lines, an over-long cue that
// cannot be split) are reported as structured warnings rather than errors so
// a whole transcript can still be processed while lossy cues stay visible.
package layout
