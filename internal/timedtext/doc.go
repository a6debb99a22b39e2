// Package timedtext defines the immutable word and cue value types produced
// by transcription and consumed by layout and serialization.
//
// Cues are never mutated after creation; splitting and wrapping build new
// values. The package also parses the WhisperX-style JSON transcript format
// emitted by external transcription engines.
package timedtext
