package logging

// Standardized structured logging keys shared across packages.
const (
	// FieldComponent identifies the emitting subsystem.
	FieldComponent = "component"
	// FieldRunID carries the per-invocation identifier.
	FieldRunID = "run_id"
	// FieldEventType labels machine-consumable log events.
	FieldEventType = "event_type"
	// FieldCueIndex identifies the transcript cue a message refers to.
	FieldCueIndex = "cue_index"
	// FieldSource is the transcript file being processed.
	FieldSource = "source"
)
