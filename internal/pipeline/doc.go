// Package pipeline drives the full transcript-to-document flow: validate
// cues, split over-long ones along word timing, wrap each into display
// lines, and serialize the result as a styled ASS document.
//
// One invocation handles one transcript; there is no shared state between
// invocations, so a host may run many in parallel.
package pipeline
