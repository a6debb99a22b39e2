// Package ass serializes cues and style parameters into an Advanced
// SubStation Alpha (ASS) document for an external burn-in renderer.
//
// Commas, carriage returns, and line feeds are structurally significant in
// the ASS format, so style inputs are validated against a strict color
// grammar before anything is written; a value that fails validation aborts
// document generation rather than being sanitized into something renderable.
package ass
