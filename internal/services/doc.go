// Package services defines the shared error taxonomy used across the
// pipeline so callers can classify failures without string matching.
package services
