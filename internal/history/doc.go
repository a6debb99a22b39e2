// Package history persists a local ledger of render invocations so lossy
// runs (truncated or unsplit cues) can be found after the fact.
//
// The ledger is SQLite in WAL mode. A file lock around store initialization
// keeps concurrent invocations from racing schema creation; ordinary reads
// and writes rely on SQLite's own locking.
package history
