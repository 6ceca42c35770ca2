// Package pipeline orchestrates one sync run end to end: precondition
// checks, registry locking, recipe extraction, reconciliation, artifact
// generation, and run history recording.
//
// A dry run executes the same pipeline but performs no writes at all: no
// lock file, no node files, no artifacts, no run history row.
package pipeline
