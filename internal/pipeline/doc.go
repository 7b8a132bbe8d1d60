// Package pipeline defines the batch stage abstraction shared by the three
// enrichment stages and the error taxonomy that drives their fault policy.
//
// Precondition faults (missing credential, missing or malformed input) halt a
// stage before it produces output. Decode faults are per-unit and feed the
// documented fallback policy without aborting the batch. Persistence faults
// surface after the in-memory work is complete; that work is lost.
package pipeline
