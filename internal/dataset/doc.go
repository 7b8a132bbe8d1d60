// Package dataset defines the French Laudure customer data model and the
// whole-document JSON persistence used by every pipeline stage.
//
// Documents are read fully into memory, mutated in place, and written back
// atomically under a file lock. There is no partial or incremental
// persistence; a stage either produces a complete valid document or nothing.
package dataset
