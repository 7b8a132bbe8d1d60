// Package justify implements the second pipeline stage: one short
// evidentiary sentence per insight value, merged back into the enriched
// document in place.
//
// List-valued insights fan out to one request per element. A failed request
// substitutes a fixed generic sentence for that value and the batch
// continues; only preconditions and the final write can fail the stage.
package justify
