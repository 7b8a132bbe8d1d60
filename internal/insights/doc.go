// Package insights implements the first pipeline stage: one conservative
// extraction request per diner, producing a structured insight set that is
// replicated onto every one of that diner's reservations together with a
// human-readable summary.
//
// The stage is fail-open per diner: a request or decode fault yields an empty
// insight set and processing continues. Only preconditions (credential,
// input document) and the final write can fail the stage.
package insights
