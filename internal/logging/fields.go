package logging

// Shared structured field names. Fault lines carry an event type plus a hint
// and impact so a reader can act on them without digging through stage code.
const (
	FieldEventType = "event_type"
	FieldErrorHint = "error_hint"
	FieldImpact    = "impact"

	FieldRunID = "run_id"
	FieldStage = "stage"
	FieldDiner = "diner"
)
