package justify

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"laudure/internal/config"
	"laudure/internal/dataset"
	"laudure/internal/llm"
	"laudure/internal/logging"
	"laudure/internal/pipeline"
)

const stageName = "justify"

// Generic fallbacks substituted when a justification request fails.
const (
	fallbackBoolean = "Based on customer communication patterns and history."
	fallbackScalar  = "Based on customer communication and preferences."
)

func fallbackListEntry(value string) string {
	return "Based on customer feedback about " + strings.ToLower(value) + "."
}

// Stats summarizes a completed run for console reporting.
type Stats struct {
	Reservations int
	Requests     int
	Fallbacks    int
}

// Appender is the justification stage.
type Appender struct {
	cfg    *config.Config
	client *llm.Client
	logger *slog.Logger
	sleep  pipeline.Sleeper

	stats Stats
}

// NewAppender constructs the stage with explicit dependencies. The sleeper
// defaults to the real one when nil.
func NewAppender(cfg *config.Config, client *llm.Client, logger *slog.Logger, sleep pipeline.Sleeper) *Appender {
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Appender{
		cfg:    cfg,
		client: client,
		logger: pipeline.StageLogger(logger, stageName),
		sleep:  sleep,
	}
}

func (a *Appender) Name() string { return stageName }

// Stats reports counters from the last Run.
func (a *Appender) Stats() Stats { return a.stats }

// Run loads the enriched document, appends justifications to every insight
// value, and rewrites the document at the same path.
func (a *Appender) Run(ctx context.Context) error {
	if err := a.cfg.RequireAPIKey(); err != nil {
		return pipeline.Wrap(pipeline.ErrPrecondition, stageName, "check credential", "", err)
	}

	doc, err := dataset.Load(a.cfg.Paths.EnrichedFile)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrPrecondition, stageName, "load enriched document",
			"run the insights stage first", err)
	}

	a.stats = Stats{}
	total := len(doc.Diners)
	for idx := range doc.Diners {
		diner := &doc.Diners[idx]
		a.logger.Info("processing diner",
			logging.String(logging.FieldDiner, diner.Name),
			logging.Int("index", idx+1),
			logging.Int("total", total),
		)
		for r := range diner.Reservations {
			notes := diner.Reservations[r].Notes
			if notes == nil {
				continue
			}
			a.stats.Reservations++
			a.appendAll(ctx, *diner, &notes.CustomerInsights)
		}
	}

	if err := dataset.WriteJSON(a.cfg.Paths.EnrichedFile, doc); err != nil {
		return pipeline.Wrap(pipeline.ErrPersistence, stageName, "write enriched document", "", err)
	}

	a.logger.Info("justifications written",
		logging.String("path", a.cfg.Paths.EnrichedFile),
		logging.Int("reservations", a.stats.Reservations),
		logging.Int("requests", a.stats.Requests),
		logging.Int("fallbacks", a.stats.Fallbacks),
	)
	return nil
}

// appendAll walks the six insight keys in a fixed order. Keys with empty or
// false values are skipped.
func (a *Appender) appendAll(ctx context.Context, diner dataset.Diner, ci *dataset.CustomerInsights) {
	if len(ci.CustomerValues) > 0 {
		ci.CustomerValuesJustifications = a.justifyList(ctx, diner, "customer_values", ci.CustomerValues)
	}

	// A false boolean is skipped like an empty list, so only the
	// "New Customer" label ever reaches the model.
	if ci.IsNewCustomer != nil && *ci.IsNewCustomer {
		ci.IsNewCustomerJustification = a.justifyValue(ctx, diner, "is_new_customer", "New Customer", fallbackBoolean)
	}

	if len(ci.SpecialAccommodations) > 0 {
		ci.SpecialAccommodationsJustifications = a.justifyList(ctx, diner, "special_accommodations", ci.SpecialAccommodations)
	}

	if len(ci.StaffInteractionPreferences) > 0 {
		values := make([]string, len(ci.StaffInteractionPreferences))
		for i, style := range ci.StaffInteractionPreferences {
			values[i] = string(style)
		}
		ci.StaffInteractionPreferencesJustifications = a.justifyList(ctx, diner, "staff_interaction_preferences", values)
	}

	if ci.TastePreferences != dataset.TasteUnknown {
		ci.TastePreferencesJustification = a.justifyValue(ctx, diner, "taste_preferences", string(ci.TastePreferences), fallbackScalar)
	}

	if len(ci.PersonalInterests) > 0 {
		ci.PersonalInterestsJustifications = a.justifyList(ctx, diner, "personal_interests", ci.PersonalInterests)
	}
}

// justifyList fans out one request per element, keyed by the original value.
func (a *Appender) justifyList(ctx context.Context, diner dataset.Diner, insightType string, values []string) map[string]string {
	justifications := make(map[string]string, len(values))
	for _, value := range values {
		justifications[value] = a.justifyValue(ctx, diner, insightType, value, fallbackListEntry(value))
	}
	return justifications
}

// justifyValue issues one request and substitutes the supplied fallback
// sentence on any failure. The throttle sleep applies after successes only.
func (a *Appender) justifyValue(ctx context.Context, diner dataset.Diner, insightType, value, fallback string) string {
	a.stats.Requests++
	content, err := a.client.Complete(ctx, llm.Request{
		Model:       a.cfg.LLM.JustifyModel,
		User:        justificationPrompt(diner, insightType, value),
		Temperature: 0.1,
		MaxTokens:   50,
	})
	if err != nil {
		a.stats.Fallbacks++
		a.logger.Warn("justification request failed",
			logging.String(logging.FieldDiner, diner.Name),
			logging.String("insight_type", insightType),
			logging.String("insight_value", value),
			logging.Error(err),
			logging.String(logging.FieldEventType, "justification_request_failed"),
			logging.String(logging.FieldImpact, "generic fallback sentence substituted"),
		)
		return fallback
	}
	a.sleep(a.cfg.RequestDelay())
	return strings.TrimSpace(content)
}
