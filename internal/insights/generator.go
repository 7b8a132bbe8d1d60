package insights

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

const stageName = "insights"

// Stats summarizes a completed run for console reporting.
type Stats struct {
	Diners       int
	WithInsights int
}

// Generator is the insight extraction stage.
type Generator struct {
	cfg    *config.Config
	client *llm.Client
	logger *slog.Logger
	clock  pipeline.Clock
	sleep  pipeline.Sleeper

	stats Stats
}

// NewGenerator constructs the stage with explicit dependencies. Clock and
// sleeper default to the real ones when nil.
func NewGenerator(cfg *config.Config, client *llm.Client, logger *slog.Logger, clock pipeline.Clock, sleep pipeline.Sleeper) *Generator {
	if clock == nil {
		clock = time.Now
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Generator{
		cfg:    cfg,
		client: client,
		logger: pipeline.StageLogger(logger, stageName),
		clock:  clock,
		sleep:  sleep,
	}
}

func (g *Generator) Name() string { return stageName }

// Stats reports counters from the last Run.
func (g *Generator) Stats() Stats { return g.stats }

// Run reads the raw dataset, generates one insight set per diner, replicates
// it onto every reservation, and writes the enriched document whole.
func (g *Generator) Run(ctx context.Context) error {
	if err := g.cfg.RequireAPIKey(); err != nil {
		return pipeline.Wrap(pipeline.ErrPrecondition, stageName, "check credential", "", err)
	}

	doc, err := dataset.Load(g.cfg.Paths.DatasetFile)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrPrecondition, stageName, "load dataset", "", err)
	}

	g.stats = Stats{}
	total := len(doc.Diners)
	generatedAt := g.clock().Format(time.RFC3339)

	for idx := range doc.Diners {
		diner := &doc.Diners[idx]
		g.logger.Info("processing diner",
			logging.String(logging.FieldDiner, diner.Name),
			logging.Int("index", idx+1),
			logging.Int("total", total),
		)

		insightSet := g.generate(ctx, *diner)
		g.sleep(g.cfg.RequestDelay())

		summary := Summary(insightSet)
		for r := range diner.Reservations {
			diner.Reservations[r].Notes = &dataset.Notes{
				CustomerInsights: insightSet.Clone(),
				GeneratedAt:      generatedAt,
				Summary:          summary,
			}
		}

		g.stats.Diners++
		if !insightSet.IsEmpty() {
			g.stats.WithInsights++
		}
	}

	if err := dataset.WriteJSON(g.cfg.Paths.EnrichedFile, doc); err != nil {
		return pipeline.Wrap(pipeline.ErrPersistence, stageName, "write enriched document", "", err)
	}

	g.logger.Info("enriched document written",
		logging.String("path", g.cfg.Paths.EnrichedFile),
		logging.Int("diners", g.stats.Diners),
		logging.Int("with_insights", g.stats.WithInsights),
	)
	return nil
}

// rawInsights is the untrusted decode target for model output. Cleanup into
// the typed insight set happens in prune.
type rawInsights struct {
	CustomerValues              []string `json:"customer_values"`
	IsNewCustomer               *bool    `json:"is_new_customer"`
	SpecialAccommodations       []string `json:"special_accommodations"`
	TastePreferences            string   `json:"taste_preferences"`
	StaffInteractionPreferences []string `json:"staff_interaction_preferences"`
	PersonalInterests           []string `json:"personal_interests"`
}

// generate issues the single extraction request for a diner. Every fault
// path yields an empty insight set; the batch never aborts here.
func (g *Generator) generate(ctx context.Context, diner dataset.Diner) dataset.CustomerInsights {
	content, err := g.client.Complete(ctx, llm.Request{
		Model:       g.cfg.LLM.InsightsModel,
		System:      systemPrompt,
		User:        insightPrompt(diner),
		Temperature: 0.1,
		MaxTokens:   500,
	})
	if err != nil {
		g.logger.Error("insight request failed",
			logging.String(logging.FieldDiner, diner.Name),
			logging.Error(err),
			logging.String(logging.FieldEventType, "insight_request_failed"),
			logging.String(logging.FieldImpact, "diner keeps an empty insight set"),
		)
		g.sleep(g.cfg.FailureDelay())
		return dataset.CustomerInsights{}
	}

	var raw rawInsights
	if err := llm.DecodeJSON(content, &raw); err != nil {
		g.logger.Warn("insight response did not parse",
			logging.String(logging.FieldDiner, diner.Name),
			logging.Error(err),
			logging.String(logging.FieldEventType, "insight_decode_error"),
			logging.String(logging.FieldImpact, "diner keeps an empty insight set"),
		)
		return dataset.CustomerInsights{}
	}
	return prune(raw)
}

// prune drops unsupported values: empty lists, nulls, the literal "null",
// and anything outside the closed vocabularies.
func prune(raw rawInsights) dataset.CustomerInsights {
	ci := dataset.CustomerInsights{
		CustomerValues:        compact(raw.CustomerValues),
		IsNewCustomer:         raw.IsNewCustomer,
		SpecialAccommodations: compact(raw.SpecialAccommodations),
		PersonalInterests:     compact(raw.PersonalInterests),
	}
	if taste, ok := dataset.ParseTastePreference(raw.TastePreferences); ok {
		ci.TastePreferences = taste
	}
	if styles := dataset.FilterStaffStyles(raw.StaffInteractionPreferences); len(styles) > 0 {
		ci.StaffInteractionPreferences = styles
	}
	return ci
}

func compact(values []string) []string {
	var out []string
	for _, value := range values {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" || strings.EqualFold(trimmed, "null") {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}
