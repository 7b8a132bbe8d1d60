package parties

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"laudure/internal/config"
	"laudure/internal/dataset"
	"laudure/internal/llm"
	"laudure/internal/logging"
	"laudure/internal/pipeline"
)

const stageName = "parties"

// ErrTableNumberParse marks model output that is not a bare table number.
// It feeds the size-based fallback, never the batch failure path.
var ErrTableNumberParse = errors.New("table number parse error")

// Stats summarizes a completed run for console reporting.
type Stats struct {
	Parties      int
	Fallbacks    int
	TotalRevenue float64
}

// Extractor is the dish/table extraction stage.
type Extractor struct {
	cfg    *config.Config
	client *llm.Client
	logger *slog.Logger
	clock  pipeline.Clock
	sleep  pipeline.Sleeper

	stats Stats
}

// NewExtractor constructs the stage with explicit dependencies. Clock and
// sleeper default to the real ones when nil.
func NewExtractor(cfg *config.Config, client *llm.Client, logger *slog.Logger, clock pipeline.Clock, sleep pipeline.Sleeper) *Extractor {
	if clock == nil {
		clock = time.Now
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Extractor{
		cfg:    cfg,
		client: client,
		logger: pipeline.StageLogger(logger, stageName),
		clock:  clock,
		sleep:  sleep,
	}
}

func (e *Extractor) Name() string { return stageName }

// Stats reports counters from the last Run.
func (e *Extractor) Stats() Stats { return e.stats }

// Run reads the enriched document and writes the parties document. Party IDs
// increase strictly from 1 in diner-then-reservation order.
func (e *Extractor) Run(ctx context.Context) error {
	if err := e.cfg.RequireAPIKey(); err != nil {
		return pipeline.Wrap(pipeline.ErrPrecondition, stageName, "check credential", "", err)
	}

	doc, err := dataset.Load(e.cfg.Paths.EnrichedFile)
	if err != nil {
		return pipeline.Wrap(pipeline.ErrPrecondition, stageName, "load enriched document",
			"run the insights stage first", err)
	}

	e.stats = Stats{}
	out := Document{Parties: []Party{}}
	revenue := decimal.Zero
	partyID := 1

	for _, diner := range doc.Diners {
		for _, reservation := range diner.Reservations {
			e.logger.Info("processing party",
				logging.Int("party_id", partyID),
				logging.String(logging.FieldDiner, diner.Name),
			)

			party := e.buildParty(ctx, partyID, diner.Name, reservation)
			out.Parties = append(out.Parties, party)
			revenue = revenue.Add(decimal.NewFromFloat(party.TotalCost))
			partyID++
		}
	}

	e.stats.Parties = len(out.Parties)
	e.stats.TotalRevenue = revenue.Round(2).InexactFloat64()
	out.Metadata = Metadata{
		GeneratedAt:  e.clock().Format(time.RFC3339),
		TotalParties: e.stats.Parties,
		TotalRevenue: e.stats.TotalRevenue,
		SourceFile:   e.cfg.Paths.EnrichedFile,
	}

	if err := dataset.WriteJSON(e.cfg.Paths.PartiesFile, &out); err != nil {
		return pipeline.Wrap(pipeline.ErrPersistence, stageName, "write parties document", "", err)
	}

	e.logger.Info("parties document written",
		logging.String("path", e.cfg.Paths.PartiesFile),
		logging.Int("parties", e.stats.Parties),
		logging.Float64("total_revenue", e.stats.TotalRevenue),
	)
	return nil
}

func (e *Extractor) buildParty(ctx context.Context, partyID int, customerName string, reservation dataset.Reservation) Party {
	totalCost := decimal.Zero
	dishes := make([]Dish, 0, len(reservation.Orders))
	for _, order := range reservation.Orders {
		totalCost = totalCost.Add(decimal.NewFromFloat(order.Price))
		exceptions := order.DietaryTags
		if exceptions == nil {
			exceptions = []string{}
		}
		dishes = append(dishes, Dish{
			Name:              order.Item,
			Price:             order.Price,
			DietaryExceptions: exceptions,
		})
	}

	accommodations := []string{}
	if reservation.Notes != nil && len(reservation.Notes.CustomerInsights.SpecialAccommodations) > 0 {
		accommodations = append(accommodations, reservation.Notes.CustomerInsights.SpecialAccommodations...)
	}

	tableNumber, err := e.assignTable(ctx, customerName, reservation.NumberOfPeople, accommodations, reservation.Date)
	if err != nil {
		e.stats.Fallbacks++
		tableNumber = fallbackTable(reservation.NumberOfPeople)
	}

	return Party{
		PartyID:               partyID,
		CustomerName:          customerName,
		Date:                  reservation.Date,
		TableNumber:           tableNumber,
		GroupSize:             reservation.NumberOfPeople,
		TotalCost:             totalCost.Round(2).InexactFloat64(),
		SpecialAccommodations: accommodations,
		Dishes:                dishes,
	}
}

// assignTable asks the model for a bare table number. The throttle sleep
// applies only when both the request and the parse succeed.
func (e *Extractor) assignTable(ctx context.Context, customerName string, groupSize int, accommodations []string, date string) (int, error) {
	content, err := e.client.Complete(ctx, llm.Request{
		Model:       e.cfg.LLM.TablesModel,
		User:        tablePrompt(customerName, groupSize, accommodations, date),
		Temperature: 0.1,
		MaxTokens:   10,
	})
	if err != nil {
		e.logger.Warn("table assignment request failed",
			logging.String(logging.FieldDiner, customerName),
			logging.Error(err),
			logging.String(logging.FieldEventType, "table_request_failed"),
			logging.String(logging.FieldImpact, "size-based fallback table assigned"),
		)
		return 0, err
	}

	tableNumber, err := parseTableNumber(content)
	if err != nil {
		e.logger.Warn("table assignment did not parse",
			logging.String(logging.FieldDiner, customerName),
			logging.Error(err),
			logging.String(logging.FieldEventType, "table_number_parse_error"),
			logging.String(logging.FieldImpact, "size-based fallback table assigned"),
		)
		return 0, err
	}

	e.sleep(e.cfg.RequestDelay())
	return tableNumber, nil
}

// parseTableNumber treats the response as untrusted: it must be a bare
// integer after trimming.
func parseTableNumber(content string) (int, error) {
	trimmed := strings.TrimSpace(content)
	number, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, pipeline.Wrap(pipeline.ErrDecode, stageName, "parse table number",
			llm.PayloadSnippet(trimmed), ErrTableNumberParse)
	}
	return number, nil
}

// fallbackTable is the deterministic size-only assignment used when the
// model path fails. It never produces the 19-20 band for mid-size groups
// and ignores accommodations.
func fallbackTable(groupSize int) int {
	switch {
	case groupSize <= 2:
		return 3
	case groupSize <= 4:
		return 8
	case groupSize <= 6:
		return 15
	default:
		return 19
	}
}
