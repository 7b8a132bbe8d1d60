package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"laudure/internal/insights"
	"laudure/internal/justify"
	"laudure/internal/parties"
	"laudure/internal/pipeline"
)

func newInsightsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Generate customer insights from reviews and emails",
		Long: `Read the raw dataset, call the configured model once per diner, and
write the enriched document with structured insights replicated onto every
reservation. A rerun fully recomputes the output.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			gen := insights.NewGenerator(cfg, ctx.buildClient(cfg), logger, nil, nil)
			if err := gen.Run(cmd.Context()); err != nil {
				return err
			}

			stats := gen.Stats()
			printSummary(cmd.OutOrStdout(), gen.Name(), [][2]string{
				{"Diners", strconv.Itoa(stats.Diners)},
				{"With insights", strconv.Itoa(stats.WithInsights)},
				{"Output", cfg.Paths.EnrichedFile},
			})
			return nil
		},
	}
}

func newJustifyCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "justify",
		Short: "Append one-sentence justifications to generated insights",
		Long: `Read the enriched document, request a short evidence sentence for every
insight value, and rewrite the document in place. Failed requests receive a
fixed fallback sentence instead of aborting the run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			app := justify.NewAppender(cfg, ctx.buildClient(cfg), logger, nil)
			if err := app.Run(cmd.Context()); err != nil {
				return err
			}

			stats := app.Stats()
			printSummary(cmd.OutOrStdout(), app.Name(), [][2]string{
				{"Reservations", strconv.Itoa(stats.Reservations)},
				{"Requests", strconv.Itoa(stats.Requests)},
				{"Fallbacks", strconv.Itoa(stats.Fallbacks)},
				{"Output", cfg.Paths.EnrichedFile},
			})
			return nil
		},
	}
}

func newPartiesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "parties",
		Short: "Extract per-party dish, cost, and table assignments",
		Long: `Read the enriched document, reduce every reservation to billing and
seating facts with a model-assigned table number, and write the parties
document. Table assignment failures fall back to a size-based table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			ext := parties.NewExtractor(cfg, ctx.buildClient(cfg), logger, nil, nil)
			if err := ext.Run(cmd.Context()); err != nil {
				return err
			}

			stats := ext.Stats()
			printSummary(cmd.OutOrStdout(), ext.Name(), [][2]string{
				{"Parties", strconv.Itoa(stats.Parties)},
				{"Fallback tables", strconv.Itoa(stats.Fallbacks)},
				{"Total revenue", strconv.FormatFloat(stats.TotalRevenue, 'f', 2, 64)},
				{"Output", cfg.Paths.PartiesFile},
			})
			return nil
		},
	}
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the full pipeline: insights, justify, parties",
		Long: `Execute the three stages in order against the configured paths. The
pipeline stops at the first stage failure; completed stage outputs stay on
disk, so a fixed rerun picks up from the raw dataset again.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.buildLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			client := ctx.buildClient(cfg)
			gen := insights.NewGenerator(cfg, client, logger, nil, nil)
			app := justify.NewAppender(cfg, client, logger, nil)
			ext := parties.NewExtractor(cfg, client, logger, nil, nil)

			if err := pipeline.RunAll(cmd.Context(), logger, gen, app, ext); err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), "pipeline", [][2]string{
				{"Diners", strconv.Itoa(gen.Stats().Diners)},
				{"Justification requests", strconv.Itoa(app.Stats().Requests)},
				{"Parties", strconv.Itoa(ext.Stats().Parties)},
				{"Total revenue", strconv.FormatFloat(ext.Stats().TotalRevenue, 'f', 2, 64)},
				{"Enriched document", cfg.Paths.EnrichedFile},
				{"Parties document", cfg.Paths.PartiesFile},
			})
			return nil
		},
	}
}
