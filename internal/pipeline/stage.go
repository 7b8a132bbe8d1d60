package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"laudure/internal/logging"
)

// Stage is one sequential batch transform: read a whole document, enrich it,
// write a whole document. Stages are stateless across runs; a rerun fully
// recomputes its output.
type Stage interface {
	Name() string
	Run(ctx context.Context) error
}

// Sleeper performs throttle and backoff sleeps. Stages accept one so tests
// can run without waiting.
type Sleeper func(time.Duration)

// Clock supplies generation timestamps. Stages accept one so tests produce
// deterministic documents.
type Clock func() time.Time

// StageLogger tags a logger with the stage name and a fresh run identifier.
func StageLogger(logger *slog.Logger, stage string) *slog.Logger {
	return logger.With(
		logging.String(logging.FieldStage, stage),
		logging.String(logging.FieldRunID, uuid.NewString()),
	)
}

// RunAll executes stages in order, stopping at the first failure.
func RunAll(ctx context.Context, logger *slog.Logger, stages ...Stage) error {
	for _, stage := range stages {
		logger.Info("stage starting", logging.String(logging.FieldStage, stage.Name()))
		if err := stage.Run(ctx); err != nil {
			logger.Error("stage failed",
				logging.String(logging.FieldStage, stage.Name()),
				logging.Error(err),
			)
			return err
		}
		logger.Info("stage completed", logging.String(logging.FieldStage, stage.Name()))
	}
	return nil
}
