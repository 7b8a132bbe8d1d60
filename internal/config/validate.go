package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the configuration for values that would break a run. The
// inference credential is deliberately not validated here; it is a per-run
// precondition enforced by RequireAPIKey so read-only commands (config show)
// work without one.
func (c *Config) Validate() error {
	var problems []string

	if c.Paths.DatasetFile == "" {
		problems = append(problems, "paths.dataset_file must not be empty")
	}
	if c.Paths.EnrichedFile == "" {
		problems = append(problems, "paths.enriched_file must not be empty")
	}
	if c.Paths.PartiesFile == "" {
		problems = append(problems, "paths.parties_file must not be empty")
	}

	if c.LLM.InsightsModel == "" {
		problems = append(problems, "llm.insights_model must not be empty")
	}
	if c.LLM.JustifyModel == "" {
		problems = append(problems, "llm.justify_model must not be empty")
	}
	if c.LLM.TablesModel == "" {
		problems = append(problems, "llm.tables_model must not be empty")
	}
	if c.LLM.TimeoutSeconds < 0 {
		problems = append(problems, "llm.timeout_seconds must not be negative")
	}

	if c.Pipeline.RequestDelayMS < 0 {
		problems = append(problems, "pipeline.request_delay_ms must not be negative")
	}
	if c.Pipeline.FailureDelayMS < 0 {
		problems = append(problems, "pipeline.failure_delay_ms must not be negative")
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format must be console or json, got %q", c.Logging.Format))
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level))
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
