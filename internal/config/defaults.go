package config

// Production model and throttle defaults: a mini model for extraction and
// table assignment, a cheaper one for justification sentences, 500ms between
// requests, 1s after a fault.
const (
	defaultInsightsModel = "gpt-4.1-mini-2025-04-14"
	defaultJustifyModel  = "gpt-4o-mini-2024-07-18"
	defaultTablesModel   = "gpt-4.1-mini-2025-04-14"

	defaultRequestDelayMS = 500
	defaultFailureDelayMS = 1000
)

// Default returns the repository default configuration.
func Default() Config {
	return Config{
		Paths: Paths{
			DatasetFile:  "src/fine-dining-dataset.json",
			EnrichedFile: "src/detailed_info.json",
			PartiesFile:  "dishes.json",
		},
		LLM: LLM{
			InsightsModel:  defaultInsightsModel,
			JustifyModel:   defaultJustifyModel,
			TablesModel:    defaultTablesModel,
			TimeoutSeconds: 60,
		},
		Pipeline: Pipeline{
			RequestDelayMS: defaultRequestDelayMS,
			FailureDelayMS: defaultFailureDelayMS,
		},
		Logging: Logging{
			Format: "console",
			Level:  "info",
		},
	}
}
