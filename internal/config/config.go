package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains the document locations each stage reads and writes. The
// defaults follow the dataset layout the stages expect.
type Paths struct {
	DatasetFile  string `toml:"dataset_file"`
	EnrichedFile string `toml:"enriched_file"`
	PartiesFile  string `toml:"parties_file"`
}

// LLM contains inference provider connection settings. The three stages use
// different models upstream, so each gets its own knob.
type LLM struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	InsightsModel  string `toml:"insights_model"`
	JustifyModel   string `toml:"justify_model"`
	TablesModel    string `toml:"tables_model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Pipeline contains batch throttling settings. RequestDelayMS is the fixed
// post-request sleep that keeps the run under the provider's rate limit;
// FailureDelayMS is the blanket delay after a per-unit fault.
type Pipeline struct {
	RequestDelayMS int `toml:"request_delay_ms"`
	FailureDelayMS int `toml:"failure_delay_ms"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for laudure.
type Config struct {
	Paths    Paths    `toml:"paths"`
	LLM      LLM      `toml:"llm"`
	Pipeline Pipeline `toml:"pipeline"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/laudure/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return value
// is the resolved path; the third reports whether a file was found there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}
	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("laudure.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}
	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	c.Paths.DatasetFile = strings.TrimSpace(c.Paths.DatasetFile)
	c.Paths.EnrichedFile = strings.TrimSpace(c.Paths.EnrichedFile)
	c.Paths.PartiesFile = strings.TrimSpace(c.Paths.PartiesFile)

	for _, field := range []*string{&c.Paths.DatasetFile, &c.Paths.EnrichedFile, &c.Paths.PartiesFile} {
		if *field == "" {
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.LLM.APIKey = strings.TrimSpace(c.LLM.APIKey)
	if c.LLM.APIKey == "" {
		c.LLM.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))
	}
	c.LLM.BaseURL = strings.TrimSpace(c.LLM.BaseURL)
	c.LLM.InsightsModel = strings.TrimSpace(c.LLM.InsightsModel)
	c.LLM.JustifyModel = strings.TrimSpace(c.LLM.JustifyModel)
	c.LLM.TablesModel = strings.TrimSpace(c.LLM.TablesModel)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	return nil
}

// RequireAPIKey enforces the credential precondition checked before any
// stage does work.
func (c *Config) RequireAPIKey() error {
	if strings.TrimSpace(c.LLM.APIKey) == "" {
		return errors.New("inference api key not configured: set [llm] api_key or the OPENAI_API_KEY environment variable")
	}
	return nil
}

// RequestDelay is the fixed post-request throttle sleep.
func (c *Config) RequestDelay() time.Duration {
	return time.Duration(c.Pipeline.RequestDelayMS) * time.Millisecond
}

// FailureDelay is the blanket sleep after a per-unit fault.
func (c *Config) FailureDelay() time.Duration {
	return time.Duration(c.Pipeline.FailureDelayMS) * time.Millisecond
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
