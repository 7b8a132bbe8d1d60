package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"laudure/internal/dataset"
)

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	if configPath != "" {
		args = append([]string{"--config", configPath}, args...)
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func writeTestConfig(t *testing.T, dir, baseURL string) string {
	t.Helper()
	content := fmt.Sprintf(`[paths]
dataset_file = %q
enriched_file = %q
parties_file = %q

[llm]
api_key = "test-key"
base_url = %q

[pipeline]
request_delay_ms = 0
failure_delay_ms = 0

[logging]
format = "json"
level = "error"
`,
		filepath.Join(dir, "fine-dining-dataset.json"),
		filepath.Join(dir, "detailed_info.json"),
		filepath.Join(dir, "dishes.json"),
		baseURL,
	)
	path := filepath.Join(dir, "laudure.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func seedDataset(t *testing.T, dir string) {
	t.Helper()
	doc := dataset.Document{Diners: []dataset.Diner{{
		Name: "Emily Chen",
		Reviews: []dataset.Review{{
			RestaurantName: "French Laudure",
			Rating:         5,
			Content:        "The sommelier remembered our anniversary.",
		}},
		Reservations: []dataset.Reservation{{
			Date:           "2024-05-20",
			NumberOfPeople: 2,
			Orders: []dataset.Order{
				{Item: "Duck Confit", Price: 40},
				{Item: "Tarte Tatin", Price: 15.5},
			},
		}},
	}}}
	if err := dataset.WriteJSON(filepath.Join(dir, "fine-dining-dataset.json"), &doc); err != nil {
		t.Fatalf("seed dataset: %v", err)
	}
}

// insightsResponder answers every chat completion with a fixed insight set.
func insightsResponder(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content := `{"customer_values": ["attentive service"], "is_new_customer": false}`
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []any{map[string]any{"message": map[string]any{"content": content}}},
		})
	}))
}

func TestConfigInitAndValidate(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("OPENAI_API_KEY", "")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err := runCLI(t, []string{"config", "init", "--path", target}, "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigInitRefusesOverwrite(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err != nil {
		t.Fatalf("config init: %v", err)
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, ""); err == nil {
		t.Fatal("expected second init without --overwrite to fail")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}
}

func TestInsightsCommandWritesEnrichedDocument(t *testing.T) {
	dir := t.TempDir()
	server := insightsResponder(t)
	defer server.Close()

	configPath := writeTestConfig(t, dir, server.URL)
	seedDataset(t, dir)

	out, _, err := runCLI(t, []string{"insights"}, configPath)
	if err != nil {
		t.Fatalf("insights command: %v", err)
	}
	requireContains(t, out, "Insights Summary")

	doc, err := dataset.Load(filepath.Join(dir, "detailed_info.json"))
	if err != nil {
		t.Fatalf("load enriched document: %v", err)
	}
	notes := doc.Diners[0].Reservations[0].Notes
	if notes == nil {
		t.Fatal("expected notes on the enriched reservation")
	}
	if len(notes.CustomerInsights.CustomerValues) != 1 {
		t.Fatalf("unexpected insights: %+v", notes.CustomerInsights)
	}
}

func TestJustifyCommandRequiresEnrichedDocument(t *testing.T) {
	dir := t.TempDir()
	server := insightsResponder(t)
	defer server.Close()

	configPath := writeTestConfig(t, dir, server.URL)
	seedDataset(t, dir)

	if _, _, err := runCLI(t, []string{"justify"}, configPath); err == nil {
		t.Fatal("expected justify to fail before insights has run")
	}
}

func TestRunCommandExecutesAllStages(t *testing.T) {
	dir := t.TempDir()
	server := insightsResponder(t)
	defer server.Close()

	configPath := writeTestConfig(t, dir, server.URL)
	seedDataset(t, dir)

	out, _, err := runCLI(t, []string{"run"}, configPath)
	if err != nil {
		t.Fatalf("run command: %v", err)
	}
	requireContains(t, out, "Pipeline Summary")

	if _, err := os.Stat(filepath.Join(dir, "detailed_info.json")); err != nil {
		t.Fatalf("expected enriched document: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "dishes.json")); err != nil {
		t.Fatalf("expected parties document: %v", err)
	}
}
