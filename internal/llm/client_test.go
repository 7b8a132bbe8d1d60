package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"laudure/internal/llm"
)

func chatServer(t *testing.T, handler func(r *http.Request) any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if err := json.NewEncoder(w).Encode(handler(r)); err != nil {
			t.Fatalf("encode response: %v", err)
		}
	}))
}

func contentResponse(content string) any {
	return map[string]any{
		"choices": []any{
			map[string]any{
				"message": map[string]any{"content": content},
			},
		},
	}
}

func TestClientComplete(t *testing.T) {
	var captured struct {
		Model       string `json:"model"`
		Temperature float64
		MaxTokens   int `json:"max_tokens"`
		Messages    []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}
	server := chatServer(t, func(r *http.Request) any {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected authorization header %q", got)
		}
		return contentResponse("  hello there  ")
	})
	defer server.Close()

	client := llm.NewClient(llm.Config{APIKey: "test-key", Model: "demo-model"}, llm.WithBaseURL(server.URL))
	content, err := client.Complete(context.Background(), llm.Request{
		System:      "be terse",
		User:        "say hello",
		Temperature: 0.1,
		MaxTokens:   50,
	})
	if err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if content != "hello there" {
		t.Fatalf("expected trimmed content, got %q", content)
	}
	if captured.Model != "demo-model" {
		t.Fatalf("expected configured model, got %q", captured.Model)
	}
	if captured.MaxTokens != 50 {
		t.Fatalf("expected max_tokens 50, got %d", captured.MaxTokens)
	}
	if len(captured.Messages) != 2 || captured.Messages[0].Role != "system" {
		t.Fatalf("unexpected messages: %+v", captured.Messages)
	}
}

func TestClientCompleteModelOverride(t *testing.T) {
	var model string
	server := chatServer(t, func(r *http.Request) any {
		var req struct {
			Model string `json:"model"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		model = req.Model
		return contentResponse("ok")
	})
	defer server.Close()

	client := llm.NewClient(llm.Config{APIKey: "test", Model: "default-model"}, llm.WithBaseURL(server.URL))
	if _, err := client.Complete(context.Background(), llm.Request{User: "hi", Model: "override-model"}); err != nil {
		t.Fatalf("Complete returned error: %v", err)
	}
	if model != "override-model" {
		t.Fatalf("expected override model, got %q", model)
	}
}

func TestClientCompleteHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "rate limited"})
	}))
	defer server.Close()

	client := llm.NewClient(llm.Config{APIKey: "test", Model: "demo"}, llm.WithBaseURL(server.URL))
	_, err := client.Complete(context.Background(), llm.Request{User: "hi"})
	if err == nil {
		t.Fatal("expected request to fail")
	}
	if !strings.Contains(err.Error(), "http 429") {
		t.Fatalf("expected status in error, got %v", err)
	}
}

func TestClientCompleteAPIError(t *testing.T) {
	server := chatServer(t, func(r *http.Request) any {
		return map[string]any{"error": map[string]any{"message": "quota exceeded"}}
	})
	defer server.Close()

	client := llm.NewClient(llm.Config{APIKey: "test", Model: "demo"}, llm.WithBaseURL(server.URL))
	_, err := client.Complete(context.Background(), llm.Request{User: "hi"})
	if err == nil || !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestClientCompleteEmptyContent(t *testing.T) {
	server := chatServer(t, func(r *http.Request) any {
		return map[string]any{
			"choices": []any{
				map[string]any{
					"finish_reason": "stop",
					"message":       map[string]any{"content": ""},
				},
			},
		}
	})
	defer server.Close()

	client := llm.NewClient(llm.Config{APIKey: "test", Model: "demo"}, llm.WithBaseURL(server.URL))
	_, err := client.Complete(context.Background(), llm.Request{User: "hi"})
	if err == nil || !strings.Contains(err.Error(), "empty content") {
		t.Fatalf("expected empty content error, got %v", err)
	}
}

func TestClientCompleteMissingKey(t *testing.T) {
	client := llm.NewClient(llm.Config{Model: "demo"})
	if _, err := client.Complete(context.Background(), llm.Request{User: "hi"}); err == nil {
		t.Fatal("expected missing key error")
	}
}

func TestDecodeJSONCodeFence(t *testing.T) {
	var parsed struct {
		OK bool `json:"ok"`
	}
	if err := llm.DecodeJSON("```json\n{\"ok\":true}\n```", &parsed); err != nil {
		t.Fatalf("DecodeJSON returned error: %v", err)
	}
	if !parsed.OK {
		t.Fatal("expected ok=true")
	}
}

func TestDecodeJSONSurroundingProse(t *testing.T) {
	var parsed struct {
		Value string `json:"value"`
	}
	payload := "Sure! Here is the JSON you asked for: {\"value\":\"demo\"} Let me know if you need more."
	if err := llm.DecodeJSON(payload, &parsed); err != nil {
		t.Fatalf("DecodeJSON returned error: %v", err)
	}
	if parsed.Value != "demo" {
		t.Fatalf("expected demo, got %q", parsed.Value)
	}
}

func TestDecodeJSONFailureIncludesSnippet(t *testing.T) {
	var parsed struct{}
	err := llm.DecodeJSON("I cannot answer that.", &parsed)
	if err == nil {
		t.Fatal("expected decode to fail")
	}
	if !strings.Contains(err.Error(), "payload snippet") {
		t.Fatalf("expected snippet in error, got %v", err)
	}
}
