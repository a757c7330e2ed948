package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewClient_Defaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	c := NewClient()

	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", c.baseURL, DefaultBaseURL)
	}
	if c.model != DefaultModel {
		t.Errorf("model = %s, want %s", c.model, DefaultModel)
	}
	if c.apiKey != "" {
		t.Errorf("apiKey = %q, want empty", c.apiKey)
	}
	if c.httpClient == nil {
		t.Error("httpClient should not be nil")
	}
}

func TestNewClient_WithOptions(t *testing.T) {
	customURL := "http://custom:8080"
	customModel := "custom-model"
	customTimeout := 30 * time.Second

	c := NewClient(
		WithAPIKey("test-key"),
		WithModel(customModel),
		WithBaseURL(customURL),
		WithTimeout(customTimeout),
	)

	if c.apiKey != "test-key" {
		t.Errorf("apiKey = %q, want %q", c.apiKey, "test-key")
	}
	if c.model != customModel {
		t.Errorf("model = %s, want %s", c.model, customModel)
	}
	if c.baseURL != customURL {
		t.Errorf("baseURL = %s, want %s", c.baseURL, customURL)
	}
	if c.httpClient.Timeout != customTimeout {
		t.Errorf("timeout = %v, want %v", c.httpClient.Timeout, customTimeout)
	}
}

func TestNewClient_APIKeyFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")

	c := NewClient()
	if c.apiKey != "env-key" {
		t.Errorf("apiKey = %q, want %q", c.apiKey, "env-key")
	}
}

func TestGenerate(t *testing.T) {
	var gotPath, gotKey string
	var gotReq generateRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": `{"function": "discuss"}`},
				}}},
			},
			"usageMetadata": map[string]any{"totalTokenCount": 1000000},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL), WithAPIKey("test-key"))

	text, cost, err := c.Generate(context.Background(), "hello")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != `{"function": "discuss"}` {
		t.Errorf("Generate() text = %q", text)
	}
	if cost != costPerMillionTokens {
		t.Errorf("Generate() cost = %v, want %v for one million tokens", cost, costPerMillionTokens)
	}

	wantPath := "/v1beta/models/" + DefaultModel + ":generateContent"
	if gotPath != wantPath {
		t.Errorf("request path = %q, want %q", gotPath, wantPath)
	}
	if gotKey != "test-key" {
		t.Errorf("api key header = %q, want %q", gotKey, "test-key")
	}
	if len(gotReq.Contents) != 1 || len(gotReq.Contents[0].Parts) != 1 || gotReq.Contents[0].Parts[0].Text != "hello" {
		t.Errorf("request contents = %+v, want single part %q", gotReq.Contents, "hello")
	}
	if gotReq.GenerationConfig.MaxOutputTokens != maxOutputTokens {
		t.Errorf("maxOutputTokens = %d, want %d", gotReq.GenerationConfig.MaxOutputTokens, maxOutputTokens)
	}
}

func TestGenerate_TrimsWhitespace(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{
					{"text": "\n  result text  \n"},
				}}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL), WithAPIKey("k"))

	text, _, err := c.Generate(context.Background(), "p")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if text != "result text" {
		t.Errorf("Generate() text = %q, want trimmed", text)
	}
}

func TestGenerate_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error": "API key not valid"}`))
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL))

	_, _, err := c.Generate(context.Background(), "p")
	if err == nil {
		t.Fatal("Generate() error = nil, want error on 403")
	}
	if !strings.Contains(err.Error(), "403") {
		t.Errorf("error = %v, want status in message", err)
	}
	if !strings.Contains(err.Error(), "API key not valid") {
		t.Errorf("error = %v, want response body in message", err)
	}
}

func TestGenerate_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer server.Close()

	c := NewClient(WithBaseURL(server.URL), WithAPIKey("k"))

	_, _, err := c.Generate(context.Background(), "p")
	if err == nil {
		t.Fatal("Generate() error = nil, want error on empty candidates")
	}
}
