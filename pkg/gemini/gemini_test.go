package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-assistant/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		contents := body["contents"].([]interface{})
		last := contents[len(contents)-1].(map[string]interface{})
		if last["role"] != "model" {
			t.Errorf("assistant role not mapped to model: %v", last["role"])
		}
		w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"semantic_lookup"}]}}],
			"usageMetadata":{"promptTokenCount":3,"candidatesTokenCount":1,"totalTokenCount":4}}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("Model() = %q", client.Model())
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: "hi"}}},
			{Role: "assistant", Parts: []gemini.Part{{Text: "hello"}}},
		},
	})
	if err != nil {
		t.Fatalf("GenerateContent: %v", err)
	}
	if got := resp.Content.Parts[0].Text; got != "semantic_lookup" {
		t.Errorf("text = %q", got)
	}
	if resp.Usage.TotalTokens != 4 {
		t.Errorf("usage = %+v", resp.Usage)
	}
}

func TestGenerateContent_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client, _ := gemini.New(gemini.Config{APIKey: "k", APIURL: ts.URL})
	if _, err := client.GenerateContent(context.Background(), &gemini.Request{}); err == nil {
		t.Fatal("expected error on 500")
	}
}

func TestNew_MissingKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error")
	}
}
