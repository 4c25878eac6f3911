package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smart-task-analyzer/pkg/gemini"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := gemini.New(gemini.Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestNewAppliesDefaults(t *testing.T) {
	c, err := gemini.New(gemini.Config{APIKey: "test-key"})
	require.NoError(t, err)
	assert.Equal(t, gemini.DefaultModel, c.Model())
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req gemini.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.SystemInstruction)
		assert.Contains(t, req.SystemInstruction.Parts[0].Text, "instructions")
		require.Len(t, req.Contents, 1)
		assert.Equal(t, "user", req.Contents[0].Role)

		json.NewEncoder(w).Encode(gemini.GenerateResponse{
			Candidates: []gemini.Candidate{
				{Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: "hello"}, {Text: " world"}}}},
			},
		})
	}))
	defer ts.Close()

	c, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: ts.URL})
	require.NoError(t, err)

	resp, err := c.GenerateContent(context.Background(), gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "instructions"}}},
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: "hi"}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "hello world", resp.Text())
}

func TestGenerateContentAPIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: ts.URL})
	require.NoError(t, err)

	_, err = c.GenerateContent(context.Background(), gemini.GenerateRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error 429")
}

func TestGenerateContentContextCancelled(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer ts.Close()

	c, err := gemini.New(gemini.Config{APIKey: "test-key", APIURL: ts.URL})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = c.GenerateContent(ctx, gemini.GenerateRequest{})
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "context canceled") || strings.Contains(err.Error(), "failed to call API"))
}

func TestResponseTextEmpty(t *testing.T) {
	var resp gemini.GenerateResponse
	assert.Equal(t, "", resp.Text())
}
