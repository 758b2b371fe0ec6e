package analysis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONDirect(t *testing.T) {
	out, err := ExtractJSON(`{"relatorio": "<p>ok</p>"}`)

	require.NoError(t, err)
	assert.Equal(t, "<p>ok</p>", out["relatorio"])
}

func TestExtractJSONWithSurroundingProse(t *testing.T) {
	text := "Sure! Here is the analysis:\n```json\n{\"relatorio\": \"<p>ok</p>\"}\n```\nHope it helps."

	out, err := ExtractJSON(text)

	require.NoError(t, err)
	assert.Equal(t, "<p>ok</p>", out["relatorio"])
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("the model refused to answer")
	assert.Error(t, err)

	_, err = ExtractJSON("")
	assert.Error(t, err)
}

func TestExtractJSONMalformedObject(t *testing.T) {
	_, err := ExtractJSON("prefix {not valid json} suffix")
	assert.Error(t, err)
}

func TestGeminiClientGenerate(t *testing.T) {
	var gotBody geminiRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		resp := map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": `{"relatorio": "<p>done</p>"}`}},
				}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key")
	text, err := client.Generate(context.Background(), "analyze this athlete")

	require.NoError(t, err)
	assert.Equal(t, `{"relatorio": "<p>done</p>"}`, text)
	require.Len(t, gotBody.Contents, 1)
	require.Len(t, gotBody.Contents[0].Parts, 1)
	assert.Equal(t, "analyze this athlete", gotBody.Contents[0].Parts[0].Text)
	assert.Equal(t, "application/json", gotBody.GenerationConfig.ResponseMimeType)
}

func TestGeminiClientGenerateErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key")
	_, err := client.Generate(context.Background(), "prompt")

	assert.Error(t, err)
}

func TestGeminiClientGenerateEmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewGeminiClient(server.URL, "test-key")
	_, err := client.Generate(context.Background(), "prompt")

	assert.Error(t, err)
}

func TestSanitizeHTMLKeepsAllowedTags(t *testing.T) {
	in := "<p>Good <strong>shape</strong><br><ul><li>rest</li></ul></p>"
	assert.Equal(t, in, SanitizeHTML(in))
}

func TestSanitizeHTMLStripsScripts(t *testing.T) {
	out := SanitizeHTML(`<p onclick="x()">hi</p><script>alert(1)</script><a href="http://evil">link</a>`)

	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "onclick")
	assert.NotContains(t, out, "<a")
	assert.Contains(t, out, "<p>hi</p>")
}
