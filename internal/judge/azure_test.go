package judge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attest/internal/platform/config"
	dErrors "attest/pkg/domain-errors"
)

func testConfig(endpoint string) config.Judge {
	return config.Judge{
		Endpoint:   endpoint,
		APIKey:     "test-key",
		Deployment: "gpt-4o",
		APIVersion: "2024-02-01",
		Timeout:    5 * time.Second,
	}
}

func completionBody(content string) string {
	raw, _ := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	})
	return string(raw)
}

func TestNew(t *testing.T) {
	t.Run("missing settings yield a configuration error", func(t *testing.T) {
		_, err := New(config.Judge{Endpoint: "https://example.openai.azure.com"})
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeConfiguration, dErrors.CodeOf(err))
		assert.Contains(t, err.Error(), "AZURE_OPENAI_KEY")
	})

	t.Run("complete settings build a client", func(t *testing.T) {
		client, err := New(testConfig("https://example.openai.azure.com"))
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestComplete(t *testing.T) {
	t.Run("returns the completion content", func(t *testing.T) {
		var gotPath, gotKey string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotKey = r.Header.Get("api-key")

			var req chatRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, temperature, req.Temperature)
			assert.Equal(t, maxTokens, req.MaxTokens)
			require.Len(t, req.Messages, 1)
			assert.Equal(t, "user", req.Messages[0].Role)

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(completionBody(`{"status": "Fully Meets"}`)))
		}))
		defer srv.Close()

		client, err := New(testConfig(srv.URL))
		require.NoError(t, err)

		out, err := client.Complete(context.Background(), "judge this")
		require.NoError(t, err)
		assert.Equal(t, `{"status": "Fully Meets"}`, out)
		assert.Equal(t, "/openai/deployments/gpt-4o/chat/completions", gotPath)
		assert.Equal(t, "test-key", gotKey)
	})

	t.Run("retries rate limiting then succeeds", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_, _ = w.Write([]byte(completionBody("ok")))
		}))
		defer srv.Close()

		client, err := New(testConfig(srv.URL))
		require.NoError(t, err)

		out, err := client.Complete(context.Background(), "judge this")
		require.NoError(t, err)
		assert.Equal(t, "ok", out)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not retry auth rejections", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client, err := New(testConfig(srv.URL))
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), "judge this")
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeJudgeUnavailable, dErrors.CodeOf(err))
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("gives up after bounded retries on server errors", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		client, err := New(testConfig(srv.URL))
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), "judge this")
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeJudgeUnavailable, dErrors.CodeOf(err))
		assert.Equal(t, int32(1+maxRetries), calls.Load())
	})

	t.Run("unreachable judge is a judge_unavailable error", func(t *testing.T) {
		client, err := New(testConfig("http://127.0.0.1:1"))
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), "judge this")
		require.Error(t, err)
		assert.Equal(t, dErrors.CodeJudgeUnavailable, dErrors.CodeOf(err))
	})

	t.Run("empty choices fail without retry", func(t *testing.T) {
		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(`{"choices": []}`))
		}))
		defer srv.Close()

		client, err := New(testConfig(srv.URL))
		require.NoError(t, err)

		_, err = client.Complete(context.Background(), "judge this")
		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})
}
