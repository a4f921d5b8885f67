// Package judge wraps the external language-model service that evaluates
// evidence against a sub-requirement.
package judge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"attest/internal/platform/config"
	dErrors "attest/pkg/domain-errors"
)

// Generation parameters. Low temperature keeps judgments as repeatable as
// the model allows; max tokens bounds the verdict JSON plus reasoning.
const (
	temperature = 0.1
	maxTokens   = 800
)

// Retry policy for transient transport failures. Malformed-but-delivered
// completions are never retried here; they flow to the normalizer as data.
const (
	maxRetries      = 2 // attempts = 1 + maxRetries
	initialInterval = 500 * time.Millisecond
)

// AzureOpenAI calls an Azure OpenAI chat-completions deployment.
type AzureOpenAI struct {
	endpoint   string
	apiKey     string
	deployment string
	apiVersion string
	httpClient *http.Client
}

// New validates the judge configuration and builds the client. A missing key
// is a configuration error; callers surface it as a 500 before any document
// is processed.
func New(cfg config.Judge) (*AzureOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &AzureOpenAI{
		endpoint:   cfg.Endpoint,
		apiKey:     cfg.APIKey,
		deployment: cfg.Deployment,
		apiVersion: cfg.APIVersion,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Complete sends one prompt and returns the model's text completion.
// Transient failures (transport errors, 429, 5xx) are retried with bounded
// exponential backoff; anything else fails immediately.
func (c *AzureOpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	// Apply the client timeout when the context carries no deadline, so a
	// stalled judge never hangs a request indefinitely.
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.httpClient.Timeout)
		defer cancel()
	}

	body, err := json.Marshal(chatRequest{
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode judge request")
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval

	var completion string
	err = backoff.Retry(func() error {
		var attemptErr error
		completion, attemptErr = c.complete(ctx, body)
		return attemptErr
	}, backoff.WithContext(backoff.WithMaxRetries(bo, maxRetries), ctx))
	if err != nil {
		return "", err
	}
	return completion, nil
}

func (c *AzureOpenAI) complete(ctx context.Context, body []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/openai/deployments/%s/chat/completions?api-version=%s",
		c.endpoint, url.PathEscape(c.deployment), url.QueryEscape(c.apiVersion))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", backoff.Permanent(dErrors.Wrap(err, dErrors.CodeInternal, "failed to build judge request"))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Transport failure: retryable.
		return "", dErrors.Wrap(err, dErrors.CodeJudgeUnavailable, "judge call failed")
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeJudgeUnavailable, "failed to read judge response")
	}

	if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= http.StatusInternalServerError {
		return "", dErrors.New(dErrors.CodeJudgeUnavailable,
			fmt.Sprintf("judge returned status %d", resp.StatusCode))
	}
	if resp.StatusCode != http.StatusOK {
		return "", backoff.Permanent(dErrors.New(dErrors.CodeJudgeUnavailable,
			fmt.Sprintf("judge rejected request with status %d", resp.StatusCode)))
	}

	var parsed chatResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", backoff.Permanent(dErrors.Wrap(err, dErrors.CodeJudgeUnavailable, "judge response is not valid JSON"))
	}
	if parsed.Error != nil {
		return "", backoff.Permanent(dErrors.New(dErrors.CodeJudgeUnavailable, "judge error: "+parsed.Error.Message))
	}
	if len(parsed.Choices) == 0 {
		return "", backoff.Permanent(dErrors.New(dErrors.CodeJudgeUnavailable, "judge returned no choices"))
	}
	return parsed.Choices[0].Message.Content, nil
}
