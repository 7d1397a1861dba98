package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/newscast/news-podcast/internal/observability"
)

// API paths
const (
	HeadlinesPath = "/api/headlines"
	ScriptPath    = "/api/generate-detailed-script"
	AudioPath     = "/api/generate-audio"
)

// Request timeouts. Script and audio generation run LLM and TTS work on the
// backend and routinely take tens of seconds.
const (
	HeadlinesTimeout  = 30 * time.Second
	GenerationTimeout = 180 * time.Second
)

// Client talks to the podcast backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a client for the given base URL (scheme + host, no
// trailing slash required).
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     observability.Component("backend"),
	}
}

// headlinesResponse mirrors the GET /api/headlines body
type headlinesResponse struct {
	Headlines []string `json:"headlines"`
	Strategy  string   `json:"strategy,omitempty"`
	Timestamp string   `json:"timestamp,omitempty"`
	Cached    bool     `json:"cached,omitempty"`
	Error     *string  `json:"error,omitempty"`
}

type scriptRequest struct {
	Headlines []string `json:"headlines"`
}

type scriptStats struct {
	StoriesProcessed  int     `json:"storiesProcessed"`
	ScriptLength      int     `json:"scriptLength"`
	EstimatedDuration float64 `json:"estimatedDuration"`
}

type scriptResponse struct {
	Script  string      `json:"script"`
	Scripts []string    `json:"scripts"`
	Stats   scriptStats `json:"stats"`
}

type audioRequest struct {
	Scripts []string `json:"scripts"`
}

// errorResponse is the structured error body the backend sends on failures
type errorResponse struct {
	Error string `json:"error"`
}

// FetchHeadlines fetches the current curated headline lines. An inline error
// field in an otherwise successful response takes precedence over the
// transport-level success and is surfaced as an error.
func (c *Client) FetchHeadlines(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, HeadlinesPath, HeadlinesTimeout)
	if err != nil {
		return nil, err
	}

	var decoded headlinesResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, newAPIError(ErrorKindDecode, "failed to decode headlines response", err)
	}

	if decoded.Error != nil && *decoded.Error != "" {
		c.logger.Warn().Str("error", *decoded.Error).Msg("headlines response carries inline error")
		return nil, newAPIError(ErrorKindInlineAPI, *decoded.Error, nil)
	}

	c.logger.Debug().
		Int("count", len(decoded.Headlines)).
		Str("strategy", decoded.Strategy).
		Bool("cached", decoded.Cached).
		Msg("fetched headlines")

	return decoded.Headlines, nil
}

// GenerateScript requests a podcast script for the selected wire-format
// headline lines and returns the per-story script segments.
func (c *Client) GenerateScript(ctx context.Context, headlines []string) ([]string, error) {
	body, err := c.postJSON(ctx, ScriptPath, scriptRequest{Headlines: headlines}, GenerationTimeout)
	if err != nil {
		return nil, err
	}

	var decoded scriptResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, newAPIError(ErrorKindDecode, "failed to decode script response", err)
	}

	scripts := decoded.Scripts
	if len(scripts) == 0 && decoded.Script != "" {
		// Older backend builds return only the combined script field
		scripts = []string{decoded.Script}
	}
	if len(scripts) == 0 {
		return nil, newAPIError(ErrorKindNoData, "script response contained no scripts", nil)
	}

	c.logger.Debug().
		Int("scripts", len(scripts)).
		Int("storiesProcessed", decoded.Stats.StoriesProcessed).
		Int("scriptLength", decoded.Stats.ScriptLength).
		Msg("generated script")

	return scripts, nil
}

// GenerateAudio requests synthesized audio for the script segments and
// returns the raw response body. Decoding the audio container is the
// playback layer's job.
func (c *Client) GenerateAudio(ctx context.Context, scripts []string) ([]byte, error) {
	body, err := c.postJSON(ctx, AudioPath, audioRequest{Scripts: scripts}, GenerationTimeout)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().Int("bytes", len(body)).Msg("generated audio")
	return body, nil
}

// get issues a GET and returns the validated, non-empty response body
func (c *Client) get(ctx context.Context, path string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := c.withTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, newAPIError(ErrorKindInvalidURL, "invalid request URL: "+c.baseURL+path, err)
	}
	return c.do(req)
}

// postJSON issues a POST with a JSON body and returns the response body
func (c *Client) postJSON(ctx context.Context, path string, payload any, timeout time.Duration) ([]byte, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, newAPIError(ErrorKindDecode, "failed to encode request body", err)
	}

	ctx, cancel := c.withTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(encoded))
	if err != nil {
		return nil, newAPIError(ErrorKindInvalidURL, "invalid request URL: "+c.baseURL+path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// withTimeout adopts the timeout unless the caller already set a deadline
func (c *Client) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *Client) do(req *http.Request) ([]byte, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Str("url", req.URL.String()).Msg("request failed")
		return nil, newAPIError(ErrorKindNetwork, "network request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newAPIError(ErrorKindNetwork, "failed to read response body", err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newAPIError(ErrorKindServer, serverErrorMessage(resp.StatusCode, body), nil)
	}

	if len(body) == 0 {
		return nil, newAPIError(ErrorKindNoData, "server returned an empty response", nil)
	}

	return body, nil
}

// serverErrorMessage extracts the structured error message from a failure
// body, falling back to a generic status-based message.
func serverErrorMessage(status int, body []byte) string {
	var decoded errorResponse
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error != "" {
		return decoded.Error
	}
	return fmt.Sprintf("server returned status %d %s", status, http.StatusText(status))
}
