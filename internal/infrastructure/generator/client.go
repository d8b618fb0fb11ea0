package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/freshcart/backend/internal/domain"
)

const (
	maxAttempts        = 3
	defaultModel       = "gemini-3-flash-preview"
	defaultTimeout     = 30 * time.Second
	defaultPerMinute   = 60
	maxErrorBodyLength = 512
)

// ingredientPrompt asks the model for a plain JSON array of simple ingredient names
const ingredientPrompt = `Provide a JSON array of raw ingredients for "%s". Keep names simple (e.g., "chicken", "chilli", "oil").`

// Config holds generator client settings
type Config struct {
	APIKey            string
	BaseURL           string
	Model             string
	RequestsPerMinute int
	Timeout           time.Duration
	Logger            zerolog.Logger
}

// Client handles communication with the generateContent text generation API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	model       string
	rateLimiter *rate.Limiter
	backoff     func(attempt int) time.Duration
	debug       bool
	logger      zerolog.Logger
}

// NewClient creates a new generator API client
func NewClient(cfg Config) *Client {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	perMinute := cfg.RequestsPerMinute
	if perMinute <= 0 {
		perMinute = defaultPerMinute
	}

	// rate.Limit is requests per second; allow a small burst
	limiter := rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiKey:      cfg.APIKey,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       model,
		rateLimiter: limiter,
		backoff:     exponentialBackoff,
		logger:      cfg.Logger,
	}
}

// SetDebug enables logging of raw model output
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// GenerateIngredients asks the model for the ingredients of dish and returns its raw text
func (c *Client) GenerateIngredients(ctx context.Context, dish string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(ingredientPrompt, dish)}}}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))

	// Retry up to maxAttempts times for transient failures
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			if err := sleepContext(ctx, c.backoff(attempt-1)); err != nil {
				return "", err
			}
		}

		// Wait for rate limiter
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
		}

		resp, err := c.doRequest(ctx, endpoint, body)
		if err != nil {
			c.logger.Warn().Err(err).Int("attempt", attempt).Msg("generator request failed")
			lastErr = err
			continue
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("%w: read body: %v", domain.ErrGeneratorFailure, err)
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("%w: status %d: %s", domain.ErrGeneratorFailure, resp.StatusCode, truncate(string(respBody)))
			c.logger.Warn().Int("status", resp.StatusCode).Int("attempt", attempt).Msg("generator API error")
			// Client errors other than throttling will not improve on retry
			if resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
				return "", lastErr
			}
			continue
		}

		text, err := decodeText(respBody)
		if err != nil {
			return "", err
		}

		if c.debug {
			c.logger.Debug().Str("dish", dish).Str("text", text).Msg("generator output")
		}
		return text, nil
	}

	c.logger.Error().Err(lastErr).Str("dish", dish).Msg("all generator retries failed")
	return "", lastErr
}

// doRequest executes an HTTP POST request with proper headers and error handling
func (c *Client) doRequest(ctx context.Context, endpoint string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "FreshCart/1.0")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGeneratorFailure, err)
	}

	return resp, nil
}

// decodeText joins the text parts of the first candidate
func decodeText(body []byte) (string, error) {
	var resp generateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrGeneratorFailure, err)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates in response", domain.ErrGeneratorFailure)
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// exponentialBackoff returns 500ms, 1s, 2s, ... for attempts 1, 2, 3, ...
func exponentialBackoff(attempt int) time.Duration {
	return time.Duration(500*(1<<(attempt-1))) * time.Millisecond
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func truncate(s string) string {
	if len(s) > maxErrorBodyLength {
		return s[:maxErrorBodyLength]
	}
	return s
}
