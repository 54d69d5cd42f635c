package soal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Endpoint paths served by the questionnaire backend.
const (
	PathQuestions       = "/soal/"
	PathSubmit          = "/soal/submit"
	PathRecommendations = "/soal/rekomendasi"
)

// Options configures a Client.
type Options struct {
	Token     string
	Timeout   time.Duration
	SessionID string
	// HTTPClient overrides the default client; Timeout is ignored when set.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the questionnaire backend over JSON/HTTP.
type Client struct {
	baseURL   string
	token     string
	sessionID string
	client    *http.Client
	logger    *slog.Logger
}

// New constructs a client for the given base URL.
func New(baseURL string, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		token:     opts.Token,
		sessionID: opts.SessionID,
		client:    httpClient,
		logger:    logger.With("component", "soal"),
	}
}

// SessionID returns the session identifier sent with every request.
func (c *Client) SessionID() string {
	return c.sessionID
}

// FetchQuestions loads the ordered question list.
func (c *Client) FetchQuestions(ctx context.Context) ([]Question, error) {
	var questions []Question
	if err := c.do(ctx, http.MethodGet, PathQuestions, nil, &questions); err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}
	return questions, nil
}

// Submit posts the finished answer list and returns the per-dimension scores.
func (c *Client) Submit(ctx context.Context, answers []AnswerEntry) (ScoreResponse, error) {
	payload, err := json.Marshal(answers)
	if err != nil {
		return ScoreResponse{}, err
	}
	var res ScoreResponse
	if err := c.do(ctx, http.MethodPost, PathSubmit, payload, &res); err != nil {
		return ScoreResponse{}, fmt.Errorf("submit answers: %w", err)
	}
	return res, nil
}

// FetchRecommendations loads the per-dimension explanations and advice.
func (c *Client) FetchRecommendations(ctx context.Context) ([]RecommendationEntry, error) {
	var entries []RecommendationEntry
	if err := c.do(ctx, http.MethodGet, PathRecommendations, nil, &entries); err != nil {
		return nil, fmt.Errorf("fetch recommendations: %w", err)
	}
	return entries, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload []byte, out any) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.sessionID != "" {
		req.Header.Set("X-Session-ID", c.sessionID)
	}

	started := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
		return err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	c.logger.DebugContext(ctx, "request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(started),
	)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeHTTPError(resp.StatusCode, data)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
