package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"briefly/internal/models"

	log "github.com/sirupsen/logrus"
)

// Client talks to the summarization service. It holds no per-request state
// and is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL.
// A zero timeout leaves the request bounded only by its context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the service root the client posts to.
func (c *Client) BaseURL() string { return c.baseURL }

// Summarize sends meeting notes to /summarize.
func (c *Client) Summarize(ctx context.Context, meetingNotes string) (models.SummaryResult, error) {
	payload, err := BuildSummarizeRequest(meetingNotes)
	if err != nil {
		return models.SummaryResult{}, err
	}

	var resp models.SummarizeResponse
	status, err := c.post(ctx, models.PathSummarize, payload, &resp)
	if err != nil {
		return models.SummaryResult{}, err
	}

	if !succeeded(resp.Success) {
		return models.SummaryResult{}, &APIError{StatusCode: status, Message: errorMessage(resp.Error)}
	}
	if resp.Summary == nil {
		return models.SummaryResult{}, fmt.Errorf("%w: success response has no summary field", ErrDecode)
	}
	return models.SummaryResult{Summary: *resp.Summary}, nil
}

// GenerateNotes sends lecture notes and a subject to /generate_notes.
func (c *Client) GenerateNotes(ctx context.Context, lectureNotes, subject string) (models.StudyNotesResult, error) {
	payload, err := BuildGenerateNotesRequest(lectureNotes, subject)
	if err != nil {
		return models.StudyNotesResult{}, err
	}

	var resp models.GenerateNotesResponse
	status, err := c.post(ctx, models.PathGenerateNotes, payload, &resp)
	if err != nil {
		return models.StudyNotesResult{}, err
	}

	if !succeeded(resp.Success) {
		return models.StudyNotesResult{}, &APIError{StatusCode: status, Message: errorMessage(resp.Error)}
	}
	if resp.Notes == nil {
		return models.StudyNotesResult{}, fmt.Errorf("%w: success response has no notes field", ErrDecode)
	}

	quiz := models.DefaultQuizText
	if resp.Quiz != nil {
		quiz = *resp.Quiz
	}
	return models.StudyNotesResult{Notes: *resp.Notes, Quiz: quiz}, nil
}

// Health checks that the service answers GET /health with 200.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+models.PathHealth, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return &APIError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("health check returned %s", resp.Status)}
	}
	return nil
}

// post sends payload to path and decodes a 2xx body into dst.
// Error statuses are turned into *APIError from the body's "error" field.
func (c *Client) post(ctx context.Context, path string, payload []byte, dst any) (int, error) {
	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debugf("POST %s (%d bytes)", url, len(payload))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("%w: read response body: %w", ErrTransport, err)
	}
	log.Debugf("POST %s -> %d in %s (%d bytes)", url, resp.StatusCode, time.Since(start).Round(time.Millisecond), len(body))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, errorFromBody(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return resp.StatusCode, nil
}

// errorFromBody reads the "error" field of an error-status body.
func errorFromBody(status int, body []byte) error {
	if len(bytes.TrimSpace(body)) == 0 {
		return &APIError{StatusCode: status, Message: models.UnknownErrorMessage}
	}

	var parsed struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return fmt.Errorf("%w: status %d: %w", ErrDecode, status, err)
	}
	return &APIError{StatusCode: status, Message: errorMessage(parsed.Error)}
}

func succeeded(flag *bool) bool {
	return flag != nil && *flag
}

func errorMessage(msg *string) string {
	if msg == nil {
		return models.UnknownErrorMessage
	}
	return *msg
}
