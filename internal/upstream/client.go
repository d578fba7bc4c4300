// Package upstream talks to the dispatch backend that owns the real calendar.
// Every request carries the static shared secret; the backend decides all
// booking conflicts, surfaced here only as ErrSlotTaken.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"cleanair-backend/internal/schedule"
)

const (
	availabilityPath = "/api/availability"
	bookPath         = "/api/book"

	secretHeader = "X-API-SECRET"
)

// ErrSlotTaken is the domain conflict: someone booked the window between the
// availability fetch and the submission.
var ErrSlotTaken = errors.New("slot already taken")

// StatusError is any other upstream non-2xx, carrying whatever the backend
// put in its error or message field so the caller can mirror it.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream returned status %d", e.Status)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Message)
}

type Client struct {
	baseURL    string
	secret     string
	httpClient *http.Client
}

// NewClient returns nil when the upstream is unconfigured so callers can
// treat the dependency as absent.
func NewClient(baseURL, secret string) *Client {
	if strings.TrimSpace(baseURL) == "" || strings.TrimSpace(secret) == "" {
		return nil
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		secret:     secret,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type AvailabilityRequest struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	WorkStart       string `json:"workStart"`
	WorkEnd         string `json:"workEnd"`
	SlotStepMinutes int    `json:"slotStepMinutes"`
}

type RawDay struct {
	Date  string             `json:"date"`
	Slots []schedule.RawSlot `json:"slots"`
}

type availabilityResponse struct {
	Days []RawDay `json:"days"`
}

type BookingRequest struct {
	Start   time.Time `json:"start"`
	End     time.Time `json:"end"`
	Name    string    `json:"name"`
	Phone   string    `json:"phone"`
	Email   string    `json:"email"`
	Address string    `json:"address"`
	Notes   string    `json:"notes"`
}

type BookingResult struct {
	HTMLLink string `json:"htmlLink,omitempty"`
}

func (c *Client) FetchAvailability(ctx context.Context, req AvailabilityRequest) ([]RawDay, error) {
	if c == nil {
		return nil, errors.New("upstream client is nil")
	}
	body, err := c.post(ctx, availabilityPath, req)
	if err != nil {
		return nil, err
	}

	var out availabilityResponse
	if err := json.Unmarshal(body, &out); err != nil {
		// A malformed upstream body is treated as an empty object.
		return nil, nil
	}
	return out.Days, nil
}

func (c *Client) Book(ctx context.Context, req BookingRequest) (BookingResult, error) {
	if c == nil {
		return BookingResult{}, errors.New("upstream client is nil")
	}
	body, err := c.post(ctx, bookPath, req)
	if err != nil {
		return BookingResult{}, err
	}

	var out BookingResult
	if err := json.Unmarshal(body, &out); err != nil {
		return BookingResult{}, nil
	}
	return out, nil
}

func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("upstream marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("upstream create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(secretHeader, c.secret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, statusError(resp.StatusCode, body)
	}
	return body, nil
}

func statusError(status int, body []byte) error {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	// Unstructured bodies fall through with empty fields.
	_ = json.Unmarshal(body, &payload)

	if status == http.StatusConflict && payload.Error == "slot_taken" {
		return ErrSlotTaken
	}

	msg := payload.Error
	if msg == "" {
		msg = payload.Message
	}
	return &StatusError{Status: status, Message: msg}
}
