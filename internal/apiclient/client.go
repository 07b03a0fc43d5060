// Package apiclient talks to the analysis endpoint on behalf of the form
// controller. It owns wire concerns only: the controller decides when to
// submit and how to present what comes back.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gridironhq/startsit/internal/model"
)

// ErrUnexpectedFormat means the server replied 2xx but the body was not an
// array of player records.
var ErrUnexpectedFormat = errors.New("apiclient: unexpected response format")

// StatusError is a non-2xx reply, reduced to the message the UI shows.
// Message comes from the server's JSON error body when it has one, and
// falls back to the HTTP status text otherwise.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("apiclient: status %d: %s", e.Status, e.Message)
}

// Client posts analysis requests to a fixed endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a client for the given endpoint URL. The underlying HTTP
// client carries no timeout; a hung request hangs until its context is
// canceled.
func New(endpoint string) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
	}
}

// Analyze submits one form's inputs and returns the decoded records.
// Year and week are sent as strings, matching the endpoint contract.
func (c *Client) Analyze(ctx context.Context, in model.FormInputs) ([]model.PlayerRecord, error) {
	body, err := json.Marshal(model.AnalyzeRequest{
		PlayerOrTeamInput: in.PlayerOrTeam,
		Year:              in.Year,
		Week:              in.Week,
	})
	if err != nil {
		return nil, fmt.Errorf("apiclient: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("apiclient: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("apiclient: send request: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("apiclient: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{
			Status:  resp.StatusCode,
			Message: errorMessage(payload, resp.StatusCode),
		}
	}

	var records []model.PlayerRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, ErrUnexpectedFormat
	}
	return records, nil
}

// errorMessage extracts the server's error field from a failure body,
// falling back to the status text when the body isn't usable JSON.
func errorMessage(payload []byte, status int) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil && body.Error != "" {
		return body.Error
	}
	return http.StatusText(status)
}
