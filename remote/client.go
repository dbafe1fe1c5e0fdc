package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/amonks/focusstation/session"
)

// DefaultTimeout bounds requests made by a Client.
const DefaultTimeout = 10 * time.Second

const maxResponseBytes = 64 << 20

// Client talks to a Firebase-style JSON endpoint: GET returns every record
// keyed by ID, POST appends one record and answers {"name": id}.
type Client struct {
	url    string
	client *http.Client
}

// NewClient creates a client for the endpoint at rawURL.
func NewClient(rawURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		url:    strings.TrimSpace(rawURL),
		client: &http.Client{Timeout: timeout},
	}
}

// URL returns the endpoint.
func (c *Client) URL() string {
	return c.url
}

type appendResponse struct {
	Name string `json:"name"`
}

// FetchAll implements session.Repository.
func (c *Client) FetchAll(ctx context.Context) ([]session.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sessions: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, readErrorResponse(resp)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read sessions: %w", err)
	}
	return session.DecodeRecords(data)
}

// Append implements session.Repository.
func (c *Client) Append(ctx context.Context, record session.Record) (string, error) {
	data, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("append session: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", readErrorResponse(resp)
	}

	var response appendResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("decode append response: %w", err)
	}
	return response.Name, nil
}

func readErrorResponse(resp *http.Response) error {
	var payload map[string]string
	decoder := json.NewDecoder(io.LimitReader(resp.Body, 1<<16))
	if err := decoder.Decode(&payload); err == nil {
		if message, ok := payload["error"]; ok {
			return fmt.Errorf("session log error: %s", message)
		}
	}
	return fmt.Errorf("session log error: %s", resp.Status)
}
