package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/pkg/api"
)

// Cloud talks to a hosted sync relay over HTTP JSON.
type Cloud struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	deviceID   string
	token      string
	connected  bool
}

// NewCloud creates a cloud adapter.
func NewCloud(logger *slog.Logger) *Cloud {
	return &Cloud{
		logger: logger,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Connect implements Adapter.Connect. It verifies the relay is
// reachable; calling it again on a connected adapter is a no-op.
func (c *Cloud) Connect(ctx context.Context, cfg *models.SyncConfig) error {
	if c.connected {
		return nil
	}

	c.baseURL = cfg.Endpoint
	c.deviceID = cfg.DeviceID
	c.token = cfg.CredentialsRef

	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/sync/ping", nil, nil); err != nil {
		return fmt.Errorf("cloud connect failed: %w", err)
	}

	c.connected = true
	return nil
}

// Disconnect implements Adapter.Disconnect.
func (c *Cloud) Disconnect(ctx context.Context) error {
	c.connected = false
	return nil
}

// Connected implements Adapter.Connected.
func (c *Cloud) Connected() bool {
	return c.connected
}

// PushChanges implements Adapter.PushChanges.
func (c *Cloud) PushChanges(ctx context.Context, changes []*models.SyncChange) (*PushResult, error) {
	if !c.connected {
		return rejectAll(changes), nil
	}

	req := api.PushRequest{DeviceID: c.deviceID, Changes: make([]api.Change, 0, len(changes))}
	for _, change := range changes {
		req.Changes = append(req.Changes, toWire(change))
	}

	var resp api.PushResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/push", req, &resp); err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}

	return &PushResult{Accepted: resp.Accepted, Rejected: resp.Rejected}, nil
}

// PullChanges implements Adapter.PullChanges.
func (c *Cloud) PullChanges(ctx context.Context, sinceSequence int64) ([]*models.SyncChange, error) {
	if !c.connected {
		return nil, fmt.Errorf("cloud adapter is not connected")
	}

	req := api.PullRequest{DeviceID: c.deviceID, Since: sinceSequence}

	var resp api.PullResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/sync/pull", req, &resp); err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}

	changes := make([]*models.SyncChange, 0, len(resp.Changes))
	for _, change := range resp.Changes {
		changes = append(changes, fromWire(change))
	}
	return changes, nil
}

// doRequest performs one HTTP round trip with JSON encoding on both
// sides.
func (c *Cloud) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(data))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
