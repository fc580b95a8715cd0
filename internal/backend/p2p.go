package backend

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"

	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/pkg/api"
)

// p2p frame types.
const (
	framePush       = "push"
	framePushResult = "push_result"
	framePull       = "pull"
	framePullResult = "pull_result"
)

// frame is one websocket message in either direction.
type frame struct {
	Push       *api.PushRequest  `json:"push,omitempty"`
	PushResult *api.PushResponse `json:"push_result,omitempty"`
	Pull       *api.PullRequest  `json:"pull,omitempty"`
	PullResult *api.PullResponse `json:"pull_result,omitempty"`
	Type       string            `json:"type"`
	Error      string            `json:"error,omitempty"`
}

// P2P exchanges changes with a peer device over a websocket. Requests
// and responses are serialized over the single connection.
type P2P struct {
	logger   *slog.Logger
	conn     *websocket.Conn
	deviceID string
	mu       sync.Mutex
}

// NewP2P creates a P2P adapter.
func NewP2P(logger *slog.Logger) *P2P {
	return &P2P{logger: logger}
}

// Connect implements Adapter.Connect. The endpoint is the peer's
// websocket URL.
func (p *P2P) Connect(ctx context.Context, cfg *models.SyncConfig) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn != nil {
		return nil
	}

	conn, _, err := websocket.Dial(ctx, cfg.Endpoint, nil)
	if err != nil {
		return fmt.Errorf("p2p connect failed: %w", err)
	}

	p.conn = conn
	p.deviceID = cfg.DeviceID
	return nil
}

// Disconnect implements Adapter.Disconnect.
func (p *P2P) Disconnect(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil
	}

	err := p.conn.Close(websocket.StatusNormalClosure, "disconnect")
	p.conn = nil
	if err != nil {
		return fmt.Errorf("p2p disconnect failed: %w", err)
	}
	return nil
}

// Connected implements Adapter.Connected.
func (p *P2P) Connected() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.conn != nil
}

// PushChanges implements Adapter.PushChanges.
func (p *P2P) PushChanges(ctx context.Context, changes []*models.SyncChange) (*PushResult, error) {
	if !p.Connected() {
		return rejectAll(changes), nil
	}

	req := &api.PushRequest{DeviceID: p.deviceID, Changes: make([]api.Change, 0, len(changes))}
	for _, change := range changes {
		req.Changes = append(req.Changes, toWire(change))
	}

	resp, err := p.roundTrip(ctx, frame{Type: framePush, Push: req}, framePushResult)
	if err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	if resp.PushResult == nil {
		return nil, fmt.Errorf("peer returned empty push result")
	}

	return &PushResult{Accepted: resp.PushResult.Accepted, Rejected: resp.PushResult.Rejected}, nil
}

// PullChanges implements Adapter.PullChanges.
func (p *P2P) PullChanges(ctx context.Context, sinceSequence int64) ([]*models.SyncChange, error) {
	if !p.Connected() {
		return nil, fmt.Errorf("p2p adapter is not connected")
	}

	req := &api.PullRequest{DeviceID: p.deviceID, Since: sinceSequence}

	resp, err := p.roundTrip(ctx, frame{Type: framePull, Pull: req}, framePullResult)
	if err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	if resp.PullResult == nil {
		return nil, fmt.Errorf("peer returned empty pull result")
	}

	changes := make([]*models.SyncChange, 0, len(resp.PullResult.Changes))
	for _, change := range resp.PullResult.Changes {
		changes = append(changes, fromWire(change))
	}
	return changes, nil
}

// roundTrip sends one frame and waits for the matching response type.
func (p *P2P) roundTrip(ctx context.Context, req frame, wantType string) (*frame, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil {
		return nil, fmt.Errorf("connection closed")
	}

	if err := wsjson.Write(ctx, p.conn, req); err != nil {
		return nil, fmt.Errorf("failed to send %s frame: %w", req.Type, err)
	}

	var resp frame
	if err := wsjson.Read(ctx, p.conn, &resp); err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if resp.Error != "" {
		return nil, fmt.Errorf("peer error: %s", resp.Error)
	}
	if resp.Type != wantType {
		return nil, fmt.Errorf("unexpected frame type %q, want %q", resp.Type, wantType)
	}

	return &resp, nil
}
