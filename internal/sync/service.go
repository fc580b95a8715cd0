// Package sync implements the device synchronization engine: push and
// pull of change records through a backend adapter, conflict gating,
// per-device logical clocks and the surrounding lifecycle.
package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meshsync/meshsync/internal/audit"
	"github.com/meshsync/meshsync/internal/backend"
	"github.com/meshsync/meshsync/internal/conflict"
	"github.com/meshsync/meshsync/internal/crdt"
	"github.com/meshsync/meshsync/internal/events"
	"github.com/meshsync/meshsync/internal/locks"
	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/internal/retry"
	"github.com/meshsync/meshsync/internal/storage"
	"github.com/meshsync/meshsync/internal/validation"
)

// ErrNotConfigured is returned by Sync when Configure has not been
// called yet.
var ErrNotConfigured = errors.New("SyncService not configured")

// sourceTag marks engine-originated events and transparency entries.
const sourceTag = "sync-engine"

// DefaultAutoSyncInterval is the timer period used when none is
// configured.
const DefaultAutoSyncInterval = 60 * time.Second

// Service is the engine surface the rest of the application talks to.
type Service interface {
	// Configure loads or creates the device config, builds the
	// backend adapter and attempts to connect
	Configure(ctx context.Context, opts Options) (*models.SyncConfig, error)

	// Sync runs one push/pull/reconcile cycle. It returns
	// ErrNotConfigured before Configure; every other failure resolves
	// into the returned state with status error
	Sync(ctx context.Context) (*models.SyncState, error)

	// Status computes the current state from local data only
	Status(ctx context.Context) *models.SyncState

	// RegisterDevice adds a device to the registry
	RegisterDevice(ctx context.Context, device *models.Device) error

	// UnregisterDevice removes a device from the registry
	UnregisterDevice(ctx context.Context, deviceID string) error

	// StartAutoSync runs Sync on a recurring timer
	StartAutoSync(interval time.Duration)

	// StopAutoSync cancels the timer; a no-op when not running
	StopAutoSync()

	// AcquireLock grants or refreshes an advisory lock
	AcquireLock(resource, deviceID string) bool

	// ReleaseLock drops the caller's advisory lock
	ReleaseLock(resource, deviceID string) bool

	// LockHolder reports the device holding a resource, "" if none
	LockHolder(resource string) string

	// ResolveConflict applies a strategy to a pending conflict
	ResolveConflict(ctx context.Context, conflictID string, strategy models.ConflictStrategy, resolvedBy string) error

	// RecordChange captures a local entity mutation into the change
	// log, to be pushed on the next cycle
	RecordChange(ctx context.Context, entityType, entityID string, changeType models.ChangeType, before, after any) (*models.SyncChange, error)

	// History returns the change log for one entity
	History(ctx context.Context, entityType, entityID string) ([]*models.SyncChange, error)

	// Close stops auto-sync, disconnects and clears all locks
	Close(ctx context.Context) error
}

// Options is the partial configuration passed to Configure. Zero
// fields keep the existing (or default) value; DeviceID is required.
type Options struct {
	DeviceID         string
	DeviceName       string
	Backend          models.BackendType
	Endpoint         string
	CredentialsRef   string
	DefaultStrategy  models.ConflictStrategy
	ExcludePatterns  []string
	AutoSyncInterval int
	MaxFileSizeBytes int64
}

// AdapterFactory builds the transport for a backend tag.
type AdapterFactory func(tag models.BackendType, logger *slog.Logger) backend.Adapter

// Deps carries the engine's collaborators. Logger, Resolver, Locks,
// Factory and Retry may be zero; the engine fills in defaults.
type Deps struct {
	Logger   *slog.Logger
	Configs  storage.ConfigStore
	Devices  storage.DeviceStore
	Changes  storage.ChangeStore
	Entities storage.EntityStore
	Resolver conflict.Resolver
	Bus      events.Publisher
	Audit    audit.Logger
	Locks    *locks.Table
	Factory  AdapterFactory
	Retry    retry.Config
}

// Engine is the Service implementation. One instance per process; a
// boolean guard keeps at most one cycle in flight.
type Engine struct {
	logger   *slog.Logger
	configs  storage.ConfigStore
	devices  storage.DeviceStore
	changes  storage.ChangeStore
	entities storage.EntityStore
	resolver conflict.Resolver
	bus      events.Publisher
	audit    audit.Logger
	locks    *locks.Table
	factory  AdapterFactory
	retryCfg retry.Config

	mu        sync.Mutex
	cfg       *models.SyncConfig
	adapter   backend.Adapter
	syncing   bool
	lastError string

	autoMu   sync.Mutex
	autoStop chan struct{}
}

var _ Service = (*Engine)(nil)

// New creates an unconfigured engine.
func New(deps Deps) *Engine {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	factory := deps.Factory
	if factory == nil {
		factory = backend.New
	}

	lockTable := deps.Locks
	if lockTable == nil {
		lockTable = locks.NewTable(logger)
	}

	retryCfg := deps.Retry
	if retryCfg == (retry.Config{}) {
		retryCfg = retry.DefaultConfig()
	}

	return &Engine{
		logger:   logger,
		configs:  deps.Configs,
		devices:  deps.Devices,
		changes:  deps.Changes,
		entities: deps.Entities,
		resolver: deps.Resolver,
		bus:      deps.Bus,
		audit:    deps.Audit,
		locks:    lockTable,
		factory:  factory,
		retryCfg: retryCfg,
	}
}

// Configure implements Service.Configure. A connection failure is
// logged but does not abort configuration: the config persists so a
// later cycle can retry while offline.
func (e *Engine) Configure(ctx context.Context, opts Options) (*models.SyncConfig, error) {
	if err := validation.ValidateDeviceID(opts.DeviceID); err != nil {
		return nil, fmt.Errorf("invalid device id: %w", err)
	}

	cfg, err := e.loadOrDefaultConfig(ctx, opts.DeviceID)
	if err != nil {
		return nil, err
	}

	created := cfg.CreatedAt.IsZero()
	applyOptions(cfg, opts)

	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid sync config: %w", err)
	}

	now := time.Now().UTC()
	cfg.UpdatedAt = now
	if created {
		cfg.CreatedAt = now
		err = e.configs.CreateConfig(ctx, cfg)
	} else {
		err = e.configs.UpdateConfig(ctx, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to persist sync config: %w", err)
	}

	adapter := e.factory(cfg.Backend, e.logger)
	if err := adapter.Connect(ctx, cfg); err != nil {
		e.logger.Warn("Failed to connect: " + err.Error())
	}

	if err := e.ensureDevice(ctx, cfg); err != nil {
		return nil, err
	}

	e.mu.Lock()
	e.cfg = cfg
	e.adapter = adapter
	if e.resolver == nil {
		e.resolver = conflict.NewManager(cfg.DeviceID, e.logger)
	}
	e.mu.Unlock()

	e.emit(ctx, events.SyncDeviceConnected, map[string]any{
		"device_id":   cfg.DeviceID,
		"device_name": cfg.DeviceName,
		"backend":     string(cfg.Backend),
	})
	e.auditLog(ctx, audit.CategorySyncOperation, "configure",
		fmt.Sprintf("backend=%s endpoint=%s", cfg.Backend, cfg.Endpoint), cfg.DeviceID)

	e.logger.Info("Sync configured",
		"device_id", cfg.DeviceID,
		"backend", string(cfg.Backend),
		"connected", adapter.Connected())

	return cfg, nil
}

func (e *Engine) loadOrDefaultConfig(ctx context.Context, deviceID string) (*models.SyncConfig, error) {
	cfg, err := e.configs.GetConfig(ctx, deviceID)
	switch {
	case err == nil:
		return cfg, nil
	case errors.Is(err, storage.ErrConfigNotFound):
		return &models.SyncConfig{
			DeviceID:         deviceID,
			Backend:          models.BackendCloud,
			DefaultStrategy:  models.StrategyLastWriteWins,
			AutoSyncInterval: int(DefaultAutoSyncInterval / time.Second),
			Enabled:          true,
		}, nil
	default:
		return nil, fmt.Errorf("failed to load sync config: %w", err)
	}
}

// applyOptions patches non-zero option fields over the config.
func applyOptions(cfg *models.SyncConfig, opts Options) {
	if opts.DeviceName != "" {
		cfg.DeviceName = opts.DeviceName
	}
	if opts.Backend != "" {
		cfg.Backend = opts.Backend
	}
	if opts.Endpoint != "" {
		cfg.Endpoint = opts.Endpoint
	}
	if opts.CredentialsRef != "" {
		cfg.CredentialsRef = opts.CredentialsRef
	}
	if opts.DefaultStrategy != "" {
		cfg.DefaultStrategy = opts.DefaultStrategy
	}
	if opts.ExcludePatterns != nil {
		cfg.ExcludePatterns = opts.ExcludePatterns
	}
	if opts.AutoSyncInterval != 0 {
		cfg.AutoSyncInterval = opts.AutoSyncInterval
	}
	if opts.MaxFileSizeBytes != 0 {
		cfg.MaxFileSizeBytes = opts.MaxFileSizeBytes
	}
}

func (e *Engine) ensureDevice(ctx context.Context, cfg *models.SyncConfig) error {
	_, err := e.devices.GetDevice(ctx, cfg.DeviceID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrDeviceNotFound) {
		return fmt.Errorf("failed to look up device: %w", err)
	}

	device := &models.Device{
		DeviceID:    cfg.DeviceID,
		Name:        cfg.DeviceName,
		IsCurrent:   true,
		SyncEnabled: true,
		LastSeenAt:  time.Now().UTC(),
	}
	if err := e.devices.CreateDevice(ctx, device); err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}
	return nil
}

// Sync implements Service.Sync. Cycles are strictly serialized: a
// call arriving while one is in flight returns the current status
// without starting another.
func (e *Engine) Sync(ctx context.Context) (*models.SyncState, error) {
	e.mu.Lock()
	if e.cfg == nil {
		e.mu.Unlock()
		return nil, ErrNotConfigured
	}
	if e.syncing {
		e.mu.Unlock()
		e.logger.Info("Sync already in progress")
		return e.Status(ctx), nil
	}
	cfg := e.cfg
	adapter := e.adapter
	if adapter == nil {
		e.mu.Unlock()
		return e.failCycle(ctx, errors.New("backend adapter is not available")), nil
	}
	e.syncing = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.syncing = false
		e.mu.Unlock()
	}()

	correlationID := uuid.New().String()
	started := time.Now()

	e.emit(ctx, events.SyncStarted, map[string]any{
		"correlation_id": correlationID,
		"device_id":      cfg.DeviceID,
	})

	stats, err := e.runCycle(ctx, cfg, adapter)
	if err != nil {
		return e.failCycle(ctx, err), nil
	}

	e.mu.Lock()
	e.lastError = ""
	e.mu.Unlock()

	state := e.computeState(ctx, cfg)

	e.emit(ctx, events.SyncCompleted, map[string]any{
		"correlation_id": correlationID,
		"device_id":      cfg.DeviceID,
		"pushed":         stats.pushed,
		"pulled":         stats.pulled,
		"applied":        stats.applied,
		"conflicts":      stats.conflicts,
		"duration_ms":    time.Since(started).Milliseconds(),
	})
	e.auditLog(ctx, audit.CategorySyncOperation, "sync",
		fmt.Sprintf("pushed=%d pulled=%d applied=%d conflicts=%d",
			stats.pushed, stats.pulled, stats.applied, stats.conflicts),
		cfg.DeviceID)

	e.logger.Info("Sync cycle completed",
		"correlation_id", correlationID,
		"pushed", stats.pushed,
		"pulled", stats.pulled,
		"applied", stats.applied,
		"conflicts", stats.conflicts,
		"duration", time.Since(started))

	return state, nil
}

// cycleStats counts what one cycle moved.
type cycleStats struct {
	pushed    int
	pulled    int
	applied   int
	conflicts int
}

func (e *Engine) runCycle(ctx context.Context, cfg *models.SyncConfig, adapter backend.Adapter) (*cycleStats, error) {
	stats := &cycleStats{}

	// Push local unsynced changes.
	unsynced, err := e.changes.GetUnsyncedChanges(ctx, cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load unsynced changes: %w", err)
	}
	if len(unsynced) > 0 {
		result, err := retry.Do(ctx, e.retryCfg, e.logger, "Push changes",
			func(ctx context.Context) (*backend.PushResult, error) {
				return adapter.PushChanges(ctx, unsynced)
			})
		if err != nil {
			return nil, err
		}
		if len(result.Accepted) > 0 {
			if err := e.changes.MarkChangesSynced(ctx, result.Accepted); err != nil {
				return nil, fmt.Errorf("failed to mark changes synced: %w", err)
			}
		}
		stats.pushed = len(result.Accepted)
	}

	// Pull remote changes past the local watermark.
	since, err := e.changes.GetLatestSequenceNumber(ctx, cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence watermark: %w", err)
	}
	pulled, err := retry.Do(ctx, e.retryCfg, e.logger, "Pull changes",
		func(ctx context.Context) ([]*models.SyncChange, error) {
			return adapter.PullChanges(ctx, since)
		})
	if err != nil {
		return nil, err
	}
	stats.pulled = len(pulled)

	// Reconcile each pulled change.
	for _, change := range pulled {
		applied, conflicted, err := e.reconcile(ctx, cfg, change)
		if err != nil {
			return nil, err
		}
		if applied {
			stats.applied++
		}
		if conflicted {
			stats.conflicts++
		}
	}

	// Advance our logical clock.
	if _, err := e.devices.IncrementDeviceClock(ctx, cfg.DeviceID); err != nil {
		return nil, fmt.Errorf("failed to advance device clock: %w", err)
	}

	return stats, nil
}

// reconcile folds one pulled change into the local log. An echo of
// our own device is skipped outright. A change with no competing
// local edit records directly; a competing edit routes through
// conflict detection, and a reported conflict leaves the remote
// change unapplied.
func (e *Engine) reconcile(ctx context.Context, cfg *models.SyncConfig, change *models.SyncChange) (applied, conflicted bool, err error) {
	if change.DeviceID == cfg.DeviceID {
		return false, false, nil
	}

	history, err := e.changes.GetSyncChangesByEntity(ctx, change.EntityType, change.EntityID)
	if err != nil {
		return false, false, fmt.Errorf("failed to load entity history: %w", err)
	}

	var competing *models.SyncChange
	for _, local := range history {
		if local.DeviceID == cfg.DeviceID && !local.Synced {
			competing = local
		}
	}

	if competing != nil {
		localEntity := e.lookupEntity(ctx, change.EntityType, change.EntityID)
		if localEntity != nil {
			delta := normalizeDelta(e.logger, change)
			if len(delta) > 0 {
				remoteDevice := change.DeviceID
				if remoteDevice == "" {
					remoteDevice = models.UnknownDeviceID
				}

				c, err := e.resolver.DetectConflict(ctx,
					change.EntityType, change.EntityID,
					localEntity, delta,
					competing.CreatedAt, change.CreatedAt,
					remoteDevice)
				if err != nil {
					return false, false, fmt.Errorf("conflict detection failed: %w", err)
				}
				if c != nil {
					e.emit(ctx, events.SyncConflictFound, map[string]any{
						"conflict_id": c.ID,
						"entity_type": c.EntityType,
						"entity_id":   c.EntityID,
					})
					return false, true, nil
				}
			}
		}
	}

	if err := e.recordRemote(ctx, change); err != nil {
		return false, false, err
	}
	return true, false, nil
}

// normalizeDelta decodes the remote patch. A malformed patch degrades
// to an empty delta, which suppresses conflict detection for the
// change rather than aborting the cycle.
func normalizeDelta(logger *slog.Logger, change *models.SyncChange) map[string]any {
	delta, err := change.NormalizedPatch()
	if err != nil {
		logger.Warn("Skipping malformed patch",
			"change_id", change.ID,
			"entity_id", change.EntityID,
			"error", err)
		return nil
	}
	return delta
}

// recordRemote stores a pulled change in the local log, already
// marked synced. Keying on the change id makes re-recording the same
// change an overwrite, not a duplicate.
func (e *Engine) recordRemote(ctx context.Context, change *models.SyncChange) error {
	record := change.Clone()
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.DeviceID == "" {
		record.DeviceID = models.UnknownDeviceID
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	record.Synced = true

	if err := e.changes.CreateChange(ctx, record); err != nil {
		return fmt.Errorf("failed to record remote change: %w", err)
	}
	return nil
}

// failCycle records a cycle failure and builds the error state. If
// configuration was cleared mid-cycle the state reports device
// "unknown" rather than failing again.
func (e *Engine) failCycle(ctx context.Context, err error) *models.SyncState {
	e.logger.Error("Sync cycle failed", "error", err)

	e.mu.Lock()
	e.lastError = err.Error()
	cfg := e.cfg
	e.mu.Unlock()

	state := &models.SyncState{
		Timestamp:    time.Now().UTC(),
		Status:       models.StatusError,
		ErrorMessage: err.Error(),
		DeviceID:     models.UnknownDeviceID,
		DeviceName:   models.UnknownDeviceID,
		VectorClock:  crdt.New(),
	}
	if cfg != nil {
		state.DeviceID = cfg.DeviceID
		state.DeviceName = cfg.DeviceName
	}
	return state
}

// Status implements Service.Status. It touches only local state and
// never the network; storage hiccups degrade to zero counts.
func (e *Engine) Status(ctx context.Context) *models.SyncState {
	e.mu.Lock()
	cfg := e.cfg
	syncing := e.syncing
	lastError := e.lastError
	e.mu.Unlock()

	if cfg == nil {
		return &models.SyncState{
			Timestamp:   time.Now().UTC(),
			Status:      models.StatusOffline,
			DeviceID:    models.UnknownDeviceID,
			DeviceName:  models.UnknownDeviceID,
			VectorClock: crdt.New(),
		}
	}

	state := e.computeState(ctx, cfg)
	switch {
	case lastError != "":
		state.Status = models.StatusError
		state.ErrorMessage = lastError
	case syncing:
		state.Status = models.StatusSyncing
	}
	return state
}

// computeState builds the post-cycle snapshot: pending count,
// unresolved conflicts and the vector clock across known devices.
func (e *Engine) computeState(ctx context.Context, cfg *models.SyncConfig) *models.SyncState {
	state := &models.SyncState{
		Timestamp:   time.Now().UTC(),
		Status:      models.StatusIdle,
		DeviceID:    cfg.DeviceID,
		DeviceName:  cfg.DeviceName,
		VectorClock: crdt.New(),
	}

	if unsynced, err := e.changes.GetUnsyncedChanges(ctx, cfg.DeviceID); err == nil {
		state.PendingChanges = len(unsynced)
	}

	if devices, err := e.devices.ListDevices(ctx); err == nil {
		clock := crdt.New()
		for _, device := range devices {
			clock.Merge(crdt.VectorClock{device.DeviceID: device.ClockValue})
		}
		state.VectorClock = clock
	}

	e.mu.Lock()
	resolver := e.resolver
	e.mu.Unlock()
	if resolver != nil {
		state.UnresolvedConflicts = resolver.UnresolvedCount()
	}

	if state.UnresolvedConflicts > 0 {
		state.Status = models.StatusConflict
	}
	return state
}

// RegisterDevice implements Service.RegisterDevice.
func (e *Engine) RegisterDevice(ctx context.Context, device *models.Device) error {
	if err := validation.ValidateDeviceID(device.DeviceID); err != nil {
		return fmt.Errorf("invalid device id: %w", err)
	}

	if device.LastSeenAt.IsZero() {
		device.LastSeenAt = time.Now().UTC()
	}
	if err := e.devices.CreateDevice(ctx, device); err != nil {
		return fmt.Errorf("failed to register device: %w", err)
	}

	e.emit(ctx, events.SyncDeviceConnected, map[string]any{
		"device_id":   device.DeviceID,
		"device_name": device.Name,
	})
	e.auditLog(ctx, audit.CategorySyncOperation, "register_device", device.Name, device.DeviceID)
	return nil
}

// UnregisterDevice implements Service.UnregisterDevice.
func (e *Engine) UnregisterDevice(ctx context.Context, deviceID string) error {
	if err := e.devices.DeleteDevice(ctx, deviceID); err != nil {
		return fmt.Errorf("failed to unregister device: %w", err)
	}

	e.emit(ctx, events.SyncDeviceDropped, map[string]any{"device_id": deviceID})
	e.auditLog(ctx, audit.CategorySyncOperation, "unregister_device", "", deviceID)
	return nil
}

// StartAutoSync implements Service.StartAutoSync. Starting while a
// timer is already running replaces it; the two never overlap. The
// logged interval is the requested value even when the timer period
// is clamped.
func (e *Engine) StartAutoSync(interval time.Duration) {
	e.autoMu.Lock()
	defer e.autoMu.Unlock()

	e.stopAutoSyncLocked()

	if interval <= 0 {
		interval = DefaultAutoSyncInterval
	}
	e.logger.Info("Starting auto-sync", "interval", interval)

	period := interval
	if period < time.Second {
		period = time.Second
	}

	stop := make(chan struct{})
	e.autoStop = stop

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if _, err := e.Sync(context.Background()); err != nil {
					e.logger.Error("Auto-sync error: " + err.Error())
				}
			}
		}
	}()
}

// StopAutoSync implements Service.StopAutoSync.
func (e *Engine) StopAutoSync() {
	e.autoMu.Lock()
	defer e.autoMu.Unlock()
	e.stopAutoSyncLocked()
}

func (e *Engine) stopAutoSyncLocked() {
	if e.autoStop != nil {
		close(e.autoStop)
		e.autoStop = nil
	}
}

// AcquireLock implements Service.AcquireLock.
func (e *Engine) AcquireLock(resource, deviceID string) bool {
	granted := e.locks.Acquire(resource, deviceID)
	if granted {
		e.auditLog(context.Background(), audit.CategoryLockOperation, "acquire", resource, deviceID)
	}
	return granted
}

// ReleaseLock implements Service.ReleaseLock.
func (e *Engine) ReleaseLock(resource, deviceID string) bool {
	released := e.locks.Release(resource, deviceID)
	if released {
		e.auditLog(context.Background(), audit.CategoryLockOperation, "release", resource, deviceID)
	}
	return released
}

// LockHolder implements Service.LockHolder.
func (e *Engine) LockHolder(resource string) string {
	return e.locks.Holder(resource)
}

// ResolveConflict implements Service.ResolveConflict.
func (e *Engine) ResolveConflict(ctx context.Context, conflictID string, strategy models.ConflictStrategy, resolvedBy string) error {
	e.mu.Lock()
	resolver := e.resolver
	cfg := e.cfg
	e.mu.Unlock()

	if resolver == nil {
		return ErrNotConfigured
	}

	resolution, err := resolver.Resolve(ctx, conflictID, strategy, resolvedBy)
	if err != nil {
		return err
	}

	deviceID := ""
	if cfg != nil {
		deviceID = cfg.DeviceID
	}
	e.auditLog(ctx, audit.CategorySyncOperation, "resolve_conflict",
		fmt.Sprintf("conflict=%s strategy=%s winner=%s", conflictID, strategy, resolution.Winner),
		deviceID)

	e.logger.Info("Conflict resolved",
		"conflict_id", conflictID,
		"strategy", string(strategy),
		"winner", resolution.Winner)
	return nil
}

// RecordChange captures a local entity mutation into the change log.
// The record carries fingerprints of the before and after snapshots,
// the next per-device sequence number and the mutated fields as its
// patch; it enters the log unsynced and is pushed on the next cycle.
func (e *Engine) RecordChange(ctx context.Context, entityType, entityID string, changeType models.ChangeType, before, after any) (*models.SyncChange, error) {
	e.mu.Lock()
	cfg := e.cfg
	e.mu.Unlock()

	if cfg == nil {
		return nil, ErrNotConfigured
	}

	var patch []byte
	if after != nil {
		data, err := json.Marshal(after)
		if err != nil {
			return nil, fmt.Errorf("failed to encode change patch: %w", err)
		}
		patch = data
	}

	latest, err := e.changes.GetLatestSequenceNumber(ctx, cfg.DeviceID)
	if err != nil {
		return nil, fmt.Errorf("failed to read sequence number: %w", err)
	}

	change := &models.SyncChange{
		ID:             uuid.New().String(),
		EntityType:     entityType,
		EntityID:       entityID,
		ChangeType:     changeType,
		DeviceID:       cfg.DeviceID,
		BeforeHash:     models.Fingerprint(before),
		AfterHash:      models.Fingerprint(after),
		Patch:          patch,
		SequenceNumber: latest + 1,
		CreatedAt:      time.Now().UTC(),
	}
	if err := e.changes.CreateChange(ctx, change); err != nil {
		return nil, fmt.Errorf("failed to record change: %w", err)
	}
	return change, nil
}

// History implements Service.History.
func (e *Engine) History(ctx context.Context, entityType, entityID string) ([]*models.SyncChange, error) {
	return e.changes.GetSyncChangesByEntity(ctx, entityType, entityID)
}

// Close implements Service.Close. Safe to call before Configure and
// safe to call twice.
func (e *Engine) Close(ctx context.Context) error {
	e.StopAutoSync()

	e.mu.Lock()
	adapter := e.adapter
	e.adapter = nil
	e.mu.Unlock()

	if adapter != nil {
		if err := adapter.Disconnect(ctx); err != nil {
			e.logger.Warn("Disconnect error: " + err.Error())
		}
	}

	e.locks.Clear()
	e.logger.Info("Disposed")
	return nil
}

// emit publishes an event; a nil bus is allowed.
func (e *Engine) emit(ctx context.Context, name string, payload any) {
	if e.bus == nil {
		return
	}
	e.bus.Emit(ctx, name, sourceTag, payload)
}

// auditLog appends a transparency entry. Failures are advisory: they
// log a warning and never affect the calling operation.
func (e *Engine) auditLog(ctx context.Context, category, action, detail, deviceID string) {
	if e.audit == nil {
		return
	}
	entry := audit.Entry{
		Timestamp: time.Now().UTC(),
		Source:    sourceTag,
		Category:  category,
		Action:    action,
		Detail:    detail,
		DeviceID:  deviceID,
	}
	if err := e.audit.Log(ctx, entry); err != nil {
		e.logger.Warn("Failed to write transparency entry", "action", action, "error", err)
	}
}
