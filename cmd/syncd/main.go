package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	auditsqlite "github.com/meshsync/meshsync/internal/audit/sqlite"
	"github.com/meshsync/meshsync/internal/events"
	"github.com/meshsync/meshsync/internal/models"
	"github.com/meshsync/meshsync/internal/storage/boltdb"
	syncengine "github.com/meshsync/meshsync/internal/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	deviceID := flag.String("device", "", "Stable device id (required)")
	deviceName := flag.String("name", "", "Human-readable device name")
	backendTag := flag.String("backend", "cloud", "Sync backend: cloud, nas or p2p")
	endpoint := flag.String("endpoint", "", "Backend endpoint (URL or share path)")
	credentials := flag.String("credentials", "", "Opaque credentials reference for the backend")
	dbPath := flag.String("db", "meshsync.db", "Path to local database")
	auditPath := flag.String("audit-db", "meshsync-audit.db", "Path to transparency log database")
	interval := flag.Duration("interval", 60*time.Second, "Auto-sync interval")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *deviceID == "" {
		fmt.Fprintln(os.Stderr, "Error: -device is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := newLogger(*logLevel)
	ctx := context.Background()

	store, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	auditLog, err := auditsqlite.New(ctx, *auditPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open transparency log: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := auditLog.Close(); err != nil {
			logger.Error("failed to close transparency log", "error", err)
		}
	}()

	bus := events.NewBus(logger)
	bus.Subscribe("*", func(ctx context.Context, event events.Event) {
		logger.Debug("event", "name", event.Name, "source", event.Source)
	})

	engine := syncengine.New(syncengine.Deps{
		Logger:   logger,
		Configs:  store,
		Devices:  store,
		Changes:  store,
		Entities: store,
		Bus:      bus,
		Audit:    auditLog,
	})

	if _, err := engine.Configure(ctx, syncengine.Options{
		DeviceID:       *deviceID,
		DeviceName:     *deviceName,
		Backend:        models.BackendType(*backendTag),
		Endpoint:       *endpoint,
		CredentialsRef: *credentials,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure sync: %v\n", err)
		os.Exit(1)
	}

	engine.StartAutoSync(*interval)
	logger.Info("meshsync daemon started", "device_id", *deviceID, "backend", *backendTag)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := engine.Close(shutdownCtx); err != nil {
		logger.Error("failed to close engine", "error", err)
	}
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}

func printVersion() {
	fmt.Printf("MeshSync Daemon\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
