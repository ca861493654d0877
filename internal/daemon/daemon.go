package daemon

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/habitloop/habitloop/internal/api"
	"github.com/habitloop/habitloop/internal/app/achievement"
	"github.com/habitloop/habitloop/internal/app/goal"
	"github.com/habitloop/habitloop/internal/app/habit"
	"github.com/habitloop/habitloop/internal/app/session"
	"github.com/habitloop/habitloop/internal/health"
	_ "github.com/habitloop/habitloop/internal/infra/metrics" // Register Prometheus metrics
	"github.com/habitloop/habitloop/internal/infra/sqlite"
)

// Daemon is the core habitloop runtime. It wires together all services.
type Daemon struct {
	Config Config
	DB     *sqlite.DB
	Server *api.Server
	cancel context.CancelFunc

	Goals        *goal.Store
	Habits       *habit.Store
	Achievements *achievement.Engine
	Recorder     *session.Recorder
	Health       *health.Checker
}

// New creates and initializes a Daemon with all services wired.
func New() (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config) (*Daemon, error) {
	dataDir := cfg.Data.Dir
	if dataDir == "" {
		dataDir = habitloopHome()
	}

	db, err := sqlite.Open(dataDir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d := &Daemon{
		Config:       cfg,
		DB:           db,
		Goals:        goal.NewStore(db),
		Habits:       habit.NewStore(db),
		Achievements: achievement.NewEngine(db),
	}
	d.Recorder = session.NewRecorder(db, d.Goals, d.Achievements, d.Habits)
	d.Health = health.NewChecker(db, dataDir)

	srv := api.NewServer(d.Recorder, d.Goals, d.Habits, d.Achievements, d.Health, db)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}
	d.Server = srv

	return d, nil
}

// Serve starts the HTTP server and blocks until shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	// Health checker always runs
	go d.Health.Run(ctx)

	if n, err := d.DB.SessionCount(); err == nil {
		log.Printf("[daemon] session store ready, %d sessions", n)
	}

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)

	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	fmt.Printf("habitloop serving on http://%s\n", addr)
	if d.Config.Telemetry.Prometheus {
		fmt.Printf("  Metrics: http://%s/metrics\n", addr)
	}

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
}
