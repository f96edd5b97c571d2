package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/towerdefence/internal/ai"
	"github.com/udisondev/towerdefence/internal/anim"
	"github.com/udisondev/towerdefence/internal/config"
	"github.com/udisondev/towerdefence/internal/data"
	"github.com/udisondev/towerdefence/internal/db"
	"github.com/udisondev/towerdefence/internal/scene"
	"github.com/udisondev/towerdefence/internal/sim"
)

const ConfigPath = "config/tdsim.yaml"

// storeTimeout bounds session storage after the run, when ctx may already be done.
const storeTimeout = 10 * time.Second

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load config FIRST to determine log level
	cfgPath := ConfigPath
	if p := os.Getenv("TD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSimulation(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := config.ApplyEnv(&cfg); err != nil {
		return fmt.Errorf("applying env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logLevel, _ := cfg.SlogLevel()
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Enable AI debug logging if log level is debug
	ai.EnableDebugLogging(logLevel == slog.LevelDebug)

	slog.Info("tdsim starting",
		"config", cfgPath,
		"level", cfg.LevelFile,
		"catalog", cfg.CatalogFile,
		"log_level", cfg.LogLevel)

	clock := &anim.ManualClock{}

	catalog, err := data.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	factory := scene.NewFactory()
	catalog.RegisterAll(factory, clock)

	level, err := scene.Load(cfg.LevelFile, clock, factory)
	if err != nil {
		return fmt.Errorf("loading level: %w", err)
	}

	runner := sim.NewRunner(level, sim.Options{
		Step:        cfg.Step.Seconds(),
		RealTime:    cfg.RealTime,
		MaxDuration: cfg.MaxDuration.Seconds(),
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	var result sim.Result
	g.Go(func() error {
		defer cancel()
		res, err := runner.Run(gctx)
		result = res
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("simulation: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case sig := <-sigCh:
			slog.Info("stopping simulation", "signal", sig)
			runner.Stop()
		case <-gctx.Done():
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	state := level.Logic().State()
	slog.Info("session finished",
		"runID", state.RunID,
		"outcome", state.Outcome.String(),
		"reason", result.Reason.String(),
		"frames", result.Frames,
		"time", state.TimeElapsed,
		"killed", state.MonstersKilled,
		"gold", state.PlayerGold)

	if !cfg.Database.Enabled {
		return nil
	}

	storeCtx, storeCancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer storeCancel()
	return storeSession(storeCtx, cfg, db.NewSession(state, cfg.LevelFile, result.Frames, time.Now()))
}

func storeSession(ctx context.Context, cfg config.Simulation, session db.Session) error {
	dsn := cfg.Database.DSN()

	version, err := db.RunMigrations(ctx, dsn)
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied", "version", version)

	database, err := db.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := database.Sessions().Save(ctx, session); err != nil {
		return err
	}
	slog.Info("session stored", "runID", session.RunID)
	return nil
}
