package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"uikit/internal/alert"
	"uikit/internal/config"
	"uikit/internal/logging"
	"uikit/internal/telemetry"
	"uikit/internal/ui"
)

type runOptions struct {
	configPath string
	logLevel   string
	logFile    string
	heartbeat  time.Duration
}

func addRunFlags(fs *pflag.FlagSet, opts *runOptions) {
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	fs.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error); overrides config")
	fs.StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file; overrides config")
	fs.DurationVar(&opts.heartbeat, "heartbeat", 0, "raise an info alert from a background goroutine at this interval (0 disables)")
}

func run(ctx context.Context, opts *runOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}

	logger, closer, err := logging.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer closer.Close()

	provider, err := telemetry.New(ctx, cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn().Err(err).Msg("Failed to flush traces")
		}
	}()

	// Validate has already parsed these.
	variant, _ := cfg.Alerts.Variant()
	position, _ := cfg.Alerts.Position()

	store := alert.NewStore(
		alert.WithDismissDelay(cfg.Alerts.DismissDelay),
		alert.WithLogger(logger),
		alert.WithTracer(provider.Tracer()),
	)
	store.Mount(alert.Default)
	defer store.Close()

	logger.Info().
		Dur("dismiss_delay", store.DismissDelay()).
		Str("default_variant", variant.String()).
		Str("default_position", position.String()).
		Msg("Starting alertdemo")

	if opts.heartbeat > 0 {
		go heartbeat(ctx, opts.heartbeat, logger)
	}

	view := ui.NewAlertsView(store, variant, position)
	defer view.Feed.Close()

	p := tea.NewProgram(ui.AsTeaModel(view), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// heartbeat raises alerts without a reference to the store, the way business
// logic outside the UI tree would.
func heartbeat(ctx context.Context, every time.Duration, logger zerolog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	n := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n++
			if id := alert.Dispatch(fmt.Sprintf("Heartbeat #%d", n), alert.VariantInfo, false); id == "" {
				logger.Debug().Int("beat", n).Msg("Heartbeat dropped, no store mounted")
			}
		}
	}
}

func writeDefaultConfig(path string) error {
	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
