package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/microvm/internal/ctxlog"
)

// App encapsulates the launcher's dependencies, configuration, and
// lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// New is the constructor for the launcher application. Log output goes to
// errW so that pass-through output on outW stays clean.
func New(outW, errW io.Writer, cfg *Config) *App {
	logger := newLoggerFromEnv(errW)
	logger.Debug("Logger configured successfully.")
	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Run consumes the resolved invocation: it logs the values the validator
// produced and echoes the verbatim pass-through arguments. Binding the API
// socket, loading the configuration file, and starting the microVM are the
// responsibility of downstream components.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	logger := ctxlog.FromContext(ctx)

	logger.Info("Invocation resolved.",
		"api_sock", a.config.APISockPath,
		"id", a.config.InstanceID,
		"seccomp_level", a.config.SeccompLevel,
		"no_api", a.config.NoAPI,
		"config_file", a.config.ConfigFilePath,
	)
	if a.config.StartTimeUs != nil {
		logger.Debug("Start time recorded.", "start_time_us", *a.config.StartTimeUs)
	}
	if a.config.StartTimeCPUUs != nil {
		logger.Debug("Start CPU time recorded.", "start_time_cpu_us", *a.config.StartTimeCPUUs)
	}

	for _, extra := range a.config.ExtraArgs {
		if _, err := fmt.Fprintln(a.outW, extra); err != nil {
			return fmt.Errorf("writing pass-through argument: %w", err)
		}
	}
	return nil
}
