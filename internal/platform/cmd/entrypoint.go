// Package cmd carries the shared entrypoint plumbing for the command
// binaries: env-backed config loading, flag parsing, and the telemetry
// wrapper around a run loop.
package cmd

import (
	"context"
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/industry-digital/flux-game-sub010/internal/platform/config"
	"github.com/industry-digital/flux-game-sub010/internal/platform/otel"
)

// Command names, used for telemetry service identity and log prefixes.
const (
	ServiceSim    = "sim"
	ServiceReplay = "replay"
)

// otelShutdownTimeout bounds the trace flush when a command exits.
const otelShutdownTimeout = 5 * time.Second

// ParseConfig fills cfg from environment variables.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("nil config target")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs runs the flag set over args so flag values override env
// defaults already parsed into the config.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("nil flag set")
	}
	return fs.Parse(args)
}

// RunWithTelemetry sets up tracing for the named command, executes run,
// and flushes any buffered spans on the way out.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	switch {
	case strings.TrimSpace(service) == "":
		return errors.New("telemetry service name is empty")
	case run == nil:
		return errors.New("telemetry run function is nil")
	}

	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return err
	}
	defer flushTraces(service, shutdown)

	return run(ctx)
}

// flushTraces drains buffered spans within the shutdown budget.
func flushTraces(service string, shutdown func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()
	if err := shutdown(ctx); err != nil {
		log.Printf("%s otel shutdown: %v", service, err)
	}
}
