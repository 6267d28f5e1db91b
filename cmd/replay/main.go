// Command replay inspects, exports, and imports the event journal.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	replaycmd "github.com/industry-digital/flux-game-sub010/internal/cmd/replay"
	"github.com/industry-digital/flux-game-sub010/internal/platform/config"
)

func main() {
	if err := run(); err != nil {
		config.Exitf("replay: %v", err)
	}
}

func run() error {
	cfg, err := replaycmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return replaycmd.Run(ctx, cfg, os.Stdout, os.Stderr)
}
