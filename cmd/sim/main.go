// Command sim runs an interactive console against a local game runtime,
// reading command lines from stdin.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	simcmd "github.com/industry-digital/flux-game-sub010/internal/cmd/sim"
	"github.com/industry-digital/flux-game-sub010/internal/platform/config"
)

func main() {
	if err := run(); err != nil {
		config.Exitf("sim: %v", err)
	}
}

func run() error {
	cfg, err := simcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return simcmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr)
}
