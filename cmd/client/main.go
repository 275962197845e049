package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"Catalog/internal/cli/commands"
	"Catalog/internal/config"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Load unified config (env + flags)
	cfg := config.NewConfig()

	commands.Version, commands.BuildDate = version, buildDate

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// dispatcher
	exitCode := commands.Dispatch(ctx, cfg, flag.Args())
	if exitCode == 0 {
		return
	}
	os.Exit(exitCode)
}
