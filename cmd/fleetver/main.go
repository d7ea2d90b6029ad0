// Package main is the entry point for the fleetver CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fleetver-tech/fleetver/internal/cli"
	buildversion "github.com/fleetver-tech/fleetver/internal/version"
)

// Version information set by ldflags during build.
var (
	version = ""
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if version == "" {
		// Built without ldflags, fall back to the embedded VERSION file.
		version = buildversion.Get()
	}
	cli.SetVersionInfo(version, commit, date)

	if err := cli.ExecuteContext(ctx); err != nil {
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Operation canceled")
			os.Exit(130)
		}
		// SilenceErrors is enabled in cobra, so print the error here.
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
