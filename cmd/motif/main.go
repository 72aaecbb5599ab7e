// SPDX-License-Identifier: MIT
// Package: motif/cmd/motif

// Command motif renders tileable SVG patterns.
//
//	motif render -kind grid -seed k3v9x0aa -fill primary -knobs '{"density":20}' -o dots.svg
//	motif batch -o out/ presets.yaml
//	motif serve
//
// render writes one document and prints the seed it used to stderr. batch
// renders every pattern of a preset file to <dir>/<name>.svg. serve runs the
// MCP tool server on stdin/stdout.
//
// A .env file in the working directory is loaded first. MOTIF_PALETTE names a
// palette YAML file, MOTIF_WORKERS bounds batch parallelism and
// MOTIF_LOG_LEVEL sets the stderr log level.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/motif/internal/log"
)

const version = "0.1.0"

var errUsage = errors.New("usage: motif <render|batch|serve> [flags]")

func main() {
	_ = godotenv.Load()

	logger := log.New(os.Stderr, log.ParseLevel(os.Getenv(envLogLevel)))
	ctx := log.NewContext(context.Background(), logger)
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr); err != nil {
		logger.Error("motif failed", "error", err)
		stop()
		os.Exit(1)
	}
}

// run executes one subcommand.
func run(ctx context.Context, args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}

	injector := setup(ctx, getenv)
	defer func() { _ = injector.Shutdown() }()

	switch args[0] {
	case "render":
		return runRender(ctx, injector, args[1:], stdout, stderr)
	case "batch":
		return runBatch(ctx, injector, args[1:], stdout, stderr)
	case "serve":
		return runServe(ctx, injector, stdin, stdout)
	case "-h", "-help", "--help", "help":
		_, err := fmt.Fprintln(stdout, errUsage.Error())
		return err
	default:
		return fmt.Errorf("unknown command %q: %w", args[0], errUsage)
	}
}
