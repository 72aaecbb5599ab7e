// SPDX-License-Identifier: MIT
// Package: motif/cmd/motif

package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/samber/do"

	"github.com/katalvlaran/motif/engine"
	"github.com/katalvlaran/motif/internal/log"
	"github.com/katalvlaran/motif/palette"
	"github.com/katalvlaran/motif/toolserver"
)

// Environment variables read by the command.
const (
	envPalette  = "MOTIF_PALETTE"
	envWorkers  = "MOTIF_WORKERS"
	envLogLevel = "MOTIF_LOG_LEVEL"
)

// setup wires the command's services. getenv is os.Getenv outside tests.
func setup(ctx context.Context, getenv func(string) string) *do.Injector {
	logger := log.FromContextOrDiscard(ctx)

	injector := do.NewWithOpts(&do.InjectorOpts{
		Logf: func(format string, args ...any) {
			logger.Debug(fmt.Sprintf(format, args...))
		},
	})

	do.Provide[*palette.Palette](injector, func(i *do.Injector) (*palette.Palette, error) {
		if path := getenv(envPalette); path != "" {
			return palette.Load(path)
		}
		return palette.Default(), nil
	})
	do.Provide[*engine.Engine](injector, func(i *do.Injector) (*engine.Engine, error) {
		opts := []engine.Option{engine.WithPalette(do.MustInvoke[*palette.Palette](i))}
		if raw := getenv(envWorkers); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%s=%q: want a positive integer", envWorkers, raw)
			}
			opts = append(opts, engine.WithWorkers(n))
		}
		return engine.New(opts...), nil
	})
	do.Provide[*toolserver.Server](injector, func(i *do.Injector) (*toolserver.Server, error) {
		return toolserver.New("motif", version, do.MustInvoke[*engine.Engine](i), logger), nil
	})

	return injector
}
