// SPDX-License-Identifier: MIT
// Package: motif/engine

package engine

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/motif/generator"
	"github.com/katalvlaran/motif/internal/log"
	"github.com/katalvlaran/motif/mapper"
)

const (
	methodParams   = "Params"
	methodGenerate = "Generate"
	methodBatch    = "GenerateBatch"
)

// Request is one pattern to render.
//
// When Params is set it is rendered as is and Kind is ignored. Otherwise
// Knobs (or mapper.DefaultUnified when nil) are mapped for Kind. A non-empty
// Seed overrides whatever seed the parameters carry.
type Request struct {
	Kind   generator.Kind
	Seed   string
	Params generator.Params
	Knobs  *mapper.Unified
	Colors generator.ColorConfig
}

// Engine renders requests with a fixed palette and entropy source.
type Engine struct {
	cfg  config
	opts []generator.Option
}

// New builds an Engine. Defaults: palette.Default(), crypto/rand entropy,
// GOMAXPROCS batch workers.
func New(opts ...Option) *Engine {
	cfg := newConfig(opts...)

	return &Engine{
		cfg:  cfg,
		opts: []generator.Option{generator.WithPalette(cfg.palette), generator.WithEntropy(cfg.entropy)},
	}
}

// Workers reports the batch parallelism limit.
func (e *Engine) Workers() int { return e.cfg.workers }

// Params resolves the parameter record req will render, without rendering.
func (e *Engine) Params(req Request) (generator.Params, error) {
	p := req.Params
	if p == nil {
		knobs := mapper.DefaultUnified()
		if req.Knobs != nil {
			knobs = *req.Knobs
		}
		var err error
		if p, err = mapper.Map(req.Kind, knobs, req.Colors, ""); err != nil {
			return nil, err
		}
	}
	if generator.IsNil(p) {
		return nil, fmt.Errorf("%s: %w", methodParams, generator.ErrNilParams)
	}
	if req.Seed != "" {
		p = p.WithSeed(req.Seed)
	}

	return p, nil
}

// Generate renders one request.
//
// Errors: ErrCanceled when ctx is already done; mapping and dispatch errors
// (generator.ErrUnknownKind, shape.ErrUnknownShape, generator.ErrNilParams)
// otherwise. Rendering itself never fails.
func (e *Engine) Generate(ctx context.Context, req Request) (generator.Result, error) {
	if err := ctx.Err(); err != nil {
		return generator.Result{}, fmt.Errorf("%s: %w: %w", methodGenerate, ErrCanceled, err)
	}

	p, err := e.Params(req)
	if err != nil {
		return generator.Result{}, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	start := time.Now()
	res, err := generator.Dispatch(p, req.Colors, e.opts...)
	if err != nil {
		return generator.Result{}, fmt.Errorf("%s: %w", methodGenerate, err)
	}

	log.FromContextOrDiscard(ctx).WithGroup("engine").Debug("generated pattern",
		"kind", p.Kind().String(),
		"seed", res.Seed,
		"bytes", len(res.Document),
		"elapsed", time.Since(start),
	)

	return res, nil
}

// GenerateBatch renders reqs in parallel, at most Workers at a time, and
// returns results in request order. The first failure cancels the remaining
// work and is returned with the index of the failing request.
func (e *Engine) GenerateBatch(ctx context.Context, reqs []Request) ([]generator.Result, error) {
	logger := log.FromContextOrDiscard(ctx).WithGroup("engine")
	out := make([]generator.Result, len(reqs))

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(e.cfg.workers)
	for i, req := range reqs {
		if gctx.Err() != nil {
			break
		}
		i, req := i, req
		group.Go(func() error {
			res, err := e.Generate(gctx, req)
			if err != nil {
				return fmt.Errorf("request %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodBatch, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodBatch, ErrCanceled, err)
	}

	logger.Info("generated batch", "count", len(reqs), "workers", e.cfg.workers)

	return out, nil
}
