// SPDX-License-Identifier: MIT
// Package: motif/cmd/motif

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/samber/do"

	"github.com/katalvlaran/motif/engine"
	"github.com/katalvlaran/motif/generator"
	"github.com/katalvlaran/motif/internal/log"
	"github.com/katalvlaran/motif/mapper"
	"github.com/katalvlaran/motif/palette"
	"github.com/katalvlaran/motif/preset"
	"github.com/katalvlaran/motif/toolserver"
)

func runRender(ctx context.Context, i *do.Injector, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(stderr)
	kind := fs.String("kind", generator.KindGrid.String(), "generator kind")
	seed := fs.String("seed", "", "seed to reproduce (empty mints one)")
	fill := fs.String("fill", string(palette.Primary), "fill token or literal colour")
	stroke := fs.String("stroke", string(palette.Primary), "stroke token or literal colour")
	knobs := fs.String("knobs", "", "unified knobs as JSON, applied over the defaults")
	out := fs.String("o", "", "output file (default stdout)")
	dataURI := fs.Bool("data-uri", false, "write a base64 data URI instead of markup")
	if err := fs.Parse(args); err != nil {
		return err
	}

	k, err := generator.ParseKind(*kind)
	if err != nil {
		return err
	}
	u := mapper.DefaultUnified()
	if *knobs != "" {
		if err := json.Unmarshal([]byte(*knobs), &u); err != nil {
			return fmt.Errorf("render: -knobs: %w", err)
		}
	}

	e, err := do.Invoke[*engine.Engine](i)
	if err != nil {
		return err
	}
	res, err := e.Generate(ctx, engine.Request{
		Kind:   k,
		Seed:   *seed,
		Knobs:  &u,
		Colors: generator.ColorConfig{Fill: palette.Token(*fill), Stroke: palette.Token(*stroke)},
	})
	if err != nil {
		return err
	}

	body := res.Document
	if *dataURI {
		body = res.DataURI()
	}
	if *out == "" {
		_, err = fmt.Fprintln(stdout, body)
	} else {
		err = os.WriteFile(*out, []byte(body+"\n"), 0o644) //nolint:gosec // output is a public image
	}
	if err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	_, err = fmt.Fprintf(stderr, "seed: %s\n", res.Seed)

	return err
}

func runBatch(ctx context.Context, i *do.Injector, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("o", ".", "output directory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("batch: exactly one preset file is required")
	}

	f, err := preset.Load(fs.Arg(0))
	if err != nil {
		return err
	}
	reqs, err := f.Requests()
	if err != nil {
		return err
	}
	e, err := do.Invoke[*engine.Engine](i)
	if err != nil {
		return err
	}
	results, err := e.GenerateBatch(ctx, reqs)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	logger := log.FromContextOrDiscard(ctx)
	for idx, res := range results {
		name := f.Patterns[idx].Name
		path := filepath.Join(*dir, name+".svg")
		if err := os.WriteFile(path, []byte(res.Document+"\n"), 0o644); err != nil { //nolint:gosec // output is a public image
			return fmt.Errorf("batch: %s: %w", name, err)
		}
		logger.Info("wrote pattern", "name", name, "path", path)
		if _, err := fmt.Fprintf(stdout, "%s\t%s\t%s\n", name, res.Seed, res.Fingerprint()); err != nil {
			return err
		}
	}

	return nil
}

func runServe(ctx context.Context, i *do.Injector, stdin io.Reader, stdout io.Writer) error {
	s, err := do.Invoke[*toolserver.Server](i)
	if err != nil {
		return err
	}
	log.FromContextOrDiscard(ctx).Info("serving MCP tools on stdio")

	return s.Serve(ctx, stdin, stdout)
}
