// SPDX-License-Identifier: MIT
// Package: motif/toolserver

package toolserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/motif/engine"
	"github.com/katalvlaran/motif/generator"
	"github.com/katalvlaran/motif/mapper"
)

// Tool names.
const (
	ToolListGenerators = "list_generators"
	ToolGenerate       = "generate_pattern"
)

// Output formats for generate_pattern.
const (
	FormatSVG     = "svg"
	FormatDataURI = "data_uri"
)

// ErrInvalidArguments indicates tool arguments that cannot form a request.
var ErrInvalidArguments = errors.New("toolserver: invalid arguments")

// handler executes a tool with its raw JSON arguments and returns text.
type handler func(ctx context.Context, input json.RawMessage) (string, error)

// tool is one registered tool.
type tool struct {
	name        string
	description string
	schema      json.RawMessage
	handler     handler
}

type generatorInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type generateArgs struct {
	Kind   string                `json:"kind"`
	Seed   string                `json:"seed,omitempty"`
	Colors generator.ColorConfig `json:"colors"`
	Knobs  json.RawMessage       `json:"knobs,omitempty"`
	Params json.RawMessage       `json:"params,omitempty"`
	Format string                `json:"format,omitempty"`
}

type generateOutput struct {
	Kind        string `json:"kind"`
	Seed        string `json:"seed"`
	Fingerprint string `json:"fingerprint"`
	Document    string `json:"document,omitempty"`
	DataURI     string `json:"data_uri,omitempty"`
}

func listGeneratorsTool() tool {
	return tool{
		name:        ToolListGenerators,
		description: "List the available pattern generators.",
		schema:      json.RawMessage(`{"type":"object","properties":{}}`),
		handler: func(context.Context, json.RawMessage) (string, error) {
			infos := lo.Map(generator.Kinds(), func(k generator.Kind, _ int) generatorInfo {
				return generatorInfo{Name: k.String(), Description: k.Description()}
			})
			out, err := json.Marshal(infos)
			return string(out), err
		},
	}
}

func generateTool(e *engine.Engine) tool {
	return tool{
		name: ToolGenerate,
		description: "Render a seamlessly tileable SVG pattern. Pass either unified knobs " +
			"or generator-specific params. Returns the document and the seed that reproduces it.",
		schema: generateSchema(),
		handler: func(ctx context.Context, input json.RawMessage) (string, error) {
			var args generateArgs
			if err := json.Unmarshal(input, &args); err != nil {
				return "", fmt.Errorf("%w: %w", ErrInvalidArguments, err)
			}
			req, err := args.request()
			if err != nil {
				return "", err
			}
			res, err := e.Generate(ctx, req)
			if err != nil {
				return "", err
			}

			out := generateOutput{Kind: req.Kind.String(), Seed: res.Seed, Fingerprint: res.Fingerprint()}
			if args.Format == FormatDataURI {
				out.DataURI = res.DataURI()
			} else {
				out.Document = res.Document
			}
			b, err := json.Marshal(out)
			return string(b), err
		},
	}
}

// request converts the arguments into an engine request.
func (a generateArgs) request() (engine.Request, error) {
	kind, err := generator.ParseKind(a.Kind)
	if err != nil {
		return engine.Request{}, fmt.Errorf("%w: %w", ErrInvalidArguments, err)
	}
	if a.Format != "" && a.Format != FormatSVG && a.Format != FormatDataURI {
		return engine.Request{}, fmt.Errorf("%w: unknown format %q", ErrInvalidArguments, a.Format)
	}
	hasKnobs, hasParams := present(a.Knobs), present(a.Params)
	if hasKnobs && hasParams {
		return engine.Request{}, fmt.Errorf("%w: knobs and params are mutually exclusive", ErrInvalidArguments)
	}

	req := engine.Request{Kind: kind, Seed: a.Seed, Colors: a.Colors}
	switch {
	case hasParams:
		if req.Params, err = decoders[kind](a.Params); err != nil {
			return engine.Request{}, fmt.Errorf("%w: params: %w", ErrInvalidArguments, err)
		}
	case hasKnobs:
		knobs := mapper.DefaultUnified()
		if err := json.Unmarshal(a.Knobs, &knobs); err != nil {
			return engine.Request{}, fmt.Errorf("%w: knobs: %w", ErrInvalidArguments, err)
		}
		req.Knobs = &knobs
	}

	return req, nil
}

func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

var decoders = map[generator.Kind]func(json.RawMessage) (generator.Params, error){
	generator.KindScatter:       decode[generator.ScatterParams],
	generator.KindGrid:          decode[generator.GridParams],
	generator.KindLines:         decode[generator.LinesParams],
	generator.KindWaves:         decode[generator.WavesParams],
	generator.KindNoise:         decode[generator.NoiseParams],
	generator.KindTopo:          decode[generator.TopoParams],
	generator.KindParallelogram: decode[generator.ParallelogramParams],
}

func decode[T generator.Params](raw json.RawMessage) (generator.Params, error) {
	var p T
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}

	return p, nil
}

// generateSchema builds the generate_pattern input schema with the kind enum
// taken from the generator package.
func generateSchema() json.RawMessage {
	kinds := lo.Map(generator.Kinds(), func(k generator.Kind, _ int) string { return k.String() })
	number := map[string]any{"type": "number"}
	schema := map[string]any{
		"type":     "object",
		"required": []string{"kind"},
		"properties": map[string]any{
			"kind": map[string]any{"type": "string", "enum": kinds},
			"seed": map[string]any{"type": "string", "description": "Reuse a returned seed to reproduce a pattern."},
			"colors": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"fill":   map[string]any{"type": "string", "description": "Role token (primary, accent, ...) or literal colour."},
					"stroke": map[string]any{"type": "string"},
				},
			},
			"knobs": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"shape":        map[string]any{"type": "string"},
					"glyph":        map[string]any{"type": "string"},
					"size_min":     number,
					"size_max":     number,
					"density":      number,
					"spacing":      number,
					"rotation":     number,
					"jitter":       number,
					"stroke_width": number,
					"opacity":      number,
					"frequency":    number,
					"intensity":    number,
					"filled":       map[string]any{"type": "boolean"},
					"dash":         map[string]any{"type": "array", "items": number},
				},
			},
			"params": map[string]any{"type": "object", "description": "Generator-specific parameters."},
			"format": map[string]any{"type": "string", "enum": []string{FormatSVG, FormatDataURI}},
		},
	}

	return lo.Must(json.Marshal(schema))
}
