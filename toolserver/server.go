// SPDX-License-Identifier: MIT
// Package: motif/toolserver

package toolserver

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/katalvlaran/motif/engine"
	"github.com/katalvlaran/motif/internal/log"
)

// Server serves the pattern tools over MCP.
type Server struct {
	server *mcp.Server
	logger *slog.Logger
}

// New creates a Server named name/version that renders with e and logs to
// logger (nil discards).
func New(name, version string, e *engine.Engine, logger *slog.Logger) *Server {
	if logger == nil {
		logger = log.FromContextOrDiscard(context.Background())
	}
	s := &Server{
		server: mcp.NewServer(&mcp.Implementation{Name: name, Version: version}, nil),
		logger: logger,
	}
	s.register(listGeneratorsTool(), generateTool(e))

	return s
}

func (s *Server) register(tools ...tool) {
	for _, t := range tools {
		s.server.AddTool(&mcp.Tool{
			Name:        t.name,
			Description: t.description,
			InputSchema: t.schema,
		}, s.wrap(t))
	}
}

// Serve reads requests from in and writes responses to out until ctx is
// cancelled or the transport closes.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	return s.run(ctx, &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	})
}

func (s *Server) run(ctx context.Context, transport mcp.Transport) error {
	return s.server.Run(ctx, transport)
}

// wrap adapts a tool handler to the SDK. Handler errors become error results
// so the caller sees the message instead of a protocol failure.
func (s *Server) wrap(t tool) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := req.Params.Arguments
		if args == nil {
			args = json.RawMessage("{}")
		}
		ctx = log.NewContext(ctx, s.logger)

		result, err := t.handler(ctx, args)
		if err != nil {
			s.logger.Warn("tool call failed", "tool", t.name, "error", err)
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
				IsError: true,
			}, nil
		}
		s.logger.Debug("tool call", "tool", t.name, "bytes", len(result))

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: result}},
		}, nil
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
