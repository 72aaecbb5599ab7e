// SPDX-License-Identifier: MIT
// Package: motif/toolserver

// Package toolserver exposes the engine as MCP tools so an assistant can
// request patterns through tool calls.
//
// Tools:
//   - list_generators:  the seven kinds with a one-line description each.
//   - generate_pattern: render one request; arguments mirror engine.Request
//     (kind, seed, colors, and either knobs or params) plus an optional
//     format of "svg" (default) or "data_uri".
//
// The server speaks over a caller-owned transport: stdio via Serve, or any
// mcp.Transport in tests. It makes no outbound calls.
package toolserver
