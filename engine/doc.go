// SPDX-License-Identifier: MIT
// Package: motif/engine

// Package engine turns pattern requests into tile documents.
//
// A Request names a generator kind, an optional seed, colour tokens and
// either a ready parameter record or a set of unified knobs. The engine maps
// knobs through mapper.Map, dispatches to the generator and logs the outcome
// on the context logger. GenerateBatch renders many requests in parallel and
// returns results in request order.
//
// An Engine is immutable after New and safe for concurrent use.
package engine
