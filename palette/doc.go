// Package palette resolves semantic colour tokens ("primary", "accent") to
// the paint values written into pattern documents.
//
// The engine never owns a palette: callers build one with New, Default or
// Load and pass it in. Literal colours (#hex, rgb(), hsl(), var()) and the
// keywords currentColor/none pass through untouched; unknown roles fall back
// to the caller's fallback paint, usually currentColor.
package palette
