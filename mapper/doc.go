// SPDX-License-Identifier: MIT
// Package: motif/mapper

// Package mapper translates one set of unified knobs into the parameter
// record of a specific generator.
//
// The same knob means different things per generator: Density is a shape
// count for Scatter, a lattice size for Grid and a contour count for Topo;
// the size range is used directly by Scatter, averaged into one dot size by
// Grid and halved into an amplitude by Waves. Map is a pure function.
package mapper
