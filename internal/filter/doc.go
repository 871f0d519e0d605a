// Package filter provides the scanline kernels behind the blur operation.
//
// The box blur is separable: the vertical pass sums the input rows inside
// the window into an accumulator row, and the horizontal pass runs a sliding
// sum across that row. Both passes wrap at the image edges so blurred
// textures stay tileable. Division happens once, after both passes, so the
// result is exact to one truncation.
//
// All kernels work in place on caller-owned rows and never allocate.
package filter
