// Package noise implements the stateless and table-driven generators used by
// the noise operations: a coordinate hash, multi-octave gradient noise, cell
// (Voronoi) noise, and Mandelbrot escape counts.
//
// Every generator is a pure function of its construction parameters and the
// sampled position. Positions are texture coordinates on the 4096 scale
// (0 = left/top edge, 4096 = one full texture), so a generator renders the
// same pattern at every output resolution and tiles seamlessly.
package noise
