// Package monogram computes the outline of the "UC" monogram: a U and a C
// joined by a vertical spine.
//
// The shape is controlled by a flat parameter record, [Params].  Edits to
// the record go through [Resolve], which keeps mirrored and linked radii in
// step.  [Compute] turns a record into a [Mark]: the spine rectangles and
// the closed outlines of the U and of the two C arms, with every corner
// radius clamped to a value which keeps the outlines free of
// self-intersections.
//
// The outlines use only lines and quadratic curves.  [FormatPath] converts
// them to SVG path data and [WriteSVG] writes a complete SVG document.
// Raster and PDF output is provided by the render sub-package.
package monogram

//go:generate go run ./testcases/export
