// seehuhn.de/go/monogram - vector geometry for the UC monogram
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package render

import (
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasteriser converts closed paths to anti-aliased pixel coverage, the
// fraction of each pixel's area inside the path.  Paths are filled with
// the nonzero winding rule.
//
// Internal buffers are reused between calls.  A Rasteriser is not safe
// for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	// Must be positive.
	Flatness float64

	cover     []float32 // per pixel change of the winding number
	area      []float32 // per pixel partial coverage
	edges     []edge
	crossings []float64 // scratch space for accumulateEdge
	rowUsed   []bool

	bboxEmpty          bool
	bxMin, bxMax       float64
	byMin, byMax       float64
	current, subpathAt vec.Vec2
}

// defaultFlatness is below what can be seen at typical logo sizes.
const defaultFlatness = 0.25

// horizontalEdgeThreshold is the smallest vertical extent of an edge
// which still contributes coverage.
const horizontalEdgeThreshold = 1e-10

// NewRasteriser returns a Rasteriser with the identity CTM and the given
// clip rectangle.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	return &Rasteriser{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
	}
}

// Fill computes the coverage of p and calls emit once for every row
// which contains non-zero coverage.  The coverage slice starts at pixel
// xMin and is only valid during the call.
func (r *Rasteriser) Fill(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.collectEdges(p)
	if !ok {
		return
	}

	width := xMax - xMin
	height := yMax - yMin
	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	r.rowUsed = slices.Grow(r.rowUsed[:0], height)[:height]
	clear(r.cover)
	clear(r.area)
	clear(r.rowUsed)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * width
			if r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax) {
				r.rowUsed[row] = true
			}
		}
	}

	for row := range height {
		if !r.rowUsed[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		integrateNonZero(coverage, r.area[off:off+width])
		if trimmed, lo := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+lo, trimmed)
		}
	}
}

// collectEdges flattens p into device space edges.  The returned bounding
// box is clamped to the clip rectangle.
func (r *Rasteriser) collectEdges(p *path.Data) (xMin, xMax, yMin, yMax int, ok bool) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	i := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			r.current = p.Coords[i]
			r.subpathAt = r.current
			i++
		case path.CmdLineTo:
			r.addEdge(r.current, p.Coords[i])
			r.current = p.Coords[i]
			i++
		case path.CmdQuadTo:
			r.flattenQuadratic(r.current, p.Coords[i], p.Coords[i+1])
			r.current = p.Coords[i+1]
			i += 2
		case path.CmdCubeTo:
			r.flattenCubic(r.current, p.Coords[i], p.Coords[i+1], p.Coords[i+2])
			r.current = p.Coords[i+2]
			i += 3
		case path.CmdClose:
			if r.current != r.subpathAt {
				r.addEdge(r.current, r.subpathAt)
			}
			r.current = r.subpathAt
		}
	}
	// Subpaths are filled as if closed.
	if r.current != r.subpathAt {
		r.addEdge(r.current, r.subpathAt)
	}

	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}

	xMin = max(int(math.Floor(r.bxMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bxMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.byMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.byMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// addEdge transforms a user space segment to device space and records it.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	m := r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bxMin, r.bxMax = min(x0, x1), max(x0, x1)
		r.byMin, r.byMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bxMin = min(r.bxMin, x0, x1)
	r.bxMax = max(r.bxMax, x0, x1)
	r.byMin = min(r.byMin, y0, y1)
	r.byMax = max(r.byMax, y0, y1)
}

// deviceLength returns the length of the user space vector v after the
// linear part of the CTM is applied.
func (r *Rasteriser) deviceLength(v vec.Vec2) float64 {
	m := r.CTM
	return math.Hypot(m[0]*v.X+m[2]*v.Y, m[1]*v.X+m[3]*v.Y)
}

// flattenQuadratic approximates a quadratic Bézier curve by line segments.
// The number of segments is chosen from the deviation vector
// (P0 - 2P1 + P2)/4, measured in device space.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	dev := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by line segments, using
// Wang's formula for the segment count.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := r.deviceLength(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.deviceLength(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1, d2); m > 0 {
		n = max(1, int(math.Ceil(math.Sqrt(3*m/(4*r.Flatness)))))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// Coverage model
//
// Every pixel holds two accumulators.  cover is the signed vertical extent
// of the edges crossing the pixel, +1 per unit for downward edges and -1
// for upward ones.  area is cover weighted by the part of the pixel to the
// right of the crossing.  Scanning a row from the left, the coverage of a
// pixel is the sum of cover over all pixels to its left plus its own area.

// accumulateEdge adds the contribution of e within scanline y to the row
// buffers, which start at pixel xMin.  Contributions left of the buffer
// are folded into the first pixel.  The return value reports whether
// anything was added.
func (r *Rasteriser) accumulateEdge(e *edge, y int, cover, area []float32, xMin, xMax int) bool {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	left := int(math.Floor(min(xa, xb)))
	right := int(math.Floor(max(xa, xb)))
	if left >= xMax {
		return false
	}

	// Split the edge where it crosses pixel columns.
	r.crossings = append(r.crossings[:0], yTop, yBot)
	for x := left + 1; x <= right; x++ {
		yx := e.y0 + (float64(x)-e.x0)/e.dxdy
		if yx > yTop && yx < yBot {
			r.crossings = append(r.crossings, yx)
		}
	}
	slices.Sort(r.crossings)

	for i := range len(r.crossings) - 1 {
		y0, y1 := r.crossings[i], r.crossings[i+1]
		if y1 <= y0 {
			continue
		}
		c := sign * float32(y1-y0)

		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		pix := int(math.Floor(xMid))
		switch {
		case pix < xMin:
			cover[0] += c
			area[0] += c
		case pix < xMax:
			frac := xMid - float64(pix)
			cover[pix-xMin] += c
			area[pix-xMin] += c * float32(1-frac)
		}
	}
	return true
}

// integrateNonZero turns the accumulated values of one row into coverage
// in [0, 1], in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero entries, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo := 0
	for lo < len(coverage) && coverage[lo] == 0 {
		lo++
	}
	if lo == len(coverage) {
		return nil, 0
	}
	hi := len(coverage) - 1
	for coverage[hi] == 0 {
		hi--
	}
	return coverage[lo : hi+1], lo
}
