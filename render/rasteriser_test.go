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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// collect fills p and returns the coverage as a dense w×h buffer.
func collect(r *Rasteriser, p *path.Data, w, h int) []float32 {
	buf := make([]float32, w*h)
	r.Fill(p, func(y, xMin int, cov []float32) {
		copy(buf[y*w+xMin:], cov)
	})
	return buf
}

// The triangle (0,0)→(10,0)→(10,1) has a diagonal edge y = x/10, so pixel
// x has coverage (2x+1)/20.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 10, URy: 1})
	cov := collect(r, triangle, 10, 1)

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20
		if math.Abs(float64(cov[x]-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, cov[x])
		}
	}
}

func TestRectangleCoverage(t *testing.T) {
	// x from 1.5 to 4, y from 1 to 3.25
	box := (&path.Data{}).
		MoveTo(vec.Vec2{X: 1.5, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 1}).
		LineTo(vec.Vec2{X: 4, Y: 3.25}).
		LineTo(vec.Vec2{X: 1.5, Y: 3.25})
	// no explicit ClosePath: fills close implicitly

	r := NewRasteriser(rect.Rect{URx: 6, URy: 5})
	cov := collect(r, box, 6, 5)

	col := []float32{0, 0.5, 1, 1, 0, 0}
	row := []float32{0, 1, 1, 0.25, 0}
	const epsilon = 1e-6
	for y := range 5 {
		for x := range 6 {
			expected := col[x] * row[y]
			if got := cov[y*6+x]; math.Abs(float64(got-expected)) > epsilon {
				t.Errorf("pixel (%d,%d): expected %.4f, got %.4f", x, y, expected, got)
			}
		}
	}
}

// Reversing the orientation of a path must not change its coverage.
func TestOrientation(t *testing.T) {
	pts := []vec.Vec2{{X: 1, Y: 1}, {X: 7, Y: 2}, {X: 3, Y: 6}}
	cw := (&path.Data{}).MoveTo(pts[0]).LineTo(pts[1]).LineTo(pts[2]).Close()
	ccw := (&path.Data{}).MoveTo(pts[0]).LineTo(pts[2]).LineTo(pts[1]).Close()

	r := NewRasteriser(rect.Rect{URx: 8, URy: 8})
	a := collect(r, cw, 8, 8)
	b := collect(r, ccw, 8, 8)

	var total float64
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-5 {
			t.Fatalf("pixel %d: %g vs %g", i, a[i], b[i])
		}
		total += float64(a[i])
	}
	// area of the triangle is 14
	if math.Abs(total-14) > 1e-4 {
		t.Errorf("total coverage %g, want 14", total)
	}
}

// A quadratic quarter "circle" covers the area enclosed by the curve.
func TestQuadraticArea(t *testing.T) {
	const s = 40.0
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: s, Y: 0}).
		QuadTo(vec.Vec2{X: s, Y: s}, vec.Vec2{X: 0, Y: s}).
		Close()

	r := NewRasteriser(rect.Rect{URx: s, URy: s})
	cov := collect(r, p, s, s)

	var total float64
	for _, c := range cov {
		total += float64(c)
	}
	// The parabolic segment adds 2/3 of the outer triangle.  Flattening
	// cuts off a little area, at most 1/n² of the segment for n chords.
	want := s*s/2 + s*s/2*2/3
	if total > want+1e-3 || total < want-12 {
		t.Errorf("total coverage %g, want %g", total, want)
	}
}

// Four cubic arcs approximate a circle.
func TestCubicCircle(t *testing.T) {
	const (
		r = 10.0
		c = 12.0
		k = 0.5522847498 * r
	)
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: c + r, Y: c}).
		CubeTo(vec.Vec2{X: c + r, Y: c + k}, vec.Vec2{X: c + k, Y: c + r}, vec.Vec2{X: c, Y: c + r}).
		CubeTo(vec.Vec2{X: c - k, Y: c + r}, vec.Vec2{X: c - r, Y: c + k}, vec.Vec2{X: c - r, Y: c}).
		CubeTo(vec.Vec2{X: c - r, Y: c - k}, vec.Vec2{X: c - k, Y: c - r}, vec.Vec2{X: c, Y: c - r}).
		CubeTo(vec.Vec2{X: c + k, Y: c - r}, vec.Vec2{X: c + r, Y: c - k}, vec.Vec2{X: c + r, Y: c}).
		Close()

	const n = 24
	ras := NewRasteriser(rect.Rect{URx: n, URy: n})
	cov := collect(ras, p, n, n)

	var total float64
	for _, v := range cov {
		total += float64(v)
	}
	// The chords lie inside the curve, each at most Flatness away.
	want := math.Pi * r * r
	if total > want+0.5 || total < want-12 {
		t.Errorf("total coverage %g, want %g", total, want)
	}

	if got := cov[12*n+12]; math.Abs(float64(got)-1) > 1e-5 {
		t.Errorf("centre pixel: got %g, want 1", got)
	}
	if got := cov[0]; got != 0 {
		t.Errorf("corner pixel: got %g, want 0", got)
	}
	for y := range n {
		for x := range n {
			a, b := cov[y*n+x], cov[y*n+n-1-x]
			if math.Abs(float64(a-b)) > 1e-3 {
				t.Fatalf("pixels (%d,%d) and (%d,%d) differ: %g vs %g", x, y, n-1-x, y, a, b)
			}
		}
	}
}

func TestClipAndCTM(t *testing.T) {
	unit := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 0}).
		LineTo(vec.Vec2{X: 1, Y: 1}).
		LineTo(vec.Vec2{X: 0, Y: 1}).
		Close()

	r := NewRasteriser(rect.Rect{URx: 4, URy: 4})
	r.CTM = matrix.Scale(10, 10)

	rows := 0
	r.Fill(unit, func(y, xMin int, cov []float32) {
		rows++
		if y < 0 || y >= 4 || xMin < 0 || xMin+len(cov) > 4 {
			t.Errorf("row %d [%d, %d) outside clip", y, xMin, xMin+len(cov))
		}
		for _, c := range cov {
			if math.Abs(float64(c-1)) > 1e-6 {
				t.Errorf("row %d: coverage %g", y, c)
			}
		}
	})
	if rows != 4 {
		t.Errorf("got %d rows, want 4", rows)
	}
}
