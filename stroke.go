package canvas2d

import "math"

// Stroke defines the style for stroking paths.
type Stroke struct {
	// Width is the line width. Default: 1.0
	Width float64

	// Cap is the shape of line endpoints. Default: LineCapButt
	Cap LineCap

	// Join is the shape of line joins. Default: LineJoinMiter
	Join LineJoin

	// MiterLimit is the limit for miter joins before they become bevels,
	// as a ratio of miter length to half the line width. Default: 10.0
	MiterLimit float64
}

// DefaultStroke returns a Stroke with canvas default settings.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1.0,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10.0,
	}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithCap returns a copy of the Stroke with the given line cap style.
func (s Stroke) WithCap(lineCap LineCap) Stroke {
	s.Cap = lineCap
	return s
}

// WithJoin returns a copy of the Stroke with the given line join style.
func (s Stroke) WithJoin(join LineJoin) Stroke {
	s.Join = join
	return s
}

// WithMiterLimit returns a copy of the Stroke with the given miter limit.
func (s Stroke) WithMiterLimit(limit float64) Stroke {
	s.MiterLimit = limit
	return s
}

// Stroke returns the stroke style held by the paint.
func (p *Paint) Stroke() Stroke {
	return Stroke{
		Width:      p.LineWidth,
		Cap:        p.LineCap,
		Join:       p.LineJoin,
		MiterLimit: p.MiterLimit,
	}
}

// collinearEpsilon bounds the cross product below which two unit
// directions are treated as parallel.
const collinearEpsilon = 1e-9

// Expand converts polylines into fill polygons covering their stroke.
// Every returned polygon has positive signed area, so overlapping pieces
// accumulate coverage instead of cancelling.
func (s Stroke) Expand(subpaths []Subpath) [][]Point {
	if s.Width <= 0 {
		return nil
	}
	hw := s.Width / 2

	var polys [][]Point
	emit := func(poly []Point) {
		if p := orientPositive(poly); p != nil {
			polys = append(polys, p)
		}
	}

	for _, sp := range subpaths {
		pts := dedupe(sp.Points)
		closed := sp.Closed
		if closed && len(pts) > 1 && pts[0] == pts[len(pts)-1] {
			pts = pts[:len(pts)-1]
		}
		if len(pts) < 2 {
			continue
		}

		nseg := len(pts) - 1
		if closed {
			nseg = len(pts)
		}
		dirs := make([]Point, nseg)
		for i := 0; i < nseg; i++ {
			a, b := pts[i], pts[(i+1)%len(pts)]
			dirs[i] = b.Sub(a).Normalize()
			n := dirs[i].Perp().Mul(hw)
			emit([]Point{a.Add(n), b.Add(n), b.Sub(n), a.Sub(n)})
		}

		// Joins at vertices shared by two segments.
		for i := 0; i < nseg; i++ {
			if !closed && i == nseg-1 {
				break
			}
			v := pts[(i+1)%len(pts)]
			d0, d1 := dirs[i], dirs[(i+1)%nseg]
			for _, poly := range s.join(v, d0, d1, hw) {
				emit(poly)
			}
		}

		if !closed {
			for _, poly := range s.cap(pts[0], dirs[0].Mul(-1), hw) {
				emit(poly)
			}
			for _, poly := range s.cap(pts[len(pts)-1], dirs[nseg-1], hw) {
				emit(poly)
			}
		}
	}
	return polys
}

// join returns the polygons filling the outer wedge at vertex v between
// an incoming direction d0 and an outgoing direction d1.
func (s Stroke) join(v, d0, d1 Point, hw float64) [][]Point {
	cross := d0.Cross(d1)
	dot := d0.Dot(d1)
	if math.Abs(cross) < collinearEpsilon && dot > 0 {
		return nil
	}

	if s.Join == LineJoinRound {
		return [][]Point{circlePolygon(v, hw)}
	}

	side := 1.0
	if cross > 0 {
		side = -1.0
	}
	o0 := v.Add(d0.Perp().Mul(hw * side))
	o1 := v.Add(d1.Perp().Mul(hw * side))

	if s.Join == LineJoinMiter && math.Abs(cross) >= collinearEpsilon {
		// cos of half the angle between the offset normals.
		halfCos := math.Sqrt((1 + dot) / 2)
		if halfCos > 0 && 1/halfCos <= s.MiterLimit {
			bisector := d0.Perp().Add(d1.Perp()).Normalize().Mul(side * hw / halfCos)
			return [][]Point{{v, o0, v.Add(bisector), o1}}
		}
	}
	return [][]Point{{v, o0, o1}}
}

// cap returns the polygons closing an open end at p, where d points
// away from the stroke.
func (s Stroke) cap(p, d Point, hw float64) [][]Point {
	switch s.Cap {
	case LineCapSquare:
		n := d.Perp().Mul(hw)
		ext := d.Mul(hw)
		return [][]Point{{p.Add(n), p.Add(n).Add(ext), p.Sub(n).Add(ext), p.Sub(n)}}
	case LineCapRound:
		return [][]Point{circlePolygon(p, hw)}
	}
	return nil
}

// circlePolygon approximates a circle with enough vertices to stay
// within a quarter pixel of the true outline.
func circlePolygon(c Point, r float64) []Point {
	n := int(math.Ceil(math.Pi / math.Acos(math.Max(-1, 1-0.25/math.Max(r, 0.25)))))
	if n < 8 {
		n = 8
	}
	if n > 256 {
		n = 256
	}
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Pt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return pts
}

// dedupe drops consecutive duplicate points.
func dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

// signedArea returns the shoelace area of a polygon.
func signedArea(poly []Point) float64 {
	var a float64
	for i := range poly {
		j := (i + 1) % len(poly)
		a += poly[i].Cross(poly[j])
	}
	return a / 2
}

// orientPositive returns poly with positive signed area, reversing it in
// place if needed. Degenerate polygons return nil.
func orientPositive(poly []Point) []Point {
	a := signedArea(poly)
	if a == 0 || math.IsNaN(a) {
		return nil
	}
	if a < 0 {
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	return poly
}
