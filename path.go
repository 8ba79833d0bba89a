package canvas2d

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path made of straight segments.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
// Without a current point it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if !p.HasCurrentPoint() {
		p.MoveTo(x, y)
		return
	}
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	if !p.HasCurrentPoint() {
		return
	}
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// HasCurrentPoint returns true if the path has a current point.
func (p *Path) HasCurrentPoint() bool {
	return len(p.elements) > 0
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// Subpath is a flattened polyline with its closed flag.
type Subpath struct {
	Points []Point
	Closed bool
}

// Subpaths splits the path into polylines.
// Subpaths holding a single point are kept; the stroker and rasterizer
// decide what to do with them.
func (p *Path) Subpaths() []Subpath {
	var out []Subpath
	var cur *Subpath
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			out = append(out, Subpath{Points: []Point{e.Point}})
			cur = &out[len(out)-1]
		case LineTo:
			if cur == nil {
				out = append(out, Subpath{})
				cur = &out[len(out)-1]
			}
			cur.Points = append(cur.Points, e.Point)
		case Close:
			if cur == nil {
				continue
			}
			cur.Closed = true
			// Points after a close start a new subpath at the same start.
			start := cur.Points[0]
			out = append(out, Subpath{Points: []Point{start}})
			cur = &out[len(out)-1]
		}
	}
	return out
}

// Rectangle adds a closed rectangle subpath to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]PathElement, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}
