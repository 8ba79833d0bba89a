package canvas2d

import "fmt"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// String returns the canvas keyword for the cap.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "butt"
	case LineCapRound:
		return "round"
	case LineCapSquare:
		return "square"
	}
	return fmt.Sprintf("LineCap(%d)", int(c))
}

// ParseLineCap maps a canvas lineCap keyword to a LineCap.
func ParseLineCap(s string) (LineCap, error) {
	switch s {
	case "butt":
		return LineCapButt, nil
	case "round":
		return LineCapRound, nil
	case "square":
		return LineCapSquare, nil
	}
	return 0, fmt.Errorf("canvas2d: unknown line cap %q", s)
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// String returns the canvas keyword for the join.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "miter"
	case LineJoinRound:
		return "round"
	case LineJoinBevel:
		return "bevel"
	}
	return fmt.Sprintf("LineJoin(%d)", int(j))
}

// ParseLineJoin maps a canvas lineJoin keyword to a LineJoin.
func ParseLineJoin(s string) (LineJoin, error) {
	switch s {
	case "miter":
		return LineJoinMiter, nil
	case "round":
		return LineJoinRound, nil
	case "bevel":
		return LineJoinBevel, nil
	}
	return 0, fmt.Errorf("canvas2d: unknown line join %q", s)
}

// Paint represents the styling state of a Context.
// Fill and stroke colors are tracked separately, as in a canvas.
type Paint struct {
	// FillColor is used by Fill and FillRect.
	FillColor RGBA

	// StrokeColor is used by Stroke.
	StrokeColor RGBA

	// LineWidth is the width of strokes in user space.
	LineWidth float64

	// LineCap is the shape of line endpoints
	LineCap LineCap

	// LineJoin is the shape of line joins
	LineJoin LineJoin

	// MiterLimit is the miter limit for sharp joins
	MiterLimit float64
}

// NewPaint creates a new Paint with default values.
func NewPaint() *Paint {
	return &Paint{
		FillColor:   Black,
		StrokeColor: Black,
		LineWidth:   1.0,
		LineCap:     LineCapButt,
		LineJoin:    LineJoinMiter,
		MiterLimit:  10.0,
	}
}

// Clone creates a copy of the Paint.
func (p *Paint) Clone() *Paint {
	c := *p
	return &c
}
