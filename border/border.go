// Package border draws a fixed framed composition onto a named 2D surface:
// a clipped yellow field with a magenta top border and a blue right border.
//
// The drawing calls are issued against the Canvas interface, so the same
// sequence runs on a canvas2d.Context, a recording double or any other
// immediate-mode backend.
package border

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/canvas2d"
	"github.com/gogpu/canvas2d/surface"
)

// SurfaceID is the identifier of the surface Draw renders into.
const SurfaceID = "canvas"

// Canvas is the subset of a 2D rendering context the composition uses.
// *canvas2d.Context implements it.
type Canvas interface {
	Translate(x, y float64)
	Rect(x, y, w, h float64)
	Clip()
	BeginPath()
	SetFillColor(c canvas2d.RGBA)
	SetStrokeColor(c canvas2d.RGBA)
	SetLineWidth(w float64)
	SetLineCap(c canvas2d.LineCap)
	SetLineJoin(j canvas2d.LineJoin)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	FillRect(x, y, w, h float64) error
	Stroke() error
}

// Element is a surface that can hand out a rendering context.
type Element interface {
	GetContext(kind string) (Canvas, error)
}

// Document looks elements up by identifier.
type Document interface {
	GetElementByID(id string) (Element, error)
}

var _ Canvas = (*canvas2d.Context)(nil)

// Colors as a canvas host receives them.
var (
	fieldColor = canvas2d.MustParseColor("rgba(255, 255, 0, 1.00);")
	topColor   = canvas2d.MustParseColor("rgba(255, 0, 255, 1.00);")
	rightColor = canvas2d.MustParseColor("rgba(0, 0, 255, 1.00);")
)

// Draw looks up the "canvas" surface in doc, obtains its 2D context and
// paints the composition. Lookup and context errors are returned wrapped
// and unchanged in kind; nothing is drawn in that case.
func Draw(doc Document) error {
	el, err := doc.GetElementByID(SurfaceID)
	if err != nil {
		return fmt.Errorf("border: %w", err)
	}
	c, err := el.GetContext(surface.Context2D)
	if err != nil {
		return fmt.Errorf("border: %w", err)
	}
	if err := Paint(c); err != nil {
		return fmt.Errorf("border: %w", err)
	}
	canvas2d.Logger().Debug("border: composition drawn", slog.String("id", SurfaceID))
	return nil
}

// Paint issues the composition's drawing calls on c, in order.
//
// The zero translation and the BeginPath ahead of FillRect are part of the
// recorded call sequence and are kept as is; neither changes the output.
func Paint(c Canvas) error {
	c.Translate(0, 0)
	c.Rect(5, 5, 490, 340)
	c.Clip()
	c.SetFillColor(fieldColor)
	c.BeginPath()
	if err := c.FillRect(5, 5, 500, 350); err != nil {
		return err
	}

	// Top border
	c.BeginPath()
	c.SetFillColor(topColor)
	c.SetStrokeColor(topColor)
	c.SetLineWidth(2)
	c.SetLineCap(canvas2d.LineCapButt)
	c.SetLineJoin(canvas2d.LineJoinMiter)
	c.MoveTo(5, 6)
	c.LineTo(500, 6)
	if err := c.Stroke(); err != nil {
		return err
	}

	// Right border, on a half-pixel so the 3px line covers whole columns.
	c.BeginPath()
	c.SetFillColor(rightColor)
	c.SetStrokeColor(rightColor)
	c.SetLineWidth(3)
	c.SetLineCap(canvas2d.LineCapButt)
	c.SetLineJoin(canvas2d.LineJoinMiter)
	c.MoveTo(493.5, 5)
	c.LineTo(493.5, 345)
	return c.Stroke()
}
