package canvas2d

import (
	"errors"
	"image"
	"io"
	"log/slog"
	"math"
)

// ErrContextClosed is returned by drawing operations after Close.
var ErrContextClosed = errors.New("canvas2d: context is closed")

// Context is an immediate-mode 2D rendering context modelled on the HTML
// canvas 2D API. It maintains a pixmap, the current path, paint state,
// the transformation matrix, the clip region and a save/restore stack.
//
// Path points are transformed when they are added, so changing the
// transform does not move segments that are already in the path.
//
// A Context is not safe for concurrent use.
type Context struct {
	width    int
	height   int
	pixmap   *Pixmap
	renderer *softwareRenderer

	// Current state
	path   *Path // device space
	paint  *Paint
	matrix Matrix
	clip   *image.Alpha // nil means unclipped

	stack []state

	closed bool
}

// state is one entry of the Save/Restore stack.
type state struct {
	paint  *Paint
	matrix Matrix
	clip   *image.Alpha
}

// Ensure Context implements io.Closer
var _ io.Closer = (*Context)(nil)

// NewContext creates a new drawing context with the given dimensions.
// The pixmap starts fully transparent unless WithPixmap supplies one.
func NewContext(width, height int, opts ...ContextOption) *Context {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	pixmap := options.pixmap
	if pixmap == nil {
		pixmap = NewPixmap(width, height)
	}
	width, height = pixmap.Width(), pixmap.Height()

	Logger().Debug("canvas2d: context created", slog.Int("width", width), slog.Int("height", height))

	return &Context{
		width:    width,
		height:   height,
		pixmap:   pixmap,
		renderer: newSoftwareRenderer(width, height),
		path:     NewPath(),
		paint:    NewPaint(),
		matrix:   options.transform,
		stack:    make([]state, 0, 8),
	}
}

// NewContextForPixmap creates a context that draws into pm.
func NewContextForPixmap(pm *Pixmap, opts ...ContextOption) *Context {
	return NewContext(pm.Width(), pm.Height(), append(opts, WithPixmap(pm))...)
}

// Close releases resources associated with the Context.
// Close is idempotent. Drawing after Close returns ErrContextClosed;
// the pixmap stays valid for whoever else holds it.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.path.Clear()
	c.stack = nil
	c.clip = nil
	return nil
}

// Width returns the width of the context.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the context.
func (c *Context) Height() int {
	return c.height
}

// Pixmap returns the pixel buffer the context draws into.
func (c *Context) Pixmap() *Pixmap {
	return c.pixmap
}

// Image returns a copy of the context's pixels.
func (c *Context) Image() image.Image {
	return c.pixmap.ToImage()
}

// SavePNG saves the context to a PNG file.
func (c *Context) SavePNG(path string) error {
	return c.pixmap.SavePNG(path)
}

// EncodePNG writes the image as PNG to the given writer.
func (c *Context) EncodePNG(w io.Writer) error {
	return c.pixmap.EncodePNG(w)
}

// Save pushes the transform, styles and clip region onto the state stack.
// The current path is not part of the saved state.
func (c *Context) Save() {
	c.stack = append(c.stack, state{
		paint:  c.paint.Clone(),
		matrix: c.matrix,
		clip:   c.clip,
	})
}

// Restore pops the last saved state. With an empty stack it does nothing.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.paint = s.paint
	c.matrix = s.matrix
	c.clip = s.clip
}

// SetFillColor sets the color used by Fill and FillRect.
func (c *Context) SetFillColor(col RGBA) {
	c.paint.FillColor = col
}

// SetStrokeColor sets the color used by Stroke.
func (c *Context) SetStrokeColor(col RGBA) {
	c.paint.StrokeColor = col
}

// SetFillStyle sets the fill color from a CSS color string.
// An unparsable string leaves the fill color unchanged, as a canvas
// ignores invalid fillStyle assignments, and the parse error is returned.
func (c *Context) SetFillStyle(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		Logger().Warn("canvas2d: fillStyle ignored", slog.String("value", s))
		return err
	}
	c.paint.FillColor = col
	return nil
}

// SetStrokeStyle sets the stroke color from a CSS color string.
// Invalid strings are handled like SetFillStyle.
func (c *Context) SetStrokeStyle(s string) error {
	col, err := ParseColor(s)
	if err != nil {
		Logger().Warn("canvas2d: strokeStyle ignored", slog.String("value", s))
		return err
	}
	c.paint.StrokeColor = col
	return nil
}

// FillColor returns the current fill color.
func (c *Context) FillColor() RGBA {
	return c.paint.FillColor
}

// StrokeColor returns the current stroke color.
func (c *Context) StrokeColor() RGBA {
	return c.paint.StrokeColor
}

// SetLineWidth sets the line width for stroking.
// Zero, negative, infinite and NaN values are ignored.
func (c *Context) SetLineWidth(width float64) {
	if !isPositiveFinite(width) {
		return
	}
	c.paint.LineWidth = width
}

// LineWidth returns the current line width.
func (c *Context) LineWidth() float64 {
	return c.paint.LineWidth
}

// SetLineCap sets the line cap style.
func (c *Context) SetLineCap(lineCap LineCap) {
	c.paint.LineCap = lineCap
}

// SetLineJoin sets the line join style.
func (c *Context) SetLineJoin(join LineJoin) {
	c.paint.LineJoin = join
}

// SetMiterLimit sets the miter limit for line joins.
// Zero, negative, infinite and NaN values are ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if !isPositiveFinite(limit) {
		return
	}
	c.paint.MiterLimit = limit
}

// GetStroke returns the current stroke style.
func (c *Context) GetStroke() Stroke {
	return c.paint.Stroke()
}

// Translate applies a translation to the transformation matrix.
func (c *Context) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(Translate(x, y))
}

// Scale applies a scaling transformation.
func (c *Context) Scale(x, y float64) {
	c.matrix = c.matrix.Multiply(Scale(x, y))
}

// Rotate applies a rotation (angle in radians).
func (c *Context) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(Rotate(angle))
}

// Transform multiplies the current transformation matrix by m,
// like CanvasRenderingContext2D.transform().
func (c *Context) Transform(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// SetTransform replaces the current transformation matrix.
func (c *Context) SetTransform(m Matrix) {
	c.matrix = m
}

// ResetTransform restores the identity transformation.
func (c *Context) ResetTransform() {
	c.matrix = Identity()
}

// GetTransform returns a copy of the current transformation matrix.
func (c *Context) GetTransform() Matrix {
	return c.matrix
}

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path.Clear()
}

// MoveTo starts a new subpath at the given point.
func (c *Context) MoveTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.MoveTo(p.X, p.Y)
}

// LineTo adds a line to the current path.
// Without a current point it behaves like MoveTo.
func (c *Context) LineTo(x, y float64) {
	p := c.matrix.TransformPoint(Pt(x, y))
	c.path.LineTo(p.X, p.Y)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.path.Close()
}

// Rect adds a closed rectangle subpath to the current path.
func (c *Context) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
	c.MoveTo(x, y)
}

// Path returns a copy of the current path in device coordinates.
func (c *Context) Path() *Path {
	return c.path.Clone()
}

// Fill fills the current path with the fill color.
// The path is kept, as in a canvas.
func (c *Context) Fill() error {
	if c.closed {
		return ErrContextClosed
	}
	c.renderer.paint(c.pixmap.rgba(), fillPolygons(c.path), c.paint.FillColor, c.clip)
	return nil
}

// Stroke strokes the current path with the stroke color and line style.
// The stroke is computed in user space, so non-uniform transforms shape
// the pen the way a canvas does. The path is kept.
func (c *Context) Stroke() error {
	if c.closed {
		return ErrContextClosed
	}
	inv, ok := c.matrix.Invert()
	if !ok {
		return nil
	}
	user := c.path.Transform(inv)
	polys := c.paint.Stroke().Expand(user.Subpaths())
	for _, poly := range polys {
		for i, p := range poly {
			poly[i] = c.matrix.TransformPoint(p)
		}
	}
	c.renderer.paint(c.pixmap.rgba(), polys, c.paint.StrokeColor, c.clip)
	return nil
}

// FillRect fills a rectangle with the fill color without touching the
// current path.
func (c *Context) FillRect(x, y, w, h float64) error {
	if c.closed {
		return ErrContextClosed
	}
	c.renderer.paint(c.pixmap.rgba(), [][]Point{c.rectPolygon(x, y, w, h)}, c.paint.FillColor, c.clip)
	return nil
}

// ClearRect sets the pixels of a rectangle to transparent black, within
// the clip region, without touching the current path.
func (c *Context) ClearRect(x, y, w, h float64) error {
	if c.closed {
		return ErrContextClosed
	}
	c.renderer.clear(c.pixmap.rgba(), [][]Point{c.rectPolygon(x, y, w, h)}, c.clip)
	return nil
}

// rectPolygon returns the device-space corners of a user-space rectangle.
func (c *Context) rectPolygon(x, y, w, h float64) []Point {
	return []Point{
		c.matrix.TransformPoint(Pt(x, y)),
		c.matrix.TransformPoint(Pt(x+w, y)),
		c.matrix.TransformPoint(Pt(x+w, y+h)),
		c.matrix.TransformPoint(Pt(x, y+h)),
	}
}

// fillPolygons returns each subpath as an implicitly closed polygon.
func fillPolygons(p *Path) [][]Point {
	var polys [][]Point
	for _, sp := range p.Subpaths() {
		if len(sp.Points) < 3 {
			continue
		}
		polys = append(polys, sp.Points)
	}
	return polys
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
