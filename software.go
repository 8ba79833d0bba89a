package canvas2d

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// softwareRenderer rasterizes polygons into coverage masks and composites
// solid colors through them. Coverage is accumulated with the non-zero
// winding rule.
type softwareRenderer struct {
	bounds image.Rectangle
}

func newSoftwareRenderer(width, height int) *softwareRenderer {
	return &softwareRenderer{bounds: image.Rect(0, 0, width, height)}
}

// coverage rasterizes polygons into an alpha mask whose bounds are the
// polygons' pixel bounding box clipped to the canvas. It returns nil when
// nothing is covered.
func (r *softwareRenderer) coverage(polys [][]Point) *image.Alpha {
	box := polygonBounds(polys).Intersect(r.bounds)
	if box.Empty() {
		return nil
	}

	z := vector.NewRasterizer(box.Dx(), box.Dy())
	z.DrawOp = draw.Src
	ox, oy := float64(box.Min.X), float64(box.Min.Y)
	clipRect := [4]float64{ox, oy, float64(box.Max.X), float64(box.Max.Y)}
	for _, poly := range polys {
		poly = clipPolygon(poly, clipRect)
		if len(poly) < 3 {
			continue
		}
		z.MoveTo(float32(poly[0].X-ox), float32(poly[0].Y-oy))
		for _, p := range poly[1:] {
			z.LineTo(float32(p.X-ox), float32(p.Y-oy))
		}
		z.ClosePath()
	}

	// Rasterize at the origin so vector takes its direct accumulation
	// path, then move the mask to device coordinates.
	mask := image.NewAlpha(image.Rect(0, 0, box.Dx(), box.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	mask.Rect = box
	return mask
}

// paint composites col source-over onto dst through the polygons'
// coverage, attenuated by clip when it is non-nil.
func (r *softwareRenderer) paint(dst *image.RGBA, polys [][]Point, col RGBA, clip *image.Alpha) {
	mask := r.coverage(polys)
	if mask == nil {
		return
	}
	if clip != nil {
		intersectMask(mask, clip)
	}
	draw.DrawMask(dst, mask.Rect, image.NewUniform(col.NRGBA()), image.Point{}, mask, mask.Rect.Min, draw.Over)
}

// clear resets covered pixels towards transparent black.
func (r *softwareRenderer) clear(dst *image.RGBA, polys [][]Point, clip *image.Alpha) {
	mask := r.coverage(polys)
	if mask == nil {
		return
	}
	if clip != nil {
		intersectMask(mask, clip)
	}
	draw.DrawMask(dst, mask.Rect, image.Transparent, image.Point{}, mask, mask.Rect.Min, draw.Src)
}

// clipMask builds a canvas-sized mask from polygons, intersected with the
// previous clip when there is one. The previous mask is not modified.
func (r *softwareRenderer) clipMask(polys [][]Point, prev *image.Alpha) *image.Alpha {
	next := image.NewAlpha(r.bounds)
	if cov := r.coverage(polys); cov != nil {
		draw.Draw(next, cov.Rect, cov, cov.Rect.Min, draw.Src)
	}
	if prev != nil {
		intersectMask(next, prev)
	}
	return next
}

// intersectMask multiplies m by clip over m's bounds.
func intersectMask(m, clip *image.Alpha) {
	r := m.Rect.Intersect(clip.Rect)
	for y := m.Rect.Min.Y; y < m.Rect.Max.Y; y++ {
		for x := m.Rect.Min.X; x < m.Rect.Max.X; x++ {
			i := m.PixOffset(x, y)
			if !(image.Point{X: x, Y: y}).In(r) {
				m.Pix[i] = 0
				continue
			}
			c := uint32(clip.Pix[clip.PixOffset(x, y)])
			m.Pix[i] = uint8((uint32(m.Pix[i])*c + 127) / 255)
		}
	}
}

// polygonBounds returns the integer pixel box enclosing all polygons.
func polygonBounds(polys [][]Point) image.Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || minY > maxY || math.IsNaN(minX+minY+maxX+maxY) {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(clampCoord(minX))),
		int(math.Floor(clampCoord(minY))),
		int(math.Ceil(clampCoord(maxX))),
		int(math.Ceil(clampCoord(maxY))),
	)
}

// clampCoord keeps the float-to-int conversion in range for huge
// coordinates.
func clampCoord(v float64) float64 {
	const limit = 1 << 24
	return math.Max(-limit, math.Min(limit, v))
}

// clipPolygon clips a polygon to the axis-aligned rectangle
// {minX, minY, maxX, maxY} (Sutherland-Hodgman). Coverage is unchanged
// inside the rectangle.
func clipPolygon(poly []Point, rect [4]float64) []Point {
	inside := [4]func(Point) bool{
		func(p Point) bool { return p.X >= rect[0] },
		func(p Point) bool { return p.Y >= rect[1] },
		func(p Point) bool { return p.X <= rect[2] },
		func(p Point) bool { return p.Y <= rect[3] },
	}
	intersect := [4]func(a, b Point) Point{
		func(a, b Point) Point { return lerpAtX(a, b, rect[0]) },
		func(a, b Point) Point { return lerpAtY(a, b, rect[1]) },
		func(a, b Point) Point { return lerpAtX(a, b, rect[2]) },
		func(a, b Point) Point { return lerpAtY(a, b, rect[3]) },
	}

	out := poly
	for edge := 0; edge < 4 && len(out) > 0; edge++ {
		in := out
		out = make([]Point, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch curIn, prevIn := inside[edge](cur), inside[edge](prev); {
			case curIn && prevIn:
				out = append(out, cur)
			case curIn:
				out = append(out, intersect[edge](prev, cur), cur)
			case prevIn:
				out = append(out, intersect[edge](prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func lerpAtX(a, b Point, x float64) Point {
	t := (x - a.X) / (b.X - a.X)
	return Pt(x, a.Y+(b.Y-a.Y)*t)
}

func lerpAtY(a, b Point, y float64) Point {
	t := (y - a.Y) / (b.Y - a.Y)
	return Pt(a.X+(b.X-a.X)*t, y)
}
