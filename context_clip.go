package canvas2d

import "log/slog"

// Clip intersects the clip region with the current path, using the
// non-zero winding rule. Unlike fogleman/gg, the path is kept, matching
// the canvas clip() method. An empty path leaves nothing drawable.
func (c *Context) Clip() {
	c.clip = c.renderer.clipMask(fillPolygons(c.path), c.clip)
	Logger().Debug("canvas2d: clip installed", slog.Int("subpaths", len(c.path.Subpaths())))
}

// ClipRect intersects the clip region with a rectangle without touching
// the current path.
func (c *Context) ClipRect(x, y, w, h float64) {
	c.clip = c.renderer.clipMask([][]Point{c.rectPolygon(x, y, w, h)}, c.clip)
}

// ResetClip removes all clipping regions, restoring the full canvas as
// drawable. Clip regions saved with Save are not affected.
func (c *Context) ResetClip() {
	c.clip = nil
}

// IsClipped reports whether a clip region is active.
func (c *Context) IsClipped() bool {
	return c.clip != nil
}

// ClipCoverage returns the clip coverage at a pixel in [0, 1].
// Without a clip every pixel inside the canvas reports 1.
func (c *Context) ClipCoverage(x, y int) float64 {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	if c.clip == nil {
		return 1
	}
	return float64(c.clip.AlphaAt(x, y).A) / 255
}
