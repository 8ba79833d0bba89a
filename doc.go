// Package canvas2d provides an immediate-mode 2D rendering context for Go
// modelled on the HTML canvas 2D API.
//
// # Overview
//
// A Context keeps mutable drawing state (fill and stroke colors, line
// width, cap and join, transform, clip region and the current path) and
// renders into a Pixmap with a pure Go software rasterizer.
//
//	ctx := canvas2d.NewContext(500, 350)
//	ctx.Rect(5, 5, 490, 340)
//	ctx.Clip()
//	ctx.SetFillColor(canvas2d.Yellow)
//	_ = ctx.FillRect(5, 5, 500, 350)
//	_ = ctx.SavePNG("out.png")
//
// # Canvas semantics
//
// Path points are transformed as they are added. Clip, Fill and Stroke
// keep the current path; BeginPath discards it. Invalid CSS colors passed
// to SetFillStyle or SetStrokeStyle leave the style unchanged.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel (x, y) covers the square [x, x+1) x [y, y+1)
//
// Coverage is anti-aliased; shapes whose edges fall on integer
// coordinates render with exact colors.
package canvas2d

// Version is the current version of the library
const Version = "0.1.0"
