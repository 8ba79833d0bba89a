package canvas2d

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored premultiplied, 4 bytes per pixel, as in image.RGBA.
type Pixmap struct {
	img *image.RGBA
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.img.Rect.Dx()
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.img.Rect.Dy()
}

// Data returns the raw pixel data (premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.img.Pix
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	p.img.Set(x, y, c.NRGBA())
}

// GetPixel returns the color of a single pixel.
// Out of range coordinates return Transparent.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if !(image.Point{X: x, Y: y}).In(p.img.Rect) {
		return Transparent
	}
	return FromColor(p.img.RGBAAt(x, y))
}

// NRGBAAt returns the 8-bit non-premultiplied color of a pixel.
func (p *Pixmap) NRGBAAt(x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(p.img.RGBAAt(x, y)).(color.NRGBA)
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	draw.Draw(p.img, p.img.Rect, image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// Equal reports whether two pixmaps have identical size and pixels.
func (p *Pixmap) Equal(other *Pixmap) bool {
	if other == nil {
		return false
	}
	return p.img.Rect == other.img.Rect && bytes.Equal(p.img.Pix, other.img.Pix)
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	return &Pixmap{img: p.ToImage()}
}

// ToImage returns a copy of the pixmap as an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(p.img.Rect)
	copy(img.Pix, p.img.Pix)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	draw.Draw(pm.img, pm.img.Rect, img, bounds.Min, draw.Src)
	return pm
}

// Scaled returns a copy enlarged by an integer factor using
// nearest-neighbour sampling, which keeps pixel edges crisp for inspection.
// Factors below 2 return a plain copy.
func (p *Pixmap) Scaled(factor int) *Pixmap {
	if factor < 2 {
		return p.Clone()
	}
	dst := NewPixmap(p.Width()*factor, p.Height()*factor)
	xdraw.NearestNeighbor.Scale(dst.img, dst.img.Rect, p.img, p.img.Rect, xdraw.Src, nil)
	return dst
}

// rgba exposes the backing image to the rasterizer.
func (p *Pixmap) rgba() *image.RGBA {
	return p.img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.img.At(x, y)
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return p.img.Rect
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
