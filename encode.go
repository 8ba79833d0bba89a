package canvas2d

import (
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format identifies an image encoding.
type Format int

const (
	// FormatPNG is lossless PNG, the default.
	FormatPNG Format = iota
	// FormatJPEG is baseline JPEG at DefaultJPEGQuality.
	FormatJPEG
	// FormatBMP is uncompressed BMP.
	FormatBMP
	// FormatTIFF is deflate-compressed TIFF.
	FormatTIFF
)

// DefaultJPEGQuality is used by Encode and Save for FormatJPEG.
const DefaultJPEGQuality = 95

// ErrUnknownFormat is returned for file extensions with no encoder.
var ErrUnknownFormat = errors.New("canvas2d: unknown image format")

// String returns the conventional file extension without the dot.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// FormatFromPath picks an encoding from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".jpg", ".jpeg":
		return FormatJPEG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
}

// EncodePNG writes the pixmap as PNG to the given writer.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.img)
}

// EncodeJPEG writes the pixmap as JPEG with the given quality (1-100).
func (p *Pixmap) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, p.img, &jpeg.Options{Quality: quality})
}

// EncodeBMP writes the pixmap as BMP.
func (p *Pixmap) EncodeBMP(w io.Writer) error {
	return bmp.Encode(w, p.img)
}

// EncodeTIFF writes the pixmap as deflate-compressed TIFF.
func (p *Pixmap) EncodeTIFF(w io.Writer) error {
	return tiff.Encode(w, p.img, &tiff.Options{Compression: tiff.Deflate})
}

// Encode writes the pixmap in the given format.
func (p *Pixmap) Encode(w io.Writer, f Format) error {
	switch f {
	case FormatPNG:
		return p.EncodePNG(w)
	case FormatJPEG:
		return p.EncodeJPEG(w, DefaultJPEGQuality)
	case FormatBMP:
		return p.EncodeBMP(w)
	case FormatTIFF:
		return p.EncodeTIFF(w)
	}
	return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return p.saveAs(path, FormatPNG)
}

// Save writes the pixmap to path, choosing the encoding from the extension.
func (p *Pixmap) Save(path string) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return p.saveAs(path, f)
}

func (p *Pixmap) saveAs(path string, format Format) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := p.Encode(f, format); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
