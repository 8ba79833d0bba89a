package canvas2d

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return c.NRGBA()
}

// RGBA implements color.Color with premultiplied 16-bit channels.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts RGBA to an 8-bit non-premultiplied color.
func (c RGBA) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// String formats the color the way a canvas reports fillStyle for
// colors with alpha: rgba(r, g, b, a).
func (c RGBA) String() string {
	n := c.NRGBA()
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", n.R, n.G, n.B,
		strconv.FormatFloat(float64(n.A)/255, 'f', -1, 64))
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB255(n.R, n.G, n.B, n.A)
}

// RGB creates an opaque color from RGB components (0-1).
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGB255 creates a color from 8-bit channels.
func RGB255(r, g, b, a uint8) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA{}
)

// ErrInvalidColor is returned when a CSS color string cannot be parsed.
var ErrInvalidColor = errors.New("canvas2d: invalid color")

// namedColors holds the CSS keywords recognized by ParseColor.
var namedColors = map[string]RGBA{
	"black":       Black,
	"silver":      RGB255(192, 192, 192, 255),
	"gray":        RGB255(128, 128, 128, 255),
	"grey":        RGB255(128, 128, 128, 255),
	"white":       White,
	"maroon":      RGB255(128, 0, 0, 255),
	"red":         Red,
	"purple":      RGB255(128, 0, 128, 255),
	"fuchsia":     Magenta,
	"magenta":     Magenta,
	"green":       RGB255(0, 128, 0, 255),
	"lime":        Green,
	"olive":       RGB255(128, 128, 0, 255),
	"yellow":      Yellow,
	"navy":        RGB255(0, 0, 128, 255),
	"blue":        Blue,
	"teal":        RGB255(0, 128, 128, 255),
	"aqua":        Cyan,
	"cyan":        Cyan,
	"orange":      RGB255(255, 165, 0, 255),
	"transparent": Transparent,
}

// ParseColor parses a CSS color string as accepted by a canvas
// fillStyle or strokeStyle assignment.
//
// Supported forms: #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(r, g, b),
// rgba(r, g, b, a) with integer or percentage channels, and the basic
// named keywords. Keywords and function names are matched
// case-insensitively. A single trailing semicolon is ignored.
func ParseColor(s string) (RGBA, error) {
	in := s
	s = strings.TrimSpace(s)
	s = strings.TrimSpace(strings.TrimSuffix(s, ";"))
	if s == "" {
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, in)
	}

	if s[0] == '#' {
		c, ok := parseHexColor(s[1:])
		if !ok {
			return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, in)
		}
		return c, nil
	}

	folded := cases.Fold().String(s)
	if c, ok := namedColors[folded]; ok {
		return c, nil
	}

	var args string
	switch {
	case strings.HasPrefix(folded, "rgba(") && strings.HasSuffix(folded, ")"):
		args = folded[len("rgba(") : len(folded)-1]
	case strings.HasPrefix(folded, "rgb(") && strings.HasSuffix(folded, ")"):
		args = folded[len("rgb(") : len(folded)-1]
	default:
		return RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, in)
	}

	c, err := parseRGBArgs(args)
	if err != nil {
		return RGBA{}, fmt.Errorf("%w: %q: %v", ErrInvalidColor, in, err)
	}
	return c, nil
}

// MustParseColor is like ParseColor but panics on error.
// Intended for package-level color literals.
func MustParseColor(s string) RGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseRGBArgs(args string) (RGBA, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return RGBA{}, fmt.Errorf("want 3 or 4 components, got %d", len(parts))
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := parseChannel(strings.TrimSpace(parts[i]))
		if err != nil {
			return RGBA{}, err
		}
		ch[i] = v
	}

	alpha := 1.0
	if len(parts) == 4 {
		a, err := parseAlpha(strings.TrimSpace(parts[3]))
		if err != nil {
			return RGBA{}, err
		}
		alpha = a
	}

	return RGBA{R: ch[0] / 255, G: ch[1] / 255, B: ch[2] / 255, A: alpha}, nil
}

// parseChannel parses a color channel into [0, 255].
func parseChannel(s string) (float64, error) {
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, err
		}
		return clamp255(v * 255 / 100), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return clamp255(v), nil
}

// parseAlpha parses an alpha value into [0, 1].
func parseAlpha(s string) (float64, error) {
	scale := 1.0
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		s = pct
		scale = 100
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	v /= scale
	switch {
	case v < 0:
		return 0, nil
	case v > 1:
		return 1, nil
	}
	return v, nil
}

// parseHexColor parses the digits of a #-color.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func parseHexColor(hex string) (RGBA, bool) {
	var r, g, b uint32
	a := uint32(255)
	ok := true

	switch len(hex) {
	case 3, 4:
		ok = parseHex(hex[0:1], &r) && parseHex(hex[1:2], &g) && parseHex(hex[2:3], &b)
		if len(hex) == 4 {
			ok = ok && parseHex(hex[3:4], &a)
			a *= 17
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8:
		ok = parseHex(hex[0:2], &r) && parseHex(hex[2:4], &g) && parseHex(hex[4:6], &b)
		if len(hex) == 8 {
			ok = ok && parseHex(hex[6:8], &a)
		}
	default:
		return RGBA{}, false
	}
	if !ok {
		return RGBA{}, false
	}

	return RGB255(uint8(r), uint8(g), uint8(b), uint8(a)), true
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}
