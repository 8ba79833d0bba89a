// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/canvas2d"
)

// Context2D is the context kind for the immediate-mode 2D API.
const Context2D = "2d"

// Surface is a named drawing target backed by a pixmap.
type Surface struct {
	id     string
	pixmap *canvas2d.Pixmap

	once sync.Once
	ctx  *canvas2d.Context
}

// Option configures a Surface during creation.
type Option func(*options)

type options struct {
	background *canvas2d.RGBA
}

// WithBackground fills the new surface with a color.
// Without it the surface starts fully transparent.
func WithBackground(c canvas2d.RGBA) Option {
	return func(o *options) {
		o.background = &c
	}
}

// New creates a detached surface. Most code creates surfaces through
// Document.CreateSurface so they can be looked up by id.
func New(id string, width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	pm := canvas2d.NewPixmap(width, height)
	if o.background != nil {
		pm.Clear(*o.background)
	}

	canvas2d.Logger().Debug("surface: created",
		slog.String("id", id), slog.Int("width", width), slog.Int("height", height))

	return &Surface{id: id, pixmap: pm}, nil
}

// ID returns the identifier of the surface.
func (s *Surface) ID() string {
	return s.id
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.pixmap.Width()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.pixmap.Height()
}

// Pixmap returns the pixel buffer backing the surface.
func (s *Surface) Pixmap() *canvas2d.Pixmap {
	return s.pixmap
}

// GetContext returns the rendering context of the given kind.
// Only Context2D is supported. As with a canvas element, every call
// returns the same context, so drawing state persists between calls.
func (s *Surface) GetContext(kind string) (*canvas2d.Context, error) {
	if kind != Context2D {
		return nil, fmt.Errorf("%w: %q on surface %q", ErrContextUnsupported, kind, s.id)
	}
	s.once.Do(func() {
		s.ctx = canvas2d.NewContext(s.Width(), s.Height(), canvas2d.WithPixmap(s.pixmap))
	})
	return s.ctx, nil
}

// Snapshot returns a copy of the current surface contents.
func (s *Surface) Snapshot() *canvas2d.Pixmap {
	return s.pixmap.Clone()
}
