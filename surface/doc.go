// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides named display surfaces and the document that
// holds them.
//
// A Surface owns a pixel buffer and hands out a 2D rendering context for
// it, like an HTML canvas element. A Document is a registry of surfaces
// keyed by identifier, so drawing code can look a surface up by name the
// way browser code calls document.getElementById.
//
// # Example
//
//	doc := surface.NewDocument()
//	s, err := doc.CreateSurface("canvas", 500, 350, surface.WithBackground(canvas2d.White))
//	if err != nil {
//	    return err
//	}
//	ctx, err := s.GetContext(surface.Context2D)
//
// # Errors
//
// Lookups of unknown identifiers return *NotFoundError, which matches
// ErrSurfaceNotFound with errors.Is. Asking a surface for a context kind
// other than "2d" returns an error matching ErrContextUnsupported.
//
// # Thread Safety
//
// Document is safe for concurrent use. Surfaces and their contexts are
// not; use one goroutine per surface.
package surface
