// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"log/slog"
	"sort"
	"sync"

	"github.com/gogpu/canvas2d"
)

// Document manages surfaces keyed by identifier.
//
// Example:
//
//	doc := surface.NewDocument()
//	_, _ = doc.CreateSurface("canvas", 500, 350)
//	s, err := doc.GetElementByID("canvas")
type Document struct {
	mu       sync.RWMutex
	surfaces map[string]*Surface
}

// NewDocument creates a new empty document.
func NewDocument() *Document {
	return &Document{
		surfaces: make(map[string]*Surface),
	}
}

// CreateSurface creates a surface and registers it under id.
func (d *Document) CreateSurface(id string, width, height int, opts ...Option) (*Surface, error) {
	s, err := New(id, width, height, opts...)
	if err != nil {
		return nil, err
	}
	if err := d.Add(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Add registers an existing surface under its id.
// Adding a second surface with the same id fails with ErrDuplicateID.
func (d *Document) Add(s *Surface) error {
	if s == nil {
		return errors.New("surface: surface must not be nil")
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.surfaces == nil {
		d.surfaces = make(map[string]*Surface)
	}
	if _, ok := d.surfaces[s.id]; ok {
		return &DuplicateIDError{ID: s.id}
	}
	d.surfaces[s.id] = s
	return nil
}

// Remove unregisters the surface with the given id.
// Removing an unknown id does nothing.
func (d *Document) Remove(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.surfaces, id)
}

// GetElementByID returns the surface registered under id.
func (d *Document) GetElementByID(id string) (*Surface, error) {
	d.mu.RLock()
	s, ok := d.surfaces[id]
	d.mu.RUnlock()

	if !ok {
		canvas2d.Logger().Debug("surface: lookup failed", slog.String("id", id))
		return nil, &NotFoundError{ID: id}
	}
	return s, nil
}

// IDs returns the registered identifiers in sorted order.
func (d *Document) IDs() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	ids := make([]string, 0, len(d.surfaces))
	for id := range d.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Errors.
var (
	// ErrSurfaceNotFound is matched by lookups of unknown identifiers.
	ErrSurfaceNotFound = errors.New("surface: not found")

	// ErrDuplicateID is matched when an identifier is already registered.
	ErrDuplicateID = errors.New("surface: duplicate id")

	// ErrContextUnsupported is returned for context kinds other than "2d".
	ErrContextUnsupported = errors.New("surface: context kind not supported")

	// ErrInvalidSize is returned for non-positive surface dimensions.
	ErrInvalidSize = errors.New("surface: invalid size")
)

// NotFoundError indicates no surface is registered under ID.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return "surface: not found: " + e.ID
}

// Is reports whether target is ErrSurfaceNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrSurfaceNotFound
}

// DuplicateIDError indicates an identifier is already registered.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return "surface: duplicate id: " + e.ID
}

// Is reports whether target is ErrDuplicateID.
func (e *DuplicateIDError) Is(target error) bool {
	return target == ErrDuplicateID
}
