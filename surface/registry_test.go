// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/gogpu/canvas2d"
)

// TestDocumentCreateSurface tests surface registration.
func TestDocumentCreateSurface(t *testing.T) {
	d := NewDocument()

	s, err := d.CreateSurface("canvas", 500, 350)
	if err != nil {
		t.Fatalf("CreateSurface: %v", err)
	}

	got, err := d.GetElementByID("canvas")
	if err != nil {
		t.Fatalf("GetElementByID: %v", err)
	}
	if got != s {
		t.Error("GetElementByID returned a different surface")
	}
	if got.Width() != 500 || got.Height() != 350 {
		t.Errorf("size = %dx%d, want 500x350", got.Width(), got.Height())
	}
}

// TestDocumentNotFound tests lookups of unknown identifiers.
func TestDocumentNotFound(t *testing.T) {
	d := NewDocument()

	_, err := d.GetElementByID("missing")
	if err == nil {
		t.Fatal("expected error for missing surface")
	}
	if !errors.Is(err, ErrSurfaceNotFound) {
		t.Errorf("errors.Is(err, ErrSurfaceNotFound) = false for %v", err)
	}

	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected *NotFoundError, got %T", err)
	}
	if nf.ID != "missing" {
		t.Errorf("ID = %q, want missing", nf.ID)
	}
}

// TestDocumentDuplicateID tests that identifiers are unique.
func TestDocumentDuplicateID(t *testing.T) {
	d := NewDocument()

	if _, err := d.CreateSurface("canvas", 10, 10); err != nil {
		t.Fatalf("first CreateSurface: %v", err)
	}
	_, err := d.CreateSurface("canvas", 20, 20)
	if !errors.Is(err, ErrDuplicateID) {
		t.Errorf("second CreateSurface error = %v, want ErrDuplicateID", err)
	}

	s, _ := d.GetElementByID("canvas")
	if s.Width() != 10 {
		t.Errorf("original surface replaced: width = %d", s.Width())
	}
}

// TestDocumentRemove tests surface removal.
func TestDocumentRemove(t *testing.T) {
	d := NewDocument()
	_, _ = d.CreateSurface("temp", 10, 10)

	d.Remove("temp")
	d.Remove("never-added")

	if _, err := d.GetElementByID("temp"); !errors.Is(err, ErrSurfaceNotFound) {
		t.Errorf("after Remove, err = %v, want ErrSurfaceNotFound", err)
	}
}

// TestDocumentIDs tests listing identifiers.
func TestDocumentIDs(t *testing.T) {
	d := NewDocument()
	for _, id := range []string{"overlay", "canvas", "preview"} {
		if _, err := d.CreateSurface(id, 4, 4); err != nil {
			t.Fatalf("CreateSurface(%q): %v", id, err)
		}
	}

	want := []string{"canvas", "overlay", "preview"}
	if got := d.IDs(); !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

// TestDocumentAddNil tests that nil surfaces are rejected.
func TestDocumentAddNil(t *testing.T) {
	var d Document
	if err := d.Add(nil); err == nil {
		t.Error("Add(nil) should fail")
	}
}

// TestDocumentZeroValue tests that a zero Document is usable.
func TestDocumentZeroValue(t *testing.T) {
	var d Document
	if _, err := d.CreateSurface("canvas", 1, 1); err != nil {
		t.Fatalf("CreateSurface on zero Document: %v", err)
	}
	if _, err := d.GetElementByID("canvas"); err != nil {
		t.Errorf("GetElementByID: %v", err)
	}
}

// TestDocumentConcurrent tests concurrent registration and lookup.
func TestDocumentConcurrent(t *testing.T) {
	d := NewDocument()
	ids := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			if _, err := d.CreateSurface(id, 2, 2); err != nil {
				t.Errorf("CreateSurface(%q): %v", id, err)
			}
			if _, err := d.GetElementByID(id); err != nil {
				t.Errorf("GetElementByID(%q): %v", id, err)
			}
		}(id)
	}
	wg.Wait()

	if n := len(d.IDs()); n != len(ids) {
		t.Errorf("registered %d surfaces, want %d", n, len(ids))
	}
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("x", tt.width, tt.height)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("New(%d, %d) error = %v, want ErrInvalidSize", tt.width, tt.height, err)
			}
		})
	}
}

func TestSurfaceBackground(t *testing.T) {
	s, err := New("bg", 8, 8, WithBackground(canvas2d.White))
	if err != nil {
		t.Fatal(err)
	}
	if got := s.Pixmap().GetPixel(3, 3); got != canvas2d.White {
		t.Errorf("background pixel = %+v, want White", got)
	}

	plain, _ := New("plain", 8, 8)
	if got := plain.Pixmap().GetPixel(3, 3); got != canvas2d.Transparent {
		t.Errorf("default pixel = %+v, want Transparent", got)
	}
}

func TestSurfaceGetContext(t *testing.T) {
	s, _ := New("canvas", 20, 10)

	ctx, err := s.GetContext(Context2D)
	if err != nil {
		t.Fatalf("GetContext(2d): %v", err)
	}
	if ctx.Width() != 20 || ctx.Height() != 10 {
		t.Errorf("context size = %dx%d, want 20x10", ctx.Width(), ctx.Height())
	}

	again, _ := s.GetContext(Context2D)
	if again != ctx {
		t.Error("GetContext should return the same context on every call")
	}

	ctx.SetFillColor(canvas2d.Red)
	if err := ctx.FillRect(0, 0, 20, 10); err != nil {
		t.Fatal(err)
	}
	if got := s.Pixmap().GetPixel(5, 5); got != canvas2d.Red {
		t.Errorf("surface pixel = %+v, want Red (context must draw into the surface)", got)
	}
}

func TestSurfaceGetContextUnsupported(t *testing.T) {
	s, _ := New("canvas", 4, 4)

	for _, kind := range []string{"webgl", "webgpu", "2D", ""} {
		if _, err := s.GetContext(kind); !errors.Is(err, ErrContextUnsupported) {
			t.Errorf("GetContext(%q) error = %v, want ErrContextUnsupported", kind, err)
		}
	}
}

func TestSurfaceSnapshotIsCopy(t *testing.T) {
	s, _ := New("canvas", 4, 4, WithBackground(canvas2d.Blue))
	snap := s.Snapshot()

	ctx, _ := s.GetContext(Context2D)
	ctx.SetFillColor(canvas2d.Red)
	_ = ctx.FillRect(0, 0, 4, 4)

	if got := snap.GetPixel(1, 1); got != canvas2d.Blue {
		t.Errorf("snapshot changed after drawing: %+v", got)
	}
}
