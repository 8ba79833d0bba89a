package canvas2d

import (
	"math"
	"testing"
)

func openLine(pts ...Point) []Subpath {
	return []Subpath{{Points: pts}}
}

// totalArea sums polygon areas; pieces may overlap.
func totalArea(polys [][]Point) float64 {
	var a float64
	for _, p := range polys {
		a += signedArea(p)
	}
	return a
}

func TestStrokeExpandButt(t *testing.T) {
	polys := DefaultStroke().WithWidth(2).Expand(openLine(Pt(5, 6), Pt(500, 6)))
	if len(polys) != 1 {
		t.Fatalf("got %d polygons, want 1", len(polys))
	}
	if got := totalArea(polys); math.Abs(got-990) > 1e-9 {
		t.Errorf("area = %v, want 990", got)
	}
	b := polygonBounds(polys)
	if b.Min.X != 5 || b.Max.X != 500 || b.Min.Y != 5 || b.Max.Y != 7 {
		t.Errorf("bounds = %v, want (5,5)-(500,7)", b)
	}
}

func TestStrokeExpandSquareCap(t *testing.T) {
	polys := DefaultStroke().WithWidth(2).WithCap(LineCapSquare).Expand(openLine(Pt(10, 10), Pt(20, 10)))
	if len(polys) != 3 {
		t.Fatalf("got %d polygons, want segment plus two caps", len(polys))
	}
	b := polygonBounds(polys)
	if b.Min.X != 9 || b.Max.X != 21 {
		t.Errorf("x extent = [%d, %d], want [9, 21]", b.Min.X, b.Max.X)
	}
}

func TestStrokeExpandRoundCap(t *testing.T) {
	polys := DefaultStroke().WithWidth(4).WithCap(LineCapRound).Expand(openLine(Pt(10, 10), Pt(20, 10)))
	if len(polys) != 3 {
		t.Fatalf("got %d polygons, want 3", len(polys))
	}
	b := polygonBounds(polys)
	if b.Min.X != 8 || b.Max.X != 22 {
		t.Errorf("x extent = [%d, %d], want [8, 22]", b.Min.X, b.Max.X)
	}
}

func TestStrokeExpandJoins(t *testing.T) {
	corner := openLine(Pt(0, 10), Pt(10, 10), Pt(10, 20))

	tests := []struct {
		name      string
		join      LineJoin
		limit     float64
		wantPolys int
		wantMaxX  int
		wantMinY  int
	}{
		{"miter", LineJoinMiter, 10, 3, 11, 9},
		{"miter over limit", LineJoinMiter, 1.2, 3, 11, 9},
		{"bevel", LineJoinBevel, 10, 3, 11, 9},
		{"round", LineJoinRound, 10, 3, 11, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultStroke().WithWidth(2).WithJoin(tt.join).WithMiterLimit(tt.limit)
			polys := s.Expand(corner)
			if len(polys) != tt.wantPolys {
				t.Fatalf("got %d polygons, want %d", len(polys), tt.wantPolys)
			}
			b := polygonBounds(polys)
			if b.Max.X != tt.wantMaxX || b.Min.Y != tt.wantMinY {
				t.Errorf("bounds = %v", b)
			}
		})
	}
}

func TestStrokeMiterCoversCorner(t *testing.T) {
	corner := openLine(Pt(0, 10), Pt(10, 10), Pt(10, 20))
	miter := totalArea(DefaultStroke().WithWidth(2).Expand(corner))
	bevel := totalArea(DefaultStroke().WithWidth(2).WithJoin(LineJoinBevel).Expand(corner))

	// The miter fills the whole 1x1 outer corner, the bevel half of it.
	if math.Abs((miter-bevel)-0.5) > 1e-9 {
		t.Errorf("miter-bevel area = %v, want 0.5", miter-bevel)
	}
}

func TestStrokeExpandClosed(t *testing.T) {
	square := []Subpath{{Points: []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10), Pt(0, 0)}, Closed: true}}
	polys := DefaultStroke().WithWidth(2).WithCap(LineCapRound).Expand(square)

	// Four segments and four joins; caps are not applied to closed subpaths.
	if len(polys) != 8 {
		t.Errorf("got %d polygons, want 8", len(polys))
	}
}

func TestStrokeExpandDegenerate(t *testing.T) {
	s := DefaultStroke().WithWidth(2)
	if polys := s.Expand(openLine(Pt(1, 1))); len(polys) != 0 {
		t.Errorf("single point produced %d polygons", len(polys))
	}
	if polys := s.Expand(openLine(Pt(1, 1), Pt(1, 1))); len(polys) != 0 {
		t.Errorf("zero-length segment produced %d polygons", len(polys))
	}
	if polys := s.WithWidth(0).Expand(openLine(Pt(0, 0), Pt(5, 0))); polys != nil {
		t.Error("zero width should produce nothing")
	}
}

func TestStrokeExpandCollinear(t *testing.T) {
	polys := DefaultStroke().Expand(openLine(Pt(0, 0), Pt(5, 0), Pt(10, 0)))
	if len(polys) != 2 {
		t.Errorf("got %d polygons, want 2 segments without a join", len(polys))
	}
}

func TestStrokePolygonsPositive(t *testing.T) {
	s := DefaultStroke().WithWidth(3).WithJoin(LineJoinRound).WithCap(LineCapSquare)
	polys := s.Expand(openLine(Pt(0, 0), Pt(10, 5), Pt(3, 9), Pt(-4, 2)))
	for i, p := range polys {
		if a := signedArea(p); a <= 0 {
			t.Errorf("polygon %d has area %v, want positive", i, a)
		}
	}
}

func TestCirclePolygon(t *testing.T) {
	for _, r := range []float64{0.5, 1.5, 10, 400} {
		pts := circlePolygon(Pt(0, 0), r)
		if len(pts) < 8 || len(pts) > 256 {
			t.Errorf("r=%v: %d vertices", r, len(pts))
		}
		for _, p := range pts {
			if d := p.Length(); math.Abs(d-r) > 1e-9 {
				t.Fatalf("r=%v: vertex at distance %v", r, d)
			}
		}
	}
}
