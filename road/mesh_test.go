package road

import (
	"math"
	"testing"
)

func TestGenerateCounts(t *testing.T) {
	m := Generate(100, 3)

	wantVerts := 2 * (Segments + 1)
	if m.VertexCount() != wantVerts {
		t.Errorf("expected %d vertices, got %d", wantVerts, m.VertexCount())
	}
	if len(m.Texcoords) != wantVerts*2 {
		t.Errorf("expected %d texcoord floats, got %d", wantVerts*2, len(m.Texcoords))
	}
	if len(m.Indices) != Segments*6 {
		t.Errorf("expected %d indices, got %d", Segments*6, len(m.Indices))
	}
}

func TestGenerateRingOnCylinder(t *testing.T) {
	m := Generate(100, 3)

	// Every vertex sits on the cylinder surface at the road's lateral edges.
	for i := 0; i < m.VertexCount(); i++ {
		x, y, z := m.Vertex(i)

		wantX := float32(-3)
		if i%2 == 1 {
			wantX = 3
		}
		if x != wantX {
			t.Fatalf("vertex %d: expected x=%f, got %f", i, wantX, x)
		}

		r := math.Sqrt(float64(y)*float64(y) + float64(z)*float64(z))
		if math.Abs(r-100) > 1e-3 {
			t.Fatalf("vertex %d: expected radius 100, got %f", i, r)
		}
	}
}

func TestGenerateClosesLoop(t *testing.T) {
	m := Generate(100, 3)

	// The last pair repeats the first pair's positions so the ring closes.
	n := m.VertexCount()
	for k := 0; k < 2; k++ {
		x0, y0, z0 := m.Vertex(k)
		x1, y1, z1 := m.Vertex(n - 2 + k)
		if math.Abs(float64(x1-x0)) > 1e-3 || math.Abs(float64(y1-y0)) > 1e-3 || math.Abs(float64(z1-z0)) > 1e-3 {
			t.Errorf("ring not closed at pair %d: (%f,%f,%f) vs (%f,%f,%f)", k, x0, y0, z0, x1, y1, z1)
		}
	}
}

func TestGenerateTexcoords(t *testing.T) {
	m := Generate(100, 3)

	vSpan := math.Ceil(2 * math.Pi * 100)
	for i := 0; i < m.VertexCount(); i++ {
		u, v := m.Texcoord(i)

		wantU := float32(0)
		if i%2 == 1 {
			wantU = 1
		}
		if u != wantU {
			t.Fatalf("vertex %d: expected u=%f, got %f", i, wantU, u)
		}

		slice := i / 2
		wantV := vSpan * float64(slice) / Segments
		if math.Abs(float64(v)-wantV) > 1e-2 {
			t.Fatalf("vertex %d: expected v=%f, got %f", i, wantV, v)
		}
	}

	// V climbs monotonically around the ring and covers the full span.
	_, vFirst := m.Texcoord(0)
	_, vLast := m.Texcoord(m.VertexCount() - 1)
	if vFirst != 0 || math.Abs(float64(vLast)-vSpan) > 1e-2 {
		t.Errorf("expected v to span 0..%f, got %f..%f", vSpan, vFirst, vLast)
	}
}

func TestGenerateIndicesCoverStrip(t *testing.T) {
	m := Generate(100, 3)

	n := m.VertexCount()
	used := make([]bool, n)
	for ti := 0; ti < len(m.Indices); ti += 3 {
		a, b, c := m.Indices[ti], m.Indices[ti+1], m.Indices[ti+2]
		for _, idx := range []uint16{a, b, c} {
			if int(idx) >= n {
				t.Fatalf("triangle %d: index %d out of range", ti/3, idx)
			}
			used[idx] = true
		}

		// Strip triangulation: triangle j spans vertices {j, j+1, j+2}.
		j := ti / 3
		lo := uint16(j)
		for _, idx := range []uint16{a, b, c} {
			if idx < lo || idx > lo+2 {
				t.Fatalf("triangle %d: index %d outside strip window [%d, %d]", j, idx, lo, lo+2)
			}
		}
	}

	for i, ok := range used {
		if !ok {
			t.Errorf("vertex %d never referenced by a triangle", i)
		}
	}
}
