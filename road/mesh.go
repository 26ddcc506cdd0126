// Package road generates the looping road geometry around the cylinder.
package road

import "math"

// Segments is the number of quads the road ring is split into.
const Segments = 100

// Mesh is the road ring as a triangle-strip vertex ring plus a triangle
// index list. Vertices are interleaved x,y,z; texcoords are interleaved u,v.
// Pairs walk the ring left/right: vertex 2i is the left edge of slice i,
// vertex 2i+1 the right edge.
type Mesh struct {
	Vertices  []float32
	Texcoords []float32
	Indices   []uint16
}

// Generate builds the road ring for a cylinder of the given radius. The road
// spans x in [-roadWidth, roadWidth]. U runs 0 at the left edge to 1 at the
// right; V accumulates whole texture tiles around the ring so the texture
// repeats roughly once per world unit of circumference.
func Generate(earthRadius, roadWidth float32) Mesh {
	vertexCount := 2 * (Segments + 1)
	m := Mesh{
		Vertices:  make([]float32, 0, vertexCount*3),
		Texcoords: make([]float32, 0, vertexCount*2),
		Indices:   make([]uint16, 0, Segments*6),
	}

	vSpan := float32(math.Ceil(2 * math.Pi * float64(earthRadius)))
	for i := 0; i <= Segments; i++ {
		angle := float64(i) * 2 * math.Pi / Segments
		sin, cos := math.Sincos(angle)
		y := earthRadius * float32(cos)
		z := earthRadius * float32(sin)
		v := vSpan * float32(i) / Segments

		m.Vertices = append(m.Vertices, -roadWidth, y, z)
		m.Texcoords = append(m.Texcoords, 0, v)
		m.Vertices = append(m.Vertices, roadWidth, y, z)
		m.Texcoords = append(m.Texcoords, 1, v)
	}

	// Unroll the strip into triangles, flipping every other one so the
	// winding stays consistent.
	for j := 0; j < vertexCount-2; j++ {
		if j%2 == 0 {
			m.Indices = append(m.Indices, uint16(j), uint16(j+1), uint16(j+2))
		} else {
			m.Indices = append(m.Indices, uint16(j+1), uint16(j), uint16(j+2))
		}
	}

	return m
}

// VertexCount returns the number of vertices in the ring.
func (m Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// Vertex returns the position of vertex i.
func (m Mesh) Vertex(i int) (x, y, z float32) {
	return m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]
}

// Texcoord returns the texture coordinates of vertex i.
func (m Mesh) Texcoord(i int) (u, v float32) {
	return m.Texcoords[i*2], m.Texcoords[i*2+1]
}
