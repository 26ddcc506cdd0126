package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mailride/road"
)

// RoadRenderer draws the road ring as one textured immediate-mode batch.
type RoadRenderer struct {
	mesh road.Mesh
	tex  rl.Texture2D
}

// NewRoadRenderer creates a road renderer for a generated ring mesh.
func NewRoadRenderer(mesh road.Mesh, tex rl.Texture2D) *RoadRenderer {
	return &RoadRenderer{mesh: mesh, tex: tex}
}

// Draw renders the ring. Must be called inside 3D mode. Backface culling is
// off for the batch: the camera rides the outside of the cylinder, so the
// near part of the ring is seen from above and the far part from below.
func (r *RoadRenderer) Draw() {
	rl.SetTexture(r.tex.ID)
	rl.DisableBackfaceCulling()

	rl.Begin(rl.Triangles)
	rl.Color4ub(255, 255, 255, 255)
	for _, idx := range r.mesh.Indices {
		i := int(idx)
		rl.TexCoord2f(r.mesh.Texcoords[i*2], r.mesh.Texcoords[i*2+1])
		rl.Vertex3f(r.mesh.Vertices[i*3], r.mesh.Vertices[i*3+1], r.mesh.Vertices[i*3+2])
	}
	rl.End()

	rl.EnableBackfaceCulling()
	rl.SetTexture(0)
}
