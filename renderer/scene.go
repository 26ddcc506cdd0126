package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/mailride/camera"
)

// RigCamera converts a camera rig into a raylib perspective camera.
func RigCamera(rig camera.Rig) rl.Camera3D {
	return rl.Camera3D{
		Position:   vec3(rig.Eye),
		Target:     vec3(rig.Target),
		Up:         vec3(rig.Up),
		Fovy:       rig.FovDeg,
		Projection: rl.CameraPerspective,
	}
}

// DrawBillboard draws tex as a camera-facing sprite of the given world height
// centered at pos. Width follows the texture aspect. Must be called inside
// 3D mode.
func DrawBillboard(cam rl.Camera3D, tex rl.Texture2D, pos camera.Vec3, height float32) {
	rl.DrawBillboard(cam, tex, vec3(pos), height, rl.White)
}

func vec3(v camera.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}
