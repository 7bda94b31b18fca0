package renderer

import (
	"image"

	"Lumen3D/internal/lighting"

	"github.com/go-gl/glfw/v3.3/glfw"
)

var Debug bool = false
var FaceCullingEnabled bool = false
var DepthTestEnabled bool = true
var ClearColorR float32 = 0.0 // Background clear color red
var ClearColorG float32 = 0.0 // Background clear color green
var ClearColorB float32 = 0.0 // Background clear color blue

// Render is the backend contract the engine drives. Each frame it receives
// the camera and the light rig for the scene; meshes are registered up front.
type Render interface {
	Init(width, height int32, window *glfw.Window)
	Render(camera Camera, rig *lighting.Rig)
	AddMesh(mesh *Mesh)
	RemoveMesh(mesh *Mesh)
	LoadTexture(path string) (uint32, error)
	CreateTextureFromImage(img image.Image) (uint32, error)
	UpdateViewport(width, height int32)
	Cleanup()
}
