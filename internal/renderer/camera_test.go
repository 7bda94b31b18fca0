package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNewDefaultCamera(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	if cam == nil {
		t.Fatal("NewDefaultCamera returned nil")
	}

	if cam.Position != (mgl32.Vec3{0, 0, 3}) {
		t.Errorf("Camera should start a few units back from the origin, got %v", cam.Position)
	}

	if cam.Speed <= 0 {
		t.Error("Camera speed should be positive")
	}

	if cam.AspectRatio != 800.0/600.0 {
		t.Errorf("Expected aspect ratio 800/600, got %f", cam.AspectRatio)
	}
}

func TestCameraGetViewMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}
	cam.Front = mgl32.Vec3{0, 0, -1}
	cam.Up = mgl32.Vec3{0, 1, 0}

	view := cam.GetViewMatrix()

	if view.At(3, 3) != 1.0 {
		t.Error("View matrix should be valid (w component = 1)")
	}
}

func TestCameraGetProjectionMatrix(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	proj := cam.GetProjectionMatrix()

	if proj.At(3, 3) != 0.0 {
		t.Error("Perspective projection should have w=0 at (3,3)")
	}
}

func TestCameraGetViewProjection(t *testing.T) {
	cam := NewDefaultCamera(800, 600)

	vp := cam.GetViewProjection()

	zero := mgl32.Mat4{}
	if vp == zero {
		t.Error("ViewProjection should not be zero matrix")
	}
}

func TestCameraUpdateVectors(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Yaw = -90
	cam.Pitch = 0

	cam.updateCameraVectors()

	frontLen := cam.Front.Len()
	if math.Abs(float64(frontLen)-1.0) > 0.01 {
		t.Errorf("Front vector should be normalized, length=%f", frontLen)
	}

	// Yaw -90, pitch 0 looks down -Z.
	if math.Abs(float64(cam.Front.Z()+1.0)) > 0.01 {
		t.Errorf("Expected front to look down -Z, got %v", cam.Front)
	}
}

func TestCameraLookAt(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	cam.Position = mgl32.Vec3{0, 0, 5}

	cam.LookAt(mgl32.Vec3{0, 0, 0})

	want := mgl32.Vec3{0, 0, -1}
	diff := cam.Front.Sub(want).Len()
	if diff > 0.01 {
		t.Errorf("Expected front %v after LookAt, got %v", want, cam.Front)
	}
}

func TestCameraSetAspectRatio(t *testing.T) {
	cam := NewDefaultCamera(800, 600)
	before := cam.Projection

	cam.SetAspectRatio(2.0)

	if cam.Projection == before {
		t.Error("Projection should change when the aspect ratio does")
	}
}
