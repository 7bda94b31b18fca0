package lighting

import "github.com/go-gl/mathgl/mgl32"

// TutorialRig is the classic multi-light scene setup: one white sun, four
// small point lights around the origin, and a flashlight-style spot meant to
// be re-aimed from the camera every frame.
func TutorialRig() *Rig {
	points := []PointLight{
		*NewPointLight(mgl32.Vec3{0.7, 0.2, 2.0}, mgl32.Vec3{1, 1, 1}, 1.0, 50),
		*NewPointLight(mgl32.Vec3{2.3, -3.3, -4.0}, mgl32.Vec3{1, 1, 1}, 1.0, 50),
		*NewPointLight(mgl32.Vec3{-4.0, 2.0, -12.0}, mgl32.Vec3{1, 1, 1}, 1.0, 50),
		*NewPointLight(mgl32.Vec3{0.0, 0.0, -3.0}, mgl32.Vec3{1, 1, 1}, 1.0, 50),
	}
	return &Rig{
		Dir: &DirectionalLight{
			Direction: mgl32.Vec3{-0.2, -1.0, -0.3}.Normalize(),
			Ambient:   mgl32.Vec3{0.05, 0.05, 0.05},
			Diffuse:   mgl32.Vec3{0.4, 0.4, 0.4},
			Specular:  mgl32.Vec3{0.5, 0.5, 0.5},
		},
		Points: points,
		Spot:   NewSpotLight(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1}, 12.5, 15.0, mgl32.Vec3{1, 1, 1}, 1.0),
	}
}

// SunRig lights outdoor scenes: a warm directional sun plus a cool ambient
// fill baked into its ambient term. No point or spot lights.
func SunRig() *Rig {
	return &Rig{
		Dir: &DirectionalLight{
			Direction: mgl32.Vec3{-0.5, -0.8, -0.3}.Normalize(),
			Ambient:   mgl32.Vec3{0.25, 0.27, 0.33},
			Diffuse:   mgl32.Vec3{1.0, 0.95, 0.85},
			Specular:  mgl32.Vec3{0.3, 0.3, 0.3},
		},
	}
}

// StudioRig surrounds a model with a key, fill, and rim point light, the
// usual three-point studio arrangement.
func StudioRig() *Rig {
	return &Rig{
		Points: []PointLight{
			*NewPointLight(mgl32.Vec3{1.5, 1.0, 1.5}, mgl32.Vec3{1.0, 0.98, 0.95}, 1.2, 30),
			*NewPointLight(mgl32.Vec3{-1.2, 0.5, 1.2}, mgl32.Vec3{0.95, 0.97, 1.0}, 0.6, 30),
			*NewPointLight(mgl32.Vec3{0.0, 1.0, -1.0}, mgl32.Vec3{1.0, 0.95, 0.9}, 0.4, 30),
		},
	}
}
