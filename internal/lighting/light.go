package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxPointLights is the renderer-side capacity for point lights in a single
// draw call. The accumulator itself iterates whatever slice it is given; this
// constant only bounds what the shader uniform array can hold.
const MaxPointLights = 4

// Material holds the surface inputs to the Phong model for one fragment:
// the diffuse and specular texture samples at the fragment's coordinates
// and the specular exponent. Constant across a draw call.
type Material struct {
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32
}

// DirectionalLight is a sun-like light. Direction points from the light
// toward the scene and must be unit length at point of use.
type DirectionalLight struct {
	Direction mgl32.Vec3

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// PointLight radiates from a world-space position and falls off with
// distance via the classic constant/linear/quadratic attenuation curve.
type PointLight struct {
	Position mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// SpotLight is a point light restricted to a cone. CutOff and OuterCutOff
// are cosines of the inner and outer half-angles, with CutOff >= OuterCutOff;
// intensity ramps from 0 at the outer edge to 1 inside the inner cone.
// Callers must keep CutOff strictly greater than OuterCutOff: equal values
// divide by zero, matching the classic formula this implements.
type SpotLight struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3

	CutOff      float32
	OuterCutOff float32

	Constant  float32
	Linear    float32
	Quadratic float32

	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3
}

// Fragment is the per-sample shading context produced by the vertex stage:
// interpolated world position and normal, plus the direction from the
// surface point toward the viewer.
type Fragment struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	ViewDir  mgl32.Vec3
}

// FragmentAt builds a Fragment for a surface point seen from viewPos,
// normalizing the normal and deriving the view direction.
func FragmentAt(position, normal, viewPos mgl32.Vec3) Fragment {
	return Fragment{
		Position: position,
		Normal:   normal.Normalize(),
		ViewDir:  viewPos.Sub(position).Normalize(),
	}
}

// NewDirectionalLight creates a white-tinted directional light with the
// usual tutorial ambient/diffuse/specular split.
func NewDirectionalLight(direction mgl32.Vec3, color mgl32.Vec3, intensity float32) *DirectionalLight {
	return &DirectionalLight{
		Direction: direction.Normalize(),
		Ambient:   color.Mul(0.1 * intensity),
		Diffuse:   color.Mul(intensity),
		Specular:  color.Mul(intensity),
	}
}

// NewPointLight creates a point light whose attenuation is derived from a
// desired effective range: at range distance the light is down to roughly
// one percent of its intensity.
func NewPointLight(position mgl32.Vec3, color mgl32.Vec3, intensity, lightRange float32) *PointLight {
	return &PointLight{
		Position:  position,
		Constant:  1.0,
		Linear:    2.0 / lightRange,
		Quadratic: 1.0 / (lightRange * lightRange),
		Ambient:   color.Mul(0.05 * intensity),
		Diffuse:   color.Mul(intensity),
		Specular:  color.Mul(intensity),
	}
}

// NewSpotLight creates a spot light from half-angles given in degrees.
// innerDeg must be strictly smaller than outerDeg.
func NewSpotLight(position, direction mgl32.Vec3, innerDeg, outerDeg float32, color mgl32.Vec3, intensity float32) *SpotLight {
	return &SpotLight{
		Position:    position,
		Direction:   direction.Normalize(),
		CutOff:      math32.Cos(mgl32.DegToRad(innerDeg)),
		OuterCutOff: math32.Cos(mgl32.DegToRad(outerDeg)),
		Constant:    1.0,
		Linear:      0.09,
		Quadratic:   0.032,
		Ambient:     mgl32.Vec3{},
		Diffuse:     color.Mul(intensity),
		Specular:    color.Mul(intensity),
	}
}
