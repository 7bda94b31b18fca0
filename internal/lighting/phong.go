package lighting

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rig is the light configuration for one draw call: at most one directional
// light, a bounded ordered set of point lights, and at most one spot light.
// Contributions are summed, so point light order never changes the result.
// The mirror of this structure on the GPU side lives in the multi-light
// fragment shader; the two must stay formula-for-formula identical.
type Rig struct {
	Dir    *DirectionalLight
	Points []PointLight
	Spot   *SpotLight
}

// Shade accumulates the full Phong contribution of every light in the rig
// for one fragment. Pure arithmetic; degenerate inputs (negative shininess,
// unnormalized vectors, a spot with CutOff == OuterCutOff) produce degenerate
// output rather than errors, by contract with the shader rendition.
func (r *Rig) Shade(frag Fragment, mat Material) mgl32.Vec3 {
	var result mgl32.Vec3
	if r.Dir != nil {
		result = result.Add(r.Dir.Shade(frag, mat))
	}
	for i := range r.Points {
		result = result.Add(r.Points[i].Shade(frag, mat))
	}
	if r.Spot != nil {
		result = result.Add(r.Spot.Shade(frag, mat))
	}
	return result
}

// Shade computes the directional light's ambient + diffuse + specular terms.
func (l *DirectionalLight) Shade(frag Fragment, mat Material) mgl32.Vec3 {
	// The stored direction points from the light into the scene; shading
	// wants the direction from the surface toward the light.
	lightDir := l.Direction.Mul(-1).Normalize()
	return phong(l.Ambient, l.Diffuse, l.Specular, lightDir, frag, mat)
}

// Shade computes the point light's Phong terms scaled by distance attenuation.
func (l *PointLight) Shade(frag Fragment, mat Material) mgl32.Vec3 {
	toLight := l.Position.Sub(frag.Position)
	lightDir := toLight.Normalize()
	atten := l.Attenuation(toLight.Len())
	return phong(l.Ambient, l.Diffuse, l.Specular, lightDir, frag, mat).Mul(atten)
}

// Shade computes the spot light's Phong terms scaled by distance attenuation
// and the cone intensity ramp.
func (l *SpotLight) Shade(frag Fragment, mat Material) mgl32.Vec3 {
	toLight := l.Position.Sub(frag.Position)
	lightDir := toLight.Normalize()

	dist := toLight.Len()
	atten := 1.0 / (l.Constant + l.Linear*dist + l.Quadratic*dist*dist)

	theta := lightDir.Dot(l.Direction.Mul(-1).Normalize())
	intensity := l.ConeIntensity(theta)

	return phong(l.Ambient, l.Diffuse, l.Specular, lightDir, frag, mat).Mul(atten * intensity)
}

// Attenuation evaluates the light's falloff at the given distance.
func (l *PointLight) Attenuation(distance float32) float32 {
	return 1.0 / (l.Constant + l.Linear*distance + l.Quadratic*distance*distance)
}

// ConeIntensity maps the cosine of the angle between the spot axis and the
// fragment direction onto [0,1], ramping across the inner/outer cone edges.
// Divides by zero when CutOff == OuterCutOff; that caller contract is not
// guarded here.
func (l *SpotLight) ConeIntensity(theta float32) float32 {
	epsilon := l.CutOff - l.OuterCutOff
	return mgl32.Clamp((theta-l.OuterCutOff)/epsilon, 0.0, 1.0)
}

// phong evaluates the shared ambient/diffuse/specular core used by every
// light type, with lightDir pointing from the surface toward the light.
func phong(ambient, diffuse, specular, lightDir mgl32.Vec3, frag Fragment, mat Material) mgl32.Vec3 {
	normal := frag.Normal.Normalize()

	diff := math32.Max(normal.Dot(lightDir), 0.0)

	reflectDir := reflect(lightDir.Mul(-1), normal)
	spec := math32.Pow(math32.Max(frag.ViewDir.Dot(reflectDir), 0.0), mat.Shininess)

	ambientTerm := modulate(ambient, mat.Diffuse)
	diffuseTerm := modulate(diffuse, mat.Diffuse).Mul(diff)
	specularTerm := modulate(specular, mat.Specular).Mul(spec)

	return ambientTerm.Add(diffuseTerm).Add(specularTerm)
}

// reflect mirrors incident vector i about unit normal n, same convention as
// GLSL reflect().
func reflect(i, n mgl32.Vec3) mgl32.Vec3 {
	return i.Sub(n.Mul(2.0 * n.Dot(i)))
}

// modulate multiplies two colors component-wise.
func modulate(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}
