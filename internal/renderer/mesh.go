package renderer

import (
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultMaterial provides a basic material to fall back on
var DefaultMaterial = &Material{
	Name:      "default",
	Shininess: 32.0,
}

// Material is the Phong surface description: a diffuse map, a specular map,
// and the specular exponent. The maps are sampled per fragment by the
// multi-light shader; texture IDs are 0 until the maps are uploaded.
type Material struct {
	DiffuseMap  uint32 // OpenGL texture ID for the diffuse map
	SpecularMap uint32 // OpenGL texture ID for the specular map
	Shininess   float32

	Name            string // Material name for debugging
	DiffuseMapPath  string // Loaded lazily once a GL context exists
	SpecularMapPath string
}

// Mesh is one drawable object: interleaved vertex data on the GPU plus the
// transform and material the renderer uploads every draw.
type Mesh struct {
	ModelMatrix mgl32.Mat4
	Position    mgl32.Vec3
	Scale       mgl32.Vec3
	Rotation    mgl32.Quat
	Material    *Material
	VAO         uint32
	VBO         uint32
	EBO         uint32
	IsDirty     bool

	Id              int
	Name            string
	Vertices        []float32 // Vertex positions, 3 floats each
	Normals         []float32 // Normal vectors, 3 floats each
	TextureCoords   []float32 // Texture coordinates, 2 floats each
	Faces           []int32   // Triangle indices
	InterleavedData []float32 // position(3) + texcoord(2) + normal(3) per vertex
}

func (m *Mesh) X() float32 {
	return m.Position[0]
}

func (m *Mesh) Y() float32 {
	return m.Position[1]
}

func (m *Mesh) Z() float32 {
	return m.Position[2]
}

func (m *Mesh) Rotate(angleX, angleY, angleZ float32) {
	if m.Rotation == (mgl32.Quat{}) {
		m.Rotation = mgl32.QuatIdent()
	}
	rotationX := mgl32.QuatRotate(mgl32.DegToRad(angleX), mgl32.Vec3{1, 0, 0})
	rotationY := mgl32.QuatRotate(mgl32.DegToRad(angleY), mgl32.Vec3{0, 1, 0})
	rotationZ := mgl32.QuatRotate(mgl32.DegToRad(angleZ), mgl32.Vec3{0, 0, 1})
	m.Rotation = m.Rotation.Mul(rotationX).Mul(rotationY).Mul(rotationZ)
	m.IsDirty = true
}

func (m *Mesh) SetPosition(x, y, z float32) {
	m.Position = mgl32.Vec3{x, y, z}
	m.IsDirty = true
}

func (m *Mesh) SetScale(x, y, z float32) {
	m.Scale = mgl32.Vec3{x, y, z}
	m.IsDirty = true
}

func (m *Mesh) SetShininess(shininess float32) {
	m.ensureMaterial()
	m.Material.Shininess = shininess
}

// SetMaps points the material at a diffuse/specular map pair; the textures
// are uploaded by the renderer once a GL context exists.
func (m *Mesh) SetMaps(diffusePath, specularPath string) {
	m.ensureMaterial()
	m.Material.DiffuseMapPath = diffusePath
	m.Material.SpecularMapPath = specularPath
}

func (m *Mesh) ensureMaterial() {
	if m.Material == nil || m.Material == DefaultMaterial {
		m.Material = &Material{
			Name:      "default",
			Shininess: 32.0,
		}
	}
}

// updateModelMatrix rebuilds the TRS transform. Multiplication is
// right-to-left: scale first, then rotate, then translate.
func (m *Mesh) updateModelMatrix() {
	scaleMatrix := mgl32.Scale3D(m.Scale[0], m.Scale[1], m.Scale[2])
	rotationMatrix := m.Rotation.Mat4()
	translationMatrix := mgl32.Translate3D(m.Position[0], m.Position[1], m.Position[2])
	m.ModelMatrix = translationMatrix.Mul4(rotationMatrix).Mul4(scaleMatrix)
}

// NormalMatrix is the inverse-transpose of the model matrix's upper 3x3
// block, which keeps normals perpendicular under non-uniform scaling.
func (m *Mesh) NormalMatrix() mgl32.Mat3 {
	return m.ModelMatrix.Mat3().Inv().Transpose()
}

// NewMesh assembles a mesh from position, texture-coordinate, and normal
// slices, interleaving them into the layout the shaders expect. texCoords
// and normals may be nil; missing attributes are zero-filled.
func NewMesh(vertices []float32, texCoords []float32, normals []float32, faces []int32) *Mesh {
	mesh := &Mesh{
		Position:      mgl32.Vec3{0, 0, 0},
		Scale:         mgl32.Vec3{1, 1, 1},
		Rotation:      mgl32.QuatIdent(),
		Material:      DefaultMaterial,
		Vertices:      vertices,
		TextureCoords: texCoords,
		Normals:       normals,
		Faces:         faces,
		IsDirty:       true,
	}
	mesh.InterleavedData = interleave(vertices, texCoords, normals)
	mesh.updateModelMatrix()
	return mesh
}

// NewMeshFromVec3 is a convenience wrapper for generated geometry.
func NewMeshFromVec3(vertices []mgl32.Vec3, faces []int32) *Mesh {
	return NewMesh(flattenVertices(vertices), nil, nil, faces)
}

func interleave(vertices, texCoords, normals []float32) []float32 {
	vertexCount := len(vertices) / 3
	data := make([]float32, 0, vertexCount*8)
	for i := 0; i < vertexCount; i++ {
		data = append(data, vertices[i*3], vertices[i*3+1], vertices[i*3+2])
		if len(texCoords) >= (i+1)*2 {
			data = append(data, texCoords[i*2], texCoords[i*2+1])
		} else {
			data = append(data, 0, 0)
		}
		if len(normals) >= (i+1)*3 {
			data = append(data, normals[i*3], normals[i*3+1], normals[i*3+2])
		} else {
			data = append(data, 0, 0, 0)
		}
	}
	return data
}

func flattenVertices(vertices []mgl32.Vec3) []float32 {
	flattened := make([]float32, 0, len(vertices)*3)
	for _, v := range vertices {
		flattened = append(flattened, v[0], v[1], v[2])
	}
	return flattened
}
