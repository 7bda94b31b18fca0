package loader

import (
	"Lumen3D/internal/renderer"
)

// cubeFaces lists each face as four corners plus its outward normal, wound
// counter-clockwise seen from outside.
var cubeFaces = [6]struct {
	corners [4][3]float32
	normal  [3]float32
}{
	{ // front (+Z)
		corners: [4][3]float32{{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5}},
		normal:  [3]float32{0, 0, 1},
	},
	{ // back (-Z)
		corners: [4][3]float32{{0.5, -0.5, -0.5}, {-0.5, -0.5, -0.5}, {-0.5, 0.5, -0.5}, {0.5, 0.5, -0.5}},
		normal:  [3]float32{0, 0, -1},
	},
	{ // left (-X)
		corners: [4][3]float32{{-0.5, -0.5, -0.5}, {-0.5, -0.5, 0.5}, {-0.5, 0.5, 0.5}, {-0.5, 0.5, -0.5}},
		normal:  [3]float32{-1, 0, 0},
	},
	{ // right (+X)
		corners: [4][3]float32{{0.5, -0.5, 0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {0.5, 0.5, 0.5}},
		normal:  [3]float32{1, 0, 0},
	},
	{ // top (+Y)
		corners: [4][3]float32{{-0.5, 0.5, 0.5}, {0.5, 0.5, 0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5}},
		normal:  [3]float32{0, 1, 0},
	},
	{ // bottom (-Y)
		corners: [4][3]float32{{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, -0.5, 0.5}, {-0.5, -0.5, 0.5}},
		normal:  [3]float32{0, -1, 0},
	},
}

var cubeUVs = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

// LoadCube builds a unit cube centered at the origin, 24 unique vertices so
// each face keeps its own flat normal and texture coordinates.
func LoadCube() *renderer.Mesh {
	var positions []float32
	var texCoords []float32
	var normals []float32
	var indices []int32

	for f, face := range cubeFaces {
		base := int32(f * 4)
		for c, corner := range face.corners {
			positions = append(positions, corner[0], corner[1], corner[2])
			texCoords = append(texCoords, cubeUVs[c][0], cubeUVs[c][1])
			normals = append(normals, face.normal[0], face.normal[1], face.normal[2])
		}
		indices = append(indices, base, base+1, base+2, base, base+2, base+3)
	}

	mesh := renderer.NewMesh(positions, texCoords, normals, indices)
	mesh.Name = "cube"
	return mesh
}
