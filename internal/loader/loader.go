package loader

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"Lumen3D/internal/logger"
	"Lumen3D/internal/renderer"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// faceVertex is one v/vt/vn index triplet from an OBJ face element.
// Missing optional indices are -1.
type faceVertex struct {
	vertexIdx   int32
	texCoordIdx int32
	normalIdx   int32
}

// LoadOBJ reads a Wavefront OBJ file into a mesh. Faces with separate
// position/texcoord/normal indices are unified into a single interleaved
// vertex buffer; quads and larger polygons are fan-triangulated. When
// recalculateNormals is set, smooth normals are derived from face geometry
// instead of trusting the file.
func LoadOBJ(filename string, recalculateNormals bool) (*renderer.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var positions []float32
	var texCoords []float32
	var normals []float32
	var faceVertices []faceVertex

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 || strings.HasPrefix(parts[0], "#") {
			continue
		}
		switch parts[0] {
		case "v":
			vals, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("invalid vertex: %w", err)
			}
			positions = append(positions, vals...)
		case "vn":
			vals, err := parseFloats(parts[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("invalid normal: %w", err)
			}
			normals = append(normals, vals...)
		case "vt":
			vals, err := parseFloats(parts[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("invalid texture coordinate: %w", err)
			}
			texCoords = append(texCoords, vals[0], vals[1])
		case "f":
			face, err := parseFace(parts[1:], len(positions)/3, len(texCoords)/2, len(normals)/3)
			if err != nil {
				return nil, err
			}
			faceVertices = append(faceVertices, face...)
		}
		// mtllib/usemtl are ignored: materials here are diffuse/specular map
		// pairs assigned by the host program, not MTL colors.
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(faceVertices) == 0 {
		return nil, errors.New("no faces in OBJ file")
	}

	mesh := unifyVertices(positions, texCoords, normals, faceVertices)
	if recalculateNormals || len(normals) == 0 {
		recalculated := RecalculateNormals(mesh.Vertices, mesh.Faces)
		mesh = renderer.NewMesh(mesh.Vertices, mesh.TextureCoords, recalculated, mesh.Faces)
	}
	mesh.Name = filename

	logger.Log.Info("OBJ model loaded",
		zap.String("path", filename),
		zap.Int("vertices", len(mesh.InterleavedData)/8),
		zap.Int("triangles", len(mesh.Faces)/3))

	return mesh, nil
}

// unifyVertices converts OBJ's separate index spaces into one vertex buffer,
// deduplicating identical v/vt/vn triplets.
func unifyVertices(positions, texCoords, normals []float32, faces []faceVertex) *renderer.Mesh {
	type vertexKey struct{ v, vt, vn int32 }

	seen := make(map[vertexKey]int32)
	var outPositions []float32
	var outTexCoords []float32
	var outNormals []float32
	var indices []int32

	for _, fv := range faces {
		key := vertexKey{fv.vertexIdx, fv.texCoordIdx, fv.normalIdx}
		if idx, ok := seen[key]; ok {
			indices = append(indices, idx)
			continue
		}
		idx := int32(len(outPositions) / 3)
		seen[key] = idx

		if fv.vertexIdx >= 0 && int(fv.vertexIdx*3+2) < len(positions) {
			outPositions = append(outPositions,
				positions[fv.vertexIdx*3],
				positions[fv.vertexIdx*3+1],
				positions[fv.vertexIdx*3+2])
		} else {
			logger.Log.Warn("Vertex index out of bounds", zap.Int32("index", fv.vertexIdx))
			outPositions = append(outPositions, 0, 0, 0)
		}

		if fv.texCoordIdx >= 0 && int(fv.texCoordIdx*2+1) < len(texCoords) {
			outTexCoords = append(outTexCoords,
				texCoords[fv.texCoordIdx*2],
				texCoords[fv.texCoordIdx*2+1])
		} else {
			outTexCoords = append(outTexCoords, 0, 0)
		}

		if fv.normalIdx >= 0 && int(fv.normalIdx*3+2) < len(normals) {
			outNormals = append(outNormals,
				normals[fv.normalIdx*3],
				normals[fv.normalIdx*3+1],
				normals[fv.normalIdx*3+2])
		} else {
			outNormals = append(outNormals, 0, 1, 0)
		}

		indices = append(indices, idx)
	}

	return renderer.NewMesh(outPositions, outTexCoords, outNormals, indices)
}

func parseFloats(parts []string, want int) ([]float32, error) {
	if len(parts) < want {
		return nil, fmt.Errorf("expected %d values, got %d", want, len(parts))
	}
	vals := make([]float32, 0, want)
	for _, part := range parts[:want] {
		val, err := strconv.ParseFloat(part, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", part, err)
		}
		vals = append(vals, float32(val))
	}
	return vals, nil
}

// parseFace parses one face element and triangulates it. OBJ indices are
// 1-based; negative indices count back from the current end of each list.
func parseFace(parts []string, vertexCount, texCoordCount, normalCount int) ([]faceVertex, error) {
	resolve := func(idx int64, count int) int32 {
		if idx < 0 {
			return int32(count) + int32(idx)
		}
		return int32(idx - 1)
	}

	var face []faceVertex
	for _, part := range parts {
		vals := strings.Split(part, "/")

		vertexIdx, err := strconv.ParseInt(vals[0], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid vertex index %q: %w", vals[0], err)
		}

		var texCoordIdx int32 = -1
		if len(vals) > 1 && vals[1] != "" {
			texIdx, err := strconv.ParseInt(vals[1], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid texture coordinate index %q: %w", vals[1], err)
			}
			texCoordIdx = resolve(texIdx, texCoordCount)
		}

		var normalIdx int32 = -1
		if len(vals) > 2 && vals[2] != "" {
			normIdx, err := strconv.ParseInt(vals[2], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid normal index %q: %w", vals[2], err)
			}
			normalIdx = resolve(normIdx, normalCount)
		}

		face = append(face, faceVertex{
			vertexIdx:   resolve(vertexIdx, vertexCount),
			texCoordIdx: texCoordIdx,
			normalIdx:   normalIdx,
		})
	}

	if len(face) < 3 {
		return nil, fmt.Errorf("face with %d vertices", len(face))
	}
	if len(face) == 3 {
		return face, nil
	}
	// Fan triangulation from the first vertex handles quads and larger polygons.
	var triangulated []faceVertex
	for i := 1; i < len(face)-1; i++ {
		triangulated = append(triangulated, face[0], face[i], face[i+1])
	}
	return triangulated, nil
}

// RecalculateNormals derives smooth per-vertex normals by accumulating face
// normals at each shared vertex and renormalizing.
func RecalculateNormals(vertices []float32, faces []int32) []float32 {
	if len(vertices) == 0 || len(faces) == 0 {
		return nil
	}

	normals := make([]float32, len(vertices))

	for i := 0; i+2 < len(faces); i += 3 {
		idx0 := faces[i] * 3
		idx1 := faces[i+1] * 3
		idx2 := faces[i+2] * 3

		if idx0+2 >= int32(len(vertices)) || idx1+2 >= int32(len(vertices)) || idx2+2 >= int32(len(vertices)) {
			logger.Log.Warn("Face index out of bounds while recalculating normals",
				zap.Int32("idx0", idx0), zap.Int32("idx1", idx1), zap.Int32("idx2", idx2))
			continue
		}

		v0 := mgl32.Vec3{vertices[idx0], vertices[idx0+1], vertices[idx0+2]}
		v1 := mgl32.Vec3{vertices[idx1], vertices[idx1+1], vertices[idx1+2]}
		v2 := mgl32.Vec3{vertices[idx2], vertices[idx2+1], vertices[idx2+2]}

		normal := v1.Sub(v0).Cross(v2.Sub(v0)).Normalize()

		for j := 0; j < 3; j++ {
			normals[idx0+int32(j)] += normal[j]
			normals[idx1+int32(j)] += normal[j]
			normals[idx2+int32(j)] += normal[j]
		}
	}

	for i := 0; i+2 < len(normals); i += 3 {
		normal := mgl32.Vec3{normals[i], normals[i+1], normals[i+2]}.Normalize()
		normals[i], normals[i+1], normals[i+2] = normal[0], normal[1], normal[2]
	}

	return normals
}

// LoadPlane generates a flat grid in the XZ plane with upward normals and
// tiling texture coordinates.
func LoadPlane(gridSize int, gridSpacing float32) (*renderer.Mesh, error) {
	if gridSize < 2 {
		return nil, errors.New("gridSize must be at least 2")
	}
	return buildGrid(gridSize, gridSpacing, func(x, z float32) float32 { return 0 }), nil
}

// LoadTerrain generates a Perlin-noise heightfield: a grid whose Y values
// come from fractal noise, with smooth normals recalculated from the result.
// Good lighting test geometry, since every slope catches the rig differently.
func LoadTerrain(gridSize int, gridSpacing, heightScale, noiseScale float32, seed int64) (*renderer.Mesh, error) {
	if gridSize < 2 {
		return nil, errors.New("gridSize must be at least 2")
	}
	noise := perlin.NewPerlin(2, 2, 3, seed)
	mesh := buildGrid(gridSize, gridSpacing, func(x, z float32) float32 {
		return heightScale * float32(noise.Noise2D(float64(x*noiseScale), float64(z*noiseScale)))
	})
	mesh.Name = "terrain"
	return mesh, nil
}

// buildGrid shares the vertex/index generation between flat planes and
// heightfields; height picks Y per XZ position.
func buildGrid(gridSize int, gridSpacing float32, height func(x, z float32) float32) *renderer.Mesh {
	var positions []float32
	var texCoords []float32
	indices := make([]int32, 0, (gridSize-1)*(gridSize-1)*6)

	for x := 0; x < gridSize; x++ {
		for z := 0; z < gridSize; z++ {
			wx := float32(x) * gridSpacing
			wz := float32(z) * gridSpacing
			positions = append(positions, wx, height(wx, wz), wz)
			texCoords = append(texCoords, float32(x), float32(z))
		}
	}

	for x := 0; x < gridSize-1; x++ {
		for z := 0; z < gridSize-1; z++ {
			topLeft := int32(x*gridSize + z)
			topRight := topLeft + 1
			bottomLeft := int32((x+1)*gridSize + z)
			bottomRight := bottomLeft + 1

			// Wound so the recalculated normals point up.
			indices = append(indices, topLeft, bottomRight, bottomLeft, topLeft, topRight, bottomRight)
		}
	}

	normals := RecalculateNormals(positions, indices)
	return renderer.NewMesh(positions, texCoords, normals, indices)
}
