package loader

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"Lumen3D/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

func writeOBJ(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.obj")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("could not write OBJ fixture: %v", err)
	}
	return path
}

func TestLoadOBJTriangle(t *testing.T) {
	path := writeOBJ(t, `
# simple triangle
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1/1 2/2/1 3/3/1
`)

	mesh, err := LoadOBJ(path, false)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	if len(mesh.Faces) != 3 {
		t.Errorf("Expected 3 indices, got %d", len(mesh.Faces))
	}
	if len(mesh.InterleavedData) != 3*8 {
		t.Errorf("Expected 3 vertices * 8 floats, got %d", len(mesh.InterleavedData))
	}

	// Second vertex: position (1,0,0), uv (1,0), normal (0,0,1).
	v := mesh.InterleavedData[8:16]
	want := []float32{1, 0, 0, 1, 0, 0, 0, 1}
	for i := range want {
		if v[i] != want[i] {
			t.Errorf("vertex[1] float %d: expected %f, got %f", i, want[i], v[i])
		}
	}
}

func TestLoadOBJQuadTriangulation(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`)

	mesh, err := LoadOBJ(path, false)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	if len(mesh.Faces) != 6 {
		t.Errorf("Quad should triangulate to 6 indices, got %d", len(mesh.Faces))
	}
}

func TestLoadOBJNegativeIndices(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 0 1 0
f -3 -2 -1
`)

	mesh, err := LoadOBJ(path, false)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	if len(mesh.Faces) != 3 {
		t.Fatalf("Expected 3 indices, got %d", len(mesh.Faces))
	}
	// -3 resolves to the first vertex.
	if mesh.InterleavedData[0] != 0 || mesh.InterleavedData[8] != 1 {
		t.Error("Negative indices should resolve from the end of the vertex list")
	}
}

func TestLoadOBJDeduplicatesTriplets(t *testing.T) {
	path := writeOBJ(t, `
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3
f 1 3 4
`)

	mesh, err := LoadOBJ(path, false)
	if err != nil {
		t.Fatalf("LoadOBJ failed: %v", err)
	}

	if got := len(mesh.InterleavedData) / 8; got != 4 {
		t.Errorf("Shared vertices should be deduplicated: expected 4 unique, got %d", got)
	}
	if len(mesh.Faces) != 6 {
		t.Errorf("Expected 6 indices, got %d", len(mesh.Faces))
	}
}

func TestLoadOBJNoFaces(t *testing.T) {
	path := writeOBJ(t, "v 0 0 0\n")

	if _, err := LoadOBJ(path, false); err == nil {
		t.Error("OBJ without faces should fail")
	}
}

func TestRecalculateNormalsFlatTriangle(t *testing.T) {
	vertices := []float32{
		0, 0, 0,
		1, 0, 0,
		0, 0, 1,
	}
	faces := []int32{0, 2, 1}

	normals := RecalculateNormals(vertices, faces)

	if len(normals) != len(vertices) {
		t.Fatalf("Expected %d normal floats, got %d", len(vertices), len(normals))
	}
	for i := 0; i < len(normals); i += 3 {
		if math.Abs(float64(normals[i+1])-1.0) > 1e-6 {
			t.Errorf("Vertex %d normal should point up, got (%f,%f,%f)",
				i/3, normals[i], normals[i+1], normals[i+2])
		}
	}
}

func TestLoadPlane(t *testing.T) {
	mesh, err := LoadPlane(3, 1.0)
	if err != nil {
		t.Fatalf("LoadPlane failed: %v", err)
	}

	if got := len(mesh.InterleavedData) / 8; got != 9 {
		t.Errorf("3x3 grid should have 9 vertices, got %d", got)
	}
	if len(mesh.Faces) != 2*2*6 {
		t.Errorf("3x3 grid should have 24 indices, got %d", len(mesh.Faces))
	}

	// Flat plane, upward normals everywhere.
	for i := 0; i < len(mesh.InterleavedData); i += 8 {
		ny := mesh.InterleavedData[i+6]
		if math.Abs(float64(ny)-1.0) > 1e-5 {
			t.Fatalf("Plane normal should be (0,1,0), got ny=%f at vertex %d", ny, i/8)
		}
	}

	if _, err := LoadPlane(1, 1.0); err == nil {
		t.Error("Grid size below 2 should fail")
	}
}

func TestLoadCube(t *testing.T) {
	mesh := LoadCube()

	if got := len(mesh.InterleavedData) / 8; got != 24 {
		t.Errorf("Cube should have 24 unique vertices, got %d", got)
	}
	if len(mesh.Faces) != 36 {
		t.Errorf("Cube should have 36 indices, got %d", len(mesh.Faces))
	}

	// Every face normal is axis-aligned and unit length.
	for i := 0; i < len(mesh.InterleavedData); i += 8 {
		nx, ny, nz := mesh.InterleavedData[i+5], mesh.InterleavedData[i+6], mesh.InterleavedData[i+7]
		lenSq := nx*nx + ny*ny + nz*nz
		if math.Abs(float64(lenSq)-1.0) > 1e-6 {
			t.Fatalf("Vertex %d normal not unit length: (%f,%f,%f)", i/8, nx, ny, nz)
		}
	}
}

func TestLoadTerrainDeterministic(t *testing.T) {
	a, err := LoadTerrain(8, 1.0, 3.0, 0.2, 42)
	if err != nil {
		t.Fatalf("LoadTerrain failed: %v", err)
	}
	b, err := LoadTerrain(8, 1.0, 3.0, 0.2, 42)
	if err != nil {
		t.Fatalf("LoadTerrain failed: %v", err)
	}

	if len(a.InterleavedData) != len(b.InterleavedData) {
		t.Fatal("Same seed should produce the same mesh size")
	}
	for i := range a.InterleavedData {
		if a.InterleavedData[i] != b.InterleavedData[i] {
			t.Fatalf("Same seed should reproduce the heightfield, differs at %d", i)
		}
	}

	// The heightfield should actually displace something.
	flat := true
	for i := 1; i < len(a.InterleavedData); i += 8 {
		if a.InterleavedData[i] != 0 {
			flat = false
			break
		}
	}
	if flat {
		t.Error("Terrain should have nonzero heights")
	}
}
