package renderer

import (
	"fmt"
	"image"
	"image/color"

	"Lumen3D/internal/lighting"
	"Lumen3D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

type OpenGLRenderer struct {
	defaultShader        Shader
	Meshes               []*Mesh
	uniforms             *UniformCache
	textures             *TextureManager
	currentShaderProgram uint32 // Track currently bound shader to avoid unnecessary switches
	whiteTexture         uint32 // Fallback map so unmapped materials still modulate correctly
}

func (rend *OpenGLRenderer) Init(width, height int32, _ *glfw.Window) {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return
	}

	if Debug {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	}
	gl.Viewport(0, 0, width, height)

	rend.textures = NewTextureManager()
	rend.defaultShader = InitPhongShader()
	rend.defaultShader.Compile()
	rend.uniforms = NewUniformCache(rend.defaultShader.Program())

	rend.initWhiteTexture()
	logger.Log.Info("OpenGL render initialized")
}

// initWhiteTexture uploads a 1x1 white texture bound in place of missing
// diffuse/specular maps, so material sampling always yields a usable color.
func (rend *OpenGLRenderer) initWhiteTexture() {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	id, err := rend.CreateTextureFromImage(img)
	if err != nil {
		logger.Log.Error("Could not create fallback texture", zap.Error(err))
		return
	}
	rend.whiteTexture = id
}

func (rend *OpenGLRenderer) AddMesh(mesh *Mesh) {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.InterleavedData)*4, gl.Ptr(mesh.InterleavedData), gl.STATIC_DRAW)

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Faces)*4, gl.Ptr(mesh.Faces), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.VertexAttribPointer(2, 3, gl.FLOAT, false, stride, gl.PtrOffset(5*4))
	gl.EnableVertexAttribArray(2)

	gl.BindVertexArray(0)

	mesh.VAO = vao
	mesh.VBO = vbo
	mesh.EBO = ebo

	mesh.updateModelMatrix()

	rend.Meshes = append(rend.Meshes, mesh)
}

func (rend *OpenGLRenderer) RemoveMesh(mesh *Mesh) {
	for i, m := range rend.Meshes {
		if m == mesh {
			rend.Meshes = append(rend.Meshes[:i], rend.Meshes[i+1:]...)
			break
		}
	}
}

func (rend *OpenGLRenderer) Render(camera Camera, rig *lighting.Rig) {
	gl.ClearColor(ClearColorR, ClearColorG, ClearColorB, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if DepthTestEnabled {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthMask(true)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}

	if FaceCullingEnabled {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	}

	viewProjection := camera.GetViewProjection()

	shader := &rend.defaultShader
	if rend.currentShaderProgram != shader.Program() {
		shader.Use()
		rend.currentShaderProgram = shader.Program()
	}

	rend.uniforms.SetMat4("viewProjection", viewProjection)
	rend.uniforms.SetVec3("viewPos", camera.Position)
	rend.setRigUniforms(rig)

	for _, mesh := range rend.Meshes {
		if mesh.IsDirty {
			mesh.updateModelMatrix()
			mesh.IsDirty = false
		}

		rend.uniforms.SetMat4("model", mesh.ModelMatrix)
		rend.uniforms.SetMat3("normalMatrix", mesh.NormalMatrix())
		rend.setMaterialUniforms(mesh)

		gl.BindVertexArray(mesh.VAO)
		gl.DrawElements(gl.TRIANGLES, int32(len(mesh.Faces)), gl.UNSIGNED_INT, nil)
		gl.BindVertexArray(0)
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
}

// setRigUniforms uploads the whole light rig: the directional light, each
// point light with an explicit count, and the spot light. Uniform names
// mirror the structs in the multi-light fragment shader.
func (rend *OpenGLRenderer) setRigUniforms(rig *lighting.Rig) {
	uc := rend.uniforms
	if rig == nil {
		uc.SetBool("hasDirLight", false)
		uc.SetInt("pointLightCount", 0)
		uc.SetBool("hasSpotLight", false)
		return
	}

	uc.SetBool("hasDirLight", rig.Dir != nil)
	if rig.Dir != nil {
		uc.SetVec3("dirLight.direction", rig.Dir.Direction)
		uc.SetVec3("dirLight.ambient", rig.Dir.Ambient)
		uc.SetVec3("dirLight.diffuse", rig.Dir.Diffuse)
		uc.SetVec3("dirLight.specular", rig.Dir.Specular)
	}

	count := len(rig.Points)
	if count > lighting.MaxPointLights {
		logger.Log.Warn("Too many point lights for one draw call, truncating",
			zap.Int("given", count), zap.Int("max", lighting.MaxPointLights))
		count = lighting.MaxPointLights
	}
	uc.SetInt("pointLightCount", int32(count))
	for i := 0; i < count; i++ {
		p := &rig.Points[i]
		prefix := fmt.Sprintf("pointLights[%d]", i)
		uc.SetVec3(prefix+".position", p.Position)
		uc.SetFloat(prefix+".constant", p.Constant)
		uc.SetFloat(prefix+".linear", p.Linear)
		uc.SetFloat(prefix+".quadratic", p.Quadratic)
		uc.SetVec3(prefix+".ambient", p.Ambient)
		uc.SetVec3(prefix+".diffuse", p.Diffuse)
		uc.SetVec3(prefix+".specular", p.Specular)
	}

	uc.SetBool("hasSpotLight", rig.Spot != nil)
	if rig.Spot != nil {
		uc.SetVec3("spotLight.position", rig.Spot.Position)
		uc.SetVec3("spotLight.direction", rig.Spot.Direction)
		uc.SetFloat("spotLight.cutOff", rig.Spot.CutOff)
		uc.SetFloat("spotLight.outerCutOff", rig.Spot.OuterCutOff)
		uc.SetFloat("spotLight.constant", rig.Spot.Constant)
		uc.SetFloat("spotLight.linear", rig.Spot.Linear)
		uc.SetFloat("spotLight.quadratic", rig.Spot.Quadratic)
		uc.SetVec3("spotLight.ambient", rig.Spot.Ambient)
		uc.SetVec3("spotLight.diffuse", rig.Spot.Diffuse)
		uc.SetVec3("spotLight.specular", rig.Spot.Specular)
	}
}

// setMaterialUniforms binds the mesh's diffuse/specular maps and uploads the
// shininess. Maps declared by path are uploaded on first use, once a GL
// context is guaranteed to exist.
func (rend *OpenGLRenderer) setMaterialUniforms(mesh *Mesh) {
	if mesh.Material == nil {
		mesh.Material = DefaultMaterial
	}
	mat := mesh.Material

	if mat.DiffuseMap == 0 && mat.DiffuseMapPath != "" {
		id, err := rend.textures.LoadTexture(mat.DiffuseMapPath)
		if err != nil {
			logger.Log.Error("Could not load diffuse map",
				zap.String("path", mat.DiffuseMapPath), zap.Error(err))
			mat.DiffuseMapPath = ""
		} else {
			mat.DiffuseMap = id
		}
	}
	if mat.SpecularMap == 0 && mat.SpecularMapPath != "" {
		id, err := rend.textures.LoadTexture(mat.SpecularMapPath)
		if err != nil {
			logger.Log.Error("Could not load specular map",
				zap.String("path", mat.SpecularMapPath), zap.Error(err))
			mat.SpecularMapPath = ""
		} else {
			mat.SpecularMap = id
		}
	}

	diffuse := mat.DiffuseMap
	if diffuse == 0 {
		diffuse = rend.whiteTexture
	}
	specular := mat.SpecularMap
	if specular == 0 {
		specular = rend.whiteTexture
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, diffuse)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, specular)

	rend.uniforms.SetInt("material.diffuse", 0)
	rend.uniforms.SetInt("material.specular", 1)
	rend.uniforms.SetFloat("material.shininess", mat.Shininess)
}

func (rend *OpenGLRenderer) Cleanup() {
	for _, mesh := range rend.Meshes {
		gl.DeleteVertexArrays(1, &mesh.VAO)
		gl.DeleteBuffers(1, &mesh.VBO)
		gl.DeleteBuffers(1, &mesh.EBO)
	}
	if rend.textures != nil {
		rend.textures.Cleanup()
	}
}

func (rend *OpenGLRenderer) LoadTexture(filePath string) (uint32, error) {
	return rend.textures.LoadTexture(filePath)
}

func (rend *OpenGLRenderer) CreateTextureFromImage(img image.Image) (uint32, error) {
	return rend.textures.CreateTextureFromImage(img)
}

// GetDefaultShader returns a copy of the default shader
func (rend *OpenGLRenderer) GetDefaultShader() Shader {
	return rend.defaultShader
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}
