package engine

import (
	"runtime"

	"Lumen3D/internal/lighting"
	"Lumen3D/internal/logger"
	"Lumen3D/internal/renderer"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"
)

// FrameContext carries the per-frame state the engine hands to the host
// program's callback, instead of leaking it through package globals.
type FrameContext struct {
	Time      float64 // Seconds since GLFW init
	DeltaTime float64 // Seconds since the previous frame
	Width     int32
	Height    int32
}

// Engine owns the window, camera, and renderer and drives the frame loop.
// The light rig is plain data the host swaps or mutates between frames.
type Engine struct {
	Width  int32
	Height int32
	Title  string

	Rig    *lighting.Rig
	Camera *renderer.Camera

	EnableCameraInput bool

	rendererAPI   renderer.Render
	window        *glfw.Window
	onFrame       func(ctx FrameContext)
	pendingMeshes []*renderer.Mesh

	lastX, lastY float64
	firstMouse   bool
}

func New(title string) *Engine {
	logger.Init()
	logger.Log.Info("Lumen3D initializing...", zap.String("title", title))
	return &Engine{
		Width:             1024,
		Height:            768,
		Title:             title,
		Camera:            renderer.NewDefaultCamera(1024, 768),
		rendererAPI:       &renderer.OpenGLRenderer{},
		EnableCameraInput: true,
		firstMouse:        true,
	}
}

// SetOnFrame registers a callback invoked once per frame, after input
// handling and before the scene is drawn.
func (e *Engine) SetOnFrame(callback func(ctx FrameContext)) {
	e.onFrame = callback
}

// AddMesh registers a mesh with the renderer. Meshes added before Run are
// queued and uploaded once the GL context exists.
func (e *Engine) AddMesh(mesh *renderer.Mesh) {
	if e.window == nil {
		e.pendingMeshes = append(e.pendingMeshes, mesh)
		return
	}
	e.rendererAPI.AddMesh(mesh)
}

func (e *Engine) RemoveMesh(mesh *renderer.Mesh) {
	for i, m := range e.pendingMeshes {
		if m == mesh {
			e.pendingMeshes = append(e.pendingMeshes[:i], e.pendingMeshes[i+1:]...)
			return
		}
	}
	e.rendererAPI.RemoveMesh(mesh)
}

func (e *Engine) GetWindow() *glfw.Window {
	return e.window
}

func (e *Engine) GetRenderer() renderer.Render {
	return e.rendererAPI
}

// Run creates the window and GL context at the given screen position, then
// blocks in the render loop until the window closes.
func (e *Engine) Run(x, y int) {
	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Decorated, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(int(e.Width), int(e.Height), e.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return
	}
	e.window = window

	e.window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		logger.Log.Error("Could not initialize OpenGL", zap.Error(err))
		return
	}
	gl.ClearColor(renderer.ClearColorR, renderer.ClearColorG, renderer.ClearColorB, 1.0)

	e.window.SetPos(x, y)

	e.rendererAPI.Init(e.Width, e.Height, e.window)

	for _, mesh := range e.pendingMeshes {
		e.rendererAPI.AddMesh(mesh)
	}
	e.pendingMeshes = nil

	e.Camera.SetAspectRatio(float32(e.Width) / float32(e.Height))

	e.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	e.window.SetCursorPosCallback(e.mouseCallback)

	e.renderLoop()
}

func (e *Engine) renderLoop() {
	lastTime := glfw.GetTime()
	lastWidth, lastHeight := e.Width, e.Height

	for !e.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		actualWidth, actualHeight := e.window.GetSize()
		e.Width = int32(actualWidth)
		e.Height = int32(actualHeight)

		if e.Width != lastWidth || e.Height != lastHeight {
			e.rendererAPI.UpdateViewport(e.Width, e.Height)
			e.Camera.SetAspectRatio(float32(e.Width) / float32(e.Height))
			lastWidth, lastHeight = e.Width, e.Height
		}

		if e.EnableCameraInput {
			e.Camera.ProcessKeyboard(e.window, float32(deltaTime))
		}

		if e.onFrame != nil {
			e.onFrame(FrameContext{
				Time:      currentTime,
				DeltaTime: deltaTime,
				Width:     e.Width,
				Height:    e.Height,
			})
		}

		e.rendererAPI.Render(*e.Camera, e.Rig)

		e.window.SwapBuffers()
		glfw.PollEvents()
	}
	e.rendererAPI.Cleanup()
	logger.Sync()
}

// mouseCallback turns the camera while the right mouse button is held.
func (e *Engine) mouseCallback(w *glfw.Window, xpos, ypos float64) {
	if e.EnableCameraInput && w.GetAttrib(glfw.Focused) == glfw.True && w.GetMouseButton(glfw.MouseButtonRight) == glfw.Press {
		if e.firstMouse {
			e.lastX = xpos
			e.lastY = ypos
			e.firstMouse = false
			return
		}

		xoffset := xpos - e.lastX
		yoffset := e.lastY - ypos // Reversed since y-coordinates go from bottom to top
		e.lastX = xpos
		e.lastY = ypos

		e.Camera.ProcessMouseMovement(float32(xoffset), float32(yoffset), true)
	} else {
		e.firstMouse = true
	}
}
