package gizmo

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type WindowState struct {
	windowGlfw   *glfw.Window
	WindowWidth  int
	WindowHeight int
	windowTitle  string
}

// PlatformWindowModule creates the shared GLFW window with a current
// OpenGL 4.1 core context. Install is a no-op if a WindowState exists.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// NewPlatformWindow fills in defaults for zero values.
func NewPlatformWindow(width, height int, title string) PlatformWindowModule {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "gizmo"
	}
	return PlatformWindowModule{Width: width, Height: height, Title: title, VSync: true}
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if Resource[WindowState](app) != nil {
		return
	}

	ws, err := createWindowState(m.Width, m.Height, m.Title, m.VSync)
	if err != nil {
		app.Logger().Errorf("window: %v", err)
		panic(err)
	}
	app.addResources(ws)
	app.Logger().Infof("window %dx%d %q", m.Width, m.Height, m.Title)

	app.UseSystem(System(windowCloseSystem).InStage(Prelude))
	app.UseSystem(System(swapBuffersSystem).InStage(Finale))
}

func createWindowState(width, height int, title string, vsync bool) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	win.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	}

	ws := &WindowState{
		windowGlfw:   win,
		WindowWidth:  width,
		WindowHeight: height,
		windowTitle:  title,
	}
	win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		ws.WindowWidth = width
		ws.WindowHeight = height
	})
	return ws, nil
}

// FramebufferSize returns the drawable size in pixels.
func (s *WindowState) FramebufferSize() (int, int) {
	return s.windowGlfw.GetFramebufferSize()
}

func (s *WindowState) Destroy() {
	s.windowGlfw.Destroy()
	glfw.Terminate()
}

func windowCloseSystem(cmd *Commands, s *WindowState, input *Input) {
	if s.windowGlfw.ShouldClose() || input.JustPressed[KeyEscape] {
		cmd.Exit()
	}
}

func swapBuffersSystem(s *WindowState) {
	s.windowGlfw.SwapBuffers()
}
