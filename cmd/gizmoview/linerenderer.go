package main

import (
	"fmt"
	"strings"

	"github.com/gekko3d/gizmo"
	"github.com/gekko3d/gizmo/core"
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

const lineVertSrc = `
#version 410 core
layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec4 inColor;

uniform mat4 mvp;

out vec4 fragColor;

void main() {
    gl_Position = mvp * vec4(inPosition, 1.0);
    fragColor   = inColor;
}
` + "\x00"

const lineFragSrc = `
#version 410 core
in vec4 fragColor;
out vec4 outColor;

void main() {
    outColor = fragColor;
}
` + "\x00"

// floats per vertex: position xyz + colour rgba
const lineVertexFloats = 7

type lineRenderer struct {
	program  uint32
	mvpLoc   int32
	vao      uint32
	vbo      uint32
	capacity int
	maxWidth float32
	scratch  []float32
	sky      core.Color
}

// LineRendererModule draws the GizmoDrawList with OpenGL after the Render
// stage. Must be installed after PlatformWindowModule.
type LineRendererModule struct {
	Sky core.Color
}

func (m LineRendererModule) Install(app *gizmo.App, cmd *gizmo.Commands) {
	r, err := newLineRenderer(m.Sky)
	if err != nil {
		app.Logger().Errorf("line renderer: %v", err)
		panic(err)
	}
	app.Logger().Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))
	cmd.AddResources(r)
	app.UseSystem(gizmo.System(lineRenderSystem).InStage(gizmo.PostRender))
}

func newLineRenderer(sky core.Color) (*lineRenderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	prog, err := newProgram(lineVertSrc, lineFragSrc)
	if err != nil {
		return nil, fmt.Errorf("shader compile: %w", err)
	}

	r := &lineRenderer{
		program: prog,
		mvpLoc:  gl.GetUniformLocation(prog, gl.Str("mvp\x00")),
		sky:     sky,
	}

	var widths [2]float32
	gl.GetFloatv(gl.ALIASED_LINE_WIDTH_RANGE, &widths[0])
	r.maxWidth = widths[1]

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	stride := int32(lineVertexFloats * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.BindVertexArray(0)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.DepthFunc(gl.LESS)
	return r, nil
}

func lineRenderSystem(cmd *gizmo.Commands, ws *gizmo.WindowState, r *lineRenderer, dl *gizmo.GizmoDrawList) {
	w, h := ws.FramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(r.sky[0], r.sky[1], r.sky[2], r.sky[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	cam, ok := gizmo.FindGizmoCamera(cmd)
	if !ok || w == 0 || h == 0 {
		return
	}
	mvp := cam.ProjectionMatrix(w, h).Mul4(cam.ViewMatrix())

	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.mvpLoc, 1, false, &mvp[0])
	gl.BindVertexArray(r.vao)

	gl.Enable(gl.DEPTH_TEST)
	gl.LineWidth(1)
	r.draw(dl.Wireframes())

	// A negative depth bias keeps the handles on top of the scene.
	if dl.DepthBias < 0 {
		gl.Disable(gl.DEPTH_TEST)
	}
	gl.LineWidth(min(max(dl.LineWidth, 1), r.maxWidth))
	r.draw(dl.Handles())

	gl.BindVertexArray(0)
}

func (r *lineRenderer) draw(lines []core.Line) {
	if len(lines) == 0 {
		return
	}

	r.scratch = r.scratch[:0]
	for _, l := range lines {
		r.scratch = append(r.scratch,
			l.From[0], l.From[1], l.From[2], l.Color[0], l.Color[1], l.Color[2], l.Color[3],
			l.To[0], l.To[1], l.To[2], l.Color[0], l.Color[1], l.Color[2], l.Color[3],
		)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	size := len(r.scratch) * 4
	if size > r.capacity {
		gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(r.scratch), gl.STREAM_DRAW)
		r.capacity = size
	} else {
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, size, gl.Ptr(r.scratch))
	}
	gl.DrawArrays(gl.LINES, 0, int32(len(lines)*2))
}

func (r *lineRenderer) Destroy() {
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}

func newProgram(vertSrc, fragSrc string) (uint32, error) {
	vert, err := compileShader(vertSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex: %w", err)
	}
	frag, err := compileShader(fragSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, fmt.Errorf("fragment: %w", err)
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("link failed: %v", log)
	}

	gl.DeleteShader(vert)
	gl.DeleteShader(frag)
	return prog, nil
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen+1))
		gl.GetShaderInfoLog(shader, logLen, nil, gl.Str(log))
		return 0, fmt.Errorf("compile failed: %v", log)
	}
	return shader, nil
}
