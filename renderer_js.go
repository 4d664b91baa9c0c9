package main

import (
	"errors"
	"syscall/js"

	"github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"
)

var errContextLost = errors.New("WebGL context lost")

var baseColor = mat.Vec3{0.6, 0.6, 0.62}

const (
	aVertexPosition = 0
	aVertexNormal   = 1
)

type renderer struct {
	gl      *webgl.WebGL
	program webgl.Program

	uProjectionMatrix, uModelViewMatrix webgl.Location
	uBaseColor, uLightDirection        webgl.Location
	uLightColor, uAmbientColor         webgl.Location

	vertexBuf webgl.Buffer
	vertices  int

	width, height int
}

func newRenderer(gl *webgl.WebGL, lights lightsConfig) (*renderer, error) {
	vs, err := compileShader(gl, gl.VERTEX_SHADER, vsSource)
	if err != nil {
		return nil, err
	}
	fs, err := compileShader(gl, gl.FRAGMENT_SHADER, fsSource)
	if err != nil {
		return nil, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	if !gl.GetProgramParameter(program, gl.LINK_STATUS).(bool) {
		if gl.IsContextLost() {
			return nil, errContextLost
		}
		return nil, errors.New("link failed: " + gl.GetProgramInfoLog(program))
	}

	r := &renderer{
		gl:                gl,
		program:           program,
		uProjectionMatrix: gl.GetUniformLocation(program, "uProjectionMatrix"),
		uModelViewMatrix:  gl.GetUniformLocation(program, "uModelViewMatrix"),
		uBaseColor:        gl.GetUniformLocation(program, "uBaseColor"),
		uLightDirection:   gl.GetUniformLocation(program, "uLightDirection"),
		uLightColor:       gl.GetUniformLocation(program, "uLightColor"),
		uAmbientColor:     gl.GetUniformLocation(program, "uAmbientColor"),
		vertexBuf:         gl.CreateBuffer(),
	}

	gl.UseProgram(program)
	dir := lights.Directional.Position
	if dir.NormSq() == 0 {
		dir = worldUp
	}
	gl.Uniform3fv(r.uLightDirection, dir.Normalized())
	gl.Uniform3fv(r.uLightColor, lights.Directional.Color.Mul(lights.Directional.Intensity))
	gl.Uniform3fv(r.uAmbientColor, lights.Ambient.Color.Mul(lights.Ambient.Intensity))
	gl.Uniform3fv(r.uBaseColor, baseColor)

	gl.ClearColor(0, 0, 0, 0)
	gl.ClearDepth(1)
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.EnableVertexAttribArray(aVertexPosition)
	gl.EnableVertexAttribArray(aVertexNormal)

	return r, nil
}

func compileShader(gl *webgl.WebGL, typ webgl.ShaderType, src string) (webgl.Shader, error) {
	s := gl.CreateShader(typ)
	gl.ShaderSource(s, src)
	gl.CompileShader(s)
	if !gl.GetShaderParameter(s, gl.COMPILE_STATUS).(bool) {
		if gl.IsContextLost() {
			return webgl.Shader(js.Null()), errContextLost
		}
		if typ == gl.VERTEX_SHADER {
			return webgl.Shader(js.Null()), errors.New("compile failed (VERTEX_SHADER)")
		}
		return webgl.Shader(js.Null()), errors.New("compile failed (FRAGMENT_SHADER)")
	}
	return s, nil
}

func (r *renderer) SetMesh(m *mesh) {
	gl := r.gl
	r.vertices = m.Vertices()
	if r.vertices == 0 {
		return
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vertexBuf)
	gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(m.data), gl.STATIC_DRAW)
}

// Resize updates the drawing buffer to the canvas size. It returns true if
// the size has been changed.
func (r *renderer) Resize() bool {
	gl := r.gl
	width, height := gl.Canvas.ClientWidth(), gl.Canvas.ClientHeight()
	if width == r.width && height == r.height {
		return false
	}
	r.width, r.height = width, height
	gl.Canvas.SetWidth(width)
	gl.Canvas.SetHeight(height)
	gl.Viewport(0, 0, width, height)
	return true
}

func (r *renderer) Size() (int, int) {
	return r.width, r.height
}

func (r *renderer) Render(cam *camera) {
	gl := r.gl
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.vertices == 0 {
		return
	}
	gl.UseProgram(r.program)
	gl.UniformMatrix4fv(r.uProjectionMatrix, false, cam.ProjectionMatrix())
	gl.UniformMatrix4fv(r.uModelViewMatrix, false, cam.ViewMatrix())

	gl.BindBuffer(gl.ARRAY_BUFFER, r.vertexBuf)
	gl.VertexAttribPointer(aVertexPosition, 3, gl.FLOAT, false, meshStride*4, 0)
	gl.VertexAttribPointer(aVertexNormal, 3, gl.FLOAT, false, meshStride*4, 3*4)
	gl.DrawArrays(gl.TRIANGLES, 0, r.vertices)
}
