package main

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

const degToRad = math.Pi / 180

var worldUp = mat.Vec3{0, 1, 0}

type camera struct {
	position mat.Vec3
	target   mat.Vec3
	up       mat.Vec3

	// fov is the vertical field of view in radian.
	fov       float32
	aspect    float32
	near, far float32
}

func newCamera(c cameraConfig) *camera {
	return &camera{
		position: c.Position,
		target:   c.LookAt,
		up:       worldUp,
		fov:      c.Fov * degToRad,
		aspect:   1,
		near:     c.Near,
		far:      c.Far,
	}
}

func (c *camera) LookAt(p mat.Vec3) {
	c.target = p
}

func (c *camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.aspect = float32(width) / float32(height)
}

// ViewMatrix returns the world to camera transform looking from position
// towards target.
func (c *camera) ViewMatrix() mat.Mat4 {
	e := c.position
	f := c.target.Sub(e)
	if f.NormSq() == 0 {
		return mat.Translate(-e[0], -e[1], -e[2])
	}
	f = f.Normalized()

	up := c.up
	if f.Cross(up).NormSq() < 1e-12 {
		// Looking straight along up: the screen top faces -Z (or +Z).
		if f.Dot(up) > 0 {
			up = mat.Vec3{0, 0, 1}
		} else {
			up = mat.Vec3{0, 0, -1}
		}
	}
	s := f.Cross(up).Normalized()
	u := s.Cross(f)

	return mat.Mat4{
		s[0], u[0], -f[0], 0,
		s[1], u[1], -f[1], 0,
		s[2], u[2], -f[2], 0,
		-s.Dot(e), -u.Dot(e), f.Dot(e), 1,
	}
}

func (c *camera) ProjectionMatrix() mat.Mat4 {
	// mat.Perspective takes the horizontal field of view.
	hfov := 2 * math.Atan(float64(c.aspect)*math.Tan(float64(c.fov)/2))
	return mat.Perspective(float32(hfov), c.aspect, c.near, c.far)
}

func (c *camera) Distance() float32 {
	return c.position.Sub(c.target).Norm()
}

// Project converts world coordinates into canvas pixel coordinates.
func (c *camera) Project(p mat.Vec3, width, height int) (float32, float32, bool) {
	m := c.ProjectionMatrix().Mul(c.ViewMatrix())
	clip := transform4(m, p)
	if clip[3] <= 0 {
		return 0, 0, false
	}
	x, y, z := clip[0]/clip[3], clip[1]/clip[3], clip[2]/clip[3]

	halfW, halfH := float32(width)/2, float32(height)/2
	visible := -1 <= x && x <= 1 && -1 <= y && y <= 1 && -1 <= z && z <= 1
	return x*halfW + halfW, -y*halfH + halfH, visible
}

func transform4(m mat.Mat4, a mat.Vec3) [4]float32 {
	in := [4]float32{a[0], a[1], a[2], 1}
	var out [4]float32
	for i := 0; i < 4; i++ {
		for k := 0; k < 4; k++ {
			out[i] += m[4*k+i] * in[k]
		}
	}
	return out
}
