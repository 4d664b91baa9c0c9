package main

import (
	"math"

	"github.com/seqsense/pcgol/mat"
)

const (
	orbitRotateSpeed = 0.01
	orbitPanSpeed    = 0.002
	orbitZoomSpeed   = 0.001
	orbitPitchMargin = 0.01
	yDeadband        = 4
)

type mouseButton int

const (
	mouseButtonLeft mouseButton = iota
	mouseButtonMiddle
	mouseButtonRight
)

type dragStart struct {
	x, y   int
	button mouseButton
}

// orbit rotates, pans and zooms a camera around its look-at target.
type orbit struct {
	cam                      *camera
	minDistance, maxDistance float32

	drag0              *dragStart
	yaw0, pitch0       float64
	position0, target0 mat.Vec3
}

func newOrbit(cam *camera, c orbitConfig) *orbit {
	return &orbit{
		cam:         cam,
		minDistance: c.MinDistance,
		maxDistance: c.MaxDistance,
	}
}

func (o *orbit) Dragging() bool {
	return o.drag0 != nil
}

func (o *orbit) MouseDragStart(x, y int, button mouseButton) {
	o.drag0 = &dragStart{x: x, y: y, button: button}
	o.position0 = o.cam.position
	o.target0 = o.cam.target
	o.yaw0, o.pitch0 = sphericalAngles(o.cam.position.Sub(o.cam.target))
}

// Rebase restarts a running drag from the current camera pose with the
// pointer at (x, y). It is no-op when not dragging.
func (o *orbit) Rebase(x, y int) {
	if o.drag0 == nil {
		return
	}
	o.MouseDragStart(x, y, o.drag0.button)
}

func (o *orbit) MouseDragEnd(x, y int) {
	if o.drag0 == nil {
		return
	}
	o.MouseDrag(x, y)
	o.drag0 = nil
}

func (o *orbit) MouseDrag(x, y int) {
	if o.drag0 == nil {
		return
	}
	xDiff := float64(x - o.drag0.x)
	yDiff := float64(y - o.drag0.y)
	switch o.drag0.button {
	case mouseButtonLeft:
		if yDiff < -yDeadband {
			yDiff += yDeadband
		} else if yDiff > yDeadband {
			yDiff -= yDeadband
		} else {
			yDiff = 0
		}
		yaw := o.yaw0 - orbitRotateSpeed*xDiff
		pitch := o.pitch0 - orbitRotateSpeed*yDiff
		if pitch < orbitPitchMargin {
			pitch = orbitPitchMargin
		} else if pitch > math.Pi-orbitPitchMargin {
			pitch = math.Pi - orbitPitchMargin
		}
		r := o.position0.Sub(o.target0).Norm()
		o.cam.position = o.target0.Add(sphericalOffset(yaw, pitch, r))
	case mouseButtonMiddle, mouseButtonRight:
		view := o.cam.ViewMatrix()
		right := mat.Vec3{view[0], view[4], view[8]}
		up := mat.Vec3{view[1], view[5], view[9]}
		scale := orbitPanSpeed * o.position0.Sub(o.target0).Norm()
		d := right.Mul(-float32(xDiff) * scale).Add(up.Mul(float32(yDiff) * scale))
		o.cam.position = o.position0.Add(d)
		o.cam.LookAt(o.target0.Add(d))
	}
}

func (o *orbit) Wheel(deltaY float64) {
	off := o.cam.position.Sub(o.cam.target)
	r := off.Norm()
	if r == 0 {
		return
	}
	rNew := r + float32(deltaY)*r*orbitZoomSpeed
	if rNew < o.minDistance {
		rNew = o.minDistance
	} else if rNew > o.maxDistance {
		rNew = o.maxDistance
	}
	o.cam.position = o.cam.target.Add(off.Mul(rNew / r))
}

// sphericalAngles returns yaw around +Y measured from +Z and the polar angle
// from +Y.
func sphericalAngles(off mat.Vec3) (float64, float64) {
	r := float64(off.Norm())
	if r == 0 {
		return 0, math.Pi / 2
	}
	yaw := math.Atan2(float64(off[0]), float64(off[2]))
	pitch := math.Acos(math.Max(-1, math.Min(1, float64(off[1])/r)))
	return yaw, pitch
}

func sphericalOffset(yaw, pitch float64, r float32) mat.Vec3 {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	return mat.Vec3{
		r * float32(sp*sy),
		r * float32(cp),
		r * float32(sp*cy),
	}
}
