package main

import (
	"math"

	webgl "github.com/seqsense/webgl-go"
)

const pinchZoomSpeed = 5

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureRotate
	gesturePinch
)

// gesture converts pointer events of mouse and touch into orbit drags and
// pinch zoom.
type gesture struct {
	pointers map[int]webgl.PointerEvent

	onDown  func(x, y int, button mouseButton)
	onMove  func(x, y int)
	onUp    func(x, y int, button mouseButton)
	onWheel func(deltaY float64)

	mode      gestureMode
	button    mouseButton
	distance0 float64
}

func newGesture() *gesture {
	return &gesture{
		pointers: make(map[int]webgl.PointerEvent),
	}
}

func (g *gesture) pointerDown(e webgl.PointerEvent) {
	e.PreventDefault()
	e.StopPropagation()
	g.pointers[e.PointerId] = e

	switch len(g.pointers) {
	case 1:
		g.mode = gestureRotate
		g.button = mouseButton(e.Button)
		g.onDown(e.OffsetX, e.OffsetY, g.button)
	case 2:
		if g.mode == gestureRotate {
			g.onUp(e.OffsetX, e.OffsetY, g.button)
		}
		g.mode = gesturePinch
		g.distance0 = g.pinchDistance()
	}
}

func (g *gesture) pointerMove(e webgl.PointerEvent) {
	if _, ok := g.pointers[e.PointerId]; !ok {
		return
	}
	e.PreventDefault()
	e.StopPropagation()
	g.pointers[e.PointerId] = e

	switch g.mode {
	case gestureRotate:
		g.onMove(e.OffsetX, e.OffsetY)
	case gesturePinch:
		if len(g.pointers) != 2 {
			break
		}
		d := g.pinchDistance()
		g.onWheel((g.distance0 - d) * pinchZoomSpeed)
		g.distance0 = d
	}
}

func (g *gesture) pointerUp(e webgl.PointerEvent) {
	if _, ok := g.pointers[e.PointerId]; !ok {
		return
	}
	delete(g.pointers, e.PointerId)

	switch g.mode {
	case gestureRotate:
		g.onUp(e.OffsetX, e.OffsetY, g.button)
		g.mode = gestureNone
	case gesturePinch:
		if len(g.pointers) == 0 {
			g.mode = gestureNone
		}
	}
}

func (g *gesture) pinchDistance() float64 {
	var pp []webgl.PointerEvent
	for id := range g.pointers {
		pp = append(pp, g.pointers[id])
	}
	if len(pp) < 2 {
		return 0
	}
	return math.Hypot(float64(pp[0].OffsetX-pp[1].OffsetX), float64(pp[0].OffsetY-pp[1].OffsetY))
}
