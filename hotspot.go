package main

import (
	"github.com/seqsense/pcgol/mat"
)

const hotspotPickRadius = 24

type hotspot struct {
	label     string
	position  mat.Vec3
	viewpoint string

	screenX, screenY float32
	visible          bool
}

func newHotspots(hcs []hotspotConfig) []hotspot {
	hs := make([]hotspot, 0, len(hcs))
	for _, hc := range hcs {
		hs = append(hs, hotspot{
			label:     hc.Label,
			position:  hc.Position,
			viewpoint: hc.Viewpoint,
		})
	}
	return hs
}

func updateHotspots(hs []hotspot, cam *camera, width, height int) {
	for i := range hs {
		hs[i].screenX, hs[i].screenY, hs[i].visible = cam.Project(hs[i].position, width, height)
	}
}

// pickHotspot returns the index of the visible hotspot nearest to (x, y)
// within radius pixels.
func pickHotspot(hs []hotspot, x, y, radius float32) (int, bool) {
	selected := -1
	dSqMin := radius * radius
	for i, h := range hs {
		if !h.visible {
			continue
		}
		dx, dy := h.screenX-x, h.screenY-y
		if dSq := dx*dx + dy*dy; dSq <= dSqMin {
			dSqMin = dSq
			selected = i
		}
	}
	return selected, selected >= 0
}
