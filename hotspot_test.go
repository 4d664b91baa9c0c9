package main

import (
	"testing"

	"github.com/seqsense/pcgol/mat"
)

func TestHotspots(t *testing.T) {
	cam := newTestCamera(mat.Vec3{0, 0, 5}, mat.Vec3{})
	cam.SetViewport(800, 600)

	hs := newHotspots([]hotspotConfig{
		{Label: "Center", Position: mat.Vec3{0, 0, 0}, Viewpoint: "keyboard"},
		{Label: "Right", Position: mat.Vec3{0.5, 0, 0}, Viewpoint: "port"},
		{Label: "Behind", Position: mat.Vec3{0, 0, 10}, Viewpoint: "led"},
	})
	updateHotspots(hs, cam, 800, 600)

	if !hs[0].visible || !hs[1].visible {
		t.Fatal("Hotspots in front of the camera must be visible")
	}
	if hs[2].visible {
		t.Fatal("Hotspot behind the camera must not be visible")
	}

	testCases := map[string]struct {
		x, y     float32
		expected int
		ok       bool
	}{
		"Center":  {x: 400, y: 300, expected: 0, ok: true},
		"Near":    {x: 410, y: 290, expected: 0, ok: true},
		"Right":   {x: hs[1].screenX + 3, y: 300, expected: 1, ok: true},
		"Outside": {x: 10, y: 10, expected: -1, ok: false},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			i, ok := pickHotspot(hs, tt.x, tt.y, hotspotPickRadius)
			if ok != tt.ok || i != tt.expected {
				t.Errorf("Expected: (%d, %v), got: (%d, %v)", tt.expected, tt.ok, i, ok)
			}
		})
	}
}
