package main

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/seqsense/pcgol/mat"
)

func TestDefaultConfig(t *testing.T) {
	c := defaultConfig()

	if c.Model.Path != "models/laptop2/scene.gltf" {
		t.Errorf("Unexpected model path: %s", c.Model.Path)
	}
	if c.Model.Scale != 1.5 {
		t.Errorf("Model scale expected: 1.5, got: %f", c.Model.Scale)
	}
	if !c.Camera.Position.Equal(mat.Vec3{-0.5, 1.2, 1}) {
		t.Errorf("Camera position expected: %v, got: %v", mat.Vec3{-0.5, 1.2, 1}, c.Camera.Position)
	}
	if d := c.AnimationDuration(); d != time.Second {
		t.Errorf("Animation duration expected: %v, got: %v", time.Second, d)
	}
	if d := c.FadeDuration(); d != 500*time.Millisecond {
		t.Errorf("Fade duration expected: %v, got: %v", 500*time.Millisecond, d)
	}
	if n := len(c.Viewpoints); n != 5 {
		t.Fatalf("Expected 5 viewpoints, got %d", n)
	}
	led := c.Viewpoints[3]
	if led.Name != "led" || led.Button != "cameraLED" ||
		!led.Position.Equal(mat.Vec3{0, 0.4, 0}) || !led.LookAt.Equal(mat.Vec3{0, 0.3, -0.5}) ||
		led.Description != "LED screen specification..." {
		t.Errorf("Unexpected viewpoint: %+v", led)
	}
	if c.Viewpoints[0].Description != "" {
		t.Error("Default viewpoint must not have description")
	}
}

const validConfig = `
model:
  path: scene.gltf
  scale: 1
camera:
  fov: 70
  near: 0.1
  far: 1000
  position: [0, 0, 1]
  look_at: [0, 0, 0]
animation:
  duration_ms: 1000
panel:
  fade_ms: 500
orbit:
  min_distance: 0.2
  max_distance: 10
viewpoints:
  - name: default
    position: [0, 0, 1]
    look_at: [0, 0, 0]
  - name: top
    position: [0, 1, 0]
    look_at: [0, 0, 0]
    description: Top
hotspots:
  - label: Top
    position: [0, 0.1, 0]
    viewpoint: top
`

func TestReadConfig(t *testing.T) {
	testCases := map[string]struct {
		replace [2]string
		err     error
	}{
		"Valid": {},
		"NoDefault": {
			replace: [2]string{"name: default", "name: front"},
			err:     errInvalidConfig,
		},
		"Duplicated": {
			replace: [2]string{"name: top", "name: default"},
			err:     errInvalidConfig,
		},
		"UnknownHotspotViewpoint": {
			replace: [2]string{"viewpoint: top", "viewpoint: side"},
			err:     errInvalidConfig,
		},
		"NearFar": {
			replace: [2]string{"near: 0.1", "near: 2000"},
			err:     errInvalidConfig,
		},
		"Fov": {
			replace: [2]string{"fov: 70", "fov: 0"},
			err:     errInvalidConfig,
		},
		"Duration": {
			replace: [2]string{"duration_ms: 1000", "duration_ms: 0"},
			err:     errInvalidConfig,
		},
		"OrbitDistance": {
			replace: [2]string{"min_distance: 0.2", "min_distance: 20"},
			err:     errInvalidConfig,
		},
		"FovNaN": {
			replace: [2]string{"fov: 70", "fov: .nan"},
			err:     errInvalidConfig,
		},
		"FarInf": {
			replace: [2]string{"far: 1000", "far: .inf"},
			err:     errInvalidConfig,
		},
		"ScaleNaN": {
			replace: [2]string{"scale: 1", "scale: .nan"},
			err:     errInvalidConfig,
		},
		"OrbitNaN": {
			replace: [2]string{"min_distance: 0.2", "min_distance: .nan"},
			err:     errInvalidConfig,
		},
		"ViewpointNaN": {
			replace: [2]string{"position: [0, 1, 0]", "position: [0, .nan, 0]"},
			err:     errInvalidConfig,
		},
		"NoModel": {
			replace: [2]string{"path: scene.gltf", "path: \"\""},
			err:     errInvalidConfig,
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			src := validConfig
			if tt.replace[0] != "" {
				src = strings.Replace(src, tt.replace[0], tt.replace[1], 1)
			}
			c, err := readConfig(strings.NewReader(src))
			if !errors.Is(err, tt.err) {
				t.Fatalf("Expected error: %v, got: %v", tt.err, err)
			}
			if err == nil && len(c.Hotspots) != 1 {
				t.Errorf("Expected 1 hotspot, got %d", len(c.Hotspots))
			}
		})
	}

	t.Run("UnknownField", func(t *testing.T) {
		_, err := readConfig(strings.NewReader(validConfig + "unknown: 1\n"))
		if err == nil {
			t.Fatal("Unknown field must be rejected")
		}
		if errors.Is(err, errInvalidConfig) {
			t.Errorf("Parse error must not be reported as validation error: %v", err)
		}
	})
	t.Run("Broken", func(t *testing.T) {
		if _, err := readConfig(strings.NewReader("model: [")); err == nil {
			t.Fatal("Broken YAML must be rejected")
		}
	})
}
