package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/seqsense/pcgol/mat"
	"gopkg.in/yaml.v3"
)

//go:embed showcase.yaml
var defaultConfigYAML []byte

type showcaseConfig struct {
	Model      modelConfig       `yaml:"model"`
	Camera     cameraConfig      `yaml:"camera"`
	Lights     lightsConfig      `yaml:"lights"`
	Animation  animationConfig   `yaml:"animation"`
	Panel      panelConfig       `yaml:"panel"`
	Orbit      orbitConfig       `yaml:"orbit"`
	Viewpoints []viewpointConfig `yaml:"viewpoints"`
	Hotspots   []hotspotConfig   `yaml:"hotspots"`
}

type modelConfig struct {
	Path  string  `yaml:"path"`
	Scale float32 `yaml:"scale"`
}

type cameraConfig struct {
	Fov      float32  `yaml:"fov"`
	Near     float32  `yaml:"near"`
	Far      float32  `yaml:"far"`
	Position mat.Vec3 `yaml:"position"`
	LookAt   mat.Vec3 `yaml:"look_at"`
}

type lightConfig struct {
	Color     mat.Vec3 `yaml:"color"`
	Intensity float32  `yaml:"intensity"`
	Position  mat.Vec3 `yaml:"position"`
}

type lightsConfig struct {
	Directional lightConfig `yaml:"directional"`
	Ambient     lightConfig `yaml:"ambient"`
}

type animationConfig struct {
	DurationMs int `yaml:"duration_ms"`
}

type panelConfig struct {
	FadeMs int `yaml:"fade_ms"`
}

type orbitConfig struct {
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
}

type viewpointConfig struct {
	Name        string   `yaml:"name"`
	Button      string   `yaml:"button"`
	Position    mat.Vec3 `yaml:"position"`
	LookAt      mat.Vec3 `yaml:"look_at"`
	Description string   `yaml:"description"`
}

type hotspotConfig struct {
	Label     string   `yaml:"label"`
	Position  mat.Vec3 `yaml:"position"`
	Viewpoint string   `yaml:"viewpoint"`
}

var errInvalidConfig = errors.New("invalid config")

func readConfig(r io.Reader) (*showcaseConfig, error) {
	c := &showcaseConfig{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func defaultConfig() *showcaseConfig {
	c, err := readConfig(bytes.NewReader(defaultConfigYAML))
	if err != nil {
		panic(err)
	}
	return c
}

func (c *showcaseConfig) AnimationDuration() time.Duration {
	return time.Duration(c.Animation.DurationMs) * time.Millisecond
}

func (c *showcaseConfig) FadeDuration() time.Duration {
	return time.Duration(c.Panel.FadeMs) * time.Millisecond
}

func (c *showcaseConfig) validate() error {
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", errInvalidConfig, fmt.Sprintf(format, args...))
	}
	if c.Model.Path == "" {
		return invalid("model path is empty")
	}
	if !(c.Model.Scale > 0) || isInf(c.Model.Scale) {
		return invalid("model scale must be >0")
	}
	if !(c.Camera.Fov > 0 && c.Camera.Fov < 180) {
		return invalid("camera fov must be in (0, 180)")
	}
	if !(c.Camera.Near > 0 && c.Camera.Near < c.Camera.Far) || isInf(c.Camera.Far) {
		return invalid("camera near/far must satisfy 0 < near < far")
	}
	if c.Animation.DurationMs <= 0 {
		return invalid("animation duration must be >0")
	}
	if c.Panel.FadeMs <= 0 {
		return invalid("panel fade must be >0")
	}
	if !(c.Orbit.MinDistance > 0 && c.Orbit.MinDistance <= c.Orbit.MaxDistance) || isInf(c.Orbit.MaxDistance) {
		return invalid("orbit distance must satisfy 0 < min <= max")
	}

	if !isFinite(c.Camera.Position) || !isFinite(c.Camera.LookAt) {
		return invalid("camera pose must be finite")
	}

	names := make(map[string]bool)
	for i, v := range c.Viewpoints {
		if v.Name == "" {
			return invalid("viewpoint %d has no name", i)
		}
		if !isFinite(v.Position) || !isFinite(v.LookAt) {
			return invalid("viewpoint %q pose must be finite", v.Name)
		}
		if names[v.Name] {
			return invalid("duplicated viewpoint %q", v.Name)
		}
		names[v.Name] = true
	}
	if !names[defaultViewpoint] {
		return invalid("viewpoint %q is required", defaultViewpoint)
	}
	for _, h := range c.Hotspots {
		if !isFinite(h.Position) {
			return invalid("hotspot %q position must be finite", h.Label)
		}
		if !names[h.Viewpoint] {
			return invalid("hotspot %q refers to unknown viewpoint %q", h.Label, h.Viewpoint)
		}
	}
	return nil
}

func isInf(f float32) bool {
	return math.IsInf(float64(f), 0)
}

func isFinite(v mat.Vec3) bool {
	for _, f := range v {
		if math.IsNaN(float64(f)) || isInf(f) {
			return false
		}
	}
	return true
}
