package main

import (
	"fmt"
	"time"

	"github.com/seqsense/pcgol/mat"
)

// viewerContext owns every piece of state mutated by UI events and frames.
// All methods must be called from the goroutine running the frame loop.
type viewerContext struct {
	cam      *camera
	anim     animator
	panel    *panel
	catalog  *catalog
	orbit    *orbit
	hotspots []hotspot
	cg       clickGuard

	duration           time.Duration
	width, height      int
	selected           string
	pointerX, pointerY int
}

func newViewerContext(c *showcaseConfig) *viewerContext {
	cam := newCamera(c.Camera)
	return &viewerContext{
		cam:      cam,
		panel:    newPanel(c.FadeDuration()),
		catalog:  newCatalog(c.Viewpoints),
		orbit:    newOrbit(cam, c.Orbit),
		hotspots: newHotspots(c.Hotspots),
		duration: c.AnimationDuration(),
	}
}

// Select animates the camera to the named viewpoint and shows or hides its
// description.
func (v *viewerContext) Select(name string, now time.Duration) error {
	vp, ok := v.catalog.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownViewpoint, name)
	}
	v.anim.Start(v.cam, vp.position, vp.lookAt, v.duration, now)
	if vp.description == "" {
		v.panel.Hide(now)
	} else {
		v.panel.Show(vp.description, now)
	}
	v.selected = name
	return nil
}

func (v *viewerContext) Selected() string {
	return v.selected
}

// Update advances the camera animation and the panel fade to now and
// recomputes hotspot screen positions.
func (v *viewerContext) Update(now time.Duration) {
	wasActive := v.anim.Active()
	if !v.anim.Tick(v.cam, now) && wasActive {
		// Pose captured by a drag during the animation is stale.
		v.orbit.Rebase(v.pointerX, v.pointerY)
	}
	v.panel.Update(now)
	updateHotspots(v.hotspots, v.cam, v.width, v.height)
}

func (v *viewerContext) SetViewport(width, height int) {
	v.width, v.height = width, height
	v.cam.SetViewport(width, height)
}

func (v *viewerContext) Viewport() (int, int) {
	return v.width, v.height
}

// SetPose moves the camera immediately, cancelling a running animation.
func (v *viewerContext) SetPose(position, lookAt mat.Vec3) {
	v.anim.Stop()
	v.cam.position = position
	v.cam.LookAt(lookAt)
	v.orbit.Rebase(v.pointerX, v.pointerY)
}

func (v *viewerContext) Duration() time.Duration {
	return v.duration
}

func (v *viewerContext) SetDuration(d time.Duration) error {
	if d <= 0 {
		return fmt.Errorf("%w: duration must be >0", errInvalidArgument)
	}
	v.duration = d
	return nil
}

func (v *viewerContext) Fov() float32 {
	return v.cam.fov / degToRad
}

func (v *viewerContext) SetFov(deg float32) error {
	if !(deg > 0 && deg < 180) {
		return fmt.Errorf("%w: fov must be in (0, 180)", errInvalidArgument)
	}
	v.cam.fov = deg * degToRad
	return nil
}

func (v *viewerContext) MouseDown(x, y int, button mouseButton) {
	v.pointerX, v.pointerY = x, y
	v.orbit.MouseDragStart(x, y, button)
	if button == mouseButtonLeft {
		v.cg.DragStart()
	}
}

func (v *viewerContext) MouseMove(x, y int) {
	v.pointerX, v.pointerY = x, y
	if !v.orbit.Dragging() {
		return
	}
	v.cg.Move()
	if v.anim.Active() {
		// The animation owns the camera until it ends.
		v.orbit.Rebase(x, y)
		return
	}
	v.orbit.MouseDrag(x, y)
}

func (v *viewerContext) MouseUp(x, y int, button mouseButton, now time.Duration) {
	v.pointerX, v.pointerY = x, y
	if v.anim.Active() {
		v.orbit.Rebase(x, y)
	}
	v.orbit.MouseDragEnd(x, y)
	if button == mouseButtonLeft {
		v.cg.DragEnd(now)
	}
}

func (v *viewerContext) Wheel(deltaY float64) {
	v.orbit.Wheel(deltaY)
}

// Click selects the viewpoint linked to the hotspot under (x, y).
// It reports whether a hotspot was hit.
func (v *viewerContext) Click(x, y int, now time.Duration) (bool, error) {
	if !v.cg.Click(now) {
		return false, nil
	}
	i, ok := pickHotspot(v.hotspots, float32(x), float32(y), hotspotPickRadius)
	if !ok {
		return false, nil
	}
	return true, v.Select(v.hotspots[i].viewpoint, now)
}

func (v *viewerContext) SelectHotspot(i int, now time.Duration) error {
	if i < 0 || i >= len(v.hotspots) {
		return fmt.Errorf("%w: hotspot %d", errInvalidArgument, i)
	}
	return v.Select(v.hotspots[i].viewpoint, now)
}
