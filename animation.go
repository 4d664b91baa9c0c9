package main

import (
	"time"

	"github.com/seqsense/pcgol/mat"
)

type cameraAnimation struct {
	startPosition, startLookAt   mat.Vec3
	targetPosition, targetLookAt mat.Vec3

	startTime time.Duration
	duration  time.Duration
}

// animator moves a camera pose linearly to a target pose.
// There is at most one animation at a time and starting a new one replaces it.
type animator struct {
	anim *cameraAnimation
}

// Start begins an animation from the current pose of cam.
func (a *animator) Start(cam *camera, targetPosition, targetLookAt mat.Vec3, duration, now time.Duration) {
	a.anim = &cameraAnimation{
		startPosition:  cam.position,
		startLookAt:    cam.target,
		targetPosition: targetPosition,
		targetLookAt:   targetLookAt,
		startTime:      now,
		duration:       duration,
	}
}

func (a *animator) Active() bool {
	return a.anim != nil
}

func (a *animator) Stop() {
	a.anim = nil
}

// Progress returns the normalized elapsed time of the active animation.
// It returns 0 when no animation is active.
func (a *animator) Progress(now time.Duration) float32 {
	if a.anim == nil {
		return 0
	}
	return a.anim.progress(now)
}

// Tick updates cam to the pose at now. It returns true while the animation
// is still running after this update.
func (a *animator) Tick(cam *camera, now time.Duration) bool {
	if a.anim == nil {
		return false
	}
	p := a.anim.progress(now)
	cam.position = lerpVec3(a.anim.startPosition, a.anim.targetPosition, p)
	cam.LookAt(lerpVec3(a.anim.startLookAt, a.anim.targetLookAt, p))
	if p >= 1 {
		a.anim = nil
		return false
	}
	return true
}

func (c *cameraAnimation) progress(now time.Duration) float32 {
	if c.duration <= 0 {
		return 1
	}
	p := float32(now-c.startTime) / float32(c.duration)
	if p < 0 {
		return 0
	} else if p > 1 {
		return 1
	}
	return p
}

func lerpVec3(a, b mat.Vec3, t float32) mat.Vec3 {
	if t >= 1 {
		return b
	}
	return a.Add(b.Sub(a).Mul(t))
}
