package main

import (
	"time"
)

const clickGuardDuration = 100 * time.Millisecond

// clickGuard tells a click from the mouse release of a drag gesture.
type clickGuard struct {
	deadline time.Duration
	dragging bool
	moved    bool
}

func (c *clickGuard) Move() {
	if c.dragging {
		c.moved = true
	}
}

func (c *clickGuard) DragStart() {
	c.dragging = true
	c.moved = false
}

func (c *clickGuard) DragEnd(now time.Duration) {
	c.dragging = false
	c.deadline = now + clickGuardDuration
}

func (c *clickGuard) Click(now time.Duration) bool {
	return !c.moved || c.deadline < now
}
