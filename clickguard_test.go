package main

import (
	"testing"
	"time"
)

func TestClickGuard(t *testing.T) {
	cg := &clickGuard{}
	now := time.Second

	if !cg.Click(now) {
		t.Error("First click event must be treated as click")
	}
	if !cg.Click(now) {
		t.Error("Second click event must be treated as click")
	}

	cg.Move()
	if !cg.Click(now) {
		t.Error("Hover without drag must not disable click")
	}

	cg.DragStart()
	if !cg.Click(now) {
		t.Error("Click during drag must be treated as click")
	}
	cg.DragEnd(now)
	if !cg.Click(now) {
		t.Error("Click right after dragging without move must be treated as click")
	}

	cg.DragStart()
	if !cg.Click(now) {
		t.Error("Click during drag must be treated as click")
	}
	cg.Move()
	if cg.Click(now) {
		t.Error("Click during drag must not be treated as click")
	}
	cg.DragEnd(now)
	if cg.Click(now + clickGuardDuration/2) {
		t.Error("Click right after dragging must not be treated as click")
	}

	if !cg.Click(now + clickGuardDuration + time.Millisecond) {
		t.Error("Click after guard duration must be treated as click")
	}
}
