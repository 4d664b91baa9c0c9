package main

import (
	"time"
)

type panelState int

const (
	panelHidden panelState = iota
	panelFadingIn
	panelVisible
	panelFadingOut
)

func (s panelState) String() string {
	switch s {
	case panelHidden:
		return "hidden"
	case panelFadingIn:
		return "fading_in"
	case panelVisible:
		return "visible"
	case panelFadingOut:
		return "fading_out"
	default:
		return "unknown"
	}
}

// panel is the description text box which fades in and out.
type panel struct {
	fade time.Duration

	state   panelState
	content string
	opacity float32

	fadeStart   time.Duration
	fadeOpacity float32

	updated bool
}

func newPanel(fade time.Duration) *panel {
	return &panel{
		fade:    fade,
		updated: true,
	}
}

// Show replaces the content and fades the panel in from transparent,
// also when it is already visible.
func (p *panel) Show(content string, now time.Duration) {
	p.content = content
	p.opacity = 0
	p.state = panelFadingIn
	p.fadeStart = now
	p.fadeOpacity = 0
	p.updated = true
}

// Hide fades the panel out from its current opacity.
func (p *panel) Hide(now time.Duration) {
	switch p.state {
	case panelHidden, panelFadingOut:
		return
	}
	p.state = panelFadingOut
	p.fadeStart = now
	p.fadeOpacity = p.opacity
	p.updated = true
}

func (p *panel) Update(now time.Duration) {
	switch p.state {
	case panelFadingIn:
		p.opacity = p.fadeOpacity + (1-p.fadeOpacity)*p.fadeProgress(now)
		if p.opacity >= 1 {
			p.opacity = 1
			p.state = panelVisible
		}
		p.updated = true
	case panelFadingOut:
		p.opacity = p.fadeOpacity * (1 - p.fadeProgress(now))
		if p.opacity <= 0 {
			p.opacity = 0
			p.state = panelHidden
			p.content = ""
		}
		p.updated = true
	}
}

func (p *panel) fadeProgress(now time.Duration) float32 {
	if p.fade <= 0 {
		return 1
	}
	t := float32(now-p.fadeStart) / float32(p.fade)
	if t < 0 {
		return 0
	} else if t > 1 {
		return 1
	}
	return t
}

func (p *panel) State() panelState {
	return p.state
}

// Displayed returns whether the panel takes part in the layout.
func (p *panel) Displayed() bool {
	return p.state != panelHidden
}

// View returns the content and opacity to be shown, and whether they changed
// since the last call.
func (p *panel) View() (string, float32, bool) {
	updated := p.updated
	p.updated = false
	return p.content, p.opacity, updated
}
