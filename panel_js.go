package main

import (
	"strconv"
	"syscall/js"
)

// panelElement is the DOM side of panel: a container and its text element.
type panelElement struct {
	container js.Value
	content   js.Value
}

func (e panelElement) Apply(p *panel) {
	content, opacity, updated := p.View()
	if !updated || e.container.IsNull() {
		return
	}
	style := e.container.Get("style")
	if p.Displayed() {
		style.Set("display", "block")
	} else {
		style.Set("display", "none")
	}
	style.Set("opacity", strconv.FormatFloat(float64(opacity), 'f', 3, 32))
	if !e.content.IsNull() && e.content.Get("textContent").String() != content {
		e.content.Set("textContent", content)
	}
}
