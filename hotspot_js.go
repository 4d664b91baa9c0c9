package main

import (
	"fmt"
	"syscall/js"
)

type hotspotElements struct {
	elements []js.Value
}

// newHotspotElements creates a marker element per hotspot in container.
// Clicking a marker sends its index to onClick.
func newHotspotElements(container js.Value, hs []hotspot, onClick func(int)) *hotspotElements {
	e := &hotspotElements{}
	if container.IsNull() {
		return e
	}
	doc := js.Global().Get("document")
	for i, h := range hs {
		i := i
		el := doc.Call("createElement", "div")
		el.Get("classList").Call("add", "hotspot")
		el.Set("textContent", h.label)
		el.Call("addEventListener", "click",
			js.FuncOf(func(this js.Value, args []js.Value) interface{} {
				args[0].Call("stopPropagation")
				onClick(i)
				return nil
			}),
		)
		container.Call("appendChild", el)
		e.elements = append(e.elements, el)
	}
	return e
}

func (e *hotspotElements) Apply(hs []hotspot) {
	for i, el := range e.elements {
		style := el.Get("style")
		h := hs[i]
		if !h.visible {
			style.Set("display", "none")
			continue
		}
		style.Set("display", "block")
		style.Set("left", fmt.Sprintf("%.1fpx", h.screenX))
		style.Set("top", fmt.Sprintf("%.1fpx", h.screenY))
	}
}
