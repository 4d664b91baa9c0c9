package main

import (
	"fmt"
	"syscall/js"
)

// newLogger returns a logger printing to the browser console and, if
// logDiv is an element, appending to it.
func newLogger(logDiv js.Value) logFunc {
	return func(msg interface{}) {
		line := fmt.Sprint(msg)
		println(line)
		if logDiv.IsNull() || logDiv.IsUndefined() {
			return
		}
		div := js.Global().Get("document").Call("createElement", "div")
		div.Set("textContent", line)
		logDiv.Call("appendChild", div)
	}
}
