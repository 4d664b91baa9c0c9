package main

import (
	"errors"
	"fmt"
	"strconv"
	"syscall/js"
)

func errorToJS(err error) js.Value {
	return js.Global().Get("Error").New(err.Error())
}

// await blocks until the promise settles. It must not be called from a
// JavaScript callback.
func await(promise js.Value) (js.Value, error) {
	chRes := make(chan js.Value, 1)
	chErr := make(chan error, 1)
	onFulfilled := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chRes <- args[0]
		return nil
	})
	defer onFulfilled.Release()
	onRejected := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chErr <- errors.New(args[0].Call("toString").String())
		return nil
	})
	defer onRejected.Release()

	promise.Call("then", onFulfilled, onRejected)
	select {
	case res := <-chRes:
		return res, nil
	case err := <-chErr:
		return js.Undefined(), err
	}
}

// fetchGet downloads path. progress is called after each received chunk
// with the total size or 0 if unknown.
func fetchGet(path string, progress func(loaded, total int)) ([]byte, error) {
	res, err := await(js.Global().Call("fetch", path, map[string]interface{}{
		"credentials": "include",
	}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", path, err)
	}
	if !res.Get("ok").Bool() {
		return nil, fmt.Errorf("failed to fetch %s: %s", path, res.Get("statusText").String())
	}

	var total int
	if l := res.Get("headers").Call("get", "Content-Length"); !l.IsNull() {
		total, _ = strconv.Atoi(l.String())
	}

	body := res.Get("body")
	if body.IsNull() || body.IsUndefined() {
		buf, err := await(res.Call("arrayBuffer"))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		array := js.Global().Get("Uint8Array").New(buf)
		b := make([]byte, array.Get("byteLength").Int())
		js.CopyBytesToGo(b, array)
		if progress != nil {
			progress(len(b), len(b))
		}
		return b, nil
	}

	reader := body.Call("getReader")
	b := make([]byte, 0, total)
	for {
		chunk, err := await(reader.Call("read"))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if chunk.Get("done").Bool() {
			break
		}
		value := chunk.Get("value")
		n := value.Get("byteLength").Int()
		b = append(b, make([]byte, n)...)
		js.CopyBytesToGo(b[len(b)-n:], value)
		if progress != nil {
			progress(len(b), total)
		}
	}
	return b, nil
}
