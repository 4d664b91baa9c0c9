package main

import (
	"bytes"
	"fmt"
	"math"
	"path"
	"syscall/js"
	"time"

	webgl "github.com/seqsense/webgl-go"
)

const progressLogStep = 10

type modelResult struct {
	mesh *mesh
	err  error
}

type consoleRequest struct {
	line  string
	chRes chan consoleResponse
}

type consoleResponse struct {
	out string
	err error
}

func main() {
	doc := js.Global().Get("document")
	performance := js.Global().Get("performance")
	now := func() time.Duration {
		return time.Duration(performance.Call("now").Float() * float64(time.Millisecond))
	}

	logPrint := newLogger(doc.Call("getElementById", "log"))

	container := doc.Call("getElementById", "container3D")
	if container.IsNull() {
		logPrint("container3D element not found")
		return
	}

	conf := defaultConfig()
	if p := container.Call("getAttribute", "data-config"); !p.IsNull() {
		c, err := loadConfig(p.String())
		if err != nil {
			logPrint(err)
		} else {
			conf = c
		}
	}

	canvas := doc.Call("createElement", "canvas")
	canvas.Set("tabIndex", 0)
	canvas.Get("style").Set("width", "100%")
	canvas.Get("style").Set("height", "100%")
	canvas.Get("style").Set("touchAction", "none")
	container.Call("appendChild", canvas)

	gl, err := webgl.New(canvas)
	if err != nil {
		logPrint(err)
		return
	}
	logDebugInfo(gl, logPrint)

	rd, err := newRenderer(gl, conf.Lights)
	if err != nil {
		logPrint(err)
		return
	}

	vi := newViewerContext(conf)
	con := &console{viewer: vi}
	cur := &cursorSetter{canvas: canvas}
	cur.Set(cursorGrab)

	pe := panelElement{
		container: doc.Call("getElementById", "textboxContainer"),
		content:   doc.Call("getElementById", "textboxContent"),
	}

	chSelect := make(chan string)
	for _, vp := range vi.catalog.Viewpoints() {
		name := vp.name
		if vp.button == "" {
			continue
		}
		button := doc.Call("getElementById", vp.button)
		if button.IsNull() {
			logPrint(fmt.Sprintf("button %q for viewpoint %q not found", vp.button, name))
			continue
		}
		button.Call("addEventListener", "click",
			js.FuncOf(func(this js.Value, args []js.Value) interface{} {
				chSelect <- name
				return nil
			}),
		)
	}

	chHotspot := make(chan int)
	he := newHotspotElements(doc.Call("getElementById", "hotspotContainer"), vi.hotspots, func(i int) {
		chHotspot <- i
	})

	chDown := make(chan webgl.PointerEvent)
	chMove := make(chan webgl.PointerEvent)
	chUp := make(chan webgl.PointerEvent)
	gl.Canvas.OnPointerDown(func(e webgl.PointerEvent) {
		chDown <- e
	})
	gl.Canvas.OnPointerMove(func(e webgl.PointerEvent) {
		chMove <- e
	})
	gl.Canvas.OnPointerUp(func(e webgl.PointerEvent) {
		chUp <- e
	})
	gl.Canvas.OnPointerOut(func(e webgl.PointerEvent) {
		chUp <- e
	})
	chWheel := make(chan webgl.WheelEvent)
	gl.Canvas.OnWheel(func(e webgl.WheelEvent) {
		e.PreventDefault()
		e.StopPropagation()
		chWheel <- e
	})
	chClick := make(chan webgl.MouseEvent)
	gl.Canvas.OnClick(func(e webgl.MouseEvent) {
		chClick <- e
	})
	gl.Canvas.OnContextMenu(func(e webgl.MouseEvent) {
		e.PreventDefault()
		e.StopPropagation()
	})
	chContextLost := make(chan struct{}, 1)
	gl.Canvas.OnWebGLContextLost(func(e webgl.WebGLContextEvent) {
		select {
		case chContextLost <- struct{}{}:
		default:
		}
	})

	chConsole := make(chan consoleRequest)
	js.Global().Set("showcaseConsole",
		js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			if len(args) != 1 {
				return errorToJS(errArgumentNumber)
			}
			line := args[0].String()
			return js.Global().Get("Promise").New(
				js.FuncOf(func(this js.Value, args []js.Value) interface{} {
					resolve, reject := args[0], args[1]
					go func() {
						req := consoleRequest{line: line, chRes: make(chan consoleResponse, 1)}
						chConsole <- req
						res := <-req.chRes
						if res.err != nil {
							reject.Invoke(errorToJS(res.err))
							return
						}
						resolve.Invoke(res.out)
					}()
					return nil
				}),
			)
		}),
	)

	wn := &wheelNormalizer{}
	g := newGesture()
	g.onDown = vi.MouseDown
	g.onMove = func(x, y int) {
		vi.MouseMove(x, y)
		cur.Set(cursorGrabbing)
	}
	g.onUp = func(x, y int, b mouseButton) {
		vi.MouseUp(x, y, b, now())
		cur.Set(cursorGrab)
	}
	g.onWheel = vi.Wheel

	chModel := make(chan modelResult, 1)
	go func() {
		logPrint("loading " + conf.Model.Path)
		m, err := loadModel(conf.Model.Path, conf.Model.Scale, logPrint)
		chModel <- modelResult{mesh: m, err: err}
	}()

	chFrame := make(chan time.Duration, 1)
	frame := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case chFrame <- time.Duration(args[0].Float() * float64(time.Millisecond)):
		default:
		}
		return nil
	})
	defer frame.Release()
	js.Global().Call("requestAnimationFrame", frame)

	for {
		select {
		case t := <-chFrame:
			if rd.Resize() {
				vi.SetViewport(rd.Size())
			}
			vi.Update(t)
			rd.Render(vi.cam)
			pe.Apply(vi.panel)
			he.Apply(vi.hotspots)
			js.Global().Call("requestAnimationFrame", frame)
		case name := <-chSelect:
			if err := vi.Select(name, now()); err != nil {
				logPrint(err)
			}
		case i := <-chHotspot:
			if err := vi.SelectHotspot(i, now()); err != nil {
				logPrint(err)
			}
		case e := <-chDown:
			g.pointerDown(e)
		case e := <-chMove:
			g.pointerMove(e)
			if !vi.orbit.Dragging() {
				if _, ok := pickHotspot(vi.hotspots, float32(e.OffsetX), float32(e.OffsetY), hotspotPickRadius); ok {
					cur.Set(cursorPointer)
				} else {
					cur.Set(cursorGrab)
				}
			}
		case e := <-chUp:
			g.pointerUp(e)
		case e := <-chWheel:
			d, ok := wn.Normalize(e.DeltaY, now())
			if !ok && d != 0 {
				d = math.Copysign(1, d)
			}
			vi.Wheel(d * wheelNotchDelta)
		case e := <-chClick:
			if e.Button == 0 {
				if _, err := vi.Click(e.OffsetX, e.OffsetY, now()); err != nil {
					logPrint(err)
				}
			}
			gl.Canvas.Focus()
		case req := <-chConsole:
			out, err := con.Run(req.line, now())
			req.chRes <- consoleResponse{out: out, err: err}
		case res := <-chModel:
			if res.err != nil {
				logPrint(res.err)
				break
			}
			rd.SetMesh(res.mesh)
			logPrint(fmt.Sprintf("model loaded: %d triangles, bounds %v - %v",
				res.mesh.Triangles(), res.mesh.min, res.mesh.max))
		case <-chContextLost:
			logPrint(errContextLost)
			return
		}
	}
}

func loadConfig(p string) (*showcaseConfig, error) {
	b, err := fetchGet(p, nil)
	if err != nil {
		return nil, err
	}
	return readConfig(bytes.NewReader(b))
}

func loadModel(p string, scale float32, logPrint logFunc) (*mesh, error) {
	pl := newProgressLogger(progressLogStep)
	b, err := fetchGet(p, func(loaded, total int) {
		if msg, ok := pl.Progress(loaded, total); ok {
			logPrint(msg)
		}
	})
	if err != nil {
		return nil, err
	}
	fsys := newRemoteFS(path.Dir(p), func(p string) ([]byte, error) {
		return fetchGet(p, nil)
	})
	return decodeModel(bytes.NewReader(b), fsys, scale)
}
