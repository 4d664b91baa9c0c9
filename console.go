package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/seqsense/pcgol/mat"
)

type console struct {
	viewer *viewerContext
}

var errArgumentNumber = errors.New("invalid number of arguments")
var errInvalidCommand = errors.New("invalid command")
var errInvalidArgument = errors.New("invalid argument")

type consoleCommand func(v *viewerContext, args []string, now time.Duration) ([]string, error)

var consoleCommands = map[string]consoleCommand{
	"viewpoints": func(v *viewerContext, args []string, _ time.Duration) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		return v.catalog.Names(), nil
	},
	"select": func(v *viewerContext, args []string, now time.Duration) ([]string, error) {
		if len(args) != 1 {
			return nil, errArgumentNumber
		}
		if err := v.Select(args[0], now); err != nil {
			return nil, err
		}
		return []string{args[0]}, nil
	},
	"camera": func(v *viewerContext, args []string, _ time.Duration) ([]string, error) {
		switch len(args) {
		case 0:
		case 6:
			f, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			v.SetPose(mat.Vec3{f[0], f[1], f[2]}, mat.Vec3{f[3], f[4], f[5]})
		default:
			return nil, errArgumentNumber
		}
		p, t := v.cam.position, v.cam.target
		return []string{formatFloats(p[0], p[1], p[2], t[0], t[1], t[2])}, nil
	},
	"duration": func(v *viewerContext, args []string, _ time.Duration) ([]string, error) {
		switch len(args) {
		case 0:
		case 1:
			f, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			if err := v.SetDuration(time.Duration(float64(f[0]) * float64(time.Millisecond))); err != nil {
				return nil, err
			}
		default:
			return nil, errArgumentNumber
		}
		return []string{formatFloats(float32(v.Duration().Milliseconds()))}, nil
	},
	"fov": func(v *viewerContext, args []string, _ time.Duration) ([]string, error) {
		switch len(args) {
		case 0:
		case 1:
			f, err := parseFloats(args)
			if err != nil {
				return nil, err
			}
			if err := v.SetFov(f[0]); err != nil {
				return nil, err
			}
		default:
			return nil, errArgumentNumber
		}
		return []string{formatFloats(v.Fov())}, nil
	},
	"state": func(v *viewerContext, args []string, now time.Duration) ([]string, error) {
		if len(args) != 0 {
			return nil, errArgumentNumber
		}
		selected := v.Selected()
		if selected == "" {
			selected = "none"
		}
		return []string{
			selected + " " + v.panel.State().String() + " " + formatFloats(v.anim.Progress(now)),
		}, nil
	},
}

func (c *console) Run(line string, now time.Duration) (string, error) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return "", nil
	}
	fn, ok := consoleCommands[args[0]]
	if !ok {
		return "", errInvalidCommand
	}
	res, err := fn(c.viewer, args[1:], now)
	if err != nil {
		return "", err
	}
	return strings.Join(res, "\n"), nil
}

func parseFloats(args []string) ([]float32, error) {
	out := make([]float32, 0, len(args))
	for _, a := range args {
		f, err := strconv.ParseFloat(a, 32)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %q is not finite", errInvalidArgument, a)
		}
		out = append(out, float32(f))
	}
	return out, nil
}

func formatFloats(vals ...float32) string {
	s := make([]string, 0, len(vals))
	for _, v := range vals {
		s = append(s, strconv.FormatFloat(float64(v), 'f', 3, 32))
	}
	return strings.Join(s, " ")
}
