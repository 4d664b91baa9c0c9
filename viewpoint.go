package main

import (
	"errors"

	"github.com/seqsense/pcgol/mat"
)

const defaultViewpoint = "default"

var errUnknownViewpoint = errors.New("unknown viewpoint")

type viewpoint struct {
	name        string
	button      string
	position    mat.Vec3
	lookAt      mat.Vec3
	description string
}

// catalog is the fixed set of selectable viewpoints in declaration order.
type catalog struct {
	viewpoints []viewpoint
	index      map[string]int
}

func newCatalog(vcs []viewpointConfig) *catalog {
	c := &catalog{
		index: make(map[string]int, len(vcs)),
	}
	for _, vc := range vcs {
		c.index[vc.Name] = len(c.viewpoints)
		c.viewpoints = append(c.viewpoints, viewpoint{
			name:        vc.Name,
			button:      vc.Button,
			position:    vc.Position,
			lookAt:      vc.LookAt,
			description: vc.Description,
		})
	}
	return c
}

func (c *catalog) Lookup(name string) (viewpoint, bool) {
	i, ok := c.index[name]
	if !ok {
		return viewpoint{}, false
	}
	return c.viewpoints[i], true
}

func (c *catalog) Names() []string {
	names := make([]string, 0, len(c.viewpoints))
	for _, v := range c.viewpoints {
		names = append(names, v.name)
	}
	return names
}

func (c *catalog) Viewpoints() []viewpoint {
	return append([]viewpoint(nil), c.viewpoints...)
}
