package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/seqsense/pcgol/mat"
)

// meshStride is the number of float32 per vertex: position and normal.
const meshStride = 6

var errNoScene = errors.New("model has no scene")

// mesh is a non-indexed triangle list ready to be uploaded to a vertex buffer.
type mesh struct {
	data     []float32
	min, max mat.Vec3
}

func (m *mesh) Vertices() int {
	return len(m.data) / meshStride
}

func (m *mesh) Triangles() int {
	return m.Vertices() / 3
}

// decodeModel reads a glTF document from r. External resources are opened
// from fsys.
func decodeModel(r io.Reader, fsys fs.FS, scale float32) (*mesh, error) {
	doc := &gltf.Document{}
	if err := gltf.NewDecoderFS(r, fsys).Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding glTF: %w", err)
	}
	return meshFromDocument(doc, scale)
}

func meshFromDocument(doc *gltf.Document, scale float32) (*mesh, error) {
	if len(doc.Scenes) == 0 {
		return nil, errNoScene
	}
	scene := doc.Scenes[0]
	if doc.Scene != nil && int(*doc.Scene) < len(doc.Scenes) {
		scene = doc.Scenes[*doc.Scene]
	}

	m := &mesh{
		min: mat.Vec3{float32(math.Inf(1)), float32(math.Inf(1)), float32(math.Inf(1))},
		max: mat.Vec3{float32(math.Inf(-1)), float32(math.Inf(-1)), float32(math.Inf(-1))},
	}
	root := mat.Mat4{
		scale, 0, 0, 0,
		0, scale, 0, 0,
		0, 0, scale, 0,
		0, 0, 0, 1,
	}

	depth := 0
	var walk func(n *gltf.Node, parent mat.Mat4) error
	walk = func(n *gltf.Node, parent mat.Mat4) error {
		// glTF forbids cycles but a broken file may still have one.
		if depth > len(doc.Nodes) {
			return errors.New("node hierarchy is too deep")
		}
		depth++
		defer func() { depth-- }()

		trans := parent.Mul(nodeMatrix(n))
		if n.Mesh != nil {
			if int(*n.Mesh) >= len(doc.Meshes) {
				return fmt.Errorf("node %q refers to unknown mesh", n.Name)
			}
			if err := m.appendMesh(doc, doc.Meshes[*n.Mesh], trans); err != nil {
				return err
			}
		}
		for _, c := range n.Children {
			if int(c) >= len(doc.Nodes) {
				return fmt.Errorf("node %q has unknown child", n.Name)
			}
			if err := walk(doc.Nodes[c], trans); err != nil {
				return err
			}
		}
		return nil
	}
	for _, i := range scene.Nodes {
		if int(i) >= len(doc.Nodes) {
			return nil, errors.New("scene refers to unknown node")
		}
		if err := walk(doc.Nodes[i], root); err != nil {
			return nil, err
		}
	}
	if len(m.data) == 0 {
		m.min, m.max = mat.Vec3{}, mat.Vec3{}
	}
	return m, nil
}

func (m *mesh) appendMesh(doc *gltf.Document, gm *gltf.Mesh, trans mat.Mat4) error {
	for _, p := range gm.Primitives {
		if p.Mode != gltf.PrimitiveTriangles {
			continue
		}
		posID, ok := p.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		pos, err := modeler.ReadPosition(doc, doc.Accessors[posID], nil)
		if err != nil {
			return fmt.Errorf("reading positions of %q: %w", gm.Name, err)
		}
		var norm [][3]float32
		if normID, ok := p.Attributes[gltf.NORMAL]; ok {
			norm, err = modeler.ReadNormal(doc, doc.Accessors[normID], nil)
			if err != nil {
				return fmt.Errorf("reading normals of %q: %w", gm.Name, err)
			}
			if len(norm) != len(pos) {
				norm = nil
			}
		}
		var indices []uint32
		if p.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*p.Indices], nil)
			if err != nil {
				return fmt.Errorf("reading indices of %q: %w", gm.Name, err)
			}
		} else {
			indices = make([]uint32, len(pos))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			var vs [3]mat.Vec3
			var ns [3]mat.Vec3
			for j := 0; j < 3; j++ {
				id := indices[i+j]
				if int(id) >= len(pos) {
					return fmt.Errorf("index %d of %q is out of range", id, gm.Name)
				}
				vs[j] = trans.Transform(mat.Vec3(pos[id]))
				if norm != nil {
					ns[j] = transformDirection(trans, mat.Vec3(norm[id]))
				}
			}
			if norm == nil {
				n := faceNormal(vs[0], vs[1], vs[2])
				ns = [3]mat.Vec3{n, n, n}
			}
			for j := 0; j < 3; j++ {
				m.data = append(m.data,
					vs[j][0], vs[j][1], vs[j][2],
					ns[j][0], ns[j][1], ns[j][2],
				)
				m.min = vec3Min(m.min, vs[j])
				m.max = vec3Max(m.max, vs[j])
			}
		}
	}
	return nil
}

func nodeMatrix(n *gltf.Node) mat.Mat4 {
	var m mat.Mat4
	var zero [16]float32
	if n.Matrix != zero && n.Matrix != gltf.DefaultMatrix {
		for i, v := range n.Matrix {
			m[i] = float32(v)
		}
		return m
	}

	sx, sy, sz := float32(n.Scale[0]), float32(n.Scale[1]), float32(n.Scale[2])
	if sx == 0 && sy == 0 && sz == 0 {
		sx, sy, sz = 1, 1, 1
	}
	x, y, z, w := float32(n.Rotation[0]), float32(n.Rotation[1]), float32(n.Rotation[2]), float32(n.Rotation[3])
	if x == 0 && y == 0 && z == 0 && w == 0 {
		w = 1
	}
	t := n.Translation
	return mat.Mat4{
		(1 - 2*(y*y+z*z)) * sx, 2 * (x*y + z*w) * sx, 2 * (x*z - y*w) * sx, 0,
		2 * (x*y - z*w) * sy, (1 - 2*(x*x+z*z)) * sy, 2 * (y*z + x*w) * sy, 0,
		2 * (x*z + y*w) * sz, 2 * (y*z - x*w) * sz, (1 - 2*(x*x+y*y)) * sz, 0,
		float32(t[0]), float32(t[1]), float32(t[2]), 1,
	}
}

func transformDirection(m mat.Mat4, a mat.Vec3) mat.Vec3 {
	out := mat.Vec3{
		m[4*0+0]*a[0] + m[4*1+0]*a[1] + m[4*2+0]*a[2],
		m[4*0+1]*a[0] + m[4*1+1]*a[1] + m[4*2+1]*a[2],
		m[4*0+2]*a[0] + m[4*1+2]*a[1] + m[4*2+2]*a[2],
	}
	if out.NormSq() == 0 {
		return out
	}
	return out.Normalized()
}

func faceNormal(a, b, c mat.Vec3) mat.Vec3 {
	n := b.Sub(a).Cross(c.Sub(a))
	if n.NormSq() == 0 {
		return mat.Vec3{0, 1, 0}
	}
	return n.Normalized()
}

func vec3Min(a, b mat.Vec3) mat.Vec3 {
	var out mat.Vec3
	for i := range out {
		if a[i] < b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

func vec3Max(a, b mat.Vec3) mat.Vec3 {
	var out mat.Vec3
	for i := range out {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}
