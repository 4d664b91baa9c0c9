package main

import (
	"os"
	"reflect"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/seqsense/pcgol/mat"
)

func TestDecodeModel(t *testing.T) {
	t.Run("EmbeddedBuffer", func(t *testing.T) {
		f, err := os.Open("testdata/triangle.gltf")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		m, err := decodeModel(f, os.DirFS("testdata"), 1)
		if err != nil {
			t.Fatal(err)
		}
		if n := m.Triangles(); n != 1 {
			t.Fatalf("Expected 1 triangle, got %d", n)
		}
		// Normals are generated from the face when the model has none.
		expected := []float32{
			0, 0, 0, 0, 0, 1,
			1, 0, 0, 0, 0, 1,
			0, 1, 0, 0, 0, 1,
		}
		if !reflect.DeepEqual(expected, m.data) {
			t.Errorf("Expected:\n%v\nGot:\n%v", expected, m.data)
		}
		if !m.min.Equal(mat.Vec3{0, 0, 0}) || !m.max.Equal(mat.Vec3{1, 1, 0}) {
			t.Errorf("Unexpected bounds: %v - %v", m.min, m.max)
		}
	})
	t.Run("ExternalBuffer", func(t *testing.T) {
		f, err := os.Open("testdata/quad.gltf")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		var requested []string
		fsys := newRemoteFS("testdata", func(p string) ([]byte, error) {
			requested = append(requested, p)
			return os.ReadFile(p)
		})
		m, err := decodeModel(f, fsys, 2)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual([]string{"testdata/quad.bin"}, requested) {
			t.Errorf("Expected quad.bin to be requested, got %v", requested)
		}
		if n := m.Triangles(); n != 2 {
			t.Fatalf("Expected 2 triangles, got %d", n)
		}
		// Node translation (0, 2, 0) is applied before the model scale.
		expectedMin, expectedMax := mat.Vec3{0, 4, 0}, mat.Vec3{2, 4, 2}
		if !m.min.Equal(expectedMin) || !m.max.Equal(expectedMax) {
			t.Errorf("Expected bounds %v - %v, got %v - %v", expectedMin, expectedMax, m.min, m.max)
		}
		for i := 0; i < m.Vertices(); i++ {
			n := mat.Vec3{m.data[i*meshStride+3], m.data[i*meshStride+4], m.data[i*meshStride+5]}
			if !n.Equal(mat.Vec3{0, 1, 0}) {
				t.Errorf("Normal of vertex %d expected to be (0, 1, 0), got %v", i, n)
			}
		}
	})
	t.Run("Broken", func(t *testing.T) {
		f, err := os.Open("testdata/quad.bin")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()
		if _, err := decodeModel(f, os.DirFS("testdata"), 1); err == nil {
			t.Error("Decoding non glTF data must fail")
		}
	})
}

func TestNodeMatrix(t *testing.T) {
	// 90 degrees around Y maps +X to -Z.
	s := float32(0.70710678)
	testCases := map[string]struct {
		translation [3]float32
		rotation    [4]float32
		scale       [3]float32
		in          mat.Vec3
		expected    mat.Vec3
	}{
		"Default": {
			in:       mat.Vec3{1, 2, 3},
			expected: mat.Vec3{1, 2, 3},
		},
		"Translate": {
			translation: [3]float32{1, 2, 3},
			in:          mat.Vec3{1, 1, 1},
			expected:    mat.Vec3{2, 3, 4},
		},
		"ScaleRotate": {
			rotation: [4]float32{0, s, 0, s},
			scale:    [3]float32{2, 2, 2},
			in:       mat.Vec3{1, 0, 0},
			expected: mat.Vec3{0, 0, -2},
		},
	}
	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			n := &gltf.Node{
				Translation: tt.translation,
				Rotation:    tt.rotation,
				Scale:       tt.scale,
			}
			out := nodeMatrix(n).Transform(tt.in)
			if diff := out.Sub(tt.expected); diff.Norm() > 0.0001 {
				t.Errorf("Expected: %v, got: %v", tt.expected, out)
			}
		})
	}
}
