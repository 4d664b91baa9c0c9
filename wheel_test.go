package main

import (
	"testing"
	"time"

	"github.com/seqsense/pcgol/mat"
)

func TestWheelNormalizer(t *testing.T) {
	interval := 10 * time.Millisecond
	testCases := map[string]struct {
		pre       []float64
		input     []float64
		expected  []float64
		tolerance float64
	}{
		"BinaryWheel1": {
			pre:      []float64{1, 1, -1, 0, -1, -1},
			input:    []float64{1, -1, 0},
			expected: []float64{1, -1, 0},
		},
		"BinaryWheel100": {
			pre:      []float64{100, 100, -100, 0, -100, -100},
			input:    []float64{100, -100, 0},
			expected: []float64{1, -1, 0},
		},
		"Touchpad3": {
			pre:       []float64{2, 4, 3, 0, -1, 2},
			input:     []float64{3, -2, 0},
			expected:  []float64{3, -2, 0},
			tolerance: 0.25,
		},
		"Touchpad30": {
			pre:       []float64{20, 40, 30, 0, -10, 20},
			input:     []float64{30, -20, 0},
			expected:  []float64{3, -2, 0},
			tolerance: 0.25,
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			wn := &wheelNormalizer{}
			now := time.Second
			for _, v := range tt.pre {
				now += interval
				wn.Normalize(v, now)
			}
			for i, v := range tt.input {
				now += interval
				o, ok := wn.Normalize(v, now)
				if !ok {
					t.Error("Normalizer should be ready")
					continue
				}
				if o < tt.expected[i]-tt.tolerance || tt.expected[i]+tt.tolerance < o {
					t.Errorf("Expected: %f, got: %f", tt.expected[i], o)
					continue
				}
			}
		})
	}
}

func TestWheelNormalizer_NotchZoom(t *testing.T) {
	wn := &wheelNormalizer{}
	o := newTestOrbit(mat.Vec3{0, 0, 2}, mat.Vec3{})
	now := time.Second
	var d float64
	for i := 0; i < 8; i++ {
		now += 50 * time.Millisecond
		d, _ = wn.Normalize(120, now)
	}
	if d != 1 {
		t.Fatalf("Notched wheel expected: 1, got: %f", d)
	}
	o.Wheel(d * wheelNotchDelta)
	if r := o.cam.Distance(); r < 2.199 || 2.201 < r {
		t.Errorf("One notch must zoom out by 10%%, expected: 2.2, got: %f", r)
	}
}
