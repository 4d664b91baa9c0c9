package main

import (
	"time"
)

const (
	binaryDetectCnt = 4
	initialMaxDelta = 10

	// wheelNotchDelta is the zoom delta applied per normalized wheel notch.
	wheelNotchDelta = 100
	wheelMaxDt      = 100 * time.Millisecond
)

type wheelType int

const (
	wheelTypeNone wheelType = iota
	wheelTypeBinary
	wheelTypeContinuous
)

// wheelNormalizer converts raw wheel deltas of notched mouse wheels and
// touchpads into notch units. A notched wheel yields exactly ±1 per click
// whatever its raw delta; a touchpad yields fractions scaled by its recent
// peak speed. The frame loop multiplies the result by wheelNotchDelta before
// passing it to orbit.Wheel, so one notch changes the target distance by 10%
// and a touchpad swipe zooms proportionally.
type wheelNormalizer struct {
	ready    bool
	eventCnt int

	wheelType wheelType
	maxDelta  float64

	binaryCnt int
	binaryAbs float64

	timePrev time.Duration
	dSum     float64
}

// Normalize returns the delta in notches and whether enough events were
// observed to classify the device.
func (n *wheelNormalizer) Normalize(d float64, now time.Duration) (float64, bool) {
	if n.eventCnt > binaryDetectCnt {
		n.ready = true
	} else {
		n.eventCnt++
	}

	dAbs := d
	if dAbs < 0 {
		dAbs = -d
	}
	if dAbs == 0 {
		return 0, n.ready
	}

	if n.binaryAbs == dAbs {
		n.binaryCnt++
	} else {
		n.binaryCnt = 0
	}
	n.binaryAbs = dAbs

	typePrev := n.wheelType
	if n.binaryCnt > binaryDetectCnt {
		n.wheelType = wheelTypeBinary
	} else {
		n.wheelType = wheelTypeContinuous
	}
	if n.wheelType != typePrev {
		n.maxDelta = initialMaxDelta
	}

	n.dSum += d
	if dt := now - n.timePrev; dt > 0 {
		if dt > wheelMaxDt {
			dt = wheelMaxDt
		}
		dps := n.dSum / dt.Seconds()
		n.dSum = 0
		n.timePrev = now

		dpsAbs := dps
		if dpsAbs < 0 {
			dpsAbs = -dps
		}
		if n.maxDelta < dpsAbs {
			// LPF to suppress spikes
			n.maxDelta = n.maxDelta*0.5 + dpsAbs*0.5
		}
		n.maxDelta *= 0.95
	}

	if n.maxDelta < 1 {
		n.maxDelta = 1
	}
	if n.wheelType == wheelTypeBinary {
		if d < 0 {
			return -1, n.ready
		}
		return 1, n.ready
	}
	return d * 250 / n.maxDelta, n.ready
}
