package main

import (
	"fmt"
)

type logFunc func(msg interface{})

// progressLogger formats download progress, emitting a line every step
// percent.
type progressLogger struct {
	step int
	last int
}

func newProgressLogger(step int) *progressLogger {
	return &progressLogger{step: step, last: -1}
}

func (p *progressLogger) Progress(loaded, total int) (string, bool) {
	if total <= 0 {
		return fmt.Sprintf("%d bytes loaded", loaded), true
	}
	percent := loaded * 100 / total
	if percent > 100 {
		percent = 100
	}
	if p.last >= 0 && percent < p.last+p.step && percent != 100 {
		return "", false
	}
	if percent == p.last {
		return "", false
	}
	p.last = percent
	return fmt.Sprintf("%d%% loaded", percent), true
}
