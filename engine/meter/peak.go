// Package meter carries audio levels from the audio thread to the editor.
package meter

import (
	"math"
	"sync/atomic"
)

// PeakMeter is a single float32 shared by one writer (the audio thread) and
// one reader (the editor). Loads and stores are atomic but unordered with
// respect to anything else; the value is for display only.
type PeakMeter struct {
	bits atomic.Uint32
}

// NewPeakMeter returns a meter holding v.
func NewPeakMeter(v float32) *PeakMeter {
	m := &PeakMeter{}
	m.Store(v)
	return m
}

func (m *PeakMeter) Store(v float32) { m.bits.Store(math.Float32bits(v)) }

func (m *PeakMeter) Load() float32 { return math.Float32frombits(m.bits.Load()) }

// LoadDB returns the current level in decibels.
func (m *PeakMeter) LoadDB() float32 { return GainToDB(m.Load()) }
