package meter

import "math"

// MinusInfinityDB is the level treated as silence.
const MinusInfinityDB float32 = -100

// minusInfinityGain is DBToGain(MinusInfinityDB).
const minusInfinityGain = 1e-5

// DBToGain converts decibels to voltage gain. Anything at or below
// MinusInfinityDB is 0.
func DBToGain(db float32) float32 {
	if db <= MinusInfinityDB {
		return 0
	}
	return float32(math.Pow(10, float64(db)*0.05))
}

// GainToDB converts voltage gain to decibels, clamped at MinusInfinityDB.
func GainToDB(gain float32) float32 {
	if gain <= minusInfinityGain {
		return MinusInfinityDB
	}
	return float32(math.Log10(float64(gain)) * 20)
}

// Smoother ramps a gain towards its target multiplicatively, so the change
// sounds even across the whole range. Only the audio thread touches it.
type Smoother struct {
	rampMs    float64
	steps     int
	current   float32
	target    float32
	step      float32
	stepsLeft int
}

// NewSmoother starts at value with a ramp of rampMs milliseconds.
func NewSmoother(rampMs float64, value float32) *Smoother {
	return &Smoother{rampMs: rampMs, steps: 1, current: value, target: value}
}

// SetSampleRate must be called before processing.
func (s *Smoother) SetSampleRate(sampleRate float64) {
	s.steps = max(1, int(math.Round(sampleRate*s.rampMs/1000)))
}

// SetTarget starts a new ramp from the current value. Non-positive values
// cannot be reached multiplicatively and are applied immediately.
func (s *Smoother) SetTarget(v float32) {
	s.target = v
	if v <= 0 || s.current <= 0 {
		s.current, s.stepsLeft = v, 0
		return
	}
	s.stepsLeft = s.steps
	s.step = float32(math.Pow(float64(v/s.current), 1/float64(s.steps)))
}

// Next advances one sample and returns the new value.
func (s *Smoother) Next() float32 {
	if s.stepsLeft == 0 {
		return s.current
	}
	s.stepsLeft--
	if s.stepsLeft == 0 {
		s.current = s.target
	} else {
		s.current *= s.step
	}
	return s.current
}

// Value is the current value without advancing.
func (s *Smoother) Value() float32 { return s.current }
