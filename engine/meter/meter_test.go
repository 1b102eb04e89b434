package meter

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeakMeterRoundTrip(t *testing.T) {
	m := NewPeakMeter(0.5)
	assert.Equal(t, float32(0.5), m.Load())
	m.Store(-0.0)
	assert.Equal(t, float32(0), m.Load())
	m.Store(1)
	assert.InDelta(t, 0, m.LoadDB(), 1e-6)
}

func TestPeakMeterConcurrentAccess(t *testing.T) {
	m := NewPeakMeter(0)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			m.Store(float32(i % 2))
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 10000; i++ {
			v := m.Load()
			if v != 0 && v != 1 {
				t.Errorf("torn value %v", v)
				return
			}
		}
	}()
	wg.Wait()
}

func TestGainConversions(t *testing.T) {
	assert.InDelta(t, 1, DBToGain(0), 1e-6)
	assert.InDelta(t, 0.5012, DBToGain(-6), 1e-4)
	assert.Equal(t, float32(0), DBToGain(MinusInfinityDB))
	assert.Equal(t, float32(0), DBToGain(-200))

	assert.InDelta(t, 0, GainToDB(1), 1e-6)
	assert.InDelta(t, 20, GainToDB(10), 1e-5)
	assert.Equal(t, MinusInfinityDB, GainToDB(0))
	assert.Equal(t, MinusInfinityDB, GainToDB(-1))

	for _, db := range []float32{-30, -12, 0, 12, 30} {
		assert.InDelta(t, db, GainToDB(DBToGain(db)), 1e-4)
	}
}

func TestDecayWeightDropsTwelveDB(t *testing.T) {
	const sr = 48000.0
	w := DecayWeight(sr, DefaultDecayMs)
	frames := int(sr * DefaultDecayMs / 1000)
	level := float64(1)
	for i := 0; i < frames; i++ {
		level *= float64(w)
	}
	assert.InDelta(t, 0.25, level, 1e-3)
}

func TestFollowerRisesInstantlyAndDecays(t *testing.T) {
	m := NewPeakMeter(0)
	f := NewFollower(m, nil)
	f.SetSampleRate(1000)

	f.Process([][]float32{{0.8}, {0.4}})
	assert.InDelta(t, 0.6, m.Load(), 1e-6)

	silence := make([]float32, 150)
	f.Process([][]float32{silence, append([]float32(nil), silence...)})
	assert.InDelta(t, 0.15, m.Load(), 1e-3)
}

func TestFollowerUsesMeanOfChannels(t *testing.T) {
	m := NewPeakMeter(0)
	f := NewFollower(m, nil)
	f.SetSampleRate(44100)
	f.Process([][]float32{{0.5}, {-0.5}})
	assert.Equal(t, float32(0), m.Load())

	f.Process([][]float32{{-0.5}, {-0.3}})
	assert.InDelta(t, 0.4, m.Load(), 1e-6)
}

func TestFollowerAppliesGain(t *testing.T) {
	m := NewPeakMeter(0)
	f := NewFollower(m, NewSmoother(50, 2))
	f.SetSampleRate(1000)
	buf := [][]float32{{0.25, 0.25}}
	f.Process(buf)
	assert.Equal(t, []float32{0.5, 0.5}, buf[0])
	assert.InDelta(t, 0.5, m.Load(), 1e-6)
}

func TestFollowerInactiveSkipsMeter(t *testing.T) {
	m := NewPeakMeter(0)
	f := NewFollower(m, nil)
	f.Active = func() bool { return false }
	f.Process([][]float32{{1}})
	assert.Equal(t, float32(0), m.Load())
}

func TestSmootherReachesTarget(t *testing.T) {
	s := NewSmoother(50, 1)
	s.SetSampleRate(1000)
	s.SetTarget(4)

	prev := s.Value()
	for i := 0; i < 49; i++ {
		v := s.Next()
		require.Greater(t, v, prev)
		prev = v
	}
	assert.Equal(t, float32(4), s.Next())
	assert.Equal(t, float32(4), s.Next())
	// Halfway through a multiplicative ramp is the geometric mean.
	s.SetTarget(1)
	for i := 0; i < 25; i++ {
		s.Next()
	}
	assert.InDelta(t, 2, s.Value(), 1e-3)
}

func TestSmootherZeroTargetIsImmediate(t *testing.T) {
	s := NewSmoother(50, 1)
	s.SetSampleRate(1000)
	s.SetTarget(0)
	assert.Equal(t, float32(0), s.Next())
	s.SetTarget(1)
	assert.Equal(t, float32(1), s.Next())
	assert.False(t, math.IsNaN(float64(s.Value())))
}
