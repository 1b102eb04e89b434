package main

import (
	"context"
	"math"
	"sync/atomic"
	"time"

	"github.com/zmann/noiseg8/engine/meter"
)

const (
	sampleRate = 48000
	blockSize  = 512
	toneHz     = 220
)

// gainParam is the gain in dB, written by the editor and read by the audio
// thread.
type gainParam struct{ bits atomic.Uint32 }

func (g *gainParam) Set(db float32) { g.bits.Store(math.Float32bits(db)) }
func (g *gainParam) Get() float32   { return math.Float32frombits(g.bits.Load()) }

// runAudio stands in for a host's audio callback: it renders a stereo tone
// in real-time sized blocks and meters it until ctx is done.
func runAudio(ctx context.Context, gain *gainParam, peak *meter.PeakMeter, decayMs float64, editorOpen *atomic.Bool) {
	smoother := meter.NewSmoother(50, meter.DBToGain(gain.Get()))
	follower := meter.NewFollower(peak, smoother)
	follower.SetDecay(decayMs)
	follower.SetSampleRate(sampleRate)
	follower.Active = editorOpen.Load

	buf := [][]float32{make([]float32, blockSize), make([]float32, blockSize)}
	phase := 0.0
	step := 2 * math.Pi * toneHz / sampleRate

	period := time.Duration(float64(time.Second) * blockSize / sampleRate)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	lastDB := gain.Get()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		if db := gain.Get(); db != lastDB {
			smoother.SetTarget(meter.DBToGain(db))
			lastDB = db
		}
		// A slow tremolo keeps the meter moving.
		depth := 0.5 + 0.5*math.Sin(phase/4000)
		for i := 0; i < blockSize; i++ {
			s := float32(0.5 * depth * math.Sin(phase))
			buf[0][i], buf[1][i] = s, s
			phase += step
		}
		follower.Process(buf)
	}
}
