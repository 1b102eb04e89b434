package meter

import "math"

// DefaultDecayMs is how long pure silence takes to pull the meter down by 12 dB.
const DefaultDecayMs = 150.0

// DecayWeight is the per-frame weight for a meter that falls 12 dB (a factor
// of 0.25) over decayMs at sampleRate.
func DecayWeight(sampleRate, decayMs float64) float32 {
	return float32(math.Pow(0.25, 1/(sampleRate*decayMs/1000)))
}

// Follower applies gain to the audio and feeds the resulting level into a
// PeakMeter. It rises instantly and decays smoothly.
type Follower struct {
	meter   *PeakMeter
	gain    *Smoother
	decayMs float64
	weight  float32
	// Metering is skipped while the editor is closed.
	Active func() bool
}

// NewFollower writes into m. The decay weight is 1 (no decay) until
// SetSampleRate is called.
func NewFollower(m *PeakMeter, gain *Smoother) *Follower {
	return &Follower{meter: m, gain: gain, decayMs: DefaultDecayMs, weight: 1}
}

// SetDecay changes the decay time; call SetSampleRate afterwards.
func (f *Follower) SetDecay(ms float64) { f.decayMs = ms }

func (f *Follower) SetSampleRate(sampleRate float64) {
	f.weight = DecayWeight(sampleRate, f.decayMs)
	if f.gain != nil {
		f.gain.SetSampleRate(sampleRate)
	}
}

// Weight is the current per-frame decay weight.
func (f *Follower) Weight() float32 { return f.weight }

// Process scales buf in place and updates the meter once per sample frame.
// buf is channel-major: buf[channel][sample]; all channels have the same length.
func (f *Follower) Process(buf [][]float32) {
	if len(buf) == 0 {
		return
	}
	active := f.Active == nil || f.Active()
	frames := len(buf[0])
	for i := 0; i < frames; i++ {
		gain := float32(1)
		if f.gain != nil {
			gain = f.gain.Next()
		}
		var sum float32
		for ch := range buf {
			buf[ch][i] *= gain
			sum += buf[ch][i]
		}
		if active {
			f.update(float32(math.Abs(float64(sum / float32(len(buf))))))
		}
	}
}

func (f *Follower) update(amplitude float32) {
	cur := f.meter.Load()
	if amplitude > cur {
		f.meter.Store(amplitude)
		return
	}
	f.meter.Store(cur*f.weight + amplitude*(1-f.weight))
}
