package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// impactVoice synthesizes a single collision thud: a low sine whose
// pitch sags over the tail, with a short noise burst on the attack.
// It streams until its envelope runs out, then reports done.
type impactVoice struct {
	rate     beep.SampleRate
	freq     float64
	gain     float64
	phase    float64
	position int
	length   int
}

func newImpactVoice(strength, volume float64, rate beep.SampleRate) *impactVoice {
	if strength < 0 {
		strength = 0
	}
	if strength > 1 {
		strength = 1
	}
	ms := 80 + 120*strength
	return &impactVoice{
		rate:   rate,
		freq:   70 + 90*strength,
		gain:   volume * (0.3 + 0.7*strength),
		length: int(float64(rate) * ms / 1000),
	}
}

func (v *impactVoice) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if v.position >= v.length {
			return i, false
		}
		t := float64(v.position) / float64(v.length)
		env := math.Exp(-6 * t)
		knock := (rand.Float64()*2 - 1) * math.Exp(-30*t) * 0.35
		val := (math.Sin(2*math.Pi*v.phase)*0.75 + knock) * env * v.gain
		if val > 1 {
			val = 1
		} else if val < -1 {
			val = -1
		}
		samples[i][0] = val
		samples[i][1] = val

		// Sag the pitch to about half by the end of the tail.
		v.phase += v.freq * (1 - 0.5*t) / float64(v.rate)
		v.phase -= math.Floor(v.phase)
		v.position++
	}
	return len(samples), true
}

func (v *impactVoice) Err() error { return nil }
