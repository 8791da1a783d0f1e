// Package sound synthesises and plays the expiry chime.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const (
	SampleRate = beep.SampleRate(44100)

	noteDuration = 450 * time.Millisecond
	noteAttack   = 5 * time.Millisecond
	noteRelease  = 380 * time.Millisecond
)

// chimeNotes is a falling major third, then the octave below the first.
var chimeNotes = []float64{1318.51, 1046.50, 659.25}

// bell is a sine with a quieter octave partial.
type bell struct {
	freq     float64
	phase    float64
	position int
	samples  int
	rate     beep.SampleRate
}

func newBell(freq float64, d time.Duration, rate beep.SampleRate) *bell {
	return &bell{freq: freq, samples: rate.N(d), rate: rate}
}

func (o *bell) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.samples {
			return i, i > 0
		}
		v := 0.75*math.Sin(2*math.Pi*o.phase) + 0.25*math.Sin(4*math.Pi*o.phase)
		samples[i][0] = v
		samples[i][1] = v
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *bell) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{Streamer: s, attack: rate.N(attack), release: rate.N(release), total: rate.N(d)}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if start := e.total - e.release; e.position >= start && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Chime returns the expiry chime at the given volume in [0, 1].
func Chime(rate beep.SampleRate, vol float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(chimeNotes))
	for _, f := range chimeNotes {
		notes = append(notes, shape(newBell(f, noteDuration, rate), noteDuration, noteAttack, noteRelease, rate))
	}
	return volume(beep.Seq(notes...), vol)
}

// ChimeLength is the chime's duration in samples.
func ChimeLength(rate beep.SampleRate) int {
	return len(chimeNotes) * rate.N(noteDuration)
}
