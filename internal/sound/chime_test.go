package sound

import (
	"math"
	"testing"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestChimeLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	n, peak := drain(Chime(rate, 1))
	require.Equal(t, ChimeLength(rate), n)
	require.Greater(t, peak, 0.1)
	require.LessOrEqual(t, peak, 1.0)
}

func TestChimeSilentAtZeroVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	n, peak := drain(Chime(rate, 0))
	require.Equal(t, ChimeLength(rate), n)
	require.Zero(t, peak)
}

func TestEnvelopeFadesOut(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := shape(newBell(100, noteDuration, rate), noteDuration, noteAttack, noteRelease, rate)
	buf := make([][2]float64, rate.N(noteDuration))
	n, _ := s.Stream(buf)
	require.Equal(t, len(buf), n)
	require.Zero(t, buf[0][0])
	require.InDelta(t, 0, buf[n-1][0], 0.01)
}

func TestNopPlayer(t *testing.T) {
	var p Player = Nop{}
	p.Chime()
	p.Close()
	// an uninitialised speaker is silent rather than failing
	NewSpeaker(0.5).Chime()
}
