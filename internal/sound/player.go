package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Player plays the expiry chime.
type Player interface {
	Chime()
	Close()
}

// Nop is a silent Player.
type Nop struct{}

func (Nop) Chime() {}
func (Nop) Close() {}

// Speaker plays through the system audio device.
type Speaker struct {
	mu          sync.Mutex
	volume      float64
	initialized bool
	mixer       *beep.Mixer
}

// NewSpeaker returns an uninitialised speaker at volume in [0, 1].
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{volume: volume, mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sound: init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

func (s *Speaker) Chime() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Add(Chime(SampleRate, s.volume))
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	s.initialized = false
}
