package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Manager owns the speaker and the mixer all impact voices play into.
// Every method is safe on a nil receiver so the game can run with
// audio disabled or failed without checking at each call site.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

// NewManager creates a manager that plays at the given master volume.
// Nothing touches the sound device until Initialize.
func NewManager(volume float64) *Manager {
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	return &Manager{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer. Failure leaves
// the manager usable as a no-op.
func (m *Manager) Initialize() error {
	if m == nil {
		return nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}

	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// Cleanup silences and drops every playing voice. The speaker itself
// stays open; beep has no close.
func (m *Manager) Cleanup() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	m.initialized = false
}

// PlayImpact starts one synthesized thud. Strength in [0, 1] drives
// pitch, length, and loudness.
func (m *Manager) PlayImpact(strength float64) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || m.muted {
		return
	}

	voice := newImpactVoice(strength, m.volume, sampleRate)
	speaker.Lock()
	m.mixer.Add(voice)
	speaker.Unlock()
}

// ToggleMute flips the mute state and returns the new value.
func (m *Manager) ToggleMute() bool {
	if m == nil {
		return true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = !m.muted
	return m.muted
}

func (m *Manager) SetMuted(muted bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

func (m *Manager) Muted() bool {
	if m == nil {
		return true
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}
