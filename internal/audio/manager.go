// Package audio plays short generated tones for game events.
// Sound starts muted; the speaker is opened the first time it is unmuted.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/neon-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// tones maps game events to their sound. Events not listed are silent.
var tones = map[core.Event]Tone{
	core.EventJump:       {Freq: 440, Duration: 120 * time.Millisecond, Decay: 6},
	core.EventCoin:       {Freq: 880, Duration: 150 * time.Millisecond, Chord: true, Decay: 4},
	core.EventPass:       {Freq: 660, Duration: 60 * time.Millisecond, Decay: 8},
	core.EventEat:        {Freq: 520, Duration: 100 * time.Millisecond, Chord: true, Decay: 5},
	core.EventCrash:      {Freq: 110, Duration: 300 * time.Millisecond, Decay: 6},
	core.EventGameOver:   {Freq: 220, Duration: 600 * time.Millisecond, Chord: true},
	core.EventWin:        {Freq: 523.25, Duration: 800 * time.Millisecond, Chord: true},
	core.EventLevelClear: {Freq: 660, Duration: 400 * time.Millisecond, Chord: true},
	core.EventLevelStart: {Freq: 440, Duration: 300 * time.Millisecond, Chord: true},
	core.EventRestart:    {Freq: 330, Duration: 150 * time.Millisecond, Decay: 4},
}

// Manager owns the output mixer and the mute state.
// All methods are safe for concurrent use and never fail the caller:
// audio errors are logged and sound stays off.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	muted       bool
	initialized bool
	logger      *log.Logger

	// start opens the output device and begins playing s.
	start func(s beep.Streamer) error
}

// NewManager creates a muted manager. A nil logger uses log.Default().
func NewManager(logger *log.Logger) *Manager {
	if logger == nil {
		logger = log.Default()
	}
	mixer := &beep.Mixer{}
	return &Manager{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2, Silent: true},
		muted:  true,
		logger: logger,
		start:  startSpeaker,
	}
}

// startSpeaker opens the default output device.
func startSpeaker(s beep.Streamer) error {
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(s)
	return nil
}

// Muted reports whether sound is off.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Toggle flips the mute state and returns the new value.
// If the output device cannot be opened, sound stays muted.
func (m *Manager) Toggle() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.muted && !m.initialized {
		if err := m.start(m.volume); err != nil {
			m.logger.Warn("audio unavailable", "error", err)
			return true
		}
		m.initialized = true
	}

	m.muted = !m.muted

	speaker.Lock()
	m.volume.Silent = m.muted
	if m.muted {
		m.mixer.Clear()
	}
	speaker.Unlock()

	m.logger.Debug("audio toggled", "muted", m.muted)
	return m.muted
}

// Play queues the tone for ev. It does nothing while muted.
func (m *Manager) Play(ev core.Event) {
	var s beep.Streamer
	if ev == core.EventClick {
		s = clickStreamer(sampleRate)
	} else {
		tone, ok := tones[ev]
		if !ok {
			return
		}
		s = tone.Streamer(sampleRate)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.muted || !m.initialized {
		return
	}

	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Pending returns the number of sounds still in the mixer.
func (m *Manager) Pending() int {
	speaker.Lock()
	defer speaker.Unlock()
	return m.mixer.Len()
}

// Close silences all sound. The speaker itself stays open for the process.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	m.volume.Silent = true
	speaker.Unlock()
	m.muted = true
}
