// Package audio plays the game's synthesised sound effects.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	defaultVolume = 0.3
)

// SoundManager owns the audio device. A zero or uninitialized manager is
// silent, so callers need not check whether audio is available.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: defaultVolume,
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything still playing. The speaker itself stays
// open until the process exits.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

func (sm *SoundManager) PlayEat() {
	sm.play(CreateEatSound(sampleRate, sm.volume))
}

func (sm *SoundManager) PlayWall() {
	sm.play(CreateWallSound(sampleRate, sm.volume))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}
