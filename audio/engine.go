package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Engine plays short interaction cues. Initialization failure is
// non-fatal: every play call becomes a no-op so the visualizer runs
// fine on machines without an audio device
type Engine struct {
	mu          sync.Mutex
	initialized bool
}

// NewEngine creates an uninitialized audio engine
func NewEngine() *Engine {
	return &Engine{}
}

// Initialize opens the speaker. Call once at startup
func (e *Engine) Initialize() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	e.initialized = true
	return nil
}

// Close silences any playing streamers
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Clear()
	e.initialized = false
}

// PlaySelect plays a short high blip acknowledging a body selection
func (e *Engine) PlaySelect() {
	e.playTone(880, 50*time.Millisecond)
}

// PlayError plays a lower buzz for rejected interactions
func (e *Engine) PlayError() {
	e.playTone(220, 120*time.Millisecond)
}

func (e *Engine) playTone(freq float64, d time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}

	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}
