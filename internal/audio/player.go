// Package audio plays synthesized sound effects for simulation cues.
// Sounds are generated on the fly, so there are no asset files to ship.
package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/monster-hunter/internal/core"
)

const (
	sampleRate = beep.SampleRate(48000)
	bufferSize = 100 * time.Millisecond
)

// Player mixes cue effects onto the system speaker. The zero value and a
// nil *Player are both silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player with linear volume in [0, 1].
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: core.ClampF(volume, 0, 1),
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	p.logger.Debug("audio ready", "rate", int(sampleRate), "volume", p.volume)
	return nil
}

// Play queues the effects for cues. It never blocks on playback.
func (p *Player) Play(cues ...core.Cue) {
	if p == nil || len(cues) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	for _, c := range dedupe(cues) {
		if s := Sound(c, sampleRate, p.volume); s != nil {
			p.mixer.Add(s)
		}
	}
	speaker.Unlock()
}

// Close silences everything that is still playing.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// dedupe keeps the first occurrence of each cue. Several hits in one tick
// would otherwise stack into a clipped burst.
func dedupe(cues []core.Cue) []core.Cue {
	var seen [8]bool
	out := make([]core.Cue, 0, len(cues))
	for _, c := range cues {
		if int(c) < len(seen) {
			if seen[c] {
				continue
			}
			seen[c] = true
		}
		out = append(out, c)
	}
	return out
}
