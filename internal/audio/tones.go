package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/monster-hunter/internal/core"
)

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *rand.Rand
}

// NewOscillator creates a streamer that plays one wave for duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(int64(freq))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// tone is a shaped oscillator with a short attack and release.
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

// withVolume scales a stream linearly; 0 silences it.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Sound builds the effect for a cue, or nil for an unknown cue.
func Sound(c core.Cue, rate beep.SampleRate, vol float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case core.CueShoot:
		s = tone(880, 60*time.Millisecond, WaveSquare, rate)
	case core.CueJump:
		s = beep.Seq(
			tone(330, 40*time.Millisecond, WaveSine, rate),
			tone(495, 60*time.Millisecond, WaveSine, rate),
		)
	case core.CueEnemyHit:
		s = beep.Mix(
			withVolume(tone(150, 90*time.Millisecond, WaveNoise, rate), 0.5),
			withVolume(tone(220, 90*time.Millisecond, WaveSquare, rate), 0.5),
		)
	case core.CuePlayerHit:
		s = tone(110, 180*time.Millisecond, WaveSaw, rate)
	case core.CueCollect:
		s = beep.Seq(
			tone(988, 60*time.Millisecond, WaveSine, rate),
			tone(1319, 120*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
	return withVolume(s, vol)
}

// Duration returns how long the effect for c plays.
func Duration(c core.Cue) time.Duration {
	switch c {
	case core.CueShoot:
		return 60 * time.Millisecond
	case core.CueJump:
		return 100 * time.Millisecond
	case core.CueEnemyHit:
		return 90 * time.Millisecond
	case core.CuePlayerHit:
		return 180 * time.Millisecond
	case core.CueCollect:
		return 180 * time.Millisecond
	default:
		return 0
	}
}
