package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

const (
	eatNoteDuration = 60 * time.Millisecond
	wallDuration    = 250 * time.Millisecond
)

// oscillator generates a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of the given frequency and length.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
				val = 1.0
			} else {
				val = -1.0
			}
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

// fade ramps the volume linearly from 1 to 0 over the stream length.
type fade struct {
	streamer beep.Streamer
	position int
	total    int
}

func newFade(s beep.Streamer, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{streamer: s, total: rate.N(duration)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 0.0
		if f.position < f.total {
			vol = 1 - float64(f.position)/float64(f.total)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// CreateEatSound is a short rising two-note chirp.
func CreateEatSound(rate beep.SampleRate, volume float64) beep.Streamer {
	low := NewOscillator(660, eatNoteDuration, WaveSquare, rate)
	high := newFade(NewOscillator(990, eatNoteDuration, WaveSquare, rate), eatNoteDuration, rate)
	return newVolume(beep.Seq(low, high), volume)
}

// CreateWallSound is a low decaying thud.
func CreateWallSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(110, wallDuration, WaveSine, rate)
	return newVolume(newFade(osc, wallDuration, rate), volume)
}
