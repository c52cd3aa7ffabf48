package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound names understood by PlaySound.
const (
	SoundShoot     = "shoot"
	SoundExplosion = "explosion"
	SoundHit       = "hit"
	SoundPowerUp   = "powerup"
	SoundLevelUp   = "level_up"
	SoundGameOver  = "game_over"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates raw audio waves with an optional linear pitch sweep.
type oscillator struct {
	freq, sweep float64 // Гц и Гц/сек
	phase       float64
	duration    int
	position    int
	wave        WaveType
	rate        beep.SampleRate
	noise       *rand.Rand
}

func newOscillator(freq, sweep float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		sweep:    sweep,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    rand.New(rand.NewSource(1)),
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
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.rate)
		o.phase += (o.freq + o.sweep*t) / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fadeOut ramps volume linearly to zero over the whole streamer length.
type fadeOut struct {
	streamer beep.Streamer
	position int
	total    int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(f.position)/float64(f.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }

func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq, sweep float64, d time.Duration, wave WaveType, vol float64, rate beep.SampleRate) beep.Streamer {
	return withVolume(&fadeOut{
		streamer: newOscillator(freq, sweep, d, wave, rate),
		total:    rate.N(d),
	}, vol)
}

// synthesize builds a fresh streamer for a named effect. Unknown names return nil.
func synthesize(name string, rate beep.SampleRate) beep.Streamer {
	switch name {
	case SoundShoot:
		return tone(880, -2400, 90*time.Millisecond, WaveSquare, 0.15, rate)
	case SoundExplosion:
		return tone(0, 0, 350*time.Millisecond, WaveNoise, 0.3, rate)
	case SoundHit:
		return tone(180, -200, 150*time.Millisecond, WaveSquare, 0.25, rate)
	case SoundPowerUp:
		return beep.Seq(
			tone(523, 0, 80*time.Millisecond, WaveSine, 0.3, rate),
			tone(784, 0, 120*time.Millisecond, WaveSine, 0.3, rate),
		)
	case SoundLevelUp:
		return beep.Seq(
			tone(523, 0, 100*time.Millisecond, WaveSine, 0.3, rate),
			tone(659, 0, 100*time.Millisecond, WaveSine, 0.3, rate),
			tone(1046, 0, 200*time.Millisecond, WaveSine, 0.3, rate),
		)
	case SoundGameOver:
		return tone(440, -500, 800*time.Millisecond, WaveSine, 0.35, rate)
	}
	return nil
}

// fallbackMusic is a quiet sine drone used when no music file is available.
func fallbackMusic(rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, 110)
	if err != nil {
		return beep.Silence(-1)
	}
	return withVolume(sine, 0.05)
}
