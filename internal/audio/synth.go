package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a wave whose frequency glides linearly from `from` to
// `to` over its duration.
type oscillator struct {
	from, to float64
	phase    float64
	total    int
	pos      int
	wave     Wave
	rate     beep.SampleRate
}

// NewOscillator returns a finite streamer of the given wave.
// Pass the same frequency twice for a steady tone.
func NewOscillator(from, to float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		from:  from,
		to:    to,
		total: rate.N(d),
		wave:  wave,
		rate:  rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
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
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		freq := o.from + (o.to-o.from)*float64(o.pos)/float64(o.total)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a streamer in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s, which is expected to last d.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if left := e.total - e.pos; e.release > 0 && left < e.release {
			gain = math.Max(0, float64(left)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// note is one shaped tone of a cue.
type note struct {
	from, to float64
	d        time.Duration
	wave     Wave
}

func (n note) stream(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.from, n.to, n.d, n.wave, rate)
	return NewEnvelope(osc, n.d, 5*time.Millisecond, n.d/3, rate)
}

// sine returns a plain tone from the beep generators, cut to d.
func sine(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		// Only fails for frequencies above Nyquist
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), tone)
}

// recipes lists the notes of each cue, played back to back.
var recipes = map[Cue][]note{
	CueStartup: {
		{440, 440, 70 * time.Millisecond, WaveSquare},
		{554.37, 554.37, 70 * time.Millisecond, WaveSquare},
		{659.25, 659.25, 70 * time.Millisecond, WaveSquare},
		{880, 880, 140 * time.Millisecond, WaveSquare},
	},
	CuePew: {
		{1400, 500, 90 * time.Millisecond, WaveSquare},
	},
	CueMove: {
		{110, 110, 50 * time.Millisecond, WaveSquare},
	},
	CueExplode: {
		{0, 0, 220 * time.Millisecond, WaveNoise},
	},
	CueLose: {
		{600, 300, 250 * time.Millisecond, WaveSaw},
		{300, 100, 400 * time.Millisecond, WaveSaw},
	},
}

// winMelody is played with pure sine tones.
var winMelody = []float64{523.25, 659.25, 783.99, 1046.5}

// Stream builds a fresh, finite streamer for cue. volume is a gain in powers
// of two. Unknown cues yield nil.
func Stream(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var parts []beep.Streamer
	if cue == CueWin {
		for _, freq := range winMelody {
			parts = append(parts, NewEnvelope(sine(rate, freq, 120*time.Millisecond),
				120*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, rate))
		}
	} else {
		notes, ok := recipes[cue]
		if !ok {
			return nil
		}
		for _, n := range notes {
			parts = append(parts, n.stream(rate))
		}
	}
	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: volume}
}

// Duration returns how long cue lasts.
func Duration(cue Cue) time.Duration {
	if cue == CueWin {
		return time.Duration(len(winMelody)) * 120 * time.Millisecond
	}
	var total time.Duration
	for _, n := range recipes[cue] {
		total += n.d
	}
	return total
}
