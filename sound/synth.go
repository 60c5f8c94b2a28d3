package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"simonsays/game"
)

const sampleRate = beep.SampleRate(48000)

// Synth plays the game tones through the speaker. A persistent mixer is
// attached to the speaker once; every tone is a bounded streamer added to
// the mixer, so playback never blocks the game loop.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSynth creates a synth; call Initialize before playing.
func NewSynth() *Synth {
	return &Synth{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	if err != nil {
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Cleanup silences everything. The speaker itself has no Close; clearing
// the mixer is as far as shutdown goes.
func (s *Synth) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	s.mixer.Clear()
	s.initialized = false
}

// KeyTone plays the tone assigned to the key. KeyNone is silent.
func (s *Synth) KeyTone(k game.Key) {
	tone, ok := keyTones[k]
	if !ok {
		return
	}
	s.add(keyToneDuration, NewToneGenerator(sampleRate, tone.Freq, keyToneDuration))
}

// Win plays the ascending victory arpeggio.
func (s *Synth) Win() {
	freqs := make([]float64, len(winTones))
	for i, t := range winTones {
		freqs[i] = t.Freq
	}
	total := time.Duration(len(freqs)) * winNoteDuration
	s.add(total, NewArpeggioGenerator(sampleRate, freqs, winNoteDuration))
}

// Lose plays the low failure buzz.
func (s *Synth) Lose() {
	s.add(loseDuration, NewBuzzGenerator(sampleRate, loseTone.Freq))
}

func (s *Synth) add(d time.Duration, gen beep.Streamer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	s.mixer.Add(beep.Take(sampleRate.N(d), gen))
}

// ToneGenerator generates a plain sine with short attack and release ramps
// so tones start and stop without clicks.
type ToneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	pos    int
	length int
}

// NewToneGenerator creates a tone generator bounded to d.
func NewToneGenerator(sr beep.SampleRate, freq float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:     sr,
		freq:   freq,
		length: sr.N(d),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	ramp := g.sr.N(time.Millisecond * 5)
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		envelope := 1.0
		if g.pos < ramp {
			envelope = float64(g.pos) / float64(ramp)
		} else if left := g.length - g.pos; left < ramp {
			envelope = math.Max(float64(left)/float64(ramp), 0)
		}

		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}

// ArpeggioGenerator steps through a list of notes, one plucked sine per
// slot.
type ArpeggioGenerator struct {
	sr    beep.SampleRate
	freqs []float64
	per   int
	pos   int
}

// NewArpeggioGenerator creates an arpeggio generator playing each note
// for per.
func NewArpeggioGenerator(sr beep.SampleRate, freqs []float64, per time.Duration) *ArpeggioGenerator {
	return &ArpeggioGenerator{
		sr:    sr,
		freqs: freqs,
		per:   sr.N(per),
	}
}

func (g *ArpeggioGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := g.pos / g.per
		if step >= len(g.freqs) {
			step = len(g.freqs) - 1
		}
		freq := g.freqs[step]

		notePos := g.pos % g.per
		t := float64(notePos) / float64(g.sr)

		// Pluck: fast attack, exponential decay within the slot
		envelope := math.Exp(-t * 6)
		attack := g.sr.N(time.Millisecond * 3)
		if notePos < attack {
			envelope *= float64(notePos) / float64(attack)
		}

		sample := 0.3 * envelope * math.Sin(2*math.Pi*freq*t)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ArpeggioGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewBuzzGenerator creates a buzz sound generator
func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{
		sr:   sr,
		freq: freq,
	}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		// Square-ish wave with harmonics for a harsh buzz
		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		// Fade in over 20ms, die away over the tail
		envelope := math.Min(t/0.02, 1.0) * math.Exp(-t*3)
		sample *= envelope * 0.8

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}
