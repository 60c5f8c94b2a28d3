package tui

import (
	"math/rand"
	"sync"
	"time"

	"simonsays/debug"
	"simonsays/game"
)

// pressLevels are the mid-band readings a stock shield produces for each
// button. RIGHT really does read zero: its resistor path goes straight to
// ground.
var pressLevels = map[game.Key]int{
	game.KeyRight:  0,
	game.KeyUp:     144,
	game.KeyDown:   329,
	game.KeyLeft:   505,
	game.KeySelect: 741,
}

// DefaultKeyHold is how long a tap keeps the simulated pin down. Long
// enough that the decoder catches the press even at slow poll intervals.
const DefaultKeyHold = 180 * time.Millisecond

// Sampler fakes the ladder pin for the terminal game. A key press latches
// the key's voltage level for a hold period, then the pin floats back to
// the released level, so the decoder sees the same press-and-release arc
// it would see on hardware.
type Sampler struct {
	mu     sync.Mutex
	level  int
	active game.Key
	gen    uint64
	rng    *rand.Rand

	hold     time.Duration
	noiseAmp int
	onChange func()
}

// NewSampler creates an idle sampler. Zero hold falls back to
// DefaultKeyHold; noiseAmp is the jitter added to each sample, zero for a
// clean signal. onChange (may be nil) fires when a press starts or ends
// so the UI can repaint button highlights.
func NewSampler(hold time.Duration, noiseAmp int, onChange func()) *Sampler {
	if hold <= 0 {
		hold = DefaultKeyHold
	}
	if noiseAmp < 0 {
		noiseAmp = 0
	}
	return &Sampler{
		level:    game.SampleMax,
		active:   game.KeyNone,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		hold:     hold,
		noiseAmp: noiseAmp,
		onChange: onChange,
	}
}

// Press latches the key's level for the hold period. Pressing again
// before release restarts the hold, like mashing real buttons would.
func (s *Sampler) Press(k game.Key) {
	level, ok := pressLevels[k]
	if !ok {
		return
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.level = level
	s.active = k
	s.mu.Unlock()

	debug.Log("sim", "press %s level=%d", k, level)
	if s.onChange != nil {
		s.onChange()
	}

	time.AfterFunc(s.hold, func() { s.release(gen) })
}

// release lets the pin float back up unless a newer press took over.
func (s *Sampler) release(gen uint64) {
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return
	}
	key := s.active
	s.level = game.SampleMax
	s.active = game.KeyNone
	s.mu.Unlock()

	debug.Log("sim", "release %s", key)
	if s.onChange != nil {
		s.onChange()
	}
}

// Sample reads the simulated pin with jitter, clamped to the ADC range.
func (s *Sampler) Sample() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := s.level
	if s.noiseAmp > 0 {
		v += s.rng.Intn(2*s.noiseAmp+1) - s.noiseAmp
	}
	if v < 0 {
		v = 0
	}
	if v > game.SampleMax {
		v = game.SampleMax
	}
	return v
}

// Active returns the currently held key for button highlights.
func (s *Sampler) Active() game.Key {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}
