package game

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

// scriptedSource replays a fixed series of samples and then repeats the
// last one forever. Scripts end on SampleMax so WaitKey can terminate.
type scriptedSource struct {
	samples []int
	pos     int
	reads   int
}

func (s *scriptedSource) Sample() int {
	s.reads++
	if s.pos < len(s.samples) {
		v := s.samples[s.pos]
		s.pos++
		return v
	}
	if len(s.samples) == 0 {
		return SampleMax
	}
	return s.samples[len(s.samples)-1]
}

func (s *scriptedSource) feed(samples ...int) {
	s.samples = append(s.samples, samples...)
}

// nominalSamples are realistic mid-band readings for each button, taken
// from a stock shield. KeyNone uses the dead zone above the last band.
var nominalSamples = map[Key]int{
	KeyRight:  30,
	KeyUp:     144,
	KeyDown:   329,
	KeyLeft:   505,
	KeySelect: 741,
	KeyNone:   920,
}

// keySamples builds one full press-and-release per key, starting from an
// idle pin.
func keySamples(keys ...Key) []int {
	samples := []int{SampleMax}
	for _, k := range keys {
		level := nominalSamples[k]
		samples = append(samples, level, level, SampleMax)
	}
	return samples
}

func testDecoder(src AnalogSource) *Decoder {
	d := NewDecoder(src)
	d.sleep = func(time.Duration) {}
	return d
}

func TestDecoder_WaitKey(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		expected Key
	}{
		{"right", KeyRight, KeyRight},
		{"up", KeyUp, KeyUp},
		{"down", KeyDown, KeyDown},
		{"left", KeyLeft, KeyLeft},
		{"select", KeySelect, KeySelect},
		{"dead zone press", KeyNone, KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := testDecoder(&scriptedSource{samples: keySamples(tt.key)})
			assert.Equal(t, tt.expected, d.WaitKey())
		})
	}
}

func TestDecoder_WaitKeyHoldIsOneEvent(t *testing.T) {
	// A long hold followed by a second press. The hold must come out as a
	// single event no matter how many samples it spans.
	src := &scriptedSource{samples: []int{
		SampleMax,
		144, 144, 144, 144, 144,
		SampleMax, SampleMax,
		30,
		SampleMax,
	}}
	d := testDecoder(src)

	assert.Equal(t, KeyUp, d.WaitKey())
	assert.Equal(t, KeyRight, d.WaitKey())
}

func TestDecoder_WaitKeyConsumesRelease(t *testing.T) {
	// Pin already low on entry: press resolves on the first read, then the
	// decoder keeps sampling until the pin floats back up.
	src := &scriptedSource{samples: []int{329, 329, SampleMax}}
	d := testDecoder(src)

	assert.Equal(t, KeyDown, d.WaitKey())
	assert.Equal(t, 3, src.reads)
}

func TestDecoder_WaitKeyPollsWhileIdle(t *testing.T) {
	src := &scriptedSource{samples: []int{SampleMax, SampleMax, SampleMax, 741, SampleMax}}
	d := testDecoder(src)

	assert.Equal(t, KeySelect, d.WaitKey())
	assert.Equal(t, 5, src.reads)
}

func TestDecoder_WaitKeyCustomTable(t *testing.T) {
	src := &scriptedSource{samples: keySamples(KeyLeft)}
	d := testDecoder(src)
	d.Table = ThresholdTable{{Max: 600, Key: KeyUp}}

	// 505 lands in the single wide band now.
	assert.Equal(t, KeyUp, d.WaitKey())
}

func TestDecoder_PollInterval(t *testing.T) {
	var slept []time.Duration
	src := &scriptedSource{samples: []int{SampleMax, 144, SampleMax}}
	d := NewDecoder(src)
	d.sleep = func(interval time.Duration) {
		slept = append(slept, interval)
	}

	d.WaitKey()
	assert.True(t, len(slept) > 0)
	assert.Equal(t, DefaultPollInterval, slept[0])

	src = &scriptedSource{samples: []int{SampleMax, 144, SampleMax}}
	d.Source = src
	d.PollInterval = 25 * time.Millisecond
	slept = nil

	d.WaitKey()
	assert.True(t, len(slept) > 0)
	assert.Equal(t, 25*time.Millisecond, slept[0])
}
