package game

import (
	"time"

	"simonsays/debug"
)

// AnalogSource supplies raw keypad samples in the 0..SampleMax range.
// Reads never fail from the decoder's point of view; adapters map hardware
// trouble to SampleMax so it looks like an open ladder.
type AnalogSource interface {
	Sample() int
}

// DefaultPollInterval is the delay between samples while waiting for the
// pin to change. 10ms is far below human reaction time and far above the
// ladder's settling time.
const DefaultPollInterval = 10 * time.Millisecond

// Decoder turns the continuous analog signal into discrete key events.
//
// One WaitKey call is exactly one press-and-release: it waits for the pin
// to drop below PressedThreshold, decodes that first sample, then waits for
// the pin to float back up before returning. Holding a button can therefore
// never repeat into a second event.
type Decoder struct {
	Source AnalogSource
	Table  ThresholdTable

	// PollInterval overrides DefaultPollInterval when non-zero.
	PollInterval time.Duration

	sleep func(time.Duration) // swapped out by tests
}

// NewDecoder returns a decoder over src with the stock threshold table.
func NewDecoder(src AnalogSource) *Decoder {
	return &Decoder{
		Source: src,
		Table:  DefaultThresholds,
	}
}

// WaitKey blocks until a full press-and-release happened and returns the
// key that was held. A press that lands in no band still consumes the full
// press-and-release and returns KeyNone. There is no timeout: an untouched
// keypad blocks forever, which is exactly what an idle game should do.
func (d *Decoder) WaitKey() Key {
	// Press phase: wait for the ladder voltage to drop.
	sample := d.Source.Sample()
	for sample >= PressedThreshold {
		debug.LogEvery(200, "decode", "idle sample=%d", sample)
		d.pause()
		sample = d.Source.Sample()
	}

	key := d.Table.Lookup(sample)
	debug.Log("decode", "press sample=%d key=%s", sample, key)

	// Release phase: the caller must not see the same hold twice, so stay
	// here until the pin floats back up.
	for d.Source.Sample() < PressedThreshold {
		d.pause()
	}
	debug.Log("decode", "release key=%s", key)

	return key
}

func (d *Decoder) pause() {
	interval := d.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	if d.sleep != nil {
		d.sleep(interval)
		return
	}
	time.Sleep(interval)
}
