package game

import "fmt"

// Sample range of the keypad pin. The ladder feeds a 10-bit ADC, so raw
// readings run 0..1023 with 1023 meaning the pin floats at full rail.
const (
	SampleMax = 1023

	// PressedThreshold separates "some key is down" from "released".
	// Anything at or above it reads as an open ladder.
	PressedThreshold = 1000
)

// Band maps samples strictly below Max to a key.
type Band struct {
	Max uint16
	Key Key
}

// ThresholdTable decodes raw samples into keys. Bands are ordered ascending
// and the first band whose Max exceeds the sample wins, so each sample lands
// in exactly one band or in none.
type ThresholdTable []Band

// DefaultThresholds matches the stock shield's ladder resistors. The gap
// between the last band and PressedThreshold is deliberate: readings there
// are mid-transition or noise and decode to KeyNone.
var DefaultThresholds = ThresholdTable{
	{Max: 50, Key: KeyRight},
	{Max: 250, Key: KeyUp},
	{Max: 450, Key: KeyDown},
	{Max: 650, Key: KeyLeft},
	{Max: 850, Key: KeySelect},
}

// Lookup decodes a raw sample into a key. Samples past every band return
// KeyNone.
func (t ThresholdTable) Lookup(sample int) Key {
	for _, b := range t {
		if sample < int(b.Max) {
			return b.Key
		}
	}
	return KeyNone
}

// Validate checks that the table can actually decode presses: at least one
// band, strictly ascending cut-offs, nothing at or above PressedThreshold,
// and only real buttons as targets.
func (t ThresholdTable) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("threshold table is empty")
	}

	prev := -1
	for i, b := range t {
		if int(b.Max) <= prev {
			return fmt.Errorf("band %d: cut-off %d not above previous %d", i, b.Max, prev)
		}
		if int(b.Max) >= PressedThreshold {
			return fmt.Errorf("band %d: cut-off %d reaches the released range", i, b.Max)
		}
		if !b.Key.Playable() {
			return fmt.Errorf("band %d: key %s is not a button", i, b.Key)
		}
		prev = int(b.Max)
	}

	return nil
}
