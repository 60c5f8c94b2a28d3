package sound

import (
	"time"

	"simonsays/game"
)

// Tone pairs a synth frequency with the MIDI note the midi backend sends
// for the same key. The four arrow tones are the classic Simon pad
// frequencies; SELECT gets a fifth tone above them.
type Tone struct {
	Freq float64
	Note uint8
}

var keyTones = map[game.Key]Tone{
	game.KeyRight:  {Freq: 209, Note: 56}, // G#3
	game.KeyUp:     {Freq: 252, Note: 59}, // B3
	game.KeyDown:   {Freq: 310, Note: 63}, // D#4
	game.KeyLeft:   {Freq: 415, Note: 68}, // G#4
	game.KeySelect: {Freq: 498, Note: 71}, // B4
}

// winTones is the victory arpeggio, played in order.
var winTones = []Tone{
	{Freq: 262, Note: 60}, // C4
	{Freq: 330, Note: 64}, // E4
	{Freq: 392, Note: 67}, // G4
	{Freq: 523, Note: 72}, // C5
}

// loseTone is the low failure buzz.
var loseTone = Tone{Freq: 98, Note: 43} // G2

const (
	keyToneDuration = 350 * time.Millisecond
	winNoteDuration = 180 * time.Millisecond
	loseDuration    = 700 * time.Millisecond
)
