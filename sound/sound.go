package sound

import (
	"fmt"

	"simonsays/game"
)

// Backend names accepted by New.
const (
	BackendSynth = "synth"
	BackendMIDI  = "midi"
	BackendOff   = "off"
)

// New builds the named sound backend. "off" returns nil, which the game
// treats as silence. An empty name means the synth.
func New(backend, midiPort string) (game.Sounder, error) {
	switch backend {
	case "", BackendSynth:
		synth := NewSynth()
		if err := synth.Initialize(); err != nil {
			return nil, fmt.Errorf("init speaker: %w", err)
		}
		return synth, nil

	case BackendMIDI:
		m, err := NewMIDI(midiPort)
		if err != nil {
			return nil, err
		}
		return m, nil

	case BackendOff, "none":
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown sound backend %q", backend)
	}
}
