package sound

import (
	"fmt"
	"strings"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"simonsays/debug"
	"simonsays/game"
)

// Channel and velocity used for every note the game sends.
const (
	midiChannel  uint8 = 0
	midiVelocity uint8 = 100
)

// MIDI plays the game tones as notes on an external MIDI device.
type MIDI struct {
	port drivers.Out
	send func(msg gomidi.Message) error
}

// NewMIDI opens an output port. An empty name takes the first port,
// otherwise the first port whose name contains the string
// (case-insensitive) wins.
func NewMIDI(portName string) (*MIDI, error) {
	port, err := findOutPort(portName)
	if err != nil {
		return nil, err
	}

	send, err := gomidi.SendTo(port)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}

	debug.Log("midi", "opened out port %s", port.String())
	return &MIDI{port: port, send: send}, nil
}

func findOutPort(name string) (drivers.Out, error) {
	ports := gomidi.GetOutPorts()
	if len(ports) == 0 {
		return nil, fmt.Errorf("no MIDI output ports available")
	}
	if name == "" {
		return ports[0], nil
	}

	want := strings.ToLower(name)
	for _, port := range ports {
		if strings.Contains(strings.ToLower(port.String()), want) {
			return port, nil
		}
	}
	return nil, fmt.Errorf("no MIDI output port matches %q", name)
}

// Ports lists the names of all MIDI output ports.
func Ports() []string {
	ports := gomidi.GetOutPorts()
	names := make([]string, len(ports))
	for i, port := range ports {
		names[i] = port.String()
	}
	return names
}

// KeyTone sends the note assigned to the key. KeyNone is silent.
func (m *MIDI) KeyTone(k game.Key) {
	tone, ok := keyTones[k]
	if !ok {
		return
	}
	m.strike(tone.Note, keyToneDuration)
}

// Win sends the victory arpeggio.
func (m *MIDI) Win() {
	go func() {
		for _, tone := range winTones {
			m.send(gomidi.NoteOn(midiChannel, tone.Note, midiVelocity))
			time.Sleep(winNoteDuration)
			m.send(gomidi.NoteOff(midiChannel, tone.Note))
		}
	}()
}

// Lose sends the low failure note.
func (m *MIDI) Lose() {
	m.strike(loseTone.Note, loseDuration)
}

// strike plays one note and schedules its release.
func (m *MIDI) strike(note uint8, d time.Duration) {
	if err := m.send(gomidi.NoteOn(midiChannel, note, midiVelocity)); err != nil {
		debug.Log("midi", "note on failed: %v", err)
		return
	}
	go func() {
		time.Sleep(d)
		m.send(gomidi.NoteOff(midiChannel, note))
	}()
}

// Close sends note-off for everything the game can play so no note keeps
// sounding after exit.
func (m *MIDI) Close() {
	if m.send == nil {
		return
	}
	for _, tone := range keyTones {
		m.send(gomidi.NoteOff(midiChannel, tone.Note))
	}
	for _, tone := range winTones {
		m.send(gomidi.NoteOff(midiChannel, tone.Note))
	}
	m.send(gomidi.NoteOff(midiChannel, loseTone.Note))
}
