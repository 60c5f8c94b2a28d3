package game

import (
	"fmt"
	"math/rand"
	"time"

	"simonsays/debug"
)

// State is the phase the game loop is in. Each state runs to completion
// inside Step and names its successor; there are no transitions from
// anywhere else.
type State uint8

const (
	StateStart State = iota
	StateSystemTurn
	StateUserTurn
	StateWinner
	StateLoser
)

var stateNames = map[State]string{
	StateStart:      "start",
	StateSystemTurn: "system-turn",
	StateUserTurn:   "user-turn",
	StateWinner:     "winner",
	StateLoser:      "loser",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// DefaultMaxLevel is the number of rounds in a full game.
const DefaultMaxLevel = 10

// Playback and screen timing defaults.
const (
	DefaultPlaybackHold = 600 * time.Millisecond
	DefaultPlaybackGap  = 250 * time.Millisecond
	DefaultOutcomeDwell = 3 * time.Second
)

// Config adjusts machine behavior. Zero fields fall back to the defaults
// above.
type Config struct {
	MaxLevel     int
	PlaybackHold time.Duration
	PlaybackGap  time.Duration
	OutcomeDwell time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxLevel <= 0 {
		c.MaxLevel = DefaultMaxLevel
	}
	if c.PlaybackHold <= 0 {
		c.PlaybackHold = DefaultPlaybackHold
	}
	if c.PlaybackGap <= 0 {
		c.PlaybackGap = DefaultPlaybackGap
	}
	if c.OutcomeDwell <= 0 {
		c.OutcomeDwell = DefaultOutcomeDwell
	}
	return c
}

// Machine owns one game session: the precomputed sequence, the level
// counter and the current state. All mutation happens on the caller's
// goroutine inside Step, so there is exactly one writer by construction.
type Machine struct {
	decoder *Decoder
	display Display
	sounder Sounder
	rng     *rand.Rand

	cfg Config

	state    State
	level    int
	sequence Sequence

	sleep func(time.Duration) // swapped out by tests
}

// NewMachine wires the collaborators together. A nil sounder plays nothing.
func NewMachine(decoder *Decoder, display Display, sounder Sounder, rng *rand.Rand, cfg Config) *Machine {
	if sounder == nil {
		sounder = nopSounder{}
	}
	return &Machine{
		decoder: decoder,
		display: display,
		sounder: sounder,
		rng:     rng,
		cfg:     cfg.withDefaults(),
		state:   StateStart,
	}
}

// State returns the current phase.
func (m *Machine) State() State { return m.state }

// Level returns the current round, 1-based.
func (m *Machine) Level() int { return m.level }

// MaxLevel returns the round that wins the game.
func (m *Machine) MaxLevel() int { return m.cfg.MaxLevel }

// Sequence returns a copy of the session's key order. Valid once a
// session started.
func (m *Machine) Sequence() Sequence {
	seq := make(Sequence, len(m.sequence))
	copy(seq, m.sequence)
	return seq
}

// Run loops the machine forever. Winner and Loser dwell on their screen
// and fall back into Start, so the loop never ends; the caller owns
// process lifetime.
func (m *Machine) Run() {
	for {
		m.Step()
	}
}

// Step executes the current state to completion and advances to its
// successor. Start and UserTurn block on the keypad for as long as the
// player stays idle.
func (m *Machine) Step() {
	switch m.state {
	case StateStart:
		m.runStart()
	case StateSystemTurn:
		m.runSystemTurn()
	case StateUserTurn:
		m.runUserTurn()
	case StateWinner:
		m.runWinner()
	case StateLoser:
		m.runLoser()
	}
}

// runStart draws a fresh sequence, resets the level and waits for SELECT.
// Every other key is swallowed here so a stray press can't start a game.
func (m *Machine) runStart() {
	m.sequence = NewSequence(m.rng, m.cfg.MaxLevel)
	m.level = 1

	m.display.Clear()
	m.display.ShowAt(0, 0, padLine("Simon Says"))
	m.display.ShowAt(1, 0, padLine("Press SELECT"))

	debug.Log("game", "session ready sequence=%v", m.sequence)

	for {
		key := m.decoder.WaitKey()
		if key == KeySelect {
			break
		}
		debug.Log("game", "ignoring %s before start", key)
	}

	m.state = StateSystemTurn
}

// runSystemTurn replays the first level keys of the sequence. The keypad
// is not consulted at all; presses during playback land after the decoder
// starts sampling again in the user turn.
func (m *Machine) runSystemTurn() {
	m.display.Clear()
	m.display.ShowAt(0, 0, padLine(fmt.Sprintf("Level %d", m.level)))
	m.display.ShowAt(1, 0, padLine("Watch..."))
	m.pause(m.cfg.PlaybackHold)

	for i := 0; i < m.level; i++ {
		key := m.sequence[i]
		m.display.ShowAt(1, 0, padLine(key.String()))
		m.sounder.KeyTone(key)
		m.pause(m.cfg.PlaybackHold)
		m.display.ShowAt(1, 0, padLine(""))
		m.pause(m.cfg.PlaybackGap)
	}

	debug.Log("game", "played level=%d keys=%v", m.level, m.sequence[:m.level])
	m.state = StateUserTurn
}

// runUserTurn reads exactly as many keys as the current level and compares
// them index by index. The first mismatch ends the turn immediately; the
// remaining expected keys are never read.
func (m *Machine) runUserTurn() {
	m.display.ShowAt(1, 0, padLine("Your turn"))

	for i := 0; i < m.level; i++ {
		key := m.decoder.WaitKey()
		m.display.ShowAt(1, 0, padLine(key.String()))
		m.sounder.KeyTone(key)

		if key != m.sequence[i] {
			debug.Log("game", "mismatch level=%d index=%d want=%s got=%s",
				m.level, i, m.sequence[i], key)
			m.state = StateLoser
			return
		}
	}

	debug.Log("game", "level %d cleared", m.level)

	if m.level >= m.cfg.MaxLevel {
		m.state = StateWinner
		return
	}
	m.level++
	m.state = StateSystemTurn
}

func (m *Machine) runWinner() {
	m.display.Clear()
	m.display.ShowAt(0, 0, padLine("YOU WIN!"))
	m.display.ShowAt(1, 0, padLine(fmt.Sprintf("All %d levels", m.cfg.MaxLevel)))
	m.sounder.Win()
	debug.Log("game", "winner after %d levels", m.cfg.MaxLevel)

	m.pause(m.cfg.OutcomeDwell)
	m.state = StateStart
}

func (m *Machine) runLoser() {
	m.display.Clear()
	m.display.ShowAt(0, 0, padLine("GAME OVER"))
	m.display.ShowAt(1, 0, padLine(fmt.Sprintf("Reached level %d", m.level)))
	m.sounder.Lose()
	debug.Log("game", "loser at level %d", m.level)

	m.pause(m.cfg.OutcomeDwell)
	m.state = StateStart
}

func (m *Machine) pause(d time.Duration) {
	if m.sleep != nil {
		m.sleep(d)
		return
	}
	time.Sleep(d)
}
