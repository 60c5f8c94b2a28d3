package game

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

// fakeDisplay records everything the machine puts on screen.
type fakeDisplay struct {
	rows    [DisplayRows]string
	history []string
	clears  int
}

func (d *fakeDisplay) ShowAt(row, col int, text string) {
	if row >= 0 && row < DisplayRows {
		d.rows[row] = text
	}
	d.history = append(d.history, strings.TrimRight(text, " "))
}

func (d *fakeDisplay) Clear() {
	d.clears++
	for i := range d.rows {
		d.rows[i] = ""
	}
}

func (d *fakeDisplay) saw(text string) bool {
	return d.count(text) > 0
}

func (d *fakeDisplay) count(text string) int {
	n := 0
	for _, h := range d.history {
		if h == text {
			n++
		}
	}
	return n
}

// countingSounder records which tones and jingles were triggered.
type countingSounder struct {
	tones []Key
	wins  int
	loses int
}

func (s *countingSounder) KeyTone(k Key) { s.tones = append(s.tones, k) }
func (s *countingSounder) Win()          { s.wins++ }
func (s *countingSounder) Lose()         { s.loses++ }

// panicSource fails the test if the keypad is sampled at all.
type panicSource struct{}

func (panicSource) Sample() int { panic("keypad sampled during playback") }

type fixture struct {
	src     *scriptedSource
	display *fakeDisplay
	sounds  *countingSounder
	machine *Machine
}

func newFixture(cfg Config, samples []int) *fixture {
	f := &fixture{
		src:     &scriptedSource{samples: samples},
		display: &fakeDisplay{},
		sounds:  &countingSounder{},
	}
	f.machine = NewMachine(testDecoder(f.src), f.display, f.sounds,
		rand.New(rand.NewSource(1)), cfg)
	f.machine.sleep = func(time.Duration) {}
	return f
}

func TestNewMachine_Defaults(t *testing.T) {
	f := newFixture(Config{}, nil)

	assert.Equal(t, StateStart, f.machine.State())
	assert.Equal(t, DefaultMaxLevel, f.machine.MaxLevel())
	assert.Equal(t, 0, f.machine.Level())
}

func TestNewMachine_NilSounder(t *testing.T) {
	display := &fakeDisplay{}
	m := NewMachine(testDecoder(&scriptedSource{}), display, nil,
		rand.New(rand.NewSource(1)), Config{MaxLevel: 3})
	m.sleep = func(time.Duration) {}
	m.state = StateWinner

	// Winner plays the jingle; with no backend that must be a no-op.
	m.Step()
	assert.Equal(t, StateStart, m.State())
}

func TestMachine_Start(t *testing.T) {
	f := newFixture(Config{MaxLevel: 3}, keySamples(KeyUp, KeySelect))

	f.machine.Step()

	// KeyUp before SELECT was swallowed, then SELECT armed the game.
	assert.Equal(t, StateSystemTurn, f.machine.State())
	assert.Equal(t, 1, f.machine.Level())
	assert.Equal(t, 3, len(f.machine.Sequence()))
	for _, key := range f.machine.Sequence() {
		assert.True(t, key.Playable())
	}
	assert.True(t, f.display.saw("Simon Says"))
	assert.True(t, f.display.saw("Press SELECT"))
	assert.Equal(t, 0, len(f.sounds.tones))
}

func TestMachine_StartResetsSession(t *testing.T) {
	f := newFixture(Config{MaxLevel: 10}, keySamples(KeySelect, KeySelect))

	f.machine.Step()
	first := append(Sequence{}, f.machine.Sequence()...)
	assert.Equal(t, 1, f.machine.Level())

	// Force a second session and make sure nothing survives the boundary.
	f.machine.level = 7
	f.machine.state = StateStart
	f.machine.Step()

	assert.Equal(t, 1, f.machine.Level())
	second := f.machine.Sequence()
	assert.Equal(t, len(first), len(second))

	varied := false
	for i := range second {
		if second[i] != first[i] {
			varied = true
			break
		}
	}
	assert.True(t, varied)
}

func TestMachine_SystemTurn(t *testing.T) {
	display := &fakeDisplay{}
	sounds := &countingSounder{}
	m := NewMachine(testDecoder(panicSource{}), display, sounds,
		rand.New(rand.NewSource(1)), Config{MaxLevel: 10})
	m.sleep = func(time.Duration) {}
	m.sequence = Sequence{KeyUp, KeyUp, KeyLeft}
	m.level = 2
	m.state = StateSystemTurn

	// panicSource proves playback never touches the keypad.
	m.Step()

	assert.Equal(t, StateUserTurn, m.State())
	assert.Equal(t, 2, m.Level())
	assert.True(t, display.saw("Level 2"))
	assert.True(t, display.saw("Watch..."))
	assert.Equal(t, 2, display.count("UP"))
	assert.False(t, display.saw("LEFT"))

	assert.Equal(t, 2, len(sounds.tones))
	assert.Equal(t, KeyUp, sounds.tones[0])
	assert.Equal(t, KeyUp, sounds.tones[1])
}

func TestMachine_UserTurnAdvancesLevel(t *testing.T) {
	f := newFixture(Config{MaxLevel: 10}, keySamples(KeyUp, KeyUp, KeyLeft))
	f.machine.sequence = Sequence{KeyUp, KeyUp, KeyLeft}
	f.machine.level = 3
	f.machine.state = StateUserTurn

	f.machine.Step()

	assert.Equal(t, StateSystemTurn, f.machine.State())
	assert.Equal(t, 4, f.machine.Level())
	assert.Equal(t, 3, len(f.sounds.tones))
}

func TestMachine_UserTurnWinsAtMaxLevel(t *testing.T) {
	f := newFixture(Config{MaxLevel: 3}, keySamples(KeyUp, KeyUp, KeyLeft))
	f.machine.sequence = Sequence{KeyUp, KeyUp, KeyLeft}
	f.machine.level = 3
	f.machine.state = StateUserTurn

	f.machine.Step()

	assert.Equal(t, StateWinner, f.machine.State())
	assert.Equal(t, 3, f.machine.Level())
}

func TestMachine_UserTurnMismatchAborts(t *testing.T) {
	// Third press is scripted but must never be read: the mismatch on the
	// second key ends the turn on the spot.
	f := newFixture(Config{MaxLevel: 10}, keySamples(KeyUp, KeyDown, KeyLeft))
	f.machine.sequence = Sequence{KeyUp, KeyUp, KeyLeft}
	f.machine.level = 3
	f.machine.state = StateUserTurn

	f.machine.Step()

	assert.Equal(t, StateLoser, f.machine.State())
	assert.Equal(t, 3, f.machine.Level())
	assert.Equal(t, 7, f.src.pos)
}

func TestMachine_UserTurnDeadZonePressLoses(t *testing.T) {
	f := newFixture(Config{MaxLevel: 10}, keySamples(KeyNone))
	f.machine.sequence = Sequence{KeyUp}
	f.machine.level = 1
	f.machine.state = StateUserTurn

	f.machine.Step()

	assert.Equal(t, StateLoser, f.machine.State())
}

func TestMachine_WinnerReturnsToStart(t *testing.T) {
	f := newFixture(Config{MaxLevel: 3}, nil)
	var slept []time.Duration
	f.machine.sleep = func(d time.Duration) { slept = append(slept, d) }
	f.machine.state = StateWinner

	f.machine.Step()

	assert.Equal(t, StateStart, f.machine.State())
	assert.Equal(t, 1, f.sounds.wins)
	assert.True(t, f.display.saw("YOU WIN!"))
	assert.True(t, f.display.saw("All 3 levels"))
	assert.Equal(t, DefaultOutcomeDwell, slept[len(slept)-1])
}

func TestMachine_LoserReturnsToStart(t *testing.T) {
	f := newFixture(Config{MaxLevel: 10}, nil)
	f.machine.level = 4
	f.machine.state = StateLoser

	f.machine.Step()

	assert.Equal(t, StateStart, f.machine.State())
	assert.Equal(t, 1, f.sounds.loses)
	assert.True(t, f.display.saw("GAME OVER"))
	assert.True(t, f.display.saw("Reached level 4"))
}

func TestMachine_FullGame(t *testing.T) {
	f := newFixture(Config{MaxLevel: 2}, keySamples(KeySelect))

	f.machine.Step()
	assert.Equal(t, StateSystemTurn, f.machine.State())
	firstSequence := append(Sequence{}, f.machine.Sequence()...)

	for round := 1; round <= 2; round++ {
		assert.Equal(t, round, f.machine.Level())

		f.machine.Step()
		assert.Equal(t, StateUserTurn, f.machine.State())

		f.src.feed(keySamples(f.machine.Sequence()[:round]...)...)
		f.machine.Step()
	}

	assert.Equal(t, StateWinner, f.machine.State())

	f.machine.Step()
	assert.Equal(t, StateStart, f.machine.State())
	assert.Equal(t, 1, f.sounds.wins)

	// The next session starts from scratch with a fresh draw.
	f.src.feed(keySamples(KeySelect)...)
	f.machine.Step()
	assert.Equal(t, StateSystemTurn, f.machine.State())
	assert.Equal(t, 1, f.machine.Level())
	assert.Equal(t, len(firstSequence), len(f.machine.Sequence()))
}
