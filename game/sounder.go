package game

// Sounder emits audible feedback for key events and round outcomes. The
// game never waits on it beyond the call itself, and a nil Sounder on the
// machine means silence without changing any behavior.
type Sounder interface {
	// KeyTone plays the tone assigned to a key. KeyNone is silent.
	KeyTone(k Key)

	// Win plays the victory jingle.
	Win()

	// Lose plays the failure buzz.
	Lose()
}

// nopSounder stands in when no audio backend is wired up.
type nopSounder struct{}

func (nopSounder) KeyTone(Key) {}
func (nopSounder) Win()        {}
func (nopSounder) Lose()       {}
