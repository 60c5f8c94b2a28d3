package game

import "math/rand"

// Sequence is the precomputed key order for one full session. It is drawn
// once when a session starts and never mutated afterwards; every round
// replays a longer prefix of the same sequence.
type Sequence []Key

// NewSequence draws length keys uniformly from the five buttons.
func NewSequence(rng *rand.Rand, length int) Sequence {
	keys := PlayableKeys()
	seq := make(Sequence, length)
	for i := range seq {
		seq[i] = keys[rng.Intn(len(keys))]
	}
	return seq
}
