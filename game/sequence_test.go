package game

import (
	"math/rand"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNewSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	seq := NewSequence(rng, 10)
	assert.Equal(t, 10, len(seq))
	for _, key := range seq {
		assert.True(t, key.Playable())
	}

	assert.Equal(t, 0, len(NewSequence(rng, 0)))
}

func TestNewSequence_Deterministic(t *testing.T) {
	a := NewSequence(rand.New(rand.NewSource(7)), 10)
	b := NewSequence(rand.New(rand.NewSource(7)), 10)

	for i := range a {
		assert.Equal(t, a[i], b[i])
	}
}

func TestNewSequence_Varies(t *testing.T) {
	// With 5^10 possible sequences, a hundred identical consecutive draws
	// would mean a broken generator.
	rng := rand.New(rand.NewSource(1))
	first := NewSequence(rng, 10)

	varied := false
	for i := 0; i < 100 && !varied; i++ {
		next := NewSequence(rng, 10)
		for j := range next {
			if next[j] != first[j] {
				varied = true
				break
			}
		}
	}
	assert.True(t, varied)
}
