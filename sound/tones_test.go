package sound

import (
	"math"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"simonsays/game"
)

func TestKeyTones(t *testing.T) {
	for _, key := range game.PlayableKeys() {
		tone, ok := keyTones[key]
		assert.True(t, ok)
		assert.True(t, tone.Freq > 0)
		assert.True(t, tone.Note > 0 && tone.Note < 128)
	}

	// Nothing plays for a dead-zone press.
	_, ok := keyTones[game.KeyNone]
	assert.False(t, ok)
}

func TestWinTonesAscend(t *testing.T) {
	for i := 1; i < len(winTones); i++ {
		assert.True(t, winTones[i].Freq > winTones[i-1].Freq)
		assert.True(t, winTones[i].Note > winTones[i-1].Note)
	}
}

func TestGenerators(t *testing.T) {
	freqs := []float64{262, 330, 392}

	tests := []struct {
		name string
		gen  interface {
			Stream([][2]float64) (int, bool)
			Err() error
		}
	}{
		{"tone", NewToneGenerator(sampleRate, 440, keyToneDuration)},
		{"arpeggio", NewArpeggioGenerator(sampleRate, freqs, winNoteDuration)},
		{"buzz", NewBuzzGenerator(sampleRate, 98)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([][2]float64, 2048)
			n, ok := tt.gen.Stream(buf)
			assert.Equal(t, 2048, n)
			assert.True(t, ok)
			assert.NoError(t, tt.gen.Err())

			peak := 0.0
			for _, s := range buf {
				peak = math.Max(peak, math.Abs(s[0]))
				assert.Equal(t, s[0], s[1])
			}
			assert.True(t, peak > 0)
			assert.True(t, peak <= 1)
		})
	}
}
