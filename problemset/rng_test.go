package problemset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProblemRNG_StreamsAreStableAndDistinct(t *testing.T) {
	t.Parallel()

	a := problemRNG(7, 3, 0).Int63()
	b := problemRNG(7, 3, 0).Int63()
	assert.Equal(t, a, b, "same (seed, index, attempt) replays")

	assert.NotEqual(t, a, problemRNG(7, 4, 0).Int63(), "neighbouring index")
	assert.NotEqual(t, a, problemRNG(7, 3, 1).Int63(), "next attempt")
	assert.NotEqual(t, a, problemRNG(8, 3, 0).Int63(), "other batch seed")
}

func TestNormalizeSeed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, defaultBatchSeed, normalizeSeed(0))
	assert.Equal(t, int64(-5), normalizeSeed(-5))
	assert.Equal(t, defaultBatchSeed, newOptions(WithSeed(0)).seed)
}
