package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandSameSeedSameStream(t *testing.T) {
	a := NewRand(42)
	b := NewRand(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Next(), b.Next(), "draw %d diverged", i)
	}
}

func TestRandDifferentSeedsDiverge(t *testing.T) {
	a := NewRand(1)
	b := NewRand(2)

	diverged := false
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}

func TestRandNextRange(t *testing.T) {
	r := NewRand(7)
	for i := 0; i < 1000; i++ {
		v := r.Next()
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
	}
}

func TestBetweenStaysInRange(t *testing.T) {
	r := NewRand(99)
	for i := 0; i < 1000; i++ {
		v := r.Between(0.8, 1.2)
		require.GreaterOrEqual(t, v, 0.8)
		require.Less(t, v, 1.2)
	}
}

func TestIntBetween(t *testing.T) {
	r := NewRand(3)
	for i := 0; i < 1000; i++ {
		v := r.IntBetween(35, 50)
		require.GreaterOrEqual(t, v, 35)
		require.Less(t, v, 50)
	}

	assert.Equal(t, 5, r.IntBetween(5, 5))
	assert.Equal(t, 5, r.IntBetween(5, 3))
}

func TestPickReturnsMember(t *testing.T) {
	r := NewRand(11)
	items := []string{"US", "EU", "APAC"}
	for i := 0; i < 100; i++ {
		assert.Contains(t, items, Pick(r, items))
	}
}

func TestSeedForIsStableAndKeyed(t *testing.T) {
	assert.Equal(t, SeedFor("acc-1", "timeseries"), SeedFor("acc-1", "timeseries"))
	assert.NotEqual(t, SeedFor("acc-1", "timeseries"), SeedFor("acc-2", "timeseries"))
	assert.NotEqual(t, SeedFor("acc-1", "timeseries"), SeedFor("acc-1", "attribution"))
	// The separator keeps part boundaries from colliding.
	assert.NotEqual(t, SeedFor("ab", "c"), SeedFor("a", "bc"))
}
