package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestNewDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 20; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	assert.Less(t, same, 20)
}

func TestUniformRange(t *testing.T) {
	rng := New(7)
	for i := 0; i < 1000; i++ {
		v := Uniform(rng, -1, 1)
		assert.GreaterOrEqual(t, v, -1.0)
		assert.Less(t, v, 1.0)
	}
}

func TestUniformMapsEndpoints(t *testing.T) {
	seq := NewSequence(0, 0.5, 0.75)
	assert.Equal(t, -1.0, Uniform(seq, -1, 1))
	assert.Equal(t, 0.0, Uniform(seq, -1, 1))
	assert.Equal(t, 0.5, Uniform(seq, -1, 1))
}

func TestSequenceWraps(t *testing.T) {
	seq := NewSequence(0.1, 0.2)
	assert.Equal(t, 0.1, seq.Float64())
	assert.Equal(t, 0.2, seq.Float64())
	assert.Equal(t, 0.1, seq.Float64())
	assert.Equal(t, 3, seq.Draws())

	empty := NewSequence()
	assert.Equal(t, 0.0, empty.Float64())
}
