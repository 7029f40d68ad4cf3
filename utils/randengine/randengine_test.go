package randengine_test

import (
	"testing"

	"github.com/OpenHUTB/carla-0.9.14/scene"
	"github.com/OpenHUTB/carla-0.9.14/utils/randengine"
	"github.com/stretchr/testify/assert"
)

func TestDeterministic(t *testing.T) {
	a, b := randengine.New(42), randengine.New(42)
	for range 10 {
		assert.Equal(t, a.UUID(), b.UUID())
		assert.Equal(t, a.RangeInt(1, 6), b.RangeInt(1, 6))
	}
}

func TestUUIDMatchesSceneFormat(t *testing.T) {
	e := randengine.New(1)
	for range 20 {
		id := e.UUID()
		m, ok := scene.MatchUUID(id + "_Signal")
		assert.True(t, ok)
		assert.Equal(t, id, m)
	}
}

func TestRanges(t *testing.T) {
	e := randengine.New(3)
	for range 100 {
		v := e.RangeInt(2, 4)
		assert.GreaterOrEqual(t, v, 2)
		assert.LessOrEqual(t, v, 4)
		f := e.Between(1.5, 2.5)
		assert.GreaterOrEqual(t, f, 1.5)
		assert.Less(t, f, 2.5)
		i := e.DiscreteDistribution([]float64{0, 1, 0})
		assert.Equal(t, int32(1), i)
	}
	assert.False(t, e.PTrue(0))
}
