package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagDealsEveryKindOncePerBag(t *testing.T) {
	r, err := NewRandomizer(PolicyBag, rand.New(rand.NewSource(1)))
	require.NoError(t, err)

	for bag := 0; bag < 5; bag++ {
		seen := make(map[Kind]bool)
		for i := 0; i < len(AllKinds); i++ {
			d := r.Next()
			assert.Zero(t, d.State)
			assert.False(t, seen[d.Kind], "bag %d repeats %s", bag, d.Kind)
			seen[d.Kind] = true
		}
		assert.Len(t, seen, len(AllKinds))
	}
}

func TestUniformDrawsStayInRange(t *testing.T) {
	r, err := NewRandomizer(PolicyUniform, rand.New(rand.NewSource(3)))
	require.NoError(t, err)

	kinds := make(map[Kind]int)
	states := make(map[int]int)
	for i := 0; i < 700; i++ {
		d := r.Next()
		require.Less(t, int(d.Kind), len(AllKinds))
		require.GreaterOrEqual(t, d.State, 0)
		require.Less(t, d.State, NumStates)
		kinds[d.Kind]++
		states[d.State]++
	}
	assert.Len(t, kinds, len(AllKinds))
	assert.Len(t, states, NumStates)
}

func TestRandomizerSameSeedSameSequence(t *testing.T) {
	for _, p := range []Policy{PolicyUniform, PolicyBag} {
		a, err := NewRandomizer(p, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		b, err := NewRandomizer(p, rand.New(rand.NewSource(42)))
		require.NoError(t, err)
		for i := 0; i < 50; i++ {
			assert.Equal(t, a.Next(), b.Next(), "policy %s draw %d", p, i)
		}
	}
}

func TestNewRandomizerDefaultsToUniform(t *testing.T) {
	r, err := NewRandomizer("", rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.IsType(t, &uniformRandomizer{}, r)

	_, err = NewRandomizer("weighted", rand.New(rand.NewSource(1)))
	assert.Error(t, err)
}
