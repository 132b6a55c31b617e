package engine

import (
	"fmt"
	"math/rand"
)

// Draw is one piece handed out by a randomizer.
type Draw struct {
	Kind  Kind
	State int
}

// Randomizer produces the piece sequence of a session.
type Randomizer interface {
	Next() Draw
}

// Policy names a randomizer.
type Policy string

const (
	// PolicyUniform picks every kind with equal probability and a random
	// spawn rotation.
	PolicyUniform Policy = "uniform"
	// PolicyBag deals shuffled bags of all seven kinds, always in state 0.
	PolicyBag Policy = "bag"
)

// NewRandomizer builds the randomizer for a policy around rng.
// An empty policy selects PolicyUniform.
func NewRandomizer(p Policy, rng *rand.Rand) (Randomizer, error) {
	switch p {
	case PolicyUniform, "":
		return &uniformRandomizer{rng: rng}, nil
	case PolicyBag:
		return &bagRandomizer{rng: rng}, nil
	default:
		return nil, fmt.Errorf("engine: unknown randomizer %q", p)
	}
}

type uniformRandomizer struct {
	rng *rand.Rand
}

func (u *uniformRandomizer) Next() Draw {
	return Draw{
		Kind:  AllKinds[u.rng.Intn(len(AllKinds))],
		State: u.rng.Intn(NumStates),
	}
}

type bagRandomizer struct {
	rng *rand.Rand
	bag []Kind
}

func (b *bagRandomizer) Next() Draw {
	if len(b.bag) == 0 {
		b.refill()
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return Draw{Kind: k}
}

func (b *bagRandomizer) refill() {
	b.bag = append(b.bag[:0], AllKinds[:]...)
	for i := len(b.bag) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	}
}
