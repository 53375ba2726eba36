package world

import "math/rand"

// Rand is the random source used by generation and by the simulation rules.
// *rand.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

func NewRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed))
}
