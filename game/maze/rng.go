package maze

import (
	"math/rand"
	"time"
)

// Linear-congruential constants of the seeded sequence.
const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Rand is the source of randomness the generators draw from.
// *rand.Rand satisfies it as well as *LCG.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// LCG is a small reproducible pseudo-random sequence.
// Two sequences started from the same seed yield identical values.
type LCG struct {
	state int64
}

// NewLCG starts a sequence from seed. Seeds are reduced modulo the generator's
// modulus, negative ones included.
func NewLCG(seed int64) *LCG {
	return &LCG{state: normalizeSeed(seed)}
}

// Seed returns the current state of the sequence.
func (l *LCG) Seed() int64 {
	return l.state
}

// Float64 advances the sequence and returns a value in [0,1).
func (l *LCG) Float64() float64 {
	l.state = (l.state*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(l.state) / lcgModulus
}

// Intn returns a value in [0,n). It panics if n <= 0, like rand.Intn.
func (l *LCG) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}
	v := int(l.Float64() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// shuffle permutes n elements with Fisher-Yates.
func shuffle(r Rand, n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

func normalizeSeed(seed int64) int64 {
	s := seed % lcgModulus
	if s < 0 {
		s += lcgModulus
	}
	return s
}

// resolveSeed returns seed, or a time-derived one when seed is 0.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	s := normalizeSeed(time.Now().UnixNano())
	if s == 0 {
		s = 1
	}
	return s
}
