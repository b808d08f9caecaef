package sealevel

import (
	"math/rand"

	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// Forcing is a discrete-time random walk on sea level:
//
//	next = current + delta*N(0,1)
//
// Seeded for reproducibility; unbounded. delta=0 degenerates to a constant
// sequence.
type Forcing struct {
	rng   *rand.Rand
	delta float64
	level float64
	hist  []float64
}

// New starts the walk at sl0 with step scale delta.
func New(sl0, delta float64, seed int64) *Forcing {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	return &Forcing{
		rng:   rng,
		delta: delta,
		level: sl0,
		hist:  []float64{sl0},
	}
}

// Advance draws the next sea level, appends it to the history and returns it.
func (f *Forcing) Advance() float64 {
	f.level += f.delta * f.rng.NormFloat64()
	f.hist = append(f.hist, f.level)
	return f.level
}

// Level returns the current sea level without advancing.
func (f *Forcing) Level() float64 { return f.level }

// History returns the append-only sea-level series, first entry the initial
// level.
func (f *Forcing) History() []float64 { return f.hist }
