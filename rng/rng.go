// Package rng provides a small deterministic pseudo-random generator
// for reproducible simulations: a PCG-32 core with a Box-Muller normal
// layer on top. The entire output stream is fixed by the seed, which is
// what makes Monte Carlo runs of the pattern engine repeatable.
package rng

import (
	"math"
	"math/bits"
)

// multiplier is the 64-bit LCG multiplier of the PCG family.
const multiplier = 6364136223846793005

// DefaultSeed seeds the generator when the caller has no preference.
const DefaultSeed uint64 = 0x853c49e6748fea9b

// Generator is a PCG-32 generator. It is deterministic and cheap, but
// not safe for concurrent use; give each goroutine its own instance
// (see Split).
type Generator struct {
	state uint64
	inc   uint64

	// Box-Muller produces deviates in pairs; the second of each pair is
	// cached here and consumed by the next Norm call.
	spare    float64
	hasSpare bool
}

// New returns a generator seeded with seed.
func New(seed uint64) *Generator {
	g := &Generator{}
	g.Seed(seed)
	return g
}

// Default returns a generator seeded with DefaultSeed.
func Default() *Generator {
	return New(DefaultSeed)
}

// Seed reinitializes the generator from seed. The increment is forced
// odd (the output permutation requires it) and one draw is discarded to
// mix the initial state. Any cached normal deviate is dropped, so the
// sequence after Seed depends only on seed.
func (g *Generator) Seed(seed uint64) {
	g.state = seed
	g.inc = seed<<1 | 1
	g.spare = 0
	g.hasSpare = false
	g.Uint32()
}

// Uint32 returns the next 32 random bits. The state advances by a
// linear congruential step; the output is the XSH-RR permutation of the
// pre-advance state, which is what gives PCG its statistical quality
// over the bare linear recurrence.
func (g *Generator) Uint32() uint32 {
	old := g.state
	g.state = old*multiplier + g.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}

// Uint64 returns 64 random bits from two consecutive Uint32 draws.
func (g *Generator) Uint64() uint64 {
	hi := uint64(g.Uint32())
	return hi<<32 | uint64(g.Uint32())
}

// Float64 returns a uniform sample in (0,1]. The lower bound is open so
// the logarithm in the Box-Muller transform stays finite.
func (g *Generator) Float64() float64 {
	return (float64(g.Uint32()) + 1) / (1 << 32)
}

// Norm returns a normal sample with the given mean and standard
// deviation. Box-Muller yields two independent standard deviates per
// pair of uniforms; one is returned, the other is cached and consumed
// by the next call without drawing new uniforms. The cached deviate is
// stored unscaled and takes the mean and deviation of the call that
// consumes it.
func (g *Generator) Norm(mean, stdDev float64) float64 {
	if g.hasSpare {
		g.hasSpare = false
		return mean + stdDev*g.spare
	}
	var u1, u2 float64
	for {
		u1 = g.Float64()
		u2 = g.Float64()
		if u1 > 1e-7 {
			break
		}
	}
	r := math.Sqrt(-2 * math.Log(u1))
	g.spare = r * math.Sin(2*math.Pi*u2)
	g.hasSpare = true
	return mean + stdDev*r*math.Cos(2*math.Pi*u2)
}

// Split derives n child generators by drawing seeds from g. The
// children are fully determined by the parent's state at the time of
// the call, so parallel consumers that partition work by a fixed
// layout stay reproducible regardless of scheduling. The parent
// advances by n Uint64 draws.
func (g *Generator) Split(n int) []*Generator {
	children := make([]*Generator, n)
	for i := range children {
		children[i] = New(g.Uint64())
	}
	return children
}
