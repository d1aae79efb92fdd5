package distort

import (
	"errors"
	"math/rand/v2"
)

// ErrInvalidRange is returned when a parameter range is negative or inverted.
var ErrInvalidRange = errors.New("distort: invalid parameter range")

// Params bounds the integer alpha and sigma drawn for each distortion.
// Both ranges are inclusive.
type Params struct {
	AlphaMin, AlphaMax int
	SigmaMin, SigmaMax int
}

// DefaultParams returns alpha in [30, 36] and sigma in [5, 6].
func DefaultParams() Params {
	return Params{
		AlphaMin: 30,
		AlphaMax: 36,
		SigmaMin: 5,
		SigmaMax: 6,
	}
}

// Validate reports whether both ranges are non-negative and ordered.
func (p Params) Validate() error {
	if p.AlphaMin < 0 || p.SigmaMin < 0 || p.AlphaMax < p.AlphaMin || p.SigmaMax < p.SigmaMin {
		return ErrInvalidRange
	}
	return nil
}

// Draw picks alpha and sigma uniformly from the ranges and returns an
// Elastic that shares rng for its displacement fields.
// Draw panics if p is invalid.
func (p Params) Draw(rng *rand.Rand) Elastic {
	if err := p.Validate(); err != nil {
		panic(err)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	alpha := p.AlphaMin + rng.IntN(p.AlphaMax-p.AlphaMin+1)
	sigma := p.SigmaMin + rng.IntN(p.SigmaMax-p.SigmaMin+1)

	return Elastic{
		Alpha: float64(alpha),
		Sigma: float64(sigma),
		Rand:  rng,
	}
}
