package array

import "errors"

// ErrWeightLength reports a per-element weight slice whose length does
// not match the element count.
var ErrWeightLength = errors.New("array: weight length does not match element count")

// ErrNilGenerator reports a configuration that needs random phase
// errors without a generator to draw them from.
var ErrNilGenerator = errors.New("array: phase error randomization requires a generator")

// Config describes a linear phased array. Spacing is expressed in
// wavelengths, angles in degrees. The per-element slices must have
// exactly NElements entries; Validate reports a mismatch.
type Config struct {
	// NElements is the number of radiating elements.
	NElements int
	// SpacingWavelength is the element pitch as a fraction of the
	// carrier wavelength (0.5 is the classic half-wave spacing).
	SpacingWavelength float64
	// SteeringAngleDeg points the main beam away from broadside.
	SteeringAngleDeg float64
	// AmplitudeWeights holds the per-element amplitude taper.
	AmplitudeWeights []float64
	// PhaseWeightsDeg holds the intentional per-element phase taper.
	PhaseWeightsDeg []float64
	// PhaseErrorStdDeg enables random per-element phase errors with the
	// given standard deviation. Zero disables randomization. Errors are
	// redrawn on every pattern computation, which is what Monte Carlo
	// sweeps want; seed the generator for reproducible runs.
	PhaseErrorStdDeg float64
}

// NewConfig returns a Config for n uniformly weighted, zero-phase
// elements at the given spacing. Replace the weight slices to apply a
// taper.
func NewConfig(n int, spacingWavelength float64) Config {
	return Config{
		NElements:         n,
		SpacingWavelength: spacingWavelength,
		AmplitudeWeights:  UniformTaper(n),
		PhaseWeightsDeg:   make([]float64, n),
	}
}

// Validate checks that the per-element slices match NElements.
func (c Config) Validate() error {
	if len(c.AmplitudeWeights) != c.NElements || len(c.PhaseWeightsDeg) != c.NElements {
		return ErrWeightLength
	}
	return nil
}
