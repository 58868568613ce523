package array

import "math"

// SteeringPhases returns the progressive per-element phase, in degrees,
// that points the main beam at steerDeg for the given spacing. This is
// how phased-array hardware steers: a linear phase ramp across the
// aperture. Installing the result as Config.PhaseWeightsDeg with
// SteeringAngleDeg left at zero is equivalent to setting
// SteeringAngleDeg directly.
func SteeringPhases(n int, spacingWavelength, steerDeg float64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	// Element n sits at n*d wavelengths; cancelling its path-length
	// phase k*n*d*sin(steer) needs -360*n*d*sin(steer) degrees.
	delta := -360 * spacingWavelength * math.Sin(steerDeg*degToRad)
	phases := make([]float64, n)
	for i := range phases {
		phases[i] = float64(i) * delta
	}
	return phases
}
