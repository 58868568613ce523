package array

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// dbFloorRatio limits the dynamic range of PatternDB to -120 dB below
// the peak, keeping nulls finite.
const dbFloorRatio = 1e-6

// AngleGrid returns n observation angles evenly spaced over
// [startDeg, endDeg], endpoints included.
func AngleGrid(startDeg, endDeg float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if n == 1 {
		return []float64{startDeg}
	}
	return floats.Span(make([]float64, n), startDeg, endDeg)
}

// PatternDB converts a complex pattern to magnitude in dB normalized to
// its peak, so the main beam sits at 0 dB. Magnitudes below the peak by
// more than the floor ratio are clamped rather than running to -Inf at
// pattern nulls. An all-zero pattern yields all-zero dB values.
func PatternDB(pattern []complex128) []float64 {
	db := make([]float64, len(pattern))
	if len(pattern) == 0 {
		return db
	}
	mags := make([]float64, len(pattern))
	for i, v := range pattern {
		mags[i] = cmplx.Abs(v)
	}
	peak := floats.Max(mags)
	if peak == 0 {
		return db
	}
	floor := peak * dbFloorRatio
	for i, m := range mags {
		if m < floor {
			m = floor
		}
		db[i] = 20 * math.Log10(m/peak)
	}
	return db
}

// PeakMagnitude returns the index and magnitude of the strongest
// pattern sample. ok is false for an empty pattern.
func PeakMagnitude(pattern []complex128) (idx int, mag float64, ok bool) {
	if len(pattern) == 0 {
		return 0, 0, false
	}
	for i, v := range pattern {
		if m := cmplx.Abs(v); m > mag {
			mag = m
			idx = i
		}
	}
	return idx, mag, true
}
