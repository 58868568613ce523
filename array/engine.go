// Package array computes far-field radiation patterns for linear
// phased arrays: per-angle complex array factors with amplitude and
// phase tapers, electronic beam steering, and optional random
// per-element phase errors modeling calibration imperfection.
package array

import (
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/rjboer/GoBeam/internal/logging"
	"github.com/rjboer/GoBeam/rng"
)

const degToRad = math.Pi / 180.0

// defaultParallelThreshold is the angle count above which the pattern
// loop is dispatched to workers. Below it the dispatch overhead costs
// more than it saves.
const defaultParallelThreshold = 1000

// Engine computes array-factor patterns. The zero value is usable;
// the exported fields tune the parallel angle loop.
type Engine struct {
	// ParallelThreshold is the angle count above which the per-angle
	// loop runs on a worker pool. Zero selects the default (1000).
	ParallelThreshold int
	// Workers caps the pool size. Zero selects runtime.NumCPU().
	Workers int
	// Log receives dispatch decisions at debug level.
	Log logging.Logger
}

// ComputePattern evaluates the complex array factor at each angle in
// thetaDeg and returns one sample per angle, in angle order.
//
// When cfg.PhaseErrorStdDeg is positive, one phase error per element is
// drawn from gen before the angle loop, so every call produces a fresh
// error realization and a seeded generator makes runs reproducible.
// gen may be nil when no randomization is requested. The per-angle
// computations are independent and run on a worker pool above the
// parallel threshold; the result does not depend on which path ran.
func (e *Engine) ComputePattern(cfg Config, thetaDeg []float64, gen *rng.Generator) ([]complex128, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("compute pattern: %w", err)
	}
	if cfg.PhaseErrorStdDeg > 0 && gen == nil {
		return nil, fmt.Errorf("compute pattern: %w", ErrNilGenerator)
	}
	if len(thetaDeg) == 0 {
		return []complex128{}, nil
	}

	// Total per-element phase in radians: intentional taper plus, if
	// enabled, one random error per element. Drawn sequentially here,
	// before any parallel work, because the generator is shared state.
	totalPhase := make([]float64, cfg.NElements)
	for i := 0; i < cfg.NElements; i++ {
		deg := cfg.PhaseWeightsDeg[i]
		if cfg.PhaseErrorStdDeg > 0 {
			deg += gen.Norm(0, cfg.PhaseErrorStdDeg)
		}
		totalPhase[i] = deg * degToRad
	}

	sinSteer := math.Sin(cfg.SteeringAngleDeg * degToRad)
	pattern := make([]complex128, len(thetaDeg))

	if len(thetaDeg) > e.threshold() {
		e.computeParallel(cfg, thetaDeg, sinSteer, totalPhase, pattern)
	} else {
		computeRange(cfg, thetaDeg, sinSteer, totalPhase, pattern, 0, len(thetaDeg))
	}
	return pattern, nil
}

func (e *Engine) threshold() int {
	if e.ParallelThreshold == 0 {
		return defaultParallelThreshold
	}
	return e.ParallelThreshold
}

func (e *Engine) workers() int {
	if e.Workers > 0 {
		return e.Workers
	}
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return n
}

func (e *Engine) logger() logging.Logger {
	if e.Log != nil {
		return e.Log
	}
	return logging.Discard()
}

// computeRange evaluates the array factor for angles [start,end) into
// out. Each slot is written exactly once, so disjoint ranges can run
// concurrently.
func computeRange(cfg Config, thetaDeg []float64, sinSteer float64, totalPhase []float64, out []complex128, start, end int) {
	// Wavenumber normalized to the wavelength, so k*d carries the
	// 2*pi/lambda factor with spacing expressed in wavelengths.
	const k = 2 * math.Pi
	for t := start; t < end; t++ {
		sinTheta := math.Sin(thetaDeg[t] * degToRad)
		var sum complex128
		for n := 0; n < cfg.NElements; n++ {
			position := float64(n) * cfg.SpacingWavelength
			phase := k*position*(sinTheta-sinSteer) + totalPhase[n]
			sum += complex(cfg.AmplitudeWeights[n]*math.Cos(phase), cfg.AmplitudeWeights[n]*math.Sin(phase))
		}
		out[t] = sum
	}
}

// computeParallel splits the angle grid into contiguous ranges, one per
// worker. Slots are independent, so no ordering or locking is needed.
func (e *Engine) computeParallel(cfg Config, thetaDeg []float64, sinSteer float64, totalPhase []float64, out []complex128) {
	workers := e.workers()
	chunk := (len(thetaDeg) + workers - 1) / workers
	e.logger().Debug("parallel pattern dispatch",
		logging.F("angles", len(thetaDeg)),
		logging.F("workers", workers),
		logging.F("chunk", chunk),
	)

	var wg sync.WaitGroup
	for start := 0; start < len(thetaDeg); start += chunk {
		end := start + chunk
		if end > len(thetaDeg) {
			end = len(thetaDeg)
		}
		wg.Add(1)
		go func(s, t int) {
			defer wg.Done()
			computeRange(cfg, thetaDeg, sinSteer, totalPhase, out, s, t)
		}(start, end)
	}
	wg.Wait()
}
