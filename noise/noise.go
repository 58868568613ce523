// Package noise adds calibrated additive white Gaussian noise to
// complex baseband signals. Noise power is derived from the signal's
// measured average power and a target SNR, split evenly between the
// real and imaginary quadratures.
package noise

import (
	"errors"
	"fmt"
	"math"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/rjboer/GoBeam/internal/logging"
	"github.com/rjboer/GoBeam/rng"
)

// ErrEmptySignal reports an AWGN or SNR request on a zero-length
// signal, whose average power is undefined.
var ErrEmptySignal = errors.New("noise: empty signal")

// ErrNilGenerator reports a noise request without a generator.
var ErrNilGenerator = errors.New("noise: nil generator")

// ErrLengthMismatch reports clean/noisy buffers of different lengths.
var ErrLengthMismatch = errors.New("noise: signal lengths differ")

const defaultParallelThreshold = 1000

// chunkSize fixes the per-generator work unit. Samples are always
// partitioned into chunks of this size, each driven by its own child
// generator, so the output is identical whether the chunks run on one
// goroutine or many.
const chunkSize = 1024

// Synthesizer adds circularly-symmetric complex Gaussian noise to
// signals. The zero value is usable; the exported fields tune the
// parallel sample loop.
type Synthesizer struct {
	// ParallelThreshold is the sample count above which chunks are
	// dispatched to a worker pool. Zero selects the default (1000).
	ParallelThreshold int
	// Workers caps the pool size. Zero selects runtime.NumCPU().
	Workers int
	// Log receives dispatch decisions at debug level.
	Log logging.Logger
}

// AddAWGN mutates signal in place, adding zero-mean complex Gaussian
// noise calibrated so that the resulting SNR matches snrDB. The noise
// power is the measured average signal power divided by the linear SNR,
// and each quadrature receives half of it.
//
// Sample draws come from child generators derived from gen, one per
// fixed-size chunk, so for a given seed the result is reproducible and
// independent of worker count. gen advances past the chunk seeds.
func (s *Synthesizer) AddAWGN(signal []complex128, snrDB float64, gen *rng.Generator) error {
	if len(signal) == 0 {
		return fmt.Errorf("add awgn: %w", ErrEmptySignal)
	}
	if gen == nil {
		return fmt.Errorf("add awgn: %w", ErrNilGenerator)
	}

	sigma := math.Sqrt(signalPower(signal) / SNRLinear(snrDB) / 2)

	nChunks := (len(signal) + chunkSize - 1) / chunkSize
	gens := gen.Split(nChunks)

	if len(signal) > s.threshold() {
		s.addParallel(signal, sigma, gens)
		return nil
	}
	for c := 0; c < nChunks; c++ {
		start, end := chunkBounds(c, len(signal))
		addRange(signal[start:end], sigma, gens[c])
	}
	return nil
}

// SNRLinear converts an SNR from decibels to a linear power ratio.
func SNRLinear(snrDB float64) float64 {
	return math.Pow(10, snrDB/10)
}

// MeasureSNR estimates the SNR, in dB, of a noisy signal against its
// clean counterpart by attributing the sample-wise difference to noise.
func MeasureSNR(clean, noisy []complex128) (float64, error) {
	if len(clean) == 0 {
		return 0, fmt.Errorf("measure snr: %w", ErrEmptySignal)
	}
	if len(clean) != len(noisy) {
		return 0, fmt.Errorf("measure snr: %w", ErrLengthMismatch)
	}
	diff := make([]complex128, len(clean))
	for i := range clean {
		diff[i] = noisy[i] - clean[i]
	}
	noisePower := signalPower(diff)
	if noisePower == 0 {
		return math.Inf(1), nil
	}
	return 10 * math.Log10(signalPower(clean)/noisePower), nil
}

// signalPower returns the mean squared magnitude over the samples.
func signalPower(signal []complex128) float64 {
	power := make([]float64, len(signal))
	for i, v := range signal {
		power[i] = real(v)*real(v) + imag(v)*imag(v)
	}
	return stat.Mean(power, nil)
}

func chunkBounds(c, n int) (start, end int) {
	start = c * chunkSize
	end = start + chunkSize
	if end > n {
		end = n
	}
	return start, end
}

// addRange adds noise to a chunk using its own generator. Two deviates
// per sample, one per quadrature, both scaled by the per-quadrature
// standard deviation.
func addRange(signal []complex128, sigma float64, gen *rng.Generator) {
	for i := range signal {
		signal[i] += complex(gen.Norm(0, sigma), gen.Norm(0, sigma))
	}
}

func (s *Synthesizer) addParallel(signal []complex128, sigma float64, gens []*rng.Generator) {
	workers := s.workers()
	s.logger().Debug("parallel noise dispatch",
		logging.F("samples", len(signal)),
		logging.F("chunks", len(gens)),
		logging.F("workers", workers),
	)

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				start, end := chunkBounds(c, len(signal))
				addRange(signal[start:end], sigma, gens[c])
			}
		}()
	}
	for c := range gens {
		jobs <- c
	}
	close(jobs)
	wg.Wait()
}

func (s *Synthesizer) threshold() int {
	if s.ParallelThreshold == 0 {
		return defaultParallelThreshold
	}
	return s.ParallelThreshold
}

func (s *Synthesizer) workers() int {
	if s.Workers > 0 {
		return s.Workers
	}
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	return n
}

func (s *Synthesizer) logger() logging.Logger {
	if s.Log != nil {
		return s.Log
	}
	return logging.Discard()
}
