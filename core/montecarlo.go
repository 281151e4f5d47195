package core

import (
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
	"time"

	ex "github.com/Live2Bloom/predictive-risk-engine/extensions"
)

const (
	// SampleSize is the synthetic resample drawn per run.
	SampleSize = 10_000

	// LossQuantile is the tail probability both estimators target.
	LossQuantile = 0.05
)

// Sampler draws Box-Muller normal variates from a seedable source.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler builds a sampler. Seed 0 seeds from the clock; any other value
// reproduces the exact sample across runs.
func NewSampler(seed uint64) *Sampler {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Sampler{rng: rand.New(rand.NewPCG(seed, 1))}
}

// Sample generates exactly SampleSize synthetic returns distributed
// N(mean, deviation^2) and returns them sorted ascending.
//
// Each Box-Muller pair consumes two uniforms strictly inside (0, 1]; u1 in
// particular must never be 0 or the radius log blows up.
func (s *Sampler) Sample(mean, deviation float64) ([]float64, error) {
	if deviation <= 0 {
		return nil, fmt.Errorf("%w: deviation %v", ErrDegenerateDistribution, deviation)
	}

	sample := make([]float64, SampleSize)
	for i := 0; i+1 < SampleSize; i += 2 {
		u1 := 1 - s.rng.Float64()
		u2 := 1 - s.rng.Float64()

		radius := math.Sqrt(-2 * math.Log(u1))
		sample[i] = radius*math.Cos(2*math.Pi*u2)*deviation + mean
		sample[i+1] = radius*math.Sin(2*math.Pi*u2)*deviation + mean
	}

	for _, v := range sample {
		if math.IsNaN(v) {
			return nil, ErrMalformedSample
		}
	}

	slices.Sort(sample)
	return sample, nil
}

// PercentileLoss extracts the empirical LossQuantile value from a sorted
// sample: index floor(q*n)-1, which is 499 for the 10,000-point sample.
func PercentileLoss(sorted []float64) float64 {
	index := int(LossQuantile*float64(len(sorted))) - 1
	if index < 0 {
		index = 0
	}
	return sorted[ex.Min(index, len(sorted)-1)]
}
