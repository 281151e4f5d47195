package core

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// stepSize is the Riemann rectangle width, in the same units as returns.
const stepSize = 0.0001

// AnalyticVaR integrates the Gaussian density from five deviations into the
// left tail (effectively all the mass) until the accumulated probability
// reaches LossQuantile, and returns the x-coordinate at loop exit. The
// crossing overshoots the true quantile by at most one step.
func AnalyticVaR(mean, deviation float64) (float64, error) {
	if deviation <= 0 {
		return 0, fmt.Errorf("%w: deviation %v", ErrDegenerateDistribution, deviation)
	}

	density := distuv.Normal{Mu: mean, Sigma: deviation}

	x := mean - 5*deviation
	mass := 0.0
	for mass < LossQuantile {
		mass += density.Prob(x) * stepSize
		x += stepSize
	}

	return x, nil
}
