package core

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
)

// Mean is the arithmetic average of the series. An empty series yields 0
// rather than NaN; the pipeline only calls this on a resolved series.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return stat.Mean(values, nil)
}

// StdDev is the sample standard deviation (n-1 denominator). Below two
// observations the estimator is undefined and the run cannot proceed.
func StdDev(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("%w: have %d", ErrInsufficientData, len(values))
	}
	return stat.StdDev(values, nil), nil
}
