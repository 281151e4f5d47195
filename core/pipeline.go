package core

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/sync/errgroup"
)

// Analyze runs the full phase sequence for one target: resolve the series,
// derive its statistics, run the sampler and the integrator concurrently
// (they share nothing but the two derived parameters), and format the
// result line.
func (rc *RunContext) Analyze(target string) (string, error) {
	start := time.Now()

	p, err := rc.Store.Get(target)
	if err != nil {
		return "", err
	}

	log.Printf("Analyzing %s: %d observations (time: %v)", p.Identifier, len(p.Returns), time.Since(start))

	p.Mean = Mean(p.Returns)
	sdev, err := StdDev(p.Returns)
	if err != nil {
		return "", err
	}
	if sdev == 0 {
		// everything downstream divides by the deviation
		return "", fmt.Errorf("%w: %s has zero variance", ErrDegenerateDistribution, p.Identifier)
	}
	p.StdDev = sdev

	g, _ := errgroup.WithContext(rc.Context)

	g.Go(func() error {
		sample, err := rc.Sampler.Sample(p.Mean, p.StdDev)
		if err != nil {
			return err
		}
		p.MonteCarloVaR = PercentileLoss(sample)
		return nil
	})

	g.Go(func() error {
		threshold, err := AnalyticVaR(p.Mean, p.StdDev)
		if err != nil {
			return err
		}
		p.AnalyticVaR = threshold
		return nil
	})

	if err := g.Wait(); err != nil {
		return "", err
	}

	log.Printf("Analysis for %s complete (time: %v)", p.Identifier, time.Since(start))
	return FormatReport(p), nil
}
