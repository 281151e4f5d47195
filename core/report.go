package core

import (
	"fmt"

	m "github.com/Live2Bloom/predictive-risk-engine/models"
)

// Presentation normalization: raw fractional returns in [0, 1] map to
// [0, 100] percentage points.
const (
	normFloor = 0.0
	normCap   = 1.0
)

// FormatReport serializes an analyzed portfolio as the single output line:
// identifier, mean, stability score, min VaR %, max VaR %, numerics with four
// decimals. The stability score inverts volatility (lower deviation scores
// higher) and is deliberately unclamped for extreme inputs.
func FormatReport(p *m.Portfolio) string {
	minVaR, maxVaR := p.MonteCarloVaR, p.AnalyticVaR
	if maxVaR < minVaR {
		minVaR, maxVaR = maxVaR, minVaR
	}

	minPct := (minVaR - normFloor) / (normCap - normFloor) * 100
	maxPct := (maxVaR - normFloor) / (normCap - normFloor) * 100
	stability := 100 - (p.StdDev-normFloor)/(normCap-normFloor)*100

	return fmt.Sprintf("%s,%.4f,%.4f,%.4f,%.4f", p.Identifier, p.Mean, stability, minPct, maxPct)
}
