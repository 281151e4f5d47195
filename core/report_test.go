package core

import (
	"testing"

	ex "github.com/Live2Bloom/predictive-risk-engine/extensions"
	m "github.com/Live2Bloom/predictive-risk-engine/models"
)

func Test_Report_FormatsFiveFieldsWithFourDecimals(t *testing.T) {
	p := &m.Portfolio{
		Identifier:    "SPY",
		Mean:          0.0025,
		StdDev:        0.0155,
		MonteCarloVaR: -0.025,
		AnalyticVaR:   -0.024,
	}

	ex.AssertAreEqual(t, "output line", "SPY,0.0025,98.4500,-2.5000,-2.4000", FormatReport(p))
}

func Test_Report_OrdersVaRPairRegardlessOfSource(t *testing.T) {
	p := &m.Portfolio{
		Identifier:    "BOND",
		Mean:          0.001,
		StdDev:        0.002,
		MonteCarloVaR: -0.002, // analytic came out lower this run
		AnalyticVaR:   -0.004,
	}

	ex.AssertAreEqual(t, "output line", "BOND,0.0010,99.8000,-0.4000,-0.2000", FormatReport(p))
}

func Test_Report_StabilityIsUnclamped(t *testing.T) {
	p := &m.Portfolio{
		Identifier:    "CRYPTO",
		Mean:          0.0,
		StdDev:        1.5, // extreme volatility pushes the score negative
		MonteCarloVaR: -2.4,
		AnalyticVaR:   -2.5,
	}

	ex.AssertAreEqual(t, "output line", "CRYPTO,0.0000,-50.0000,-250.0000,-240.0000", FormatReport(p))
}
