package models

// Portfolio is the per-identifier record: the observed return series plus the
// statistics and risk estimates cached once analysis runs.
type Portfolio struct {
	Identifier string
	Returns    []float64

	Mean   float64
	StdDev float64

	MonteCarloVaR float64 // empirical 5th-percentile loss from the synthetic sample
	AnalyticVaR   float64 // Riemann-integrated 5% threshold
}

// RawRecord is one tokenized input row. Produced per line, consumed
// immediately, never retained.
type RawRecord struct {
	Identifier string
	Value      float64
}
