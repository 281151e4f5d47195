package core

import "errors"

// Data-dependent failure taxonomy for a run. Usage and I/O problems live at
// the CLI boundary; each of these maps to its own exit condition there.
var (
	ErrAssetNotFound          = errors.New("asset not found in dataset")
	ErrInsufficientData       = errors.New("fewer than 2 observations, sample deviation is undefined")
	ErrDegenerateDistribution = errors.New("degenerate distribution, deviation must be positive")
	ErrMalformedSample        = errors.New("synthetic sample contains NaN")
)
