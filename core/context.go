package core

import "context"

// RunContext owns all state for one engine run: created at start, populated
// during ingestion, read during analysis, discarded at exit. Nothing is
// shared across runs; a long-lived caller builds one per request.
type RunContext struct {
	Context context.Context
	Store   *PortfolioStore
	Sampler *Sampler
}

func NewRunContext(ctx context.Context, seed uint64) *RunContext {
	return &RunContext{
		Context: ctx,
		Store:   NewPortfolioStore(),
		Sampler: NewSampler(seed),
	}
}
