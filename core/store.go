package core

import (
	"fmt"
	"strings"

	ex "github.com/Live2Bloom/predictive-risk-engine/extensions"
	m "github.com/Live2Bloom/predictive-risk-engine/models"
)

const (
	// TableSize is a small prime sized for low collision rates over the
	// expected identifier cardinality (tens of tickers).
	TableSize = 11

	// MaxIdentifierLen is the fixed identifier budget; longer labels are
	// rejected at ingestion rather than truncated.
	MaxIdentifierLen = 19

	initialCapacity = 50
)

// PortfolioStore maps identifiers to their return series. Placement uses the
// legacy hash, so non-colliding datasets land in the same slots as historical
// runs, but each slot chains distinct identifiers instead of silently merging
// a later identifier into an earlier one's series.
type PortfolioStore struct {
	buckets [TableSize][]*m.Portfolio
}

func NewPortfolioStore() *PortfolioStore {
	return &PortfolioStore{}
}

// hashIdentifier maps an identifier to a slot in [0, TableSize). The fold is
// djb2-shaped: accumulator seeded with 5381, each upper-cased character
// weighted by alphabet position ('A' bumped to 3 so it still contributes),
// accumulator*33 + weight, reduced mod TableSize with negatives folded back.
// Collisions are defined behavior, not an error.
func hashIdentifier(identifier string) int {
	total := int64(5381)
	for _, c := range strings.ToUpper(identifier) {
		weight := int64(c) - 'A'
		if weight == 0 {
			weight = 3
		}
		total = total*33 + weight
	}

	index := int(total % TableSize)
	if index < 0 {
		index = -index
	}
	return index
}

// Upsert appends value to the series for identifier, creating the portfolio
// with zeroed statistics on first sight.
func (ps *PortfolioStore) Upsert(identifier string, value float64) *m.Portfolio {
	index := hashIdentifier(identifier)
	p := ex.FilterFirstPtr(ps.buckets[index], func(c *m.Portfolio) bool {
		return ex.AreEqual(c.Identifier, identifier)
	})

	if p == nil {
		p = &m.Portfolio{
			Identifier: identifier,
			Returns:    make([]float64, 0, initialCapacity),
		}
		ps.buckets[index] = append(ps.buckets[index], p)
	}

	appendReturn(p, value)
	return p
}

// appendReturn grows the series by doubling on overflow. Existing
// observations keep their insertion order across growth.
func appendReturn(p *m.Portfolio, value float64) {
	if len(p.Returns) == cap(p.Returns) {
		grown := make([]float64, len(p.Returns), cap(p.Returns)*2)
		copy(grown, p.Returns)
		p.Returns = grown
	}
	p.Returns = append(p.Returns, value)
}

// Get resolves the portfolio for identifier. A missing identifier is the only
// recoverable, user-facing failure in the store.
func (ps *PortfolioStore) Get(identifier string) (*m.Portfolio, error) {
	index := hashIdentifier(identifier)
	p := ex.FilterFirstPtr(ps.buckets[index], func(c *m.Portfolio) bool {
		return ex.AreEqual(c.Identifier, identifier)
	})

	if p == nil {
		return nil, fmt.Errorf("%w: %s", ErrAssetNotFound, identifier)
	}
	return p, nil
}
