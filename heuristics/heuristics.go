// Package heuristics implements the deterministic assessment rules of the
// GRC core: gap detection, evidence matching, CMMC level gating, AI risk
// classification, FIPS 199 baseline selection, and POA&M synthesis. These
// are auditable first-pass signals, not semantic judgments; a higher-level
// reasoner interprets them.
package heuristics

import (
	"time"

	"github.com/ethanolivertroy/grc-core/framework"
	"github.com/ethanolivertroy/grc-core/mapping"
)

// DefaultExcerptLimit bounds evidence excerpts returned to callers.
const DefaultExcerptLimit = 2000

// Rules evaluates heuristic assessment rules over loaded framework data.
// All methods are safe for concurrent use.
type Rules struct {
	store        *framework.Store
	resolver     *framework.Resolver
	index        *mapping.Index
	now          func() time.Time
	findingID    func(time.Time) string
	excerptLimit int
}

// Option configures a Rules value.
type Option func(*Rules)

// WithClock substitutes the time source used for finding dates.
func WithClock(now func() time.Time) Option {
	return func(r *Rules) { r.now = now }
}

// WithFindingID substitutes the finding identifier generator.
func WithFindingID(gen func(time.Time) string) Option {
	return func(r *Rules) { r.findingID = gen }
}

// WithExcerptLimit overrides the evidence excerpt length bound.
func WithExcerptLimit(limit int) Option {
	return func(r *Rules) { r.excerptLimit = limit }
}

// New creates a Rules value over the given framework store and mapping
// index. The index may be nil if MapControls is never used.
func New(store *framework.Store, index *mapping.Index, opts ...Option) *Rules {
	r := &Rules{
		store:        store,
		resolver:     framework.NewResolver(store),
		index:        index,
		now:          time.Now,
		findingID:    AdvisoryFindingID,
		excerptLimit: DefaultExcerptLimit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
