// SPDX-License-Identifier: MIT
// Package: gradstats/cohort
//
// options.go — functional options for Generate.
//
// Contract:
//   • Options are functional (type Option func(*genConfig)).
//   • WithRand panics on nil to surface programmer error early.
//   • Numeric bounds are NOT validated here: their constraints span several
//     fields, so Generate checks the resolved Params and returns
//     ErrConfiguration instead.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package cohort

import (
	"math/rand"
)

// Option customizes a Generate call by mutating a genConfig before any draw.
type Option func(*genConfig)

// WithSeed seeds the private stream used by Generate.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.seed = seed
		c.rng = nil
	}
}

// WithRand provides an explicit RNG; draws advance the caller's stream, so
// consecutive calls sharing r produce different datasets.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("cohort: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithPassedOutRange sets the passed-out draw range [low, high).
func WithPassedOutRange(low, high int) Option {
	return func(c *genConfig) {
		c.params.PassedOutLow, c.params.PassedOutHigh = low, high
	}
}

// WithPlacedFloor sets the inclusive lower bound of placed draws.
func WithPlacedFloor(floor int) Option {
	return func(c *genConfig) {
		c.params.PlacedFloor = floor
	}
}

// WithMargin sets the minimum unemployed count per year.
func WithMargin(margin int) Option {
	return func(c *genConfig) {
		c.params.Margin = margin
	}
}

// WithParams replaces all numeric bounds at once.
func WithParams(p Params) Option {
	return func(c *genConfig) {
		c.params = p
	}
}
