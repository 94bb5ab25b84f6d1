// SPDX-License-Identifier: MIT
// Package: gradstats/cohort
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • genConfig is the single source of truth for all generation knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newGenConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • seed   = DefaultSeed (42)
//   • rng    = nil → private stream seeded from seed on each Generate call
//   • params = DefaultParams()

package cohort

import (
	"math/rand"
)

// Params holds the numeric bounds of one generation run.
// PassedOut ∈ [PassedOutLow, PassedOutHigh); Placed ∈ [PlacedFloor, PassedOut-Margin).
type Params struct {
	PassedOutLow  int `json:"passedOutLow" yaml:"passedOutLow"`
	PassedOutHigh int `json:"passedOutHigh" yaml:"passedOutHigh"`
	PlacedFloor   int `json:"placedFloor" yaml:"placedFloor"`
	Margin        int `json:"margin" yaml:"margin"`
}

// DefaultParams returns the reference bounds: passed-out [300,600),
// placed floor 200, margin 50.
func DefaultParams() Params {
	return Params{
		PassedOutLow:  DefaultPassedOutLow,
		PassedOutHigh: DefaultPassedOutHigh,
		PlacedFloor:   DefaultPlacedFloor,
		Margin:        DefaultMargin,
	}
}

// Validate reports ErrConfiguration (wrapped with detail) when the bounds
// cannot produce a valid record for every PassedOut in [PassedOutLow, PassedOutHigh).
// The tightest case is PassedOut == PassedOutLow, so it suffices to require
// PassedOutLow-Margin > PlacedFloor.
// Complexity: O(1).
func (p Params) Validate() error {
	if err := validateNonNegative(MethodValidate, "passed-out low bound", p.PassedOutLow); err != nil {
		return err
	}
	if err := validateNonNegative(MethodValidate, "placed floor", p.PlacedFloor); err != nil {
		return err
	}
	if err := validateNonNegative(MethodValidate, "margin", p.Margin); err != nil {
		return err
	}
	if p.PassedOutHigh <= p.PassedOutLow {
		return cohortErrorf(MethodValidate, ErrConfiguration,
			"passed-out range [%d,%d) is empty", p.PassedOutLow, p.PassedOutHigh)
	}
	if p.PassedOutLow-p.Margin <= p.PlacedFloor {
		return cohortErrorf(MethodValidate, ErrConfiguration,
			"placed range [%d,%d) is empty for passed-out=%d with margin %d",
			p.PlacedFloor, p.PassedOutLow-p.Margin, p.PassedOutLow, p.Margin)
	}

	return nil
}

// genConfig aggregates all knobs used by Generate.
// It is passed by VALUE (immutable to callers).
type genConfig struct {
	// Seed for the private stream; ignored when rng is set.
	seed int64
	// Shared RNG stream; nil means "private stream per call".
	rng *rand.Rand
	// Numeric bounds.
	params Params
}

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order; last-wins semantics.
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		seed:   DefaultSeed,
		rng:    nil,
		params: DefaultParams(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom returns cfg.rng if present (shared stream), else a private
// stream seeded by cfg.seed.
func rngFrom(cfg genConfig) *rand.Rand {
	if cfg.rng != nil {
		return cfg.rng
	}

	return rand.New(rand.NewSource(cfg.seed))
}
