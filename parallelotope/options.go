// SPDX-License-Identifier: MIT

// Package parallelotope: functional configuration.
//
// Design goals:
//   - Deterministic behavior: no global state; options never change results,
//     only how (and whether) they are checked, logged and scheduled.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package parallelotope

import (
	"io"
	"log/slog"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultParallelAxes solves the per-axis vertex systems one after another.
	DefaultParallelAxes = false

	// DefaultTopologyCheck keeps construction permissive: only shapes are validated.
	DefaultTopologyCheck = false

	// MaxCornerDim bounds Corners to 2^MaxCornerDim vertices.
	MaxCornerDim = 16
)

const panicNilLogger = "parallelotope: WithLogger: logger must not be nil"

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*options)

type options struct {
	logger        *slog.Logger
	parallelAxes  bool
	topologyCheck bool
}

// WithLogger routes debug records (solves, failures) to l.
// Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *options) { o.logger = l }
}

// WithParallelAxes solves the dim facet-flipped systems concurrently.
// Results are identical to the sequential path.
func WithParallelAxes() Option {
	return func(o *options) { o.parallelAxes = true }
}

// WithTopologyCheck makes construction verify that the half-spaces bound a
// closed, full-dimensional parallelotope:
//   - every slab is non-empty and has positive width: b[i] + b[i+dim] > 0;
//   - when A carries 2·dim rows, row i+dim equals -row i;
//   - the upper-facet system has a unique solution.
func WithTopologyCheck() Option {
	return func(o *options) { o.topologyCheck = true }
}

func defaultOptions() options {
	return options{
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		parallelAxes:  DefaultParallelAxes,
		topologyCheck: DefaultTopologyCheck,
	}
}

func gatherOptions(user ...Option) options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
