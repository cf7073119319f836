// SPDX-License-Identifier: MIT
package parser

import (
	"github.com/sirupsen/logrus"
)

type (
	// Opts options to guide a Survey operation.
	Opts struct {
		Logger   logrus.FieldLogger
		PoolSize int
		Debug    bool
	}

	// Option defines the Survey functional option type.
	Option func(*Opts)
)

const (
	// defPoolSize caps a Survey's workers at one per recognizer.
	defPoolSize = 5
)

// NewOpts configures the Survey's Opts.
func NewOpts() *Opts {
	return &Opts{
		PoolSize: defPoolSize,
		Logger:   fLogger,
	}
}

// Validate populates missing Opts entries with defaults.
func (o *Opts) Validate() {
	if o.PoolSize < 1 {
		o.PoolSize = defPoolSize
	}
	if o.Logger == nil {
		o.Logger = fLogger
	}
}

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(o *Opts) { o.Logger = logger } }

// WithPoolSize configures the worker pool size option.
func WithPoolSize(size int) Option { return func(o *Opts) { o.PoolSize = size } }

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(o *Opts) { o.Debug = debug } }
