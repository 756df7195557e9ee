// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package swap

import (
	"encoding/binary"

	"go.uber.org/zap"
)

// Options contains options for generating a swap file header.
type Options struct {
	Logger    *zap.Logger
	ByteOrder binary.ByteOrder

	FillSequential bool
}

// Option is a function that sets Options.
type Option func(*Options)

// WithFillSequential sets the page index table to 1..NumPages instead of zeroes.
func WithFillSequential() Option {
	return func(o *Options) {
		o.FillSequential = true
	}
}

// WithByteOrder sets the byte order of the encoded header.
//
// The default is the host byte order.
func WithByteOrder(order binary.ByteOrder) Option {
	return func(o *Options) {
		o.ByteOrder = order
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func applyOptions(opts ...Option) Options {
	options := Options{
		Logger:    zap.NewNop(),
		ByteOrder: binary.NativeEndian,
	}

	for _, opt := range opts {
		opt(&options)
	}

	return options
}
