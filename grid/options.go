// SPDX-License-Identifier: MIT

// Package grid: functional configuration.
// This file defines:
//   - Option / Options (functional options with unexported state),
//   - documented defaults,
//   - WithX constructors with strict validation (panic on nonsensical values),
//   - gatherOptions, the single place defaults and user setters are merged.
//
// Options are fixed at construction time; Clone copies them.
package grid

import "encoding/binary"

// DefaultCapacity is the minimum backing capacity (in cells) reserved by New
// and by reallocating resizes. Zero means "exactly Size() cells".
const DefaultCapacity = 0

// DefaultByteOrder is the byte order used by Dump/Load: the host's native
// order, so that the dump matches the in-memory representation of the store.
var DefaultByteOrder binary.ByteOrder = binary.NativeEndian

const (
	panicNilByteOrder     = "grid: WithByteOrder: order must not be nil"
	panicNegativeCapacity = "grid: WithCapacity: cells must be >= 0"
)

// Option mutates Options. Safe to apply repeatedly; the last writer wins.
type Option func(*Options)

// Options holds the effective configuration of a Grid.
type Options struct {
	order    binary.ByteOrder // DefaultByteOrder
	capacity int              // DefaultCapacity
}

// WithByteOrder selects the byte order used by Dump and Load.
// Use binary.LittleEndian or binary.BigEndian to produce dumps that are
// portable across hosts; the default mirrors memory and is not.
// Panics when order is nil.
func WithByteOrder(order binary.ByteOrder) Option {
	if order == nil {
		panic(panicNilByteOrder)
	}

	return func(o *Options) { o.order = order }
}

// WithCapacity reserves room for at least cells elements.
// ResizeWidth grows in place, without copying, while the new store fits
// the reserved capacity. Panics when cells is negative.
func WithCapacity(cells int) Option {
	if cells < 0 {
		panic(panicNegativeCapacity)
	}

	return func(o *Options) { o.capacity = cells }
}

// gatherOptions applies user setters over the defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		order:    DefaultByteOrder,
		capacity: DefaultCapacity,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins
	}

	return o
}
