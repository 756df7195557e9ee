// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package swapstructs provides encoded definitions for swap file on-disk structures.
package swapstructs

import "encoding/binary"

// Swap file geometry.
const (
	NumPages = 256
	PageSize = 256
)

// Field offsets within the swap file header.
const (
	NPagesOffset   = 0
	PageSizeOffset = 8
	IndicesOffset  = 16
)

// IndexSize is the size of a single page index table entry.
const IndexSize = 8

// HeaderSize is the total size of the swap file header.
const HeaderSize = IndicesOffset + NumPages*IndexSize

// SwapFileHeader is a byte slice of HeaderSize bytes holding an encoded swap file header.
//
// The byte order is chosen by the caller, the layout has no endianness marker.
type SwapFileHeader []byte

// NPages returns the page count.
func (s SwapFileHeader) NPages(order binary.ByteOrder) uint64 {
	return order.Uint64(s[NPagesOffset:])
}

// PutNPages sets the page count.
func (s SwapFileHeader) PutNPages(order binary.ByteOrder, v uint64) {
	order.PutUint64(s[NPagesOffset:], v)
}

// PageSize returns the page size.
func (s SwapFileHeader) PageSize(order binary.ByteOrder) uint64 {
	return order.Uint64(s[PageSizeOffset:])
}

// PutPageSize sets the page size.
func (s SwapFileHeader) PutPageSize(order binary.ByteOrder, v uint64) {
	order.PutUint64(s[PageSizeOffset:], v)
}

// Index returns the i-th entry of the page index table.
func (s SwapFileHeader) Index(order binary.ByteOrder, i int) uint64 {
	return order.Uint64(s[IndicesOffset+i*IndexSize:])
}

// PutIndex sets the i-th entry of the page index table.
func (s SwapFileHeader) PutIndex(order binary.ByteOrder, i int, v uint64) {
	order.PutUint64(s[IndicesOffset+i*IndexSize:], v)
}
