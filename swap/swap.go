// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package swap provides functions to generate swap file headers.
//
// A swap file header describes a fixed table of pages:
//
//	offset  size       field
//	0       8          page count
//	8       8          page size
//	16      8 * count  page index table
//
// An index of 0 marks a page that is not present in the swap file.
// An index of k marks a page stored at HeaderSize + (k-1)*PageSize.
package swap

import (
	"encoding/binary"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/sudomateo/go-swapfile/internal/swapstructs"
)

// Swap file geometry.
const (
	NumPages   = swapstructs.NumPages
	PageSize   = swapstructs.PageSize
	HeaderSize = swapstructs.HeaderSize
)

// Header is the in-memory swap file header.
type Header struct {
	NumPages uint64
	PageSize uint64
	Indices  [NumPages]uint64
}

// NewHeader builds a swap file header.
//
// The page index table is zeroed unless WithFillSequential is given.
func NewHeader(opts ...Option) *Header {
	options := applyOptions(opts...)

	h := &Header{
		NumPages: NumPages,
		PageSize: PageSize,
	}

	if options.FillSequential {
		for i := range h.Indices {
			h.Indices[i] = uint64(i) + 1
		}
	}

	return h
}

// Encode returns the header encoded in the given byte order.
func (h *Header) Encode(order binary.ByteOrder) []byte {
	buf := swapstructs.SwapFileHeader(make([]byte, HeaderSize))

	buf.PutNPages(order, h.NumPages)
	buf.PutPageSize(order, h.PageSize)

	for i, idx := range h.Indices {
		buf.PutIndex(order, i, idx)
	}

	return buf
}

// WriteTo writes the header in native byte order to w.
//
// Use Encode to pick another byte order, WithByteOrder only applies to Write.
func (h *Header) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(h.Encode(binary.NativeEndian))

	return int64(n), err
}

// Write creates or truncates the file at path and writes a swap file header into it.
//
// On failure the contents of path are undefined, no cleanup is attempted.
func Write(path string, opts ...Option) error {
	options := applyOptions(opts...)

	header := NewHeader(opts...)
	buf := header.Encode(options.ByteOrder)

	logger := options.Logger.With(zap.String("path", path))

	logger.Debug("writing swap file header",
		zap.Uint64("pages", header.NumPages),
		zap.Uint64("page_size", header.PageSize),
		zap.Stringer("byte_order", options.ByteOrder),
		zap.Bool("fill_sequential", options.FillSequential),
	)

	f, err := openForWrite(path)
	if err != nil {
		return fmt.Errorf("failed to open swap file: %w", err)
	}

	defer f.Close() //nolint:errcheck

	if _, err = f.Write(buf); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	if err = f.Sync(); err != nil {
		return fmt.Errorf("failed to sync header: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close swap file: %w", err)
	}

	logger.Debug("swap file header written", zap.Int("size", len(buf)))

	return nil
}
