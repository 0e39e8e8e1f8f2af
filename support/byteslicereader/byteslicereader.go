// Copyright 2018 Dan Jacques. All rights reserved.
// Use of this source code is governed under the MIT License
// that can be found in the LICENSE file.

// Package byteslicereader offers R, a slice-backed reader used to walk a
// fully-buffered capture.
//
// Decoding a capture never needs more than forward traversal over an
// in-memory buffer, so R keeps only a position. Its zero-copy methods, Peek
// and Next, return slices of the underlying buffer; callers must not hold
// those slices past the life of the buffer.
package byteslicereader

import (
	"io"
)

// R is an io.Reader-inspired reader over a byte slice.
//
// The zero value with a populated Buffer is ready to use. R can be copied to
// snapshot its current position.
type R struct {
	// Buffer is the backing buffer for this reader.
	Buffer []byte

	// pos is the read position within Buffer.
	pos int
}

var _ interface {
	io.Reader
	io.ByteReader
} = (*R)(nil)

func (r *R) remainingSlice() []byte {
	if r.pos >= len(r.Buffer) {
		return nil
	}
	return r.Buffer[r.pos:]
}

// Remaining returns the number of unread bytes.
func (r *R) Remaining() int { return len(r.remainingSlice()) }

// Pos returns the current offset into the buffer. Useful for diagnostics.
func (r *R) Pos() int { return r.pos }

// Read implements io.Reader. Read copies data; prefer Next when a view of
// the buffer suffices.
func (r *R) Read(b []byte) (amt int, err error) {
	amt = copy(b, r.remainingSlice())

	r.pos += amt
	if r.pos >= len(r.Buffer) {
		err = io.EOF
	}
	return
}

// ReadByte implements io.ByteReader.
func (r *R) ReadByte() (byte, error) {
	if r.pos >= len(r.Buffer) {
		return 0, io.EOF
	}

	b := r.Buffer[r.pos]
	r.pos++
	return b, nil
}

// PeekByte returns the next byte without advancing the reader.
func (r *R) PeekByte() (byte, error) {
	if remaining := r.remainingSlice(); len(remaining) > 0 {
		return remaining[0], nil
	}
	return 0, io.EOF
}

// Peek returns up to the next n bytes without advancing the reader. The
// returned slice references the underlying buffer.
//
// If fewer than n bytes remain, Peek returns as many as possible.
func (r *R) Peek(n int) []byte {
	v := r.remainingSlice()
	if n < len(v) {
		v = v[:n]
	}
	return v
}

// Next returns the next n bytes and advances the reader. The returned slice
// references the underlying buffer.
//
// If fewer than n bytes remain, Next returns what it can alongside io.EOF.
// Next never returns an error when all requested bytes are returned.
func (r *R) Next(n int) (v []byte, err error) {
	v = r.remainingSlice()
	if n <= len(v) {
		v = v[:n]
	} else {
		err = io.EOF
	}

	r.pos += len(v)
	return
}
