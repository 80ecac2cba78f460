/*
DESCRIPTION
  cursor.go provides bit-level read access over an immutable byte buffer,
  addressed by an explicit bit offset rather than by streaming from an
  io.Reader.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bits provides bit-cursor primitives for reading MSB-first,
// sub-byte-addressed syntax elements out of a fixed byte buffer, the way
// an H.264 RBSP is addressed by the bitstream parsing core built on top
// of it.
package bits

import "errors"

// ErrOutOfBounds is returned whenever a read would require addressing a
// byte beyond the declared byte count of the buffer.
var ErrOutOfBounds = errors.New("bits: read out of bounds")

// maxReadBits bounds a single Show/Get call; nothing in the H.264 VLC
// syntax ever needs more than a few dozen bits at once, and bounding this
// keeps a corrupt numBits argument from looping forever.
const maxReadBits = 32

// ShowBits returns the next numBits bits from buf, starting at
// totBitOffset bits from the start of buf, without advancing anything.
// byteCount is the declared length of buf in bytes; a read that would
// require touching buf[byteCount] or beyond fails with ErrOutOfBounds.
//
// Bits are MSB-first: bit k (0-based, from the start of the stream) within
// a byte sits at mask 1<<(7-k mod 8), matching section 6 of the bitstream
// layout this package implements.
func ShowBits(buf []byte, totBitOffset, byteCount, numBits int) (int, error) {
	if numBits == 0 {
		return 0, nil
	}
	if numBits < 0 || numBits > maxReadBits {
		return 0, errors.New("bits: numBits out of range")
	}

	byteOffset := totBitOffset / 8
	bitOffset := 7 - (totBitOffset % 8)

	info := 0
	for n := numBits; n > 0; n-- {
		if byteOffset >= byteCount {
			return 0, ErrOutOfBounds
		}
		bit := (buf[byteOffset] >> uint(bitOffset)) & 1
		info = (info << 1) | int(bit)

		bitOffset--
		if bitOffset < 0 {
			bitOffset += 8
			byteOffset++
		}
	}
	return info, nil
}

// GetBits is identical to ShowBits; it exists as a distinct name because
// the facade built on top of this package pairs every GetBits call with an
// explicit advance of the caller's cursor, whereas ShowBits is always a
// pure peek. The two are kept as separate exported entry points so callers
// reading this package's source can tell which discipline a given call
// site follows, matching the reference decoder's own GetBits/ShowBits
// split.
func GetBits(buf []byte, totBitOffset, byteCount, numBits int) (int, error) {
	return ShowBits(buf, totBitOffset, byteCount, numBits)
}

// Cursor is a read-only view over buf plus a mutable bit offset. The zero
// value is not usable; construct with NewCursor.
type Cursor struct {
	buf       []byte
	byteCount int
	off       int
}

// NewCursor returns a Cursor over buf, with byteCount defaulting to
// len(buf).
func NewCursor(buf []byte) *Cursor {
	return NewCursorN(buf, len(buf))
}

// NewCursorN returns a Cursor over buf with an explicitly declared byte
// count, for when buf's capacity doesn't equal the bitstream's actual
// length (e.g. a shared backing array).
func NewCursorN(buf []byte, byteCount int) *Cursor {
	return &Cursor{buf: buf, byteCount: byteCount}
}

// PeekBits returns the next n bits without advancing the cursor.
func (c *Cursor) PeekBits(n int) (int, error) {
	return ShowBits(c.buf, c.off, c.byteCount, n)
}

// ReadBits returns the next n bits and advances the cursor by n.
func (c *Cursor) ReadBits(n int) (int, error) {
	v, err := GetBits(c.buf, c.off, c.byteCount, n)
	if err != nil {
		return 0, err
	}
	c.off += n
	return v, nil
}

// Advance moves the cursor forward by n bits without reading them. Used by
// callers (e.g. readSyntaxElement_VLC-style wrappers) that determine a
// codeword's length via a read-ahead helper and then need to commit the
// advance separately.
func (c *Cursor) Advance(n int) {
	c.off += n
}

// BitOffset returns the total bit offset from the start of the buffer.
func (c *Cursor) BitOffset() int { return c.off }

// SetBitOffset sets the total bit offset, for restoring a cursor to a
// position saved before a peek-style read (see Reader.PeekUE).
func (c *Cursor) SetBitOffset(off int) { c.off = off }

// ByteOffset returns the index of the byte currently being addressed.
func (c *Cursor) ByteOffset() int { return c.off / 8 }

// Off returns the bit offset within the current byte (0-7), i.e. how many
// bits of the current byte have already been consumed.
func (c *Cursor) Off() int { return c.off % 8 }

// ByteAligned reports whether the cursor sits at the start of a byte.
func (c *Cursor) ByteAligned() bool { return c.off%8 == 0 }

// ByteCount returns the declared byte length of the underlying buffer.
func (c *Cursor) ByteCount() int { return c.byteCount }

// Buffer returns the underlying byte slice. Callers must not mutate it.
func (c *Cursor) Buffer() []byte { return c.buf }
