/*
DESCRIPTION
  errors.go defines the sentinel error kinds surfaced by the VLC decoding
  core, per the four failure kinds of the parsing core's error handling
  design: OutOfBounds, NotFound, Malformed and PreconditionViolated.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

import "github.com/pkg/errors"

var (
	// ErrOutOfBounds indicates a read would cross the declared byte count
	// of the buffer. Mirrors bits.ErrOutOfBounds one level up.
	ErrOutOfBounds = errors.New("h264dec: read out of bounds")

	// ErrNotFound indicates no table entry matched a 2-D table lookup, or
	// a mapping rule's lookup index fell outside its table (e.g. an
	// out-of-range coded_block_pattern index). At the CAVLC layer this
	// signals a corrupt or out-of-spec stream; the caller decides whether
	// to treat it as fatal.
	ErrNotFound = errors.New("h264dec: no matching table entry")

	// ErrMalformed indicates a specific bitstream constant was violated,
	// e.g. a Level_VLC0 prefix run longer than the standard allows.
	ErrMalformed = errors.New("h264dec: malformed syntax element")

	// ErrPreconditionViolated indicates a caller bug: a nil buffer, or a
	// selector value outside its declared range.
	ErrPreconditionViolated = errors.New("h264dec: precondition violated")
)
