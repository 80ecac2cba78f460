/*
DESCRIPTION
  tablematch.go implements the 2-D code-table matcher shared by every
  CAVLC syntax element family (coeff_token, total_zeros, run_before): given
  a lentab/codtab pair, find the (row, col) whose codeword of length
  lentab[row][col] matches the next bits in the stream.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

import "github.com/ausocean/h264vlc/bits"

// codeFromBitstream2D scans lentab/codtab row-major (outer index first, as
// the reference's code_from_bitstream_2d does for a tabwidth-by-tabheight
// table), looking for a row whose codeword matches the upcoming bits of c.
// On a match it returns the row and column indices, the matched codeword's
// literal bits, and advances c by the codeword's length. A zero entry in
// lentab is a reserved hole and is skipped without consuming any bits.
//
// The matched code is returned alongside (row, col) so a caller tracing the
// decode (see cavlc.go) can log the literal bits consumed, not just the
// decoded (row, col) pair, mirroring the reference's own code_from_bitstream_2d
// out-parameter.
//
// If every candidate either mismatched in-bounds or required peeking past
// the end of the buffer, and at least one candidate hit the end of the
// buffer, ErrOutOfBounds is returned in preference to ErrNotFound: a
// genuinely truncated stream should be reported as truncated, not as
// carrying an undecodable codeword.
func codeFromBitstream2D(c *bits.Cursor, lentab, codtab [][]int) (row, col, code int, err error) {
	sawOutOfBounds := false

	for row = range lentab {
		lens := lentab[row]
		cods := codtab[row]
		for col = range lens {
			length := lens[col]
			if length == 0 {
				continue
			}
			peek, err := c.PeekBits(length)
			if err != nil {
				sawOutOfBounds = true
				continue
			}
			if peek == cods[col] {
				c.Advance(length)
				return row, col, peek, nil
			}
		}
	}

	if sawOutOfBounds {
		return 0, 0, 0, ErrOutOfBounds
	}
	return 0, 0, 0, ErrNotFound
}
