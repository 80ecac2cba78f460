/*
DESCRIPTION
  rbsp.go implements the trailing-bit probe (more_rbsp_data): detecting
  end-of-RBSP by locating the stop bit and checking that only zero padding
  follows it.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

import "github.com/ausocean/h264vlc/bits"

// MoreRBSPData reports whether c has more meaningful bits before the
// RBSP's trailing stop bit. It does not advance c.
//
// A malformed stream where the stop bit is 0 is reported per the
// reference: true, plus a logged warning, rather than an error — the
// caller still needs a definite answer to keep decoding the rest of the
// slice.
//
// A cursor sitting at or past the end of the buffer (section 3 permits
// this: a fully-consumed RBSP leaves the cursor at byteCount*8) has no
// stop bit left to find, so there is no more data.
func MoreRBSPData(c *bits.Cursor) bool {
	byteOffset := c.ByteOffset()
	lastByte := c.ByteCount() - 1

	if byteOffset >= c.ByteCount() {
		return false
	}
	if byteOffset < lastByte {
		return true
	}

	bitOffset := 7 - c.Off()
	buf := c.Buffer()
	cur := buf[byteOffset]

	stopBit := (cur >> uint(bitOffset)) & 1
	if stopBit == 0 {
		logger.Warnw("more_rbsp_data: stop bit is not 1", "byteOffset", byteOffset, "bitOffset", bitOffset)
		return true
	}

	for b := bitOffset - 1; b >= 0; b-- {
		if (cur>>uint(b))&1 != 0 {
			return true
		}
	}
	return false
}
