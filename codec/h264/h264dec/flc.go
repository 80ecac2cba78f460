/*
DESCRIPTION
  flc.go implements the fixed-length-codeword reader used by u(n) and
  u(1) syntax elements: a plain n-bit unsigned read with no Exp-Golomb
  mapping involved.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

import "github.com/ausocean/h264vlc/bits"

// readFixed reads n bits as an unsigned fixed-length codeword (u(n)) and
// advances c.
func readFixed(c *bits.Cursor, n int) (int, error) {
	v, err := c.ReadBits(n)
	if err != nil {
		return 0, err
	}
	return v, nil
}

// readFlag reads a single bit as a bool (u(1)).
func readFlag(c *bits.Cursor) (bool, error) {
	v, err := c.ReadBits(1)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}
