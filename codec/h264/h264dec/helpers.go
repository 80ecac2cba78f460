/*
DESCRIPTION
  helpers.go holds small integer and bit-slice helpers used by the mapping
  rules and by test fixtures.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

// binToSlice converts a string of '0'/'1' characters into a byte slice,
// MSB-first, zero-padding the final byte. It exists for test fixtures
// that are easier to read as bit strings than as hex literals.
func binToSlice(bin string) []byte {
	out := make([]byte, (len(bin)+7)/8)
	for i, ch := range bin {
		if ch != '1' {
			continue
		}
		out[i/8] |= 1 << uint(7-i%8)
	}
	return out
}

// binToInt parses a string of '0'/'1' characters as an unsigned integer,
// MSB-first.
func binToInt(bin string) int {
	v := 0
	for _, ch := range bin {
		v <<= 1
		if ch == '1' {
			v |= 1
		}
	}
	return v
}

func maxi(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func mini(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absi(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
