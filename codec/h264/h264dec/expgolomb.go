/*
DESCRIPTION
  expgolomb.go implements the Exp-Golomb codeword reader (GetVLCSymbol and
  its intra-4x4-pred-mode variant) plus the mapping rules that turn a raw
  (length, info) pair into a syntax element value: unsigned, signed,
  coded-block-pattern and level/run.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

import "github.com/ausocean/h264vlc/bits"

// maxLeadingZeros bounds the leading-zero scan in getVLCSymbol. The
// reference decoder scans unconditionally until it meets a set bit; a
// corrupt buffer of all-zero bytes would otherwise scan forever (and the
// reference's own scan never bounds-checks this loop at all). 63 leaves
// headroom far beyond any length this syntax ever produces.
const maxLeadingZeros = 63

// getVLCSymbol reads one Exp-Golomb codeword starting at buf's current bit
// position (byteOffset/bitOffset), without any side effect on a cursor;
// callers that want the advance committed use Reader.readVLC, which wraps
// this and then calls Advance(length).
//
// Returns the info word and the total codeword length in bits (always
// 2*leadingZeros+1). length==1 signals the all-zero-prefix codeNum 0,
// which several mapping rules treat as an explicit end-of-block marker.
func getVLCSymbol(buf []byte, totBitOffset, byteCount int) (info, length int, err error) {
	byteOffset := totBitOffset / 8
	bitOffset := 7 - (totBitOffset % 8)

	leadingZeros := 0
	for {
		if byteOffset >= byteCount {
			return 0, 0, ErrOutOfBounds
		}
		ctrBit := (buf[byteOffset] >> uint(bitOffset)) & 1
		if ctrBit != 0 {
			break
		}
		leadingZeros++
		if leadingZeros > maxLeadingZeros {
			return 0, 0, ErrMalformed
		}
		bitOffset--
		if bitOffset < 0 {
			bitOffset += 8
			byteOffset++
		}
	}

	info = 0
	for n := leadingZeros; n > 0; n-- {
		bitOffset--
		if bitOffset < 0 {
			bitOffset += 8
			byteOffset++
		}
		if byteOffset >= byteCount {
			return 0, 0, ErrOutOfBounds
		}
		info <<= 1
		if buf[byteOffset]&(1<<uint(bitOffset)) != 0 {
			info |= 1
		}
	}
	return info, 2*leadingZeros + 1, nil
}

// getVLCSymbolIntraMode reads the 1-or-4-bit codeword used for
// intra_4x4/8x8 prediction mode: a single set bit means "use predicted
// mode" (info 0, length 1); a single cleared bit is followed by 3 explicit
// mode bits (length 4).
func getVLCSymbolIntraMode(buf []byte, totBitOffset, byteCount int) (info, length int, err error) {
	byteOffset := totBitOffset / 8
	bitOffset := 7 - (totBitOffset % 8)
	if byteOffset >= byteCount {
		return 0, 0, ErrOutOfBounds
	}
	if (buf[byteOffset]>>uint(bitOffset))&1 != 0 {
		return 0, 1, nil
	}

	v, err := bits.GetBits(buf, totBitOffset+1, byteCount, 3)
	if err != nil {
		return 0, 0, err
	}
	return v, 4, nil
}

// mapUE is the ue(v) mapping rule: codeNum = 2^leadingZeros + info - 1.
func mapUE(length, info int) int {
	leadingZeros := length / 2
	return (1 << uint(leadingZeros)) + info - 1
}

// mapSE is the se(v) mapping rule, deriving a signed value from the
// unsigned codeNum: even codeNum maps to the negative of half its value,
// odd codeNum maps to the positive.
func mapSE(length, info int) int {
	n := mapUE(length, info)
	value := (n + 1) / 2
	if n&1 == 0 {
		value = -value
	}
	return value
}

// mapCBPIntra maps a ue(v) codeword to the coded_block_pattern value used
// by intra macroblocks, via table 9-4 (NCBP column 0).
func mapCBPIntra(length, info int) (int, error) {
	idx := mapUE(length, info)
	if idx < 0 || idx >= len(NCBP) {
		return 0, ErrNotFound
	}
	return int(NCBP[idx][0]), nil
}

// mapCBPInter maps a ue(v) codeword to the coded_block_pattern value used
// by inter macroblocks, via table 9-4 (NCBP column 1).
func mapCBPInter(length, info int) (int, error) {
	idx := mapUE(length, info)
	if idx < 0 || idx >= len(NCBP) {
		return 0, ErrNotFound
	}
	return int(NCBP[idx][1]), nil
}

// mapLevRunInter maps a single Exp-Golomb codeword to a (level, run) pair
// for 4x4 luma/chroma-AC residual blocks.
func mapLevRunInter(length, info int) (level, run int) {
	if length <= 9 {
		l2 := maxi(0, length/2-1)
		inf := info / 2
		level = int(NTAB1[l2][inf][0])
		run = int(NTAB1[l2][inf][1])
	} else {
		run = (info & 0x1e) >> 1
		level = int(LEVRUN1[run]) + info/32 + (1 << uint(length/2-5))
	}
	if info&1 == 1 {
		level = -level
	}
	if length == 1 {
		level = 0
	}
	return level, run
}

// mapLevRunC2x2 maps a single Exp-Golomb codeword to a (level, run) pair
// for the 2x2 chroma-DC residual block.
func mapLevRunC2x2(length, info int) (level, run int) {
	if length <= 5 {
		l2 := maxi(0, length/2-1)
		inf := info / 2
		level = int(NTAB3[l2][inf][0])
		run = int(NTAB3[l2][inf][1])
	} else {
		run = (info & 0x06) >> 1
		level = int(LEVRUN3[run]) + info/8 + (1 << uint(length/2-3))
	}
	if info&1 == 1 {
		level = -level
	}
	if length == 1 {
		level = 0
	}
	return level, run
}
