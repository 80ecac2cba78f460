/*
DESCRIPTION
  cavlc.go implements the CAVLC family of syntax-element decoders:
  coeff_token (luma and chroma-DC), total_zeros (luma and chroma-DC),
  run_before, Level-VLC0, Level-VLCN, and the intra-4x4-prediction-mode
  code.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

import "github.com/ausocean/h264vlc/bits"

// maxZeroRunVLCN bounds the leading-zero prefix scanned by
// DecodeLevelVLCN. The standard never needs more than 15 before falling
// into the escape branch; the cap guards against a pathological or
// corrupt stream driving this into an unbounded loop.
const maxZeroRunVLCN = 31

// DecodeCoeffToken decodes coeff_token for a luma (or luma-AC) 4x4 block.
// vlcnum selects among the three context-derived tables (0, 1, 2); vlcnum
// 3 is the flat 6-bit FLC form used when the neighbour coefficient count
// is large. tr is notified with the literal bits matched (the FLC word, or
// the matched table codeword) alongside the decoded numCoeff.
func DecodeCoeffToken(c *bits.Cursor, vlcnum int, tr Tracer, tag string) (numCoeff, trailingOnes int, err error) {
	if vlcnum == 3 {
		v, err := c.ReadBits(6)
		if err != nil {
			return 0, 0, err
		}
		trailingOnes = v & 3
		numCoeff = v >> 2
		if numCoeff == 0 && trailingOnes == 3 {
			trailingOnes = 0
		} else {
			numCoeff++
		}
		tr.Trace(tag, 6, v, numCoeff)
		return numCoeff, trailingOnes, nil
	}
	if vlcnum < 0 || vlcnum > 2 {
		return 0, 0, ErrPreconditionViolated
	}

	tab := coeffTokenLuma[vlcnum]
	row, col, code, err := codeFromBitstream2D(c, tab.len, tab.cod)
	if err != nil {
		return 0, 0, err
	}
	tr.Trace(tag, tab.len[row][col], code, col)
	return col, row, nil
}

// DecodeCoeffTokenChromaDC decodes coeff_token for the chroma-DC block; it
// has no vlcnum selector.
func DecodeCoeffTokenChromaDC(c *bits.Cursor, tr Tracer, tag string) (numCoeff, trailingOnes int, err error) {
	row, col, code, err := codeFromBitstream2D(c, coeffTokenChromaDCLen, coeffTokenChromaDCCod)
	if err != nil {
		return 0, 0, err
	}
	tr.Trace(tag, coeffTokenChromaDCLen[row][col], code, col)
	return col, row, nil
}

// DecodeTotalZeros decodes total_zeros for a luma block, given the
// current numCoeff-1 selector (0..14).
func DecodeTotalZeros(c *bits.Cursor, numCoeffMinus1 int, tr Tracer, tag string) (int, error) {
	if numCoeffMinus1 < 0 || numCoeffMinus1 >= len(totalZerosLumaLen) {
		return 0, ErrPreconditionViolated
	}
	_, col, code, err := codeFromBitstream2D(c,
		totalZerosLumaLen[numCoeffMinus1:numCoeffMinus1+1],
		totalZerosLumaCod[numCoeffMinus1:numCoeffMinus1+1])
	if err != nil {
		return 0, err
	}
	tr.Trace(tag, totalZerosLumaLen[numCoeffMinus1][col], code, col)
	return col, nil
}

// DecodeTotalZerosChromaDC decodes total_zeros for the chroma-DC block,
// given the current numCoeff-1 selector (0..2).
func DecodeTotalZerosChromaDC(c *bits.Cursor, numCoeffMinus1 int, tr Tracer, tag string) (int, error) {
	if numCoeffMinus1 < 0 || numCoeffMinus1 >= len(totalZerosChromaDCLen) {
		return 0, ErrPreconditionViolated
	}
	_, col, code, err := codeFromBitstream2D(c,
		totalZerosChromaDCLen[numCoeffMinus1:numCoeffMinus1+1],
		totalZerosChromaDCCod[numCoeffMinus1:numCoeffMinus1+1])
	if err != nil {
		return 0, err
	}
	tr.Trace(tag, totalZerosChromaDCLen[numCoeffMinus1][col], code, col)
	return col, nil
}

// DecodeRunBefore decodes run_before given the number of zeros left to
// place; selector is clipped to 6 per the standard.
func DecodeRunBefore(c *bits.Cursor, zerosLeft int, tr Tracer, tag string) (int, error) {
	sel := mini(zerosLeft-1, 6)
	if sel < 0 {
		return 0, ErrPreconditionViolated
	}
	_, col, code, err := codeFromBitstream2D(c, runBeforeLen[sel:sel+1], runBeforeCod[sel:sel+1])
	if err != nil {
		return 0, err
	}
	tr.Trace(tag, runBeforeLen[sel][col], code, col)
	return col, nil
}

// DecodeLevelVLC0 decodes a residual level coded with Level-VLC0: a
// unary-ish prefix with a 4-bit or 12-bit escape suffix for large
// magnitudes. tr is traced with the prefix length plus any escape suffix
// bits (the literal codeword consumed) alongside the signed result.
func DecodeLevelVLC0(c *bits.Cursor, tr Tracer, tag string) (int, error) {
	zeros := 0
	for {
		b, err := c.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if b == 1 {
			break
		}
		zeros++
		if zeros > 15 {
			return 0, ErrMalformed
		}
	}
	length := zeros + 1

	var sign, absLevel, extra, extraBits int
	switch {
	case length < 15:
		sign = (length - 1) & 1
		absLevel = (length-1)/2 + 1
	case length == 15:
		extraBits = 4
		e, err := c.ReadBits(4)
		if err != nil {
			return 0, err
		}
		extra = e
		sign = e & 1
		absLevel = ((e >> 1) & 7) + 8
	case length == 16:
		extraBits = 12
		e, err := c.ReadBits(12)
		if err != nil {
			return 0, err
		}
		extra = e
		sign = e & 1
		absLevel = ((e >> 1) & 0x7ff) + 16
	default:
		return 0, ErrMalformed
	}

	value := absLevel
	if sign == 1 {
		value = -absLevel
	}
	tr.Trace(tag, length+extraBits, extra, value)
	return value, nil
}

// DecodeLevelVLCN decodes a residual level coded with Level-VLCN, the
// adaptive-suffix-length form used once decoded levels grow past what
// Level-VLC0 covers efficiently. vlc must be >= 1. tr is traced with the
// literal prefix/suffix bits (info) alongside the signed result.
func DecodeLevelVLCN(c *bits.Cursor, vlc int, tr Tracer, tag string) (int, error) {
	if vlc < 1 {
		return 0, ErrPreconditionViolated
	}
	shift := uint(vlc - 1)
	escape := (15 << shift) + 1

	p := 0
	for {
		b, err := c.ReadBits(1)
		if err != nil {
			return 0, err
		}
		if b == 1 {
			break
		}
		p++
		if p > maxZeroRunVLCN {
			return 0, ErrMalformed
		}
	}

	var absLevel, info, extraBits int
	if p < 15 {
		absLevel = (p << shift) + 1
		info = p
		if shift > 0 {
			suffix, err := c.ReadBits(int(shift))
			if err != nil {
				return 0, err
			}
			absLevel += suffix
			info = p<<shift | suffix
			extraBits = int(shift)
		}
	} else {
		s, err := c.ReadBits(11)
		if err != nil {
			return 0, err
		}
		absLevel = s + escape
		info = s
		extraBits = 11
	}

	sign, err := c.ReadBits(1)
	if err != nil {
		return 0, err
	}
	value := absLevel
	if sign == 1 {
		value = -absLevel
	}
	tr.Trace(tag, p+1+extraBits+1, info, value)
	return value, nil
}

// DecodeIntra4x4PredMode decodes the 1-or-4-bit intra-4x4/8x8 prediction
// mode code. A result of -1 means "use the predicted mode"; otherwise the
// result is the explicit mode in [0..7].
func DecodeIntra4x4PredMode(c *bits.Cursor, tr Tracer, tag string) (int, error) {
	info, length, err := getVLCSymbolIntraMode(c.Buffer(), c.BitOffset(), c.ByteCount())
	if err != nil {
		return 0, err
	}
	c.Advance(length)
	mode := info
	if length == 1 {
		mode = -1
	}
	tr.Trace(tag, length, info, mode)
	return mode, nil
}
