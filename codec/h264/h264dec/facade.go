/*
DESCRIPTION
  facade.go implements the syntax-element façade: ue_v, se_v, u_v, u_1,
  plus the coded-block-pattern variants and a non-mutating ue(v) peek,
  all binding a mapping rule to the Exp-Golomb extractor and tracking a
  shared bits-consumed counter.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package h264dec

import "github.com/ausocean/h264vlc/bits"

// SyntaxElement bundles the result of one façade-level decode, mirroring
// the reference's transient per-read record. No Reader method returns one;
// it is a plain record that callers can fill in when they want the raw
// (len, info) pair alongside the mapped value, e.g. for building their own
// trace output.
type SyntaxElement struct {
	Len     int
	Info    int
	Value1  int
	Value2  int
	Mapping string
	Type    string
}

// Reader binds a bit cursor to the syntax-element façade: every read
// advances the cursor, accumulates BitsConsumed, and notifies the
// installed Tracer.
type Reader struct {
	c            *bits.Cursor
	tracer       Tracer
	bitsConsumed int
}

// NewReader returns a Reader over c with a no-op tracer installed.
func NewReader(c *bits.Cursor) *Reader {
	return &Reader{c: c, tracer: NopTracer{}}
}

// SetTracer installs t as the Reader's tracer. Passing nil restores the
// no-op default.
func (r *Reader) SetTracer(t Tracer) {
	if t == nil {
		t = NopTracer{}
	}
	r.tracer = t
}

// BitsConsumed returns the running total of bits consumed by the Reader's
// read methods (UE, SE, CBPIntra, CBPInter, U, Flag and the CAVLC wrappers
// such as CoeffToken and LevelVLC0; PeekUE excluded) since the Reader was
// created or last reset.
func (r *Reader) BitsConsumed() int { return r.bitsConsumed }

// ResetBitsConsumed zeros the bits-consumed counter, for callers that
// align to byte boundaries between headers.
func (r *Reader) ResetBitsConsumed() { r.bitsConsumed = 0 }

// Cursor returns the underlying bit cursor, for CAVLC-family calls that
// need direct cursor access alongside façade-level reads.
func (r *Reader) Cursor() *bits.Cursor { return r.c }

func (r *Reader) valid() error {
	if r == nil || r.c == nil {
		return ErrPreconditionViolated
	}
	return nil
}

func (r *Reader) readVLC() (info, length int, err error) {
	info, length, err = getVLCSymbol(r.c.Buffer(), r.c.BitOffset(), r.c.ByteCount())
	if err != nil {
		return 0, 0, err
	}
	r.c.Advance(length)
	return info, length, nil
}

// UE reads a ue(v) syntax element.
func (r *Reader) UE(tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	info, length, err := r.readVLC()
	if err != nil {
		return 0, err
	}
	value := mapUE(length, info)
	r.bitsConsumed += length
	r.tracer.Trace(tag, length, info, value)
	return value, nil
}

// SE reads a se(v) syntax element.
func (r *Reader) SE(tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	info, length, err := r.readVLC()
	if err != nil {
		return 0, err
	}
	value := mapSE(length, info)
	r.bitsConsumed += length
	r.tracer.Trace(tag, length, info, value)
	return value, nil
}

// CBPIntra reads a ue(v)-coded coded_block_pattern for an intra
// macroblock.
func (r *Reader) CBPIntra(tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	info, length, err := r.readVLC()
	if err != nil {
		return 0, err
	}
	value, err := mapCBPIntra(length, info)
	if err != nil {
		return 0, err
	}
	r.bitsConsumed += length
	r.tracer.Trace(tag, length, info, value)
	return value, nil
}

// CBPInter reads a ue(v)-coded coded_block_pattern for an inter
// macroblock.
func (r *Reader) CBPInter(tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	info, length, err := r.readVLC()
	if err != nil {
		return 0, err
	}
	value, err := mapCBPInter(length, info)
	if err != nil {
		return 0, err
	}
	r.bitsConsumed += length
	r.tracer.Trace(tag, length, info, value)
	return value, nil
}

// U reads a u(n) fixed-length syntax element.
func (r *Reader) U(n int, tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	value, err := readFixed(r.c, n)
	if err != nil {
		return 0, err
	}
	r.bitsConsumed += n
	r.tracer.Trace(tag, n, value, value)
	return value, nil
}

// Flag reads a u(1) syntax element as a bool.
func (r *Reader) Flag(tag string) (bool, error) {
	v, err := r.U(1, tag)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// CoeffToken reads coeff_token for a luma (or luma-AC) 4x4 block; see
// DecodeCoeffToken.
func (r *Reader) CoeffToken(vlcnum int, tag string) (numCoeff, trailingOnes int, err error) {
	if err := r.valid(); err != nil {
		return 0, 0, err
	}
	before := r.c.BitOffset()
	numCoeff, trailingOnes, err = DecodeCoeffToken(r.c, vlcnum, r.tracer, tag)
	if err != nil {
		return 0, 0, err
	}
	r.bitsConsumed += r.c.BitOffset() - before
	return numCoeff, trailingOnes, nil
}

// CoeffTokenChromaDC reads coeff_token for the chroma-DC block; see
// DecodeCoeffTokenChromaDC.
func (r *Reader) CoeffTokenChromaDC(tag string) (numCoeff, trailingOnes int, err error) {
	if err := r.valid(); err != nil {
		return 0, 0, err
	}
	before := r.c.BitOffset()
	numCoeff, trailingOnes, err = DecodeCoeffTokenChromaDC(r.c, r.tracer, tag)
	if err != nil {
		return 0, 0, err
	}
	r.bitsConsumed += r.c.BitOffset() - before
	return numCoeff, trailingOnes, nil
}

// TotalZeros reads total_zeros for a luma block; see DecodeTotalZeros.
func (r *Reader) TotalZeros(numCoeffMinus1 int, tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	before := r.c.BitOffset()
	v, err := DecodeTotalZeros(r.c, numCoeffMinus1, r.tracer, tag)
	if err != nil {
		return 0, err
	}
	r.bitsConsumed += r.c.BitOffset() - before
	return v, nil
}

// TotalZerosChromaDC reads total_zeros for the chroma-DC block; see
// DecodeTotalZerosChromaDC.
func (r *Reader) TotalZerosChromaDC(numCoeffMinus1 int, tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	before := r.c.BitOffset()
	v, err := DecodeTotalZerosChromaDC(r.c, numCoeffMinus1, r.tracer, tag)
	if err != nil {
		return 0, err
	}
	r.bitsConsumed += r.c.BitOffset() - before
	return v, nil
}

// RunBefore reads run_before; see DecodeRunBefore.
func (r *Reader) RunBefore(zerosLeft int, tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	before := r.c.BitOffset()
	v, err := DecodeRunBefore(r.c, zerosLeft, r.tracer, tag)
	if err != nil {
		return 0, err
	}
	r.bitsConsumed += r.c.BitOffset() - before
	return v, nil
}

// LevelVLC0 reads a residual level coded with Level-VLC0; see
// DecodeLevelVLC0.
func (r *Reader) LevelVLC0(tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	before := r.c.BitOffset()
	v, err := DecodeLevelVLC0(r.c, r.tracer, tag)
	if err != nil {
		return 0, err
	}
	r.bitsConsumed += r.c.BitOffset() - before
	return v, nil
}

// LevelVLCN reads a residual level coded with Level-VLCN; see
// DecodeLevelVLCN.
func (r *Reader) LevelVLCN(vlc int, tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	before := r.c.BitOffset()
	v, err := DecodeLevelVLCN(r.c, vlc, r.tracer, tag)
	if err != nil {
		return 0, err
	}
	r.bitsConsumed += r.c.BitOffset() - before
	return v, nil
}

// IntraPredMode reads the intra-4x4/8x8 prediction mode code; see
// DecodeIntra4x4PredMode.
func (r *Reader) IntraPredMode(tag string) (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	before := r.c.BitOffset()
	v, err := DecodeIntra4x4PredMode(r.c, r.tracer, tag)
	if err != nil {
		return 0, err
	}
	r.bitsConsumed += r.c.BitOffset() - before
	return v, nil
}

// PeekUE reads a ue(v) syntax element without mutating the cursor or the
// bits-consumed counter, restoring the cursor's position before
// returning. Grounded on the reference's peekSyntaxElement_UVLC, which
// computes the mapped value but never commits the advance to the caller's
// stream position.
func (r *Reader) PeekUE() (int, error) {
	if err := r.valid(); err != nil {
		return 0, err
	}
	saved := r.c.BitOffset()
	info, length, err := r.readVLC()
	r.c.SetBitOffset(saved)
	if err != nil {
		return 0, err
	}
	return mapUE(length, info), nil
}
