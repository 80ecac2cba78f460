package h264dec

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/h264vlc/bits"
)

func TestSyntaxElementFields(t *testing.T) {
	// Decode a ue(v) element and build the caller-facing SyntaxElement
	// record from it, checked field-by-field with go-cmp so a wrong value
	// in any field shows up in the diff.
	c := bits.NewCursor([]byte{0x50, 0x00})
	info, length, err := getVLCSymbol(c.Buffer(), c.BitOffset(), c.ByteCount())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := SyntaxElement{
		Len:     length,
		Info:    info,
		Value1:  mapUE(length, info),
		Mapping: "ue",
		Type:    "header",
	}
	want := SyntaxElement{Len: 3, Info: 0, Value1: 1, Mapping: "ue", Type: "header"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SyntaxElement mismatch (-want +got):\n%s", diff)
	}
}

func TestReaderUESE(t *testing.T) {
	// 0x50 = 0101 0000: first se(v) codeword is "010" -> codeNum 1 -> se +1.
	c := bits.NewCursor([]byte{0x50, 0x00})
	r := NewReader(c)

	v, err := r.SE("first_mvd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 1 {
		t.Errorf("got %d, want 1", v)
	}
	if r.BitsConsumed() != 3 {
		t.Errorf("got BitsConsumed() = %d, want 3", r.BitsConsumed())
	}

	// The next bit is "1": a ue(v) codeword for codeNum 0.
	v, err = r.UE("second")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Errorf("got %d, want 0", v)
	}
	if r.BitsConsumed() != 4 {
		t.Errorf("got BitsConsumed() = %d, want 4", r.BitsConsumed())
	}
}

func TestReaderUFlag(t *testing.T) {
	c := bits.NewCursor([]byte{0b1011_0000})
	r := NewReader(c)

	flag, err := r.Flag("forbidden_zero_bit")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !flag {
		t.Errorf("got false, want true")
	}

	v, err := r.U(3, "nal_ref_idc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0b011 {
		t.Errorf("got %d, want 3", v)
	}
	if r.BitsConsumed() != 4 {
		t.Errorf("got BitsConsumed() = %d, want 4", r.BitsConsumed())
	}
}

func TestReaderCBPIntraInter(t *testing.T) {
	c := bits.NewCursor([]byte{0x80}) // codeNum 0 -> NCBP[0]
	r := NewReader(c)
	v, err := r.CBPIntra("coded_block_pattern")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 47 {
		t.Errorf("got %d, want 47", v)
	}

	c = bits.NewCursor([]byte{0x80})
	r = NewReader(c)
	v, err = r.CBPInter("coded_block_pattern")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Errorf("got %d, want 0", v)
	}
}

func TestReaderPeekUEDoesNotAdvance(t *testing.T) {
	c := bits.NewCursor([]byte{0x50, 0x00})
	r := NewReader(c)

	peeked, err := r.PeekUE()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.BitOffset() != 0 {
		t.Fatalf("PeekUE advanced the cursor: offset = %d", c.BitOffset())
	}
	if r.BitsConsumed() != 0 {
		t.Fatalf("PeekUE advanced BitsConsumed: %d", r.BitsConsumed())
	}

	read, err := r.UE("same_value")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if peeked != read {
		t.Errorf("peeked %d != subsequently read %d", peeked, read)
	}
}

func TestReaderNilCursorPrecondition(t *testing.T) {
	r := NewReader(nil)
	if _, err := r.UE("x"); err != ErrPreconditionViolated {
		t.Errorf("got %v, want ErrPreconditionViolated", err)
	}
}

type recordingTracer struct {
	calls []string
	infos []int
}

func (rt *recordingTracer) Trace(tag string, length, info, value int) {
	rt.calls = append(rt.calls, tag)
	rt.infos = append(rt.infos, info)
}

func TestReaderCoeffTokenTracerNotified(t *testing.T) {
	// vlcnum 0, row 0 col 0: len 1, cod 1 -> (numCoeff=0, trailingOnes=0).
	c := bits.NewCursor([]byte{0b1_0000000})
	r := NewReader(c)
	rt := &recordingTracer{}
	r.SetTracer(rt)

	numCoeff, trailingOnes, err := r.CoeffToken(0, "coeff_token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if numCoeff != 0 || trailingOnes != 0 {
		t.Errorf("got (%d,%d), want (0,0)", numCoeff, trailingOnes)
	}
	if len(rt.calls) != 1 || rt.calls[0] != "coeff_token" {
		t.Errorf("got %v, want one call tagged coeff_token", rt.calls)
	}
	if r.BitsConsumed() != 1 {
		t.Errorf("got BitsConsumed() = %d, want 1", r.BitsConsumed())
	}
}

func TestReaderTracerNotified(t *testing.T) {
	c := bits.NewCursor([]byte{0x80})
	r := NewReader(c)
	rt := &recordingTracer{}
	r.SetTracer(rt)

	if _, err := r.UE("first_mb_in_slice"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rt.calls) != 1 || rt.calls[0] != "first_mb_in_slice" {
		t.Errorf("got %v, want one call tagged first_mb_in_slice", rt.calls)
	}
}
