package bits

import "testing"

func TestShowBitsReadBits(t *testing.T) {
	// []byte{0x8f, 0xe3} is 1000 1111, 1110 0011.
	buf := []byte{0x8f, 0xe3}

	tests := []struct {
		n    int
		want int
	}{
		{n: 4, want: 0x8},
		{n: 2, want: 0x3},
		{n: 4, want: 0xf},
		{n: 6, want: 0x23},
	}

	c := NewCursor(buf)
	for i, test := range tests {
		got, err := c.ReadBits(test.n)
		if err != nil {
			t.Fatalf("test %d: unexpected error: %v", i, err)
		}
		if got != test.want {
			t.Errorf("test %d: got 0x%x, want 0x%x", i, got, test.want)
		}
	}
}

func TestPeekBitsDoesNotAdvance(t *testing.T) {
	buf := []byte{0x8f}
	c := NewCursor(buf)

	for i := 0; i < 3; i++ {
		got, err := c.PeekBits(4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != 0x8 {
			t.Errorf("peek %d: got 0x%x, want 0x8", i, got)
		}
	}
	if c.BitOffset() != 0 {
		t.Errorf("PeekBits advanced the cursor: offset = %d", c.BitOffset())
	}
}

func TestReadBitsOutOfBounds(t *testing.T) {
	buf := []byte{0xff}
	c := NewCursor(buf)

	if _, err := c.ReadBits(8); err != nil {
		t.Fatalf("unexpected error reading the whole single byte: %v", err)
	}
	if _, err := c.ReadBits(1); err != ErrOutOfBounds {
		t.Errorf("got %v, want ErrOutOfBounds", err)
	}
}

func TestReadBitsExactlyToEndOfBuffer(t *testing.T) {
	// Reading exactly to the end of the declared byte count must not fail;
	// only a read that would dereference a byte beyond byteCount should.
	buf := []byte{0xff, 0xff}
	c := NewCursor(buf)
	if _, err := c.ReadBits(16); err != nil {
		t.Fatalf("unexpected error reading exactly to end of buffer: %v", err)
	}
}

func TestAdvanceAndSetBitOffset(t *testing.T) {
	buf := []byte{0x8f, 0xe3}
	c := NewCursor(buf)

	saved := c.BitOffset()
	c.Advance(4)
	if c.BitOffset() != 4 {
		t.Fatalf("got offset %d, want 4", c.BitOffset())
	}
	c.SetBitOffset(saved)
	got, err := c.ReadBits(8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0x8f {
		t.Errorf("got 0x%x, want 0x8f", got)
	}
}

func TestByteOffsetOffByteAligned(t *testing.T) {
	buf := []byte{0xff, 0xff}
	c := NewCursor(buf)
	if !c.ByteAligned() {
		t.Fatalf("expected fresh cursor to be byte aligned")
	}
	if _, err := c.ReadBits(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ByteAligned() {
		t.Errorf("expected cursor to not be byte aligned after reading 3 bits")
	}
	if c.Off() != 3 {
		t.Errorf("got Off() = %d, want 3", c.Off())
	}
	if c.ByteOffset() != 0 {
		t.Errorf("got ByteOffset() = %d, want 0", c.ByteOffset())
	}
}
