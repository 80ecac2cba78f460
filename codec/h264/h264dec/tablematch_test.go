package h264dec

import (
	"testing"

	"github.com/ausocean/h264vlc/bits"
)

func TestCodeFromBitstream2DMatches(t *testing.T) {
	// A tiny 2x3 table: row 0 has a 1-bit code "1" in column 0 and a 2-bit
	// code "01" in column 1 (column 2 is a reserved hole); row 1 has a
	// 3-bit code "001" in column 2.
	lentab := [][]int{
		{1, 2, 0},
		{0, 0, 3},
	}
	codtab := [][]int{
		{1, 1, 0},
		{0, 0, 1},
	}

	tests := []struct {
		buf      []byte
		wantRow  int
		wantCol  int
		wantCode int
	}{
		{buf: []byte{0b1_0000000}, wantRow: 0, wantCol: 0, wantCode: 1},
		{buf: []byte{0b01_000000}, wantRow: 0, wantCol: 1, wantCode: 1},
		{buf: []byte{0b001_00000}, wantRow: 1, wantCol: 2, wantCode: 1},
	}

	for i, test := range tests {
		c := bits.NewCursor(test.buf)
		row, col, code, err := codeFromBitstream2D(c, lentab, codtab)
		if err != nil {
			t.Fatalf("test %d: unexpected error: %v", i, err)
		}
		if row != test.wantRow || col != test.wantCol {
			t.Errorf("test %d: got (%d,%d), want (%d,%d)", i, row, col, test.wantRow, test.wantCol)
		}
		if code != test.wantCode {
			t.Errorf("test %d: got code %d, want %d", i, code, test.wantCode)
		}
	}
}

func TestCodeFromBitstream2DNotFound(t *testing.T) {
	lentab := [][]int{{1}}
	codtab := [][]int{{1}}

	c := bits.NewCursor([]byte{0x00})
	if _, _, _, err := codeFromBitstream2D(c, lentab, codtab); err != ErrNotFound {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestCodeFromBitstream2DOutOfBounds(t *testing.T) {
	// A single candidate codeword longer than the buffer: every attempt
	// peeks past the end, so the matcher must report ErrOutOfBounds rather
	// than ErrNotFound.
	lentab := [][]int{{9}}
	codtab := [][]int{{0x1FF}}

	c := bits.NewCursor([]byte{0xff})
	if _, _, _, err := codeFromBitstream2D(c, lentab, codtab); err != ErrOutOfBounds {
		t.Errorf("got %v, want ErrOutOfBounds", err)
	}
}

func TestCodeFromBitstream2DSkipsHoles(t *testing.T) {
	// Column 0 is a hole (length 0); only column 1 carries a real code.
	lentab := [][]int{{0, 2}}
	codtab := [][]int{{0, 2}}

	c := bits.NewCursor([]byte{0b10_000000})
	row, col, _, err := codeFromBitstream2D(c, lentab, codtab)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if row != 0 || col != 1 {
		t.Errorf("got (%d,%d), want (0,1)", row, col)
	}
}
