/*
DESCRIPTION
  tables.go holds the static code tables the CAVLC and Exp-Golomb mapping
  rules are built on. All of the data here comes directly from the H.264
  reference decoder's vlc.c (NTAB1/LEVRUN1, NTAB3/LEVRUN3, NCBP, and the
  lentab/codtab pairs for coeff_token, total_zeros and run_before); see
  DESIGN.md for provenance.

  The reference represents each table as a fixed-size C array and walks it
  with pointer arithmetic (lentab += tabwidth). Several of these tables are
  jagged — later rows are shorter, with the tail implicitly zero-padded by
  C's array initializer rules. Here they're represented as [][]int, one
  slice per row, which keeps the "this row has 5 live columns" fact
  explicit rather than relying on a hidden zero-pad convention.
*/

package h264dec

// NTAB1 and LEVRUN1 back linfo_levrun_inter (4x4 blocks) for len <= 9.
// NTAB1[l2][inf] = [level, run].
var NTAB1 = [4][8][2]byte{
	{{1, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{1, 1}, {1, 2}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{2, 0}, {1, 3}, {1, 4}, {1, 5}, {0, 0}, {0, 0}, {0, 0}, {0, 0}},
	{{3, 0}, {2, 1}, {2, 2}, {1, 6}, {1, 7}, {1, 8}, {1, 9}, {4, 0}},
}

// LEVRUN1 backs linfo_levrun_inter for len > 9.
var LEVRUN1 = [16]byte{4, 2, 2, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0}

// NTAB3 and LEVRUN3 back linfo_levrun_c2x2 (chroma-DC 2x2 blocks) for
// len <= 5.
var NTAB3 = [2][2][2]byte{
	{{1, 0}, {0, 0}},
	{{2, 0}, {1, 1}},
}

// LEVRUN3 backs linfo_levrun_c2x2 for len > 5.
var LEVRUN3 = [4]byte{2, 1, 0, 0}

// NCBP holds table 9-4's coded_block_pattern translation: NCBP[codeNum] =
// [intra value, inter value]. The reference only defines the 48-entry
// ChromaArrayType-1-or-2 form; the separate 16-entry monochrome/4:4:4 form
// is not part of vlc.c and is left out (see spec scope).
var NCBP = [48][2]byte{
	{47, 0}, {31, 16}, {15, 1}, {0, 2}, {23, 4}, {27, 8}, {29, 32}, {30, 3},
	{7, 5}, {11, 10}, {13, 12}, {14, 15}, {39, 47}, {43, 7}, {45, 11}, {46, 13},
	{16, 14}, {3, 6}, {5, 9}, {10, 31}, {12, 35}, {19, 37}, {21, 42}, {26, 44},
	{28, 33}, {35, 34}, {37, 36}, {42, 40}, {44, 39}, {1, 43}, {2, 45}, {4, 46},
	{8, 17}, {17, 18}, {18, 20}, {20, 24}, {24, 19}, {6, 21}, {9, 26}, {22, 28},
	{25, 23}, {32, 27}, {33, 29}, {34, 30}, {36, 22}, {40, 25}, {38, 38}, {41, 41},
}

// coeffTokenLuma holds the three lentab/codtab pairs selected by vlcnum
// 0, 1 and 2 for coeff_token (luma). vlcnum 3 is the flat 6-bit FLC form
// handled directly in DecodeCoeffToken.
var coeffTokenLuma = [3]struct{ len, cod [][]int }{
	{
		len: [][]int{
			{1, 6, 8, 9, 10, 11, 13, 13, 13, 14, 14, 15, 15, 16, 16, 16, 16},
			{0, 2, 6, 8, 9, 10, 11, 13, 13, 14, 14, 15, 15, 15, 16, 16, 16},
			{0, 0, 3, 7, 8, 9, 10, 11, 13, 13, 14, 14, 15, 15, 16, 16, 16},
			{0, 0, 0, 5, 6, 7, 8, 9, 10, 11, 13, 14, 14, 15, 15, 16, 16},
		},
		cod: [][]int{
			{1, 5, 7, 7, 7, 7, 15, 11, 8, 15, 11, 15, 11, 15, 11, 7, 4},
			{0, 1, 4, 6, 6, 6, 6, 14, 10, 14, 10, 14, 10, 1, 14, 10, 6},
			{0, 0, 1, 5, 5, 5, 5, 5, 13, 9, 13, 9, 13, 9, 13, 9, 5},
			{0, 0, 0, 3, 3, 4, 4, 4, 4, 4, 12, 12, 8, 12, 8, 12, 8},
		},
	},
	{
		len: [][]int{
			{2, 6, 6, 7, 8, 8, 9, 11, 11, 12, 12, 12, 13, 13, 13, 14, 14},
			{0, 2, 5, 6, 6, 7, 8, 9, 11, 11, 12, 12, 13, 13, 14, 14, 14},
			{0, 0, 3, 6, 6, 7, 8, 9, 11, 11, 12, 12, 13, 13, 13, 14, 14},
			{0, 0, 0, 4, 4, 5, 6, 6, 7, 9, 11, 11, 12, 13, 13, 13, 14},
		},
		cod: [][]int{
			{3, 11, 7, 7, 7, 4, 7, 15, 11, 15, 11, 8, 15, 11, 7, 9, 7},
			{0, 2, 7, 10, 6, 6, 6, 6, 14, 10, 14, 10, 14, 10, 11, 8, 6},
			{0, 0, 3, 9, 5, 5, 5, 5, 13, 9, 13, 9, 13, 9, 6, 10, 5},
			{0, 0, 0, 5, 4, 6, 8, 4, 4, 4, 12, 8, 12, 12, 8, 1, 4},
		},
	},
	{
		len: [][]int{
			{4, 6, 6, 6, 7, 7, 7, 7, 8, 8, 9, 9, 9, 10, 10, 10, 10},
			{0, 4, 5, 5, 5, 5, 6, 6, 7, 8, 8, 9, 9, 9, 10, 10, 10},
			{0, 0, 4, 5, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 10, 10, 10},
			{0, 0, 0, 4, 4, 4, 4, 4, 5, 6, 7, 8, 8, 9, 10, 10, 10},
		},
		cod: [][]int{
			{15, 15, 11, 8, 15, 11, 9, 8, 15, 11, 15, 11, 8, 13, 9, 5, 1},
			{0, 14, 15, 12, 10, 8, 14, 10, 14, 14, 10, 14, 10, 7, 12, 8, 4},
			{0, 0, 13, 14, 11, 9, 13, 9, 13, 10, 13, 9, 13, 9, 11, 7, 3},
			{0, 0, 0, 12, 11, 10, 9, 8, 13, 12, 12, 12, 8, 12, 10, 6, 2},
		},
	},
}

// coeffTokenChromaDC is the single lentab/codtab pair for coeff_token
// (chroma-DC), no vlcnum selector.
var coeffTokenChromaDCLen = [][]int{
	{2, 6, 6, 6, 6},
	{0, 1, 6, 7, 8},
	{0, 0, 3, 7, 8},
	{0, 0, 0, 6, 7},
}
var coeffTokenChromaDCCod = [][]int{
	{1, 7, 4, 3, 2},
	{0, 1, 6, 3, 3},
	{0, 0, 1, 2, 2},
	{0, 0, 0, 5, 0},
}

// totalZerosLuma holds the 15 total_zeros (luma) sub-tables, keyed by
// numCoeff-1 in value1 (see DecodeTotalZeros).
var totalZerosLumaLen = [][]int{
	{1, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 9, 9, 9},
	{3, 3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 6, 6, 6, 6},
	{4, 3, 3, 3, 4, 4, 3, 3, 4, 5, 5, 6, 5, 6},
	{5, 3, 4, 4, 3, 3, 3, 4, 3, 4, 5, 5, 5},
	{4, 4, 4, 3, 3, 3, 3, 3, 4, 5, 4, 5},
	{6, 5, 3, 3, 3, 3, 3, 3, 4, 3, 6},
	{6, 5, 3, 3, 3, 2, 3, 4, 3, 6},
	{6, 4, 5, 3, 2, 2, 3, 3, 6},
	{6, 6, 4, 2, 2, 3, 2, 5},
	{5, 5, 3, 2, 2, 2, 4},
	{4, 4, 3, 3, 1, 3},
	{4, 4, 2, 1, 3},
	{3, 3, 1, 2},
	{2, 2, 1},
	{1, 1},
}
var totalZerosLumaCod = [][]int{
	{1, 3, 2, 3, 2, 3, 2, 3, 2, 3, 2, 3, 2, 3, 2, 1},
	{7, 6, 5, 4, 3, 5, 4, 3, 2, 3, 2, 3, 2, 1, 0},
	{5, 7, 6, 5, 4, 3, 4, 3, 2, 3, 2, 1, 1, 0},
	{3, 7, 5, 4, 6, 5, 4, 3, 3, 2, 2, 1, 0},
	{5, 4, 3, 7, 6, 5, 4, 3, 2, 1, 1, 0},
	{1, 1, 7, 6, 5, 4, 3, 2, 1, 1, 0},
	{1, 1, 5, 4, 3, 3, 2, 1, 1, 0},
	{1, 1, 1, 3, 3, 2, 2, 1, 0},
	{1, 0, 1, 3, 2, 1, 1, 1},
	{1, 0, 1, 3, 2, 1, 1},
	{0, 1, 1, 2, 1, 3},
	{0, 1, 1, 1, 1},
	{0, 1, 1, 1},
	{0, 1, 1},
	{0, 1},
}

// totalZerosChromaDC holds the 3 total_zeros (chroma-DC) sub-tables.
var totalZerosChromaDCLen = [][]int{
	{1, 2, 3, 3},
	{1, 2, 2},
	{1, 1},
}
var totalZerosChromaDCCod = [][]int{
	{1, 1, 1, 0},
	{1, 1, 0},
	{1, 0},
}

// runBefore holds the 7 run_before sub-tables, keyed by
// min(zerosLeft-1, 6). Row 6 is 15 wide to cover the Exp-Golomb-like tail.
var runBeforeLen = [][]int{
	{1, 1},
	{1, 2, 2},
	{2, 2, 2, 2},
	{2, 2, 2, 3, 3},
	{2, 2, 3, 3, 3, 3},
	{2, 3, 3, 3, 3, 3, 3},
	{3, 3, 3, 3, 3, 3, 3, 4, 5, 6, 7, 8, 9, 10, 11},
}
var runBeforeCod = [][]int{
	{1, 0},
	{1, 1, 0},
	{3, 2, 1, 0},
	{3, 2, 1, 1, 0},
	{3, 2, 3, 2, 1, 0},
	{3, 0, 1, 3, 2, 5, 4},
	{7, 6, 5, 4, 3, 2, 1, 1, 1, 1, 1, 1, 1, 1, 1},
}
