package chess

import (
	"fmt"
	"math/bits"
)

const NumSquares = 64

// Squares are numbered a1=0 .. h8=63, file-major within a rank.
const (
	A1 = 0
	B1 = 1
	C1 = 2
	D1 = 3
	E1 = 4
	F1 = 5
	G1 = 6
	H1 = 7
	E2 = 12
	E4 = 28
	A8 = 56
	B8 = 57
	C8 = 58
	D8 = 59
	E8 = 60
	F8 = 61
	G8 = 62
	H8 = 63
)

func squareOf(file, rank int) int { return rank*8 + file }
func fileOf(sq int) int { return sq & 7 }
func rankOf(sq int) int { return sq >> 3 }

// SquareName returns the algebraic name of sq, e.g. "e4".
func SquareName(sq int) string {
	if sq < 0 || sq >= NumSquares {
		return "??"
	}
	return string([]byte{byte('a' + fileOf(sq)), byte('1' + rankOf(sq))})
}

// ParseSquare is the inverse of SquareName.
func ParseSquare(s string) (int, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return 0, fmt.Errorf("bad square %q", s)
	}
	return squareOf(int(s[0]-'a'), int(s[1]-'1')), nil
}

// Bitboard is a set of squares, bit i standing for square i.
type Bitboard uint64

const (
	fileA Bitboard = 0x0101010101010101
	fileH Bitboard = 0x8080808080808080
	rank1 Bitboard = 0x00000000000000ff
	rank3 Bitboard = 0x0000000000ff0000
	rank6 Bitboard = 0x0000ff0000000000
	rank8 Bitboard = 0xff00000000000000

	notFileA = ^fileA
	notFileH = ^fileH
)

func squareBB(sq int) Bitboard { return Bitboard(1) << uint(sq) }

func (b Bitboard) Has(sq int) bool { return b&squareBB(sq) != 0 }

func (b Bitboard) Count() int { return bits.OnesCount64(uint64(b)) }

// LSB returns the index of the lowest set bit. b must be non-empty.
func (b Bitboard) LSB() int { return bits.TrailingZeros64(uint64(b)) }

// PopLSB clears the lowest set bit and returns its index.
func (b *Bitboard) PopLSB() int {
	sq := bits.TrailingZeros64(uint64(*b))
	*b &= *b - 1
	return sq
}

// shift moves every bit by delta squares; positive deltas move towards h8.
func shift(b Bitboard, delta int) Bitboard {
	if delta >= 0 {
		return b << uint(delta)
	}
	return b >> uint(-delta)
}
