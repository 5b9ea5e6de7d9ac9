package chess

import "strings"

// Move packs origin (bits 0-5), destination (bits 6-11) and a 4-bit flag code
// (bits 12-15) into 16 bits.
type Move uint16

// Flag codes. Bit 2 marks capture-like moves, bit 3 promotions and the low two
// bits of a promotion select the promoted piece.
const (
	FlagQuiet       = 0x0
	FlagDoublePush  = 0x1
	FlagKingCastle  = 0x2
	FlagQueenCastle = 0x3
	FlagCapture     = 0x4
	FlagEnPassant   = 0x5

	FlagPromoKnight = 0x8
	FlagPromoBishop = 0x9
	FlagPromoRook   = 0xa
	FlagPromoQueen  = 0xb

	FlagPromoCaptureKnight = 0xc
	FlagPromoCaptureBishop = 0xd
	FlagPromoCaptureRook   = 0xe
	FlagPromoCaptureQueen  = 0xf

	flagCaptureBit   = 0x4
	flagPromotionBit = 0x8
)

// NoMove is a1a1 quiet, which no generator ever produces.
const NoMove Move = 0

func NewMove(from, to, flags int) Move {
	return Move(from&0x3f | (to&0x3f)<<6 | (flags&0xf)<<12)
}

func (m Move) From() int { return int(m & 0x3f) }
func (m Move) To() int { return int(m>>6) & 0x3f }
func (m Move) Flags() int { return int(m>>12) & 0xf }

func (m Move) IsPromotion() bool { return m.Flags()&flagPromotionBit != 0 }
func (m Move) IsCapture() bool { return m.Flags()&flagCaptureBit != 0 }
func (m Move) IsCastle() bool {
	f := m.Flags()
	return f == FlagKingCastle || f == FlagQueenCastle
}

// PromotedPiece panics if m is not a promotion.
func (m Move) PromotedPiece() PieceType {
	if !m.IsPromotion() {
		panic("chess: PromotedPiece on non-promotion move " + m.String())
	}
	return Knight + PieceType(m.Flags()&0x3)
}

// String renders m in UCI long algebraic form.
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	var sb strings.Builder
	sb.WriteString(SquareName(m.From()))
	sb.WriteString(SquareName(m.To()))
	if m.IsPromotion() {
		sb.WriteString(m.PromotedPiece().String())
	}
	return sb.String()
}
