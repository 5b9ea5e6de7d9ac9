package chess

import "sync"

const defaultZobristSeed = 0x9E3779B97F4A7C15

// ZobristKeys holds the random keys the position fingerprint is built from.
// A table is immutable once constructed and may be shared by any number of
// positions.
type ZobristKeys struct {
	pieces   [2][King + 1][NumSquares]uint64
	castling [4]uint64
	epFile   [8]uint64
	black    uint64
}

// NewZobristKeys derives a full key table from seed with splitmix64, so equal
// seeds always give equal tables.
func NewZobristKeys(seed uint64) *ZobristKeys {
	next := func() uint64 {
		seed += 0x9E3779B97F4A7C15
		z := seed
		z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
		z = (z ^ (z >> 27)) * 0x94D049BB133111EB
		return z ^ (z >> 31)
	}

	k := &ZobristKeys{}
	for c := White; c <= Black; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := 0; sq < NumSquares; sq++ {
				k.pieces[c][pt][sq] = next()
			}
		}
	}
	for i := range k.castling {
		k.castling[i] = next()
	}
	for i := range k.epFile {
		k.epFile[i] = next()
	}
	k.black = next()
	return k
}

var (
	defaultKeysOnce sync.Once
	defaultKeys     *ZobristKeys
)

// DefaultZobristKeys returns the process-wide table used by positions built
// without an explicit one.
func DefaultZobristKeys() *ZobristKeys {
	defaultKeysOnce.Do(func() {
		defaultKeys = NewZobristKeys(defaultZobristSeed)
	})
	return defaultKeys
}

func (k *ZobristKeys) piece(c Color, pt PieceType, sq int) uint64 {
	return k.pieces[c][pt][sq]
}

func (k *ZobristKeys) castlingKey(cr CastlingRights) uint64 {
	var h uint64
	for i := range k.castling {
		if cr.Has(CastlingRights(1 << i)) {
			h ^= k.castling[i]
		}
	}
	return h
}

// enPassantKey is non-zero only when last was a double pawn push.
func (k *ZobristKeys) enPassantKey(last Move) uint64 {
	if last == NoMove || last.Flags() != FlagDoublePush {
		return 0
	}
	return k.epFile[fileOf(last.To())]
}

// Fingerprint computes the hash of p from scratch by scanning every square.
func (k *ZobristKeys) Fingerprint(p *Position) uint64 {
	var h uint64
	for sq := 0; sq < NumSquares; sq++ {
		c, pt, ok := p.PieceAt(sq)
		if !ok {
			continue
		}
		h ^= k.piece(c, pt, sq)
	}
	h ^= k.castlingKey(p.Castling)
	if p.SideToMove == Black {
		h ^= k.black
	}
	h ^= k.enPassantKey(p.lastMove)
	return h
}

// ComputeFingerprint is the from-scratch reference for p.Hash, which MakeMove
// and UndoMove maintain incrementally.
func (p *Position) ComputeFingerprint() uint64 {
	return p.keys.Fingerprint(p)
}
