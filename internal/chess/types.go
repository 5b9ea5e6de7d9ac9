package chess

type Color int8

const (
	White Color = 0
	Black Color = 1
)

func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == White {
		return "white"
	}
	return "black"
}

type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var pieceLetters = [...]byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}

func (pt PieceType) String() string {
	if pt < NoPieceType || pt > King {
		return "?"
	}
	return string(pieceLetters[pt])
}

// Plane indices into Position.Planes. The two color planes come first, followed
// by one color-agnostic plane per piece type.
const (
	PlaneWhite = iota
	PlaneBlack
	PlanePawn
	PlaneKnight
	PlaneBishop
	PlaneRook
	PlaneQueen
	PlaneKing
	NumPlanes
)

func colorPlane(c Color) int { return PlaneWhite + int(c) }
func piecePlane(pt PieceType) int { return PlanePawn + int(pt) - int(Pawn) }
func planePiece(plane int) PieceType { return PieceType(plane-PlanePawn) + Pawn }

// CastlingRights is a set of the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingSide CastlingRights = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
)

func (cr CastlingRights) Has(r CastlingRights) bool { return cr&r != 0 }

func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	for i, ch := range "KQkq" {
		if cr.Has(CastlingRights(1 << i)) {
			s += string(ch)
		}
	}
	return s
}
