package engine

import "github.com/mkutay/stargaze/internal/chess"

// Bound says how a stored score relates to the true value of the node.
type Bound uint8

const (
	BoundNone  Bound = iota
	BoundExact       // true minimax value
	BoundLower       // fail-high: true value >= score
	BoundUpper       // fail-low: true value <= score
)

func (b Bound) String() string {
	switch b {
	case BoundExact:
		return "exact"
	case BoundLower:
		return "lower"
	case BoundUpper:
		return "upper"
	default:
		return "none"
	}
}

// TTEntry is one cached search result.
type TTEntry struct {
	Move  chess.Move
	Score int
	Depth int
	Bound Bound
	Gen   uint32
}

// TranspositionTable maps position fingerprints to search results. It is not
// safe for concurrent use; each Engine owns one.
type TranspositionTable struct {
	entries    map[uint64]TTEntry
	gen        uint32
	maxEntries int
}

// NewTranspositionTable returns an empty table. A positive maxEntries bounds the
// number of entries kept across searches; zero means unbounded.
func NewTranspositionTable(maxEntries int) *TranspositionTable {
	hint := 1 << 16
	if maxEntries > 0 && maxEntries < hint {
		hint = maxEntries
	}
	return &TranspositionTable{
		entries:    make(map[uint64]TTEntry, hint),
		maxEntries: maxEntries,
	}
}

// NewSearch ages the table. Entries survive; only the replacement rule sees
// the generation. Over the cap, entries older than the previous generation are
// dropped.
func (t *TranspositionTable) NewSearch() {
	t.gen++
	if t.maxEntries <= 0 || len(t.entries) <= t.maxEntries {
		return
	}
	for key, e := range t.entries {
		if t.gen-e.Gen > 1 {
			delete(t.entries, key)
		}
	}
}

func (t *TranspositionTable) Probe(key uint64) (TTEntry, bool) {
	e, ok := t.entries[key]
	if !ok || e.Bound == BoundNone {
		return TTEntry{}, false
	}
	return e, true
}

// Store writes the entry unless the slot holds a deeper result from this or
// the previous search.
func (t *TranspositionTable) Store(key uint64, move chess.Move, score, depth int, bound Bound) {
	old, ok := t.entries[key]
	if ok && old.Bound != BoundNone && t.gen-old.Gen <= 1 && depth < old.Depth {
		return
	}
	t.entries[key] = TTEntry{
		Move:  move,
		Score: score,
		Depth: depth,
		Bound: bound,
		Gen:   t.gen,
	}
}

func (t *TranspositionTable) Len() int { return len(t.entries) }

func (t *TranspositionTable) Generation() uint32 { return t.gen }

// Clear drops every entry and resets the generation.
func (t *TranspositionTable) Clear() {
	t.entries = make(map[uint64]TTEntry, 1<<16)
	t.gen = 0
}

// Mate scores are stored relative to the node so they stay correct when the
// same position is reached at a different ply.
func scoreToTT(score, ply int) int {
	switch {
	case score >= MateScore-MaxPly:
		return score + ply
	case score <= -MateScore+MaxPly:
		return score - ply
	}
	return score
}

func scoreFromTT(score, ply int) int {
	switch {
	case score >= MateScore-MaxPly:
		return score - ply
	case score <= -MateScore+MaxPly:
		return score + ply
	}
	return score
}
