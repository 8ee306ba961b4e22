package ludo

// Board is a derived view of piece placement: one entry per active piece, in
// seat participation order, then first/second. Each entry carries an owner
// reference so occupancy checks never have to recover ownership through
// positional indexing. Seats remain the authoritative state; the view must be
// rebuilt after any counter mutation before it is queried.
type Board struct {
	entries []boardEntry
}

type boardEntry struct {
	piece  *Piece
	owner  SeatID
	square string
}

func newBoard() *Board {
	return &Board{}
}

// rebuild recomputes every entry from current seat state.
func (b *Board) rebuild(seats []*Seat) {
	b.entries = b.entries[:0]
	for _, s := range seats {
		for _, role := range []PieceRole{First, Second} {
			b.entries = append(b.entries, boardEntry{
				piece:  s.Piece(role),
				owner:  s.ID(),
				square: s.SquareName(s.Counter(role)),
			})
		}
	}
}

// OccupiedSpaces returns the square name of every active piece, in stable
// enumeration order. Duplicates appear when pieces share a square; that is
// how stacking is observed from the outside.
func (b *Board) OccupiedSpaces() []string {
	out := make([]string, len(b.entries))
	for i, e := range b.entries {
		out[i] = e.square
	}
	return out
}

// opponentOn reports whether a piece owned by a seat other than mover sits on
// the named square, returning the first such occupant.
func (b *Board) opponentOn(square string, mover SeatID) (*Piece, bool) {
	for _, e := range b.entries {
		if e.square == square && e.owner != mover {
			return e.piece, true
		}
	}
	return nil, false
}
