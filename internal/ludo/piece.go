package ludo

// Piece is one of a seat's two tokens. Identity (owner and role) is fixed at
// creation; only the twinned flag changes over a piece's life. Progress is
// tracked on the owning Seat, not here, so the Board view can stay a pure
// derivation of seat state.
type Piece struct {
	owner   *Seat
	role    PieceRole
	twinned bool
}

func newPiece(owner *Seat, role PieceRole) *Piece {
	return &Piece{owner: owner, role: role}
}

// Owner returns the seat this piece belongs to.
func (p *Piece) Owner() *Seat { return p.owner }

// Role reports whether this is the seat's first or second piece.
func (p *Piece) Role() PieceRole { return p.role }

// Twinned reports whether this piece moves in lock-step with its sibling.
func (p *Piece) Twinned() bool { return p.twinned }

// Label renders the piece identity as seat letter plus role, e.g. "A-first".
func (p *Piece) Label() string {
	return string(p.owner.ID()) + "-" + p.role.String()
}
