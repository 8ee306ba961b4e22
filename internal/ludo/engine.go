package ludo

import (
	"fmt"

	"go.uber.org/zap"
)

// Game runs one simulation: a registry of participating seats, the derived
// board view, and the overall status. Turns are applied strictly in the order
// supplied; each turn mutates seat state, then the board view is rebuilt
// before anything reads it again.
type Game struct {
	status Status
	seats  map[SeatID]*Seat
	order  []*Seat
	board  *Board
	log    *zap.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger attaches a logger for per-move debug output.
func WithLogger(l *zap.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// NewGame seats the given participants and prepares the board view. Each
// identifier seats exactly one player; duplicates are rejected.
func NewGame(participants []SeatID, opts ...Option) (*Game, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}
	g := &Game{
		status: StatusInProgress,
		seats:  make(map[SeatID]*Seat, len(participants)),
		board:  newBoard(),
		log:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	for _, id := range participants {
		if _, ok := seatGeometry[id]; !ok {
			return nil, fmt.Errorf("seat %q: %w", id, ErrSeatNotFound)
		}
		if _, ok := g.seats[id]; ok {
			return nil, fmt.Errorf("seat %q: %w", id, ErrDuplicateSeat)
		}
		s := newSeat(id)
		g.seats[id] = s
		g.order = append(g.order, s)
	}
	g.board.rebuild(g.order)
	return g, nil
}

// SeatByID looks up a participating seat. Unknown identifiers are an input
// contract violation and return ErrSeatNotFound.
func (g *Game) SeatByID(id SeatID) (*Seat, error) {
	s, ok := g.seats[id]
	if !ok {
		return nil, fmt.Errorf("seat %q: %w", id, ErrSeatNotFound)
	}
	return s, nil
}

// Seats returns the participating seats in participation order.
func (g *Game) Seats() []*Seat {
	out := make([]*Seat, len(g.order))
	copy(out, g.order)
	return out
}

// Status reports the overall game status. Complete is sticky: it is set once
// all but one seat have finished both pieces and never reverts, even though
// further turns keep being processed.
func (g *Game) Status() Status { return g.status }

// OccupiedSpaces returns the current square name of every active piece, one
// entry per piece, in seat participation order then first/second.
func (g *Game) OccupiedSpaces() []string { return g.board.OccupiedSpaces() }

// Play processes every turn in order and returns the final occupied spaces.
func (g *Game) Play(turns []Turn) ([]string, error) {
	for _, t := range turns {
		if err := g.PlayTurn(t); err != nil {
			return nil, err
		}
	}
	return g.OccupiedSpaces(), nil
}

// PlayTurn applies a single scripted turn. A turn where no piece can legally
// move (both at home without a six) is consumed without a move.
func (g *Game) PlayTurn(t Turn) error {
	s, err := g.SeatByID(t.Seat)
	if err != nil {
		return err
	}
	role, ok := g.choosePiece(s, t.Roll)
	if ok {
		g.applyMove(s, role, t.Roll)
	} else {
		g.log.Debug("turn_forfeit", zap.String("seat", string(t.Seat)), zap.Int("roll", t.Roll))
	}
	g.board.rebuild(g.order)
	g.refreshStatus()
	return nil
}

// choosePiece implements the priority policy. It returns false only when
// both pieces are in the home yard and the roll is not a six.
//
// Priority 1: on a six, release an at-home piece, first preferred. Without a
// six, an at-home piece cannot move, so a lone at-home piece concedes the
// turn to its sibling.
func (g *Game) choosePiece(s *Seat, roll int) (PieceRole, bool) {
	homeFirst := s.Location(First) == AtHome
	homeSecond := s.Location(Second) == AtHome
	if roll == 6 {
		if homeFirst {
			return First, true
		}
		if homeSecond {
			return Second, true
		}
	} else {
		switch {
		case homeFirst && homeSecond:
			return First, false
		case homeSecond:
			return First, true
		case homeFirst:
			return Second, true
		}
	}
	return g.chooseReleased(s, roll), true
}

// chooseReleased handles priorities 2-4 for a seat with both pieces out of
// the home yard.
//
// Priority 2: an exact roll onto the finish square wins. A final-stretch
// piece that cannot finish exactly concedes the turn to its sibling; when
// both sit in the stretch and neither finishes, fall to priority 4.
// Priority 3: if exactly one piece would land on an opponent, capture.
// Priority 4: move the piece furthest from the finish, first on ties.
func (g *Game) chooseReleased(s *Seat, roll int) PieceRole {
	stretchFirst := s.inFinalStretch(First)
	stretchSecond := s.inFinalStretch(Second)
	switch {
	case stretchFirst && stretchSecond:
		if s.Counter(First)+roll == counterFinished {
			return First
		}
		if s.Counter(Second)+roll == counterFinished {
			return Second
		}
		return furthestBehind(s)
	case stretchFirst:
		if s.Counter(First)+roll == counterFinished {
			return First
		}
		return Second
	case stretchSecond:
		if s.Counter(Second)+roll == counterFinished {
			return Second
		}
		return First
	}
	capFirst := g.canCapture(s, First, roll)
	capSecond := g.canCapture(s, Second, roll)
	if capFirst != capSecond {
		if capFirst {
			return First
		}
		return Second
	}
	return furthestBehind(s)
}

// canCapture reports whether moving the piece by roll would land it on a
// square occupied by an opponent. Only shared outer-track squares are
// capturable: the home yard, the staged square, the private final stretch
// and the finish square never are.
func (g *Game) canCapture(s *Seat, role PieceRole, roll int) bool {
	if s.Location(role) == AtHome {
		return false
	}
	landing := reflectOvershoot(s.Counter(role) + roll)
	if landing < 1 || landing > trackMax {
		return false
	}
	_, ok := g.board.opponentOn(s.SquareName(landing), s.ID())
	return ok
}

// applyMove mutates seat state for the chosen piece. Moving an already
// finished piece is a deliberate no-op, not an error.
func (g *Game) applyMove(s *Seat, role PieceRole, roll int) {
	if s.Counter(role) == counterFinished {
		return
	}
	if s.Location(role) == AtHome {
		// release onto the staged square; no track arithmetic
		s.setCounter(role, counterStaged)
	} else {
		landing := reflectOvershoot(s.Counter(role) + roll)
		g.captureAt(s, landing)
		s.setCounter(role, landing)
		if s.Piece(role).Twinned() {
			// twinned pieces move in lock-step
			s.setCounter(siblingOf(role), landing)
		}
	}
	s.tryTwin()
	g.board.rebuild(g.order)
	g.log.Debug("move_apply",
		zap.String("seat", string(s.ID())),
		zap.String("piece", role.String()),
		zap.Int("roll", roll),
		zap.Int("counter", s.Counter(role)),
		zap.Bool("twinned", s.Piece(role).Twinned()),
	)
}

// captureAt sends home any opponent piece occupying the square the mover is
// about to land on. A twinned victim takes its sibling home with it. The
// board must still reflect the pre-move layout here, so the mover's own old
// square never shields the target.
func (g *Game) captureAt(mover *Seat, landing int) {
	if landing < 1 || landing > trackMax {
		return
	}
	victim, ok := g.board.opponentOn(mover.SquareName(landing), mover.ID())
	if !ok {
		return
	}
	victim.Owner().sendHome(victim.Role())
	g.board.rebuild(g.order)
	g.log.Debug("capture",
		zap.String("attacker", string(mover.ID())),
		zap.String("victim", victim.Label()),
	)
}

// refreshStatus flips the game to Complete once all but one participating
// seat have both pieces finished. The flag never reverts.
func (g *Game) refreshStatus() {
	if g.status == StatusComplete {
		return
	}
	done := 0
	for _, s := range g.order {
		if s.Completed() {
			done++
		}
	}
	if done == len(g.order)-1 {
		g.status = StatusComplete
		g.log.Debug("game_complete", zap.Int("finished_seats", done))
	}
}

// reflectOvershoot bounces a counter past the finish square back toward the
// stretch: 57+k becomes 57-k. The finish demands an exact landing.
func reflectOvershoot(n int) int {
	if n > counterFinished {
		return counterFinished - (n - counterFinished)
	}
	return n
}

func furthestBehind(s *Seat) PieceRole {
	if s.Counter(First) <= s.Counter(Second) {
		return First
	}
	return Second
}

func siblingOf(r PieceRole) PieceRole {
	if r == First {
		return Second
	}
	return First
}
