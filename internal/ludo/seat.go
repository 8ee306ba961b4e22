package ludo

import "strconv"

// Seat is one participating board position. It owns exactly two pieces and is
// the authoritative holder of their progress counters and location statuses;
// the Board view is derived from this state.
type Seat struct {
	id          SeatID
	entryOffset int
	exitOffset  int // recorded for board geometry, unused by move logic

	pieces    [2]*Piece
	counters  [2]int
	locations [2]Location
}

// Per-seat geometry on the 56-square ring: entries evenly spaced by 14.
var seatGeometry = map[SeatID]struct{ entry, exit int }{
	SeatA: {entry: 1, exit: 50},
	SeatB: {entry: 15, exit: 8},
	SeatC: {entry: 29, exit: 22},
	SeatD: {entry: 43, exit: 36},
}

func newSeat(id SeatID) *Seat {
	geo := seatGeometry[id]
	s := &Seat{
		id:          id,
		entryOffset: geo.entry,
		exitOffset:  geo.exit,
		counters:    [2]int{counterHome, counterHome},
		locations:   [2]Location{AtHome, AtHome},
	}
	s.pieces[First] = newPiece(s, First)
	s.pieces[Second] = newPiece(s, Second)
	return s
}

// ID returns the seat identifier.
func (s *Seat) ID() SeatID { return s.id }

// EntryOffset returns the ring square this seat's pieces enter on.
func (s *Seat) EntryOffset() int { return s.entryOffset }

// ExitOffset returns the ring square just before this seat's final stretch.
func (s *Seat) ExitOffset() int { return s.exitOffset }

// Piece returns the piece holding the given role.
func (s *Seat) Piece(role PieceRole) *Piece { return s.pieces[role] }

// Counter returns the progress counter of the piece with the given role.
func (s *Seat) Counter(role PieceRole) int { return s.counters[role] }

// Location returns the location status of the piece with the given role.
func (s *Seat) Location(role PieceRole) Location { return s.locations[role] }

// Completed reports whether both of the seat's pieces have finished.
func (s *Seat) Completed() bool {
	return s.locations[First] == Finished && s.locations[Second] == Finished
}

func (s *Seat) setCounter(role PieceRole, c int) {
	s.counters[role] = c
	switch {
	case c == counterHome:
		s.locations[role] = AtHome
	case c == counterStaged:
		s.locations[role] = Staged
	case c == counterFinished:
		s.locations[role] = Finished
	default:
		s.locations[role] = OnTrack
	}
}

// sendHome resets both pieces to the home yard and clears twinning. Used when
// an opponent captures either piece: a twinned pair goes home together, and a
// lone capture still resets only via its own role (see capture path).
func (s *Seat) sendHome(role PieceRole) {
	s.setCounter(role, counterHome)
	if s.pieces[First].twinned {
		s.pieces[First].twinned = false
		s.pieces[Second].twinned = false
		s.setCounter(First, counterHome)
		s.setCounter(Second, counterHome)
	}
}

// inFinalStretch reports whether the piece sits on the seat-private run of
// six squares before the finish.
func (s *Seat) inFinalStretch(role PieceRole) bool {
	c := s.counters[role]
	return c >= stretchMin && c <= stretchMax
}

// tryTwin marks both pieces twinned when they share a counter strictly
// between staged and finished. Twinning never forms at home, on the staged
// square, or on the finish square.
func (s *Seat) tryTwin() {
	if s.pieces[First].twinned {
		return
	}
	c := s.counters[First]
	if c == s.counters[Second] && c > counterStaged && c < counterFinished {
		s.pieces[First].twinned = true
		s.pieces[Second].twinned = true
	}
}

// SquareName renders the board square for a progress counter. Home, the
// staged square and the finish square share labels across seats; outer-track
// squares share the numeric ring labels; final-stretch squares are private,
// named seat letter plus the counter's last digit.
func (s *Seat) SquareName(counter int) string {
	switch {
	case counter == counterHome:
		return homeLabel
	case counter == counterStaged:
		return stagedLabel
	case counter >= 1 && counter <= trackMax:
		sq := s.entryOffset + counter - 1
		if sq > ringSize {
			sq -= ringSize
		}
		return strconv.Itoa(sq)
	case counter >= stretchMin && counter <= stretchMax:
		return string(s.id) + strconv.Itoa(counter%10)
	case counter == counterFinished:
		return finishedLabel
	}
	return ""
}
