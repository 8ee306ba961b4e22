package ludo

import (
	"errors"
	"fmt"
	"strings"
)

// SeatID identifies one of the four fixed board positions.
type SeatID string

const (
	SeatA SeatID = "A"
	SeatB SeatID = "B"
	SeatC SeatID = "C"
	SeatD SeatID = "D"
)

// ParseSeatID normalizes a raw identifier into a SeatID.
func ParseSeatID(s string) (SeatID, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "A":
		return SeatA, nil
	case "B":
		return SeatB, nil
	case "C":
		return SeatC, nil
	case "D":
		return SeatD, nil
	}
	return "", fmt.Errorf("unknown seat %q", s)
}

// PieceRole distinguishes a seat's two pieces. The role is fixed at creation.
type PieceRole int

const (
	First PieceRole = iota
	Second
)

func (r PieceRole) String() string {
	if r == Second {
		return "second"
	}
	return "first"
}

// Location is the coarse position of a piece, derived from its counter.
type Location string

const (
	AtHome   Location = "AT_HOME"
	Staged   Location = "STAGED"
	OnTrack  Location = "ON_TRACK"
	Finished Location = "FINISHED"
)

// Status represents the overall lifecycle of a simulation.
type Status string

const (
	StatusInProgress Status = "IN_PROGRESS"
	StatusComplete   Status = "COMPLETE"
)

// Turn is one scripted move request: a seat and its supplied dice roll.
type Turn struct {
	Seat SeatID `json:"seat" yaml:"seat"`
	Roll int    `json:"roll" yaml:"roll"`
}

var (
	ErrSeatNotFound   = errors.New("seat not found")
	ErrNoParticipants = errors.New("no participating seats")
	ErrDuplicateSeat  = errors.New("duplicate seat")
)

// Shared square labels. Home, the staged square, and the finish square are
// common to all seats; outer-track squares render as their ring number.
const (
	homeLabel     = "H"
	stagedLabel   = "R"
	finishedLabel = "E"
)

// Counter bounds. -1 home, 0 staged, 1..50 shared ring, 51..56 private
// final stretch, 57 finished.
const (
	counterHome     = -1
	counterStaged   = 0
	trackMax        = 50
	stretchMin      = 51
	stretchMax      = 56
	counterFinished = 57
	ringSize        = 56
)
