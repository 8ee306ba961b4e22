package session

import (
	"errors"
	"reflect"
	"testing"

	"github.com/hyeon-dev/ludo-sim/internal/ludo"
)

func newTestSession(t *testing.T, seats ...ludo.SeatID) (*Manager, *Session) {
	t.Helper()
	m := NewManager()
	s, err := m.Create(seats)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	return m, s
}

func TestCreateAssignsUniqueIDs(t *testing.T) {
	m := NewManager()
	a, err := m.Create([]ludo.SeatID{ludo.SeatA})
	if err != nil {
		t.Fatalf("Create#1: %v", err)
	}
	b, err := m.Create([]ludo.SeatID{ludo.SeatB})
	if err != nil {
		t.Fatalf("Create#2: %v", err)
	}
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct non-empty session IDs, got %q and %q", a.ID, b.ID)
	}
}

func TestCreateRejectsEmptyParticipants(t *testing.T) {
	m := NewManager()
	if _, err := m.Create(nil); !errors.Is(err, ErrInvalidArgs) {
		t.Fatalf("got %v, want ErrInvalidArgs", err)
	}
}

func TestGetUnknownSession(t *testing.T) {
	m := NewManager()
	if _, err := m.Get("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Get: got %v, want ErrSessionNotFound", err)
	}
	if _, err := m.Play("nope", nil); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Play: got %v, want ErrSessionNotFound", err)
	}
	if _, err := m.Snapshot("nope"); !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("Snapshot: got %v, want ErrSessionNotFound", err)
	}
}

func TestPlayAndSnapshot(t *testing.T) {
	m, s := newTestSession(t, ludo.SeatC)
	spaces, err := m.Play(s.ID, []ludo.Turn{
		{Seat: ludo.SeatC, Roll: 6},
		{Seat: ludo.SeatC, Roll: 5},
	})
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	// release to the staged square, then advance 5 onto ring square 33
	if want := []string{"33", "H"}; !reflect.DeepEqual(spaces, want) {
		t.Fatalf("spaces = %v, want %v", spaces, want)
	}

	res, err := m.Snapshot(s.ID)
	if err != nil {
		t.Fatalf("Snapshot: %v", err)
	}
	if res.SessionID != s.ID {
		t.Fatalf("snapshot session id = %q, want %q", res.SessionID, s.ID)
	}
	if len(res.Seats) != 1 || res.Seats[0].Seat != "C" {
		t.Fatalf("snapshot seats = %+v, want one seat C", res.Seats)
	}
	first := res.Seats[0].Pieces[0]
	if first.Counter != 5 || first.Square != "33" || first.Location != string(ludo.OnTrack) {
		t.Fatalf("first piece = %+v, want counter 5 on square 33", first)
	}
	second := res.Seats[0].Pieces[1]
	if second.Counter != -1 || second.Square != "H" {
		t.Fatalf("second piece = %+v, want at home", second)
	}
}

func TestPlayPropagatesEngineErrors(t *testing.T) {
	m, s := newTestSession(t, ludo.SeatA)
	_, err := m.Play(s.ID, []ludo.Turn{{Seat: ludo.SeatB, Roll: 2}})
	if !errors.Is(err, ludo.ErrSeatNotFound) {
		t.Fatalf("got %v, want ErrSeatNotFound", err)
	}
}
