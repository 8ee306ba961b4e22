package session

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hyeon-dev/ludo-sim/internal/ludo"
	"github.com/hyeon-dev/ludo-sim/internal/obslog"
	"github.com/hyeon-dev/ludo-sim/pkg/ludodto"
)

var (
	ErrInvalidArgs     = errors.New("invalid arguments")
	ErrSessionNotFound = errors.New("session not found")
)

// Session is one simulation run held in memory. Nothing survives the
// process: the engine is an in-process library and results are read out
// through Snapshot.
type Session struct {
	ID        string
	Game      *ludo.Game
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Manager is an in-memory registry of simulation sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager() *Manager {
	return &Manager{sessions: make(map[string]*Session)}
}

// Create seats the participants in a fresh game and registers the session.
func (m *Manager) Create(participants []ludo.SeatID) (*Session, error) {
	if len(participants) == 0 {
		return nil, ErrInvalidArgs
	}
	g, err := ludo.NewGame(participants, ludo.WithLogger(obslog.L()))
	if err != nil {
		return nil, err
	}
	s := &Session{
		ID:        uuid.NewString(),
		Game:      g,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()
	obslog.L().Info("session_create",
		zap.String("session_id", s.ID),
		zap.Int("seats", len(participants)),
	)
	return s, nil
}

// Get returns a registered session by ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Play feeds the scripted turns to the session's game and returns the final
// occupied spaces. Turns within one session are processed strictly in order;
// the registry lock is held across the run so state reads stay consistent.
func (m *Manager) Play(id string, turns []ludo.Turn) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	spaces, err := s.Game.Play(turns)
	if err != nil {
		return nil, err
	}
	s.UpdatedAt = time.Now()
	obslog.L().Info("session_play",
		zap.String("session_id", s.ID),
		zap.Int("turns", len(turns)),
		zap.String("status", string(s.Game.Status())),
	)
	return spaces, nil
}

// Snapshot renders the session's current state as a result DTO.
func (m *Manager) Snapshot(id string) (*ludodto.Result, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	res := &ludodto.Result{
		SessionID:      s.ID,
		Status:         string(s.Game.Status()),
		OccupiedSpaces: s.Game.OccupiedSpaces(),
	}
	for _, seat := range s.Game.Seats() {
		report := ludodto.SeatReport{
			Seat:      string(seat.ID()),
			Completed: seat.Completed(),
		}
		for _, role := range []ludo.PieceRole{ludo.First, ludo.Second} {
			report.Pieces[role] = ludodto.PieceRow{
				Role:     role.String(),
				Counter:  seat.Counter(role),
				Location: string(seat.Location(role)),
				Square:   seat.SquareName(seat.Counter(role)),
				Twinned:  seat.Piece(role).Twinned(),
			}
		}
		res.Seats = append(res.Seats, report)
	}
	return res, nil
}
