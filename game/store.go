package game

import (
	"sync"
	"time"

	"htmx-tictactoe/models"

	"github.com/google/uuid"
)

// Store keeps one session per browser. It is safe for concurrent use; the
// sessions it hands out must be locked before their state is touched.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*models.Session),
		now:      time.Now,
	}
}

// generateSessionID creates a unique session identifier
func generateSessionID() string {
	return uuid.NewString()
}

// CreateSession creates a session with a fresh game and stores it
func (s *Store) CreateSession() *models.Session {
	now := s.now()
	session := &models.Session{
		ID:        generateSessionID(),
		State:     NewGameState(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()

	return session
}

// GetSession retrieves a session by ID
func (s *Store) GetSession(id string) *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sessions[id]
}

// Touch records that the session's state changed.
func (s *Store) Touch(session *models.Session) {
	session.UpdatedAt = s.now()
}

// EvictIdle removes sessions not updated within maxAge and returns their IDs.
func (s *Store) EvictIdle(maxAge time.Duration) []string {
	cutoff := s.now().Add(-maxAge)

	s.mu.Lock()
	defer s.mu.Unlock()

	var evicted []string
	for id, session := range s.sessions {
		session.Lock()
		idle := session.UpdatedAt.Before(cutoff)
		session.Unlock()
		if idle {
			delete(s.sessions, id)
			evicted = append(evicted, id)
		}
	}
	return evicted
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
