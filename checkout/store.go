package checkout

import (
	"sync"

	"enjoypark/models"
	"enjoypark/utils"
)

// Store keeps wizard sessions in memory for the life of the process.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (s *Store) Create() Session {
	sess := newSession(utils.GetUUID())
	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()
	return snapshot(sess)
}

func (s *Store) Get(id string) (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false
	}
	return snapshot(sess), true
}

// Update runs fn on the session under the store lock; fn's error is
// passed through with the resulting snapshot.
func (s *Store) Update(id string, fn func(*Session) error) (Session, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return Session{}, false, nil
	}
	err := fn(sess)
	return snapshot(sess), true, err
}

// Reset discards the session, destroying its holder records and passes.
func (s *Store) Reset(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

func snapshot(sess *Session) Session {
	out := *sess
	out.Extras = append([]string(nil), sess.Extras...)
	out.Holders = append([]models.TicketHolder(nil), sess.Holders...)
	out.Passes = append([]Pass(nil), sess.Passes...)
	return out
}
