package memory

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
	"github.com/polkiloo/storefront/internal/domain/repository"
)

// Store keeps sessions in process memory. Sessions do not survive a restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
	now      func() time.Time
}

var _ repository.SessionRepository = (*Store)(nil)

func New() *Store {
	return &Store{sessions: make(map[string]model.Session), now: time.Now}
}

func (s *Store) Save(_ context.Context, session *model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *Store) Get(_ context.Context, id string) (*model.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || session.Expired(s.now()) {
		return nil, domainErrors.ErrNotFound
	}
	return &session, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *Store) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed, nil
}

func (s *Store) HealthCheck(context.Context) error {
	return nil
}
