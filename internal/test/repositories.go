package test

import (
	"context"
	"sync"
	"time"

	domainErrors "github.com/polkiloo/storefront/internal/domain/errors"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// SessionRepositoryStub keeps sessions in a map. Err, when set, is returned
// from every method.
type SessionRepositoryStub struct {
	Err error

	mu       sync.Mutex
	sessions map[string]model.Session
}

// NewSessionRepositoryStub constructs an empty stub.
func NewSessionRepositoryStub() *SessionRepositoryStub {
	return &SessionRepositoryStub{sessions: make(map[string]model.Session)}
}

func (s *SessionRepositoryStub) Save(ctx context.Context, session *model.Session) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions == nil {
		s.sessions = make(map[string]model.Session)
	}
	s.sessions[session.ID] = *session
	return nil
}

func (s *SessionRepositoryStub) Get(ctx context.Context, id string) (*model.Session, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return &session, nil
}

func (s *SessionRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *SessionRepositoryStub) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
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

// Len reports the number of stored sessions.
func (s *SessionRepositoryStub) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
