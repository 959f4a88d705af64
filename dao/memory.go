package dao

import (
	"context"
	"fmt"
	"sync"

	"crm-assistant/model"
)

// MemoryStore is an in-process session store for development and tests.
// Same contract as RedisStore, minus expiry.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*model.Session
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*model.Session),
	}
}

func (s *MemoryStore) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("%w: sessionID is empty", ErrInvalidParam)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}

	// Copy so callers never share the stored value.
	cp := *session
	cp.Messages = append([]model.ChatMessage(nil), session.Messages...)
	return &cp, nil
}

func (s *MemoryStore) Save(ctx context.Context, session *model.Session) error {
	if session == nil {
		return fmt.Errorf("%w: session is nil", ErrInvalidSession)
	}
	if session.ID == "" {
		return fmt.Errorf("%w: session.ID is empty", ErrInvalidSession)
	}

	cp := *session
	cp.Messages = append([]model.ChatMessage(nil), session.Messages...)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = &cp
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return fmt.Errorf("%w: sessionID is empty", ErrInvalidParam)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}
