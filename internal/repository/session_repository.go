package repository

import (
	"sync"

	"exam-service/internal/models"
)

// SessionRepository keeps live study sessions in process memory.
// Sessions are ephemeral: everything worth keeping is folded into the
// owner's progress, so a restart only loses in-flight runs.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*models.StudySession
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[string]*models.StudySession)}
}

func (r *SessionRepository) Create(s *models.StudySession) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = s
}

// FindByID returns the live session, or ErrSessionNotFound.
func (r *SessionRepository) FindByID(id string) (*models.StudySession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}

// Count reports live sessions, for the health endpoint.
func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
