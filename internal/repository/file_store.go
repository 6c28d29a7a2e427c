package repository

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"exam-service/internal/models"
)

// FileStore is the default progress backend: one JSON file mapping
// user_id to the user's record, rewritten whole on every save. A
// missing or corrupt file at load time starts an empty store instead
// of failing.
type FileStore struct {
	mu      sync.Mutex
	path    string
	records map[string]*models.UserRecord
}

func NewFileStore(path string) *FileStore {
	s := &FileStore{
		path:    path,
		records: make(map[string]*models.UserRecord),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("progress file %s unreadable, starting empty: %v", path, err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		log.Printf("progress file %s unparseable, starting empty: %v", path, err)
		s.records = make(map[string]*models.UserRecord)
	}
	return s
}

func (s *FileStore) GetUser(_ context.Context, userID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[userID]
	if !ok || rec.User == nil {
		return nil, ErrUserNotFound
	}
	u := *rec.User
	return &u, nil
}

func (s *FileStore) FindUserByName(_ context.Context, name string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.User != nil && rec.User.Name == name {
			u := *rec.User
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetProgress returns a deep copy so callers never share the counter
// maps with a concurrent writer.
func (s *FileStore) GetProgress(_ context.Context, userID string) (*models.Progress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[userID]
	if !ok || rec.Progress == nil {
		return nil, ErrUserNotFound
	}
	return rec.Progress.Clone(), nil
}

// SaveRecord stores a private copy and commits it only once the file
// rewrite succeeds, so a failed write leaves the store unchanged.
func (s *FileStore) SaveRecord(_ context.Context, rec *models.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := *rec.User
	stored := &models.UserRecord{User: &user, Progress: rec.Progress.Clone()}

	prev, existed := s.records[user.UserID]
	s.records[user.UserID] = stored
	if err := s.flushLocked(); err != nil {
		if existed {
			s.records[user.UserID] = prev
		} else {
			delete(s.records, user.UserID)
		}
		return err
	}
	return nil
}

// flushLocked rewrites the whole file through a temp-file rename so a
// crash mid-write cannot truncate the store.
func (s *FileStore) flushLocked() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *FileStore) Close() error {
	return nil
}
