package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"exam-service/internal/id"
	"exam-service/internal/models"
	"exam-service/internal/repository"
)

var ErrInvalidInput = errors.New("invalid input")

type UserService struct {
	store repository.ProgressStore
}

func NewUserService(store repository.ProgressStore) *UserService {
	return &UserService{store: store}
}

// Register creates a user, or returns the existing one when the name
// is already registered.
func (s *UserService) Register(ctx context.Context, name string) (*models.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidInput
	}

	if existing, err := s.store.FindUserByName(ctx, name); err == nil {
		return existing, nil
	}

	user := &models.User{
		UserID:       "user_" + id.New(),
		Name:         name,
		RegisteredAt: time.Now(),
	}
	rec := &models.UserRecord{User: user, Progress: models.NewProgress()}
	if err := s.store.SaveRecord(ctx, rec); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (*models.User, error) {
	return s.store.GetUser(ctx, userID)
}

// Resolve finds a user by id, then by name, and finally auto-creates a
// guest so a quiz can always start.
func (s *UserService) Resolve(ctx context.Context, userID, userName string) (*models.User, error) {
	if userID != "" {
		if user, err := s.store.GetUser(ctx, userID); err == nil {
			return user, nil
		} else if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
	}
	if name := strings.TrimSpace(userName); name != "" {
		return s.Register(ctx, name)
	}

	guest := models.NewGuest(time.Now(), id.Short())
	rec := &models.UserRecord{User: guest, Progress: models.NewProgress()}
	if err := s.store.SaveRecord(ctx, rec); err != nil {
		return nil, err
	}
	return guest, nil
}
