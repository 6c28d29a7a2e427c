package repository

import (
	"context"
	"errors"

	"exam-service/internal/models"
)

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrQuestionNotFound = errors.New("question not found")
)

// ProgressStore persists users and their cumulative progress. The
// default backend is a single JSON file; sqlite and mongo backends
// implement the same contract so business logic never sees the
// difference.
type ProgressStore interface {
	GetUser(ctx context.Context, userID string) (*models.User, error)
	FindUserByName(ctx context.Context, name string) (*models.User, error)
	GetProgress(ctx context.Context, userID string) (*models.Progress, error)
	SaveRecord(ctx context.Context, rec *models.UserRecord) error
	Close() error
}
