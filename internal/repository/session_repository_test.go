package repository

import (
	"errors"
	"testing"

	"exam-service/internal/models"
)

func TestSessionRepositoryLifecycle(t *testing.T) {
	repo := NewSessionRepository()

	if _, err := repo.FindByID("sess_x"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("FindByID on empty repo = %v, want ErrSessionNotFound", err)
	}

	repo.Create(&models.StudySession{ID: "sess_x", UserID: "user_a", Status: models.StatusActive})
	s, err := repo.FindByID("sess_x")
	if err != nil {
		t.Fatal(err)
	}
	if s.UserID != "user_a" {
		t.Errorf("user id = %q, want user_a", s.UserID)
	}
	if repo.Count() != 1 {
		t.Errorf("Count() = %d, want 1", repo.Count())
	}

	repo.Delete("sess_x")
	if _, err := repo.FindByID("sess_x"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("FindByID after delete = %v, want ErrSessionNotFound", err)
	}
}
