package service

import (
	"context"
	"errors"

	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/stats"
)

// CurrentStats is the compact progress snapshot for the study screen.
type CurrentStats struct {
	ProgressPercent float64 `json:"progress_percent"`
	AccuracyPercent float64 `json:"accuracy_percent"`
	CorrectCount    int     `json:"correct_count"`
	WrongCount      int     `json:"wrong_count"`
	TotalAnswered   int     `json:"total_answered"`
}

// DetailedStats adds the per-subject breakdown, daily buckets and the
// exam-pass prediction.
type DetailedStats struct {
	TotalAttempted int                             `json:"total_attempted"`
	TotalCorrect   int                             `json:"total_correct"`
	TotalWrong     int                             `json:"total_wrong"`
	AccuracyRate   float64                         `json:"accuracy_rate"`
	Streak         int                             `json:"streak"`
	BestStreak     int                             `json:"best_streak"`
	Categories     map[string]*models.CategoryStat `json:"categories"`
	Daily          map[string]*models.DailyStat    `json:"daily"`
	Prediction     stats.Prediction                `json:"prediction"`
	SessionHistory []models.SessionSummary         `json:"session_history"`
}

type StatsService struct {
	store     repository.ProgressStore
	questions *repository.QuestionRepository
}

func NewStatsService(store repository.ProgressStore, questions *repository.QuestionRepository) *StatsService {
	return &StatsService{store: store, questions: questions}
}

func (s *StatsService) progressFor(ctx context.Context, userID string) (*models.Progress, error) {
	progress, err := s.store.GetProgress(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// The user may exist with no attempts yet.
			if _, uerr := s.store.GetUser(ctx, userID); uerr == nil {
				return models.NewProgress(), nil
			}
		}
		return nil, err
	}
	return progress, nil
}

func (s *StatsService) Current(ctx context.Context, userID string) (*CurrentStats, error) {
	progress, err := s.progressFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	percent := stats.Accuracy(progress.TotalAttempted, s.questions.Count())
	if percent > 100 {
		percent = 100
	}
	return &CurrentStats{
		ProgressPercent: percent,
		AccuracyPercent: progress.AccuracyRate,
		CorrectCount:    progress.TotalCorrect,
		WrongCount:      progress.TotalWrong,
		TotalAnswered:   progress.TotalAttempted,
	}, nil
}

func (s *StatsService) Detailed(ctx context.Context, userID string) (*DetailedStats, error) {
	progress, err := s.progressFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	// All four subjects appear in the breakdown, zeroed when untouched.
	categories := make(map[string]*models.CategoryStat, len(models.Categories))
	subjectScores := make(map[string]float64)
	for _, cat := range models.Categories {
		if cs, ok := progress.CategoryStats[cat]; ok && cs.Attempted > 0 {
			categories[cat] = cs
			subjectScores[cat] = cs.Accuracy
		} else {
			categories[cat] = &models.CategoryStat{}
		}
	}

	daily := progress.DailyProgress
	if daily == nil {
		daily = make(map[string]*models.DailyStat)
	}

	return &DetailedStats{
		TotalAttempted: progress.TotalAttempted,
		TotalCorrect:   progress.TotalCorrect,
		TotalWrong:     progress.TotalWrong,
		AccuracyRate:   progress.AccuracyRate,
		Streak:         progress.Streak,
		BestStreak:     progress.BestStreak,
		Categories:     categories,
		Daily:          daily,
		Prediction:     stats.Predict(subjectScores),
		SessionHistory: progress.SessionHistory,
	}, nil
}
