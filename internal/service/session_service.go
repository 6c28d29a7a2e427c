package service

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"exam-service/internal/id"
	"exam-service/internal/models"
	"exam-service/internal/repository"
	"exam-service/internal/selection"
	"exam-service/internal/stats"
)

var ErrSessionEnded = errors.New("session already ended")

// SubmitResult is what an answer submission reports back.
type SubmitResult struct {
	IsCorrect     bool
	CorrectAnswer string
	Explain       string
	CorrectCount  int
	WrongCount    int
	NextIndex     int
	NextQuestion  *models.Question
}

type SessionService struct {
	sessions  *repository.SessionRepository
	questions *repository.QuestionRepository
	store     repository.ProgressStore

	rngMu sync.Mutex
	rng   *rand.Rand

	// Per-user write serialization; closes the lost-update race
	// between two tabs of the same user.
	locksMu   sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewSessionService(
	sessions *repository.SessionRepository,
	questions *repository.QuestionRepository,
	store repository.ProgressStore,
) *SessionService {
	return &SessionService{
		sessions:  sessions,
		questions: questions,
		store:     store,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		userLocks: make(map[string]*sync.Mutex),
	}
}

func (s *SessionService) userLock(userID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()
	mu, ok := s.userLocks[userID]
	if !ok {
		mu = &sync.Mutex{}
		s.userLocks[userID] = mu
	}
	return mu
}

func (s *SessionService) pick(total int, excluded map[int]bool) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return selection.PickRandom(s.rng, total, excluded)
}

// StartSession opens a study run over the whole bank (basic mode) or
// one subject (category mode) and selects the first question.
func (s *SessionService) StartSession(userID, mode, category string) (*models.StudySession, *models.Question, error) {
	var indices []int
	switch mode {
	case models.ModeBasic:
		indices = make([]int, s.questions.Count())
		for i := range indices {
			indices[i] = i
		}
	case models.ModeCategory:
		if !models.KnownCategory(category) {
			return nil, nil, ErrInvalidInput
		}
		indices = append(indices, s.questions.CategoryIndices(category)...)
	default:
		return nil, nil, ErrInvalidInput
	}
	if len(indices) == 0 {
		return nil, nil, ErrInvalidInput
	}

	session := &models.StudySession{
		ID:             "sess_" + id.New(),
		UserID:         userID,
		Mode:           mode,
		Category:       category,
		Status:         models.StatusActive,
		StartTime:      time.Now(),
		TotalQuestions: len(indices),
		Indices:        indices,
		Attempted:      make(map[int]bool),
	}
	session.CurrentIndex = s.pick(len(indices), session.Attempted)

	s.sessions.Create(session)
	return session, s.questionAt(session, session.CurrentIndex), nil
}

// questionAt resolves a session-local position to a bank question.
func (s *SessionService) questionAt(session *models.StudySession, i int) *models.Question {
	if i < 0 || i >= len(session.Indices) {
		return nil
	}
	return s.questions.ByIndex(session.Indices[i])
}

// GetQuestion returns the question at a session-local index, bounds
// checked.
func (s *SessionService) GetQuestion(sessionID string, index int) (*models.Question, *models.StudySession, error) {
	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		return nil, nil, err
	}
	q := s.questionAt(session, index)
	if q == nil {
		return nil, nil, repository.ErrQuestionNotFound
	}
	return q, session, nil
}

// SubmitAnswer grades the session's current question, folds the
// attempt into the owner's progress and advances to a fresh random
// question. A valid attempt is never rejected.
func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, answer string) (*SubmitResult, error) {
	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	mu := s.userLock(session.UserID)
	mu.Lock()
	defer mu.Unlock()

	if session.Status != models.StatusActive {
		return nil, ErrSessionEnded
	}
	question := s.questionAt(session, session.CurrentIndex)
	if question == nil {
		return nil, repository.ErrQuestionNotFound
	}

	correct := question.Grade(answer)

	// Persist first; a failed save must not leave the session
	// half-counted.
	now := time.Now()
	progress, err := s.store.GetProgress(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		progress = models.NewProgress()
	}
	progress.RecordAttempt(question.Category, models.DayKey(now), correct)
	if err := s.saveProgress(ctx, session.UserID, progress); err != nil {
		return nil, err
	}

	if correct {
		session.CorrectCount++
	} else {
		session.WrongCount++
	}
	session.Attempted[session.CurrentIndex] = true
	session.CurrentIndex = s.pick(session.TotalQuestions, session.Attempted)

	return &SubmitResult{
		IsCorrect:     correct,
		CorrectAnswer: question.Answer,
		Explain:       question.Explain,
		CorrectCount:  session.CorrectCount,
		WrongCount:    session.WrongCount,
		NextIndex:     session.CurrentIndex,
		NextQuestion:  s.questionAt(session, session.CurrentIndex),
	}, nil
}

// EndSession stamps the end time, appends the summary to the owner's
// bounded history and drops the session from memory.
func (s *SessionService) EndSession(ctx context.Context, sessionID string) (*models.SessionSummary, error) {
	session, err := s.sessions.FindByID(sessionID)
	if err != nil {
		return nil, err
	}

	mu := s.userLock(session.UserID)
	mu.Lock()
	defer mu.Unlock()

	if session.Status != models.StatusActive {
		return nil, ErrSessionEnded
	}
	session.Status = models.StatusEnded
	session.EndTime = time.Now()
	session.DurationSeconds = int(session.EndTime.Sub(session.StartTime).Seconds())

	summary := models.SessionSummary{
		SessionID:       session.ID,
		Mode:            session.Mode,
		Category:        session.Category,
		StartTime:       session.StartTime,
		EndTime:         session.EndTime,
		DurationSeconds: session.DurationSeconds,
		Attempted:       session.Attempts(),
		Correct:         session.CorrectCount,
		Wrong:           session.WrongCount,
		Accuracy:        stats.Accuracy(session.CorrectCount, session.Attempts()),
	}

	progress, err := s.store.GetProgress(ctx, session.UserID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, err
		}
		progress = models.NewProgress()
	}
	progress.AppendSummary(summary)
	if err := s.saveProgress(ctx, session.UserID, progress); err != nil {
		return nil, err
	}

	s.sessions.Delete(sessionID)
	return &summary, nil
}

func (s *SessionService) saveProgress(ctx context.Context, userID string, progress *models.Progress) error {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return err
	}
	return s.store.SaveRecord(ctx, &models.UserRecord{User: user, Progress: progress})
}
