package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"exam-service/internal/models"
	"exam-service/internal/repository"
)

// testBank builds a bank with three questions per subject.
func testBank(t *testing.T) string {
	t.Helper()
	answers := []string{"O", "X", "1"}
	var entries []string
	for _, cat := range models.Categories {
		for i, ans := range answers {
			entries = append(entries, fmt.Sprintf(
				`{"question": "%s 문제 %d", "answer": "%s", "type": "진위형", "layer1": "%s"}`,
				cat, i+1, ans, cat))
		}
	}
	path := filepath.Join(t.TempDir(), "questions.json")
	content := "[" + entries[0]
	for _, e := range entries[1:] {
		content += "," + e
	}
	content += "]"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

type fixture struct {
	users    *UserService
	sessions *SessionService
	stats    *StatsService
	store    repository.ProgressStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := repository.NewFileStore(filepath.Join(t.TempDir(), "progress.json"))
	questions := repository.NewQuestionRepository(testBank(t))
	sessions := repository.NewSessionRepository()
	return &fixture{
		users:    NewUserService(store),
		sessions: NewSessionService(sessions, questions, store),
		stats:    NewStatsService(store, questions),
		store:    store,
	}
}

// submitN answers n questions, the first correct of them correctly.
func submitN(t *testing.T, f *fixture, session *models.StudySession, first *models.Question, n, correct int) {
	t.Helper()
	ctx := context.Background()
	current := first
	for i := 0; i < n; i++ {
		answer := "Z"
		if i < correct {
			answer = current.Answer
		}
		result, err := f.sessions.SubmitAnswer(ctx, session.ID, answer)
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if got := result.IsCorrect; got != (i < correct) {
			t.Fatalf("submit %d: is_correct = %v, want %v", i, got, i < correct)
		}
		current = result.NextQuestion
		if current == nil {
			t.Fatalf("submit %d: no next question", i)
		}
	}
}

func TestBasicSessionFlow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Resolve(ctx, "", "")
	if err != nil {
		t.Fatal(err)
	}
	if !user.Guest {
		t.Fatalf("expected guest auto-creation, got %+v", user)
	}

	session, first, err := f.sessions.StartSession(user.UserID, models.ModeBasic, "")
	if err != nil {
		t.Fatal(err)
	}
	if session.TotalQuestions != 12 {
		t.Fatalf("total questions = %d, want 12", session.TotalQuestions)
	}
	if first == nil {
		t.Fatal("no first question")
	}

	submitN(t, f, session, first, 10, 7)

	current, err := f.stats.Current(ctx, user.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if current.AccuracyPercent != 70.0 {
		t.Errorf("accuracy = %v, want 70.0", current.AccuracyPercent)
	}
	if current.CorrectCount != 7 || current.WrongCount != 3 {
		t.Errorf("counts = %d/%d, want 7/3", current.CorrectCount, current.WrongCount)
	}
	if current.TotalAnswered != 10 {
		t.Errorf("total answered = %d, want 10", current.TotalAnswered)
	}
}

func TestSessionKeepsServingWhenExhausted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Register(ctx, "성실한 수험생")
	if err != nil {
		t.Fatal(err)
	}
	session, first, err := f.sessions.StartSession(user.UserID, models.ModeCategory, "재산보험")
	if err != nil {
		t.Fatal(err)
	}
	if session.TotalQuestions != 3 {
		t.Fatalf("category session size = %d, want 3", session.TotalQuestions)
	}

	// More submissions than questions; the exclusion set resets and
	// the session keeps serving.
	submitN(t, f, session, first, 8, 8)

	current, err := f.stats.Current(ctx, user.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if current.TotalAnswered != 8 || current.AccuracyPercent != 100.0 {
		t.Errorf("stats = %+v, want 8 answered at 100.0", current)
	}
}

func TestStartSessionValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	user, err := f.users.Register(ctx, "수험생")
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := f.sessions.StartSession(user.UserID, "marathon", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown mode = %v, want ErrInvalidInput", err)
	}
	if _, _, err := f.sessions.StartSession(user.UserID, models.ModeCategory, "자동차보험"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("unknown category = %v, want ErrInvalidInput", err)
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	f := newFixture(t)
	_, err := f.sessions.SubmitAnswer(context.Background(), "sess_missing", "O")
	if !errors.Is(err, repository.ErrSessionNotFound) {
		t.Errorf("unknown session = %v, want ErrSessionNotFound", err)
	}
}

func TestEndSession(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Register(ctx, "수험생")
	if err != nil {
		t.Fatal(err)
	}
	session, first, err := f.sessions.StartSession(user.UserID, models.ModeBasic, "")
	if err != nil {
		t.Fatal(err)
	}
	submitN(t, f, session, first, 4, 3)

	summary, err := f.sessions.EndSession(ctx, session.ID)
	if err != nil {
		t.Fatal(err)
	}
	if summary.Attempted != 4 || summary.Correct != 3 || summary.Wrong != 1 {
		t.Errorf("summary = %+v, want 4/3/1", summary)
	}
	if summary.Accuracy != 75.0 {
		t.Errorf("summary accuracy = %v, want 75.0", summary.Accuracy)
	}

	// The session is gone afterwards.
	if _, err := f.sessions.EndSession(ctx, session.ID); !errors.Is(err, repository.ErrSessionNotFound) {
		t.Errorf("double end = %v, want ErrSessionNotFound", err)
	}

	progress, err := f.store.GetProgress(ctx, user.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(progress.SessionHistory) != 1 || progress.SessionHistory[0].SessionID != session.ID {
		t.Errorf("history = %+v, want one summary for %s", progress.SessionHistory, session.ID)
	}
}

func TestSessionHistoryTrimmed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.users.Register(ctx, "수험생")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < models.SessionHistoryLimit+3; i++ {
		session, first, err := f.sessions.StartSession(user.UserID, models.ModeBasic, "")
		if err != nil {
			t.Fatal(err)
		}
		submitN(t, f, session, first, 1, 1)
		if _, err := f.sessions.EndSession(ctx, session.ID); err != nil {
			t.Fatal(err)
		}
	}

	progress, err := f.store.GetProgress(ctx, user.UserID)
	if err != nil {
		t.Fatal(err)
	}
	if len(progress.SessionHistory) != models.SessionHistoryLimit {
		t.Errorf("history length = %d, want %d", len(progress.SessionHistory), models.SessionHistoryLimit)
	}
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.users.Register(ctx, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("blank name = %v, want ErrInvalidInput", err)
	}

	first, err := f.users.Register(ctx, "김수험")
	if err != nil {
		t.Fatal(err)
	}
	again, err := f.users.Register(ctx, "김수험")
	if err != nil {
		t.Fatal(err)
	}
	if first.UserID != again.UserID {
		t.Errorf("re-registration created a new user: %s vs %s", first.UserID, again.UserID)
	}
}
