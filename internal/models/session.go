package models

import "time"

// Study modes.
const (
	ModeBasic    = "basic"
	ModeCategory = "category"
)

// Session states.
const (
	StatusActive = "active"
	StatusEnded  = "ended"
)

// StudySession is one bounded study run. Sessions live in process
// memory only; everything worth keeping ends up in the owner's
// Progress when the session ends.
type StudySession struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Mode            string    `json:"mode"`
	Category        string    `json:"category,omitempty"`
	Status          string    `json:"status"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int       `json:"duration_seconds"`
	CurrentIndex    int       `json:"current_question_index"`
	CorrectCount    int       `json:"correct_count"`
	WrongCount      int       `json:"wrong_count"`
	TotalQuestions  int       `json:"total_questions"`
	// Indices maps session-local question positions to bank positions;
	// a category session runs over a subset of the bank.
	Indices   []int        `json:"-"`
	Attempted map[int]bool `json:"-"`
}

// Attempts returns how many answers were submitted in this session.
func (s *StudySession) Attempts() int {
	return s.CorrectCount + s.WrongCount
}

// SessionSummary is the bounded-history record appended to the owning
// user's progress when a session ends.
type SessionSummary struct {
	SessionID       string    `json:"session_id"`
	Mode            string    `json:"mode"`
	Category        string    `json:"category,omitempty"`
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	DurationSeconds int       `json:"duration_seconds"`
	Attempted       int       `json:"attempted"`
	Correct         int       `json:"correct"`
	Wrong           int       `json:"wrong"`
	Accuracy        float64   `json:"accuracy"`
}
