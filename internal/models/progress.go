package models

import (
	"time"

	"exam-service/internal/stats"
)

// SessionHistoryLimit bounds the per-user session history; the oldest
// summary is trimmed once the limit is exceeded.
const SessionHistoryLimit = 10

type CategoryStat struct {
	Attempted int     `json:"attempted"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

type DailyStat struct {
	Attempted int     `json:"attempted"`
	Correct   int     `json:"correct"`
	Accuracy  float64 `json:"accuracy"`
}

// Progress is the cumulative learning state of one user. All mutation
// goes through RecordAttempt and AppendSummary so the counter
// invariants (attempted == correct + wrong, accuracy recomputed from
// the counters) cannot drift.
type Progress struct {
	TotalAttempted int                      `json:"total_attempted"`
	TotalCorrect   int                      `json:"total_correct"`
	TotalWrong     int                      `json:"total_wrong"`
	AccuracyRate   float64                  `json:"accuracy_rate"`
	CategoryStats  map[string]*CategoryStat `json:"category_stats"`
	DailyProgress  map[string]*DailyStat    `json:"daily_progress"`
	Streak         int                      `json:"streak"`
	BestStreak     int                      `json:"best_streak"`
	SessionHistory []SessionSummary         `json:"session_history"`
}

func NewProgress() *Progress {
	return &Progress{
		CategoryStats: make(map[string]*CategoryStat),
		DailyProgress: make(map[string]*DailyStat),
	}
}

// DayKey is the bucket key format for daily progress.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// CategoryFor returns the counter bucket for a subject, creating a
// zeroed one on first use.
func (p *Progress) CategoryFor(category string) *CategoryStat {
	if p.CategoryStats == nil {
		p.CategoryStats = make(map[string]*CategoryStat)
	}
	cs, ok := p.CategoryStats[category]
	if !ok {
		cs = &CategoryStat{}
		p.CategoryStats[category] = cs
	}
	return cs
}

// DailyFor returns the bucket for a YYYY-MM-DD key, creating a zeroed
// one on first use. Buckets are never pruned.
func (p *Progress) DailyFor(day string) *DailyStat {
	if p.DailyProgress == nil {
		p.DailyProgress = make(map[string]*DailyStat)
	}
	ds, ok := p.DailyProgress[day]
	if !ok {
		ds = &DailyStat{}
		p.DailyProgress[day] = ds
	}
	return ds
}

// RecordAttempt folds one graded answer into the global, per-category
// and per-day counters and the streak tracking.
func (p *Progress) RecordAttempt(category string, day string, correct bool) {
	p.TotalAttempted++
	if correct {
		p.TotalCorrect++
		p.Streak++
		if p.Streak > p.BestStreak {
			p.BestStreak = p.Streak
		}
	} else {
		p.TotalWrong++
		p.Streak = 0
	}
	p.AccuracyRate = stats.Accuracy(p.TotalCorrect, p.TotalAttempted)

	cs := p.CategoryFor(category)
	cs.Attempted++
	if correct {
		cs.Correct++
	}
	cs.Accuracy = stats.Accuracy(cs.Correct, cs.Attempted)

	ds := p.DailyFor(day)
	ds.Attempted++
	if correct {
		ds.Correct++
	}
	ds.Accuracy = stats.Accuracy(ds.Correct, ds.Attempted)
}

// Clone returns a deep copy. Stores hand out clones so a reader never
// shares the counter maps with a writer mid-mutation.
func (p *Progress) Clone() *Progress {
	cp := *p
	cp.CategoryStats = make(map[string]*CategoryStat, len(p.CategoryStats))
	for k, v := range p.CategoryStats {
		c := *v
		cp.CategoryStats[k] = &c
	}
	cp.DailyProgress = make(map[string]*DailyStat, len(p.DailyProgress))
	for k, v := range p.DailyProgress {
		d := *v
		cp.DailyProgress[k] = &d
	}
	cp.SessionHistory = append([]SessionSummary(nil), p.SessionHistory...)
	return &cp
}

// AppendSummary adds a finished session to the bounded history.
func (p *Progress) AppendSummary(s SessionSummary) {
	p.SessionHistory = append(p.SessionHistory, s)
	if len(p.SessionHistory) > SessionHistoryLimit {
		p.SessionHistory = p.SessionHistory[len(p.SessionHistory)-SessionHistoryLimit:]
	}
}

// UserRecord is the unit the progress store persists per user.
type UserRecord struct {
	User     *User     `json:"user"`
	Progress *Progress `json:"progress"`
}
