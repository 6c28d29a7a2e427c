package repository

import (
	"encoding/json"
	"log"
	"os"

	"exam-service/internal/models"
)

// QuestionRepository serves the immutable question bank. The bank is
// read once at construction; a missing or unparseable file leaves an
// empty bank rather than failing startup.
type QuestionRepository struct {
	questions []models.Question
	byCat     map[string][]int
}

func NewQuestionRepository(path string) *QuestionRepository {
	r := &QuestionRepository{byCat: make(map[string][]int)}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("question bank %s unreadable, starting empty: %v", path, err)
		return r
	}

	var raw []models.Question
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Printf("question bank %s unparseable, starting empty: %v", path, err)
		return r
	}

	dropped := 0
	for _, q := range raw {
		if !q.Valid() {
			dropped++
			continue
		}
		r.byCat[q.Category] = append(r.byCat[q.Category], len(r.questions))
		r.questions = append(r.questions, q)
	}
	if dropped > 0 {
		log.Printf("question bank %s: dropped %d malformed records", path, dropped)
	}
	log.Printf("question bank %s: loaded %d questions", path, len(r.questions))
	return r
}

// All returns the full bank. Callers must not mutate the slice.
func (r *QuestionRepository) All() []models.Question {
	return r.questions
}

func (r *QuestionRepository) Count() int {
	return len(r.questions)
}

// ByIndex returns the question at position i, or nil when i is out of
// range.
func (r *QuestionRepository) ByIndex(i int) *models.Question {
	if i < 0 || i >= len(r.questions) {
		return nil
	}
	return &r.questions[i]
}

// ByCategory returns the questions tagged with the given subject.
func (r *QuestionRepository) ByCategory(category string) []models.Question {
	idxs := r.byCat[category]
	out := make([]models.Question, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, r.questions[i])
	}
	return out
}

// CategoryIndices returns bank positions for a subject, used when a
// category session needs bank-relative indices.
func (r *QuestionRepository) CategoryIndices(category string) []int {
	return r.byCat[category]
}
