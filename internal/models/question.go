package models

import "strings"

// Question types as stored in the bank file.
const (
	TypeTrueFalse      = "진위형"
	TypeMultipleChoice = "선택형"
)

// The four exam subjects. Every question and every statistics bucket
// is keyed by one of these.
var Categories = []string{
	"재산보험",
	"특종보험",
	"배상책임보험",
	"해상보험",
}

type Question struct {
	Code     string `json:"qcode,omitempty"`
	Content  string `json:"question"`
	Answer   string `json:"answer"`
	Type     string `json:"type"`
	Category string `json:"layer1"`
	Explain  string `json:"explain,omitempty"`
}

var validAnswers = map[string]bool{
	"O": true, "X": true,
	"1": true, "2": true, "3": true, "4": true,
}

// Valid reports whether the record carries the required fields and an
// accepted answer literal. Invalid records are dropped at load time.
func (q *Question) Valid() bool {
	return q.Content != "" && validAnswers[NormalizeAnswer(q.Answer)]
}

// NormalizeAnswer trims whitespace and upper-cases so that " o " and
// "O" grade identically.
func NormalizeAnswer(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Grade compares a user answer against the stored answer. Exact match
// after normalization, no partial credit.
func (q *Question) Grade(userAnswer string) bool {
	return NormalizeAnswer(userAnswer) == NormalizeAnswer(q.Answer)
}

// KnownCategory reports whether name is one of the four exam subjects.
func KnownCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}
