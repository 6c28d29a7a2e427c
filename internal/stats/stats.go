// Package stats turns raw answer counters into user-facing numbers:
// accuracy percentages and the heuristic exam-pass prediction.
package stats

import "math"

// Exam-pass business constants. A subject counts as passed at 40
// points, the exam at a 60-point overall average. The likelihood
// values are fixed buckets, not a fitted model.
const (
	SubjectPassScore = 40.0
	OverallPassScore = 60.0

	StatusLikely       = "likely"
	StatusUncertain    = "uncertain"
	StatusAtRisk       = "at_risk"
	StatusInsufficient = "insufficient"

	LikelihoodLikely       = 0.85
	LikelihoodUncertain    = 0.5
	LikelihoodAtRisk       = 0.15
	LikelihoodInsufficient = 0.0
)

// RequiredSubjects is how many subjects need at least one attempt
// before a prediction is meaningful.
const RequiredSubjects = 4

type Prediction struct {
	OverallScore   float64            `json:"overall_score"`
	SubjectScores  map[string]float64 `json:"subject_scores"`
	PassLikelihood float64            `json:"pass_likelihood"`
	Status         string             `json:"status"`
}

// Accuracy returns round(100*correct/attempted, 1), or 0.0 when
// nothing was attempted.
func Accuracy(correct, attempted int) float64 {
	if attempted == 0 {
		return 0.0
	}
	return math.Round(float64(correct)/float64(attempted)*1000) / 10
}

// Predict derives the pass prediction from per-subject accuracies.
// Only subjects with at least one attempt belong in subjectScores;
// with fewer than RequiredSubjects entries the prediction is
// "insufficient". Subject accuracies are treated directly as 0-100
// exam scores.
func Predict(subjectScores map[string]float64) Prediction {
	pred := Prediction{SubjectScores: subjectScores}

	if len(subjectScores) < RequiredSubjects {
		pred.Status = StatusInsufficient
		pred.PassLikelihood = LikelihoodInsufficient
		return pred
	}

	var sum float64
	allSubjectsPass := true
	for _, score := range subjectScores {
		sum += score
		if score < SubjectPassScore {
			allSubjectsPass = false
		}
	}
	overall := math.Round(sum/float64(len(subjectScores))*10) / 10
	pred.OverallScore = overall

	overallPass := overall >= OverallPassScore
	switch {
	case allSubjectsPass && overallPass:
		pred.Status = StatusLikely
		pred.PassLikelihood = LikelihoodLikely
	case allSubjectsPass || overallPass:
		pred.Status = StatusUncertain
		pred.PassLikelihood = LikelihoodUncertain
	default:
		pred.Status = StatusAtRisk
		pred.PassLikelihood = LikelihoodAtRisk
	}
	return pred
}
