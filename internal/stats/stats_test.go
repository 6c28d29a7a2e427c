package stats

import "testing"

func TestAccuracy(t *testing.T) {
	testCases := []struct {
		name      string
		correct   int
		attempted int
		want      float64
	}{
		{"zero attempts", 0, 0, 0.0},
		{"all correct", 10, 10, 100.0},
		{"none correct", 0, 5, 0.0},
		{"seven of ten", 7, 10, 70.0},
		{"one third", 1, 3, 33.3},
		{"two thirds", 2, 3, 66.7},
		{"one of seven", 1, 7, 14.3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Accuracy(tc.correct, tc.attempted); got != tc.want {
				t.Errorf("Accuracy(%d, %d) = %v, want %v", tc.correct, tc.attempted, got, tc.want)
			}
		})
	}
}

func fourSubjects(a, b, c, d float64) map[string]float64 {
	return map[string]float64{
		"재산보험":   a,
		"특종보험":   b,
		"배상책임보험": c,
		"해상보험":   d,
	}
}

func TestPredict(t *testing.T) {
	testCases := []struct {
		name           string
		scores         map[string]float64
		wantOverall    float64
		wantStatus     string
		wantLikelihood float64
	}{
		{
			name:           "all subjects pass but overall below 60",
			scores:         fourSubjects(50, 50, 50, 50),
			wantOverall:    50,
			wantStatus:     StatusUncertain,
			wantLikelihood: 0.5,
		},
		{
			name:           "all subjects pass and overall above 60",
			scores:         fourSubjects(70, 70, 70, 70),
			wantOverall:    70,
			wantStatus:     StatusLikely,
			wantLikelihood: 0.85,
		},
		{
			name:           "no subject passes",
			scores:         fourSubjects(10, 10, 10, 10),
			wantOverall:    10,
			wantStatus:     StatusAtRisk,
			wantLikelihood: 0.15,
		},
		{
			name:           "overall passes but one subject fails",
			scores:         fourSubjects(90, 90, 90, 30),
			wantOverall:    75,
			wantStatus:     StatusUncertain,
			wantLikelihood: 0.5,
		},
		{
			name: "only two subjects attempted",
			scores: map[string]float64{
				"재산보험": 80,
				"특종보험": 80,
			},
			wantOverall:    0,
			wantStatus:     StatusInsufficient,
			wantLikelihood: 0.0,
		},
		{
			name:           "boundary exactly 40 and 60",
			scores:         fourSubjects(40, 40, 80, 80),
			wantOverall:    60,
			wantStatus:     StatusLikely,
			wantLikelihood: 0.85,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Predict(tc.scores)
			if got.OverallScore != tc.wantOverall {
				t.Errorf("overall = %v, want %v", got.OverallScore, tc.wantOverall)
			}
			if got.Status != tc.wantStatus {
				t.Errorf("status = %q, want %q", got.Status, tc.wantStatus)
			}
			if got.PassLikelihood != tc.wantLikelihood {
				t.Errorf("likelihood = %v, want %v", got.PassLikelihood, tc.wantLikelihood)
			}
		})
	}
}

func TestPredictEmpty(t *testing.T) {
	got := Predict(nil)
	if got.Status != StatusInsufficient || got.PassLikelihood != 0.0 {
		t.Errorf("Predict(nil) = %+v, want insufficient/0.0", got)
	}
}
