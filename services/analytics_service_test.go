package services

import (
	"testing"

	"github.com/JUN1078/game-based-learning/models"
)

func TestSummarizeAttempts(t *testing.T) {
	t.Parallel()

	attempts := []models.GameAttempt{
		{Status: "completed", Score: 80, Duration: 300},
		{Status: "completed", Score: 95, Duration: 240},
		{Status: "in-progress"},
		{Status: "abandoned"},
		{Status: "completed", Score: 60, Duration: 420},
		{Status: "in-progress"},
	}

	got := summarizeAttempts(attempts)
	if got.TotalAttempts != 6 {
		t.Errorf("totalAttempts = %d, want 6", got.TotalAttempts)
	}
	if got.CompletionRate != 50 {
		t.Errorf("completionRate = %v, want 50", got.CompletionRate)
	}
	if got.AverageScore != 78 { // round(235/3)
		t.Errorf("averageScore = %d, want 78", got.AverageScore)
	}
	if got.AverageDuration != 320 {
		t.Errorf("averageDuration = %d, want 320", got.AverageDuration)
	}
}

func TestSummarizeAttemptsEmpty(t *testing.T) {
	t.Parallel()

	got := summarizeAttempts(nil)
	if got.TotalAttempts != 0 || got.CompletionRate != 0 || got.AverageScore != 0 || got.AverageDuration != 0 {
		t.Errorf("empty summary = %+v, want zeroes", got)
	}
}

func TestCompletionRateRounding(t *testing.T) {
	t.Parallel()

	attempts := []models.GameAttempt{
		{Status: "completed", Score: 50, Duration: 100},
		{Status: "in-progress"},
		{Status: "in-progress"},
	}
	got := summarizeAttempts(attempts)
	if got.CompletionRate != 33.33 {
		t.Errorf("completionRate = %v, want 33.33", got.CompletionRate)
	}
}

func TestAccuracyPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		completed, total, want int
	}{
		{3, 4, 75},
		{0, 5, 0},
		{5, 5, 100},
		{1, 3, 33},
		{2, 0, 0},
		{1, -1, 0},
	}
	for _, tc := range cases {
		if got := accuracyPercent(tc.completed, tc.total); got != tc.want {
			t.Errorf("accuracyPercent(%d, %d) = %d, want %d", tc.completed, tc.total, got, tc.want)
		}
	}
}
