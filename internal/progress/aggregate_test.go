package progress

import (
	"testing"

	"mcq-trainer/internal/domain"
)

func TestRetryPoolMembership(t *testing.T) {
	stats := map[string]domain.QuestionStat{
		"missed":        {Seen: 3, Correct: 1, Wrong: 2},
		"mastered":      {Seen: 5, Correct: 5, Wrong: 1, Mastered: true},
		"never-wrong":   {Seen: 10, Correct: 10},
		"wrong-once":    {Seen: 1, Wrong: 1},
		"never-touched": {},
	}

	pool := RetryPool(stats)
	if len(pool) != 2 {
		t.Fatalf("expected 2 questions in retry pool, got %v", pool)
	}
	if _, ok := pool["missed"]; !ok {
		t.Fatalf("expected missed in pool")
	}
	if _, ok := pool["wrong-once"]; !ok {
		t.Fatalf("expected wrong-once in pool")
	}
	if _, ok := pool["mastered"]; ok {
		t.Fatalf("mastered question must not be in pool")
	}
	if _, ok := pool["never-wrong"]; ok {
		t.Fatalf("question with wrong=0 must never be in pool regardless of seen")
	}

	ids := RetryPoolIDs(stats)
	if len(ids) != 2 || ids[0] != "missed" || ids[1] != "wrong-once" {
		t.Fatalf("expected sorted ids, got %v", ids)
	}
}

func TestSummarize(t *testing.T) {
	results := domain.QuizResults{
		Sessions: []domain.Session{
			{SubmittedAt: 10, TotalAnswers: 3, CorrectAnswers: 2},
			{SubmittedAt: 20, TotalAnswers: 5, CorrectAnswers: 4},
		},
		QuestionStats: map[string]domain.QuestionStat{
			"a": {Mastered: true},
			"b": {Wrong: 1},
			"c": {Wrong: 2, Mastered: true},
		},
	}

	summary := Summarize(results)
	if summary.TotalAnswers != 8 || summary.CorrectAnswers != 6 || summary.WrongAnswers != 2 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if summary.AccuracyPercent != 75 {
		t.Fatalf("expected 75%% accuracy, got %d", summary.AccuracyPercent)
	}
	if summary.MasteredQuestions != 2 {
		t.Fatalf("expected 2 mastered, got %d", summary.MasteredQuestions)
	}
	if summary.RetryPoolSize != 1 {
		t.Fatalf("expected retry pool 1 (only b), got %d", summary.RetryPoolSize)
	}
	if summary.LastSessionAt != 20 {
		t.Fatalf("expected last session at 20, got %d", summary.LastSessionAt)
	}
}

func TestSummarizeEmptyStore(t *testing.T) {
	summary := Summarize(DefaultResults(1, domain.ThemeSystem))
	if summary.AccuracyPercent != 0 {
		t.Fatalf("accuracy with no answers must be 0, got %d", summary.AccuracyPercent)
	}
	if summary.LastSessionAt != 0 {
		t.Fatalf("expected no last session, got %d", summary.LastSessionAt)
	}
}

func TestCategoryRollup(t *testing.T) {
	questions := []domain.Question{
		{ID: "m1", Category: "Math"},
		{ID: "m2", Category: "Math"},
		{ID: "w1", Category: "Web"},
		{ID: "u1", Category: "Unix"},
	}
	results := domain.QuizResults{
		QuestionStats: map[string]domain.QuestionStat{
			"m1": {Seen: 2, Correct: 1, Wrong: 1},
			"m2": {Seen: 1, Correct: 1, Mastered: true},
			"w1": {Seen: 3, Correct: 2, Wrong: 1},
			// u1 never seen: its category must not appear
		},
	}

	rollups := CategoryRollup(questions, results)
	if len(rollups) != 2 {
		t.Fatalf("expected 2 categories, got %v", rollups)
	}
	// Math and Web both have seen=3; tie broken by name ascending.
	if rollups[0].Category != "Math" || rollups[1].Category != "Web" {
		t.Fatalf("expected Math then Web, got %v", rollups)
	}
	math := rollups[0]
	if math.Seen != 3 || math.Correct != 2 || math.Wrong != 1 || math.Mastered != 1 {
		t.Fatalf("unexpected math rollup: %+v", math)
	}
	if math.AccuracyPercent != 67 {
		t.Fatalf("expected round(2/3*100)=67, got %d", math.AccuracyPercent)
	}
}

func TestCategoryRollupRanksBySeen(t *testing.T) {
	questions := []domain.Question{
		{ID: "a", Category: "Rare"},
		{ID: "b", Category: "Common"},
	}
	results := domain.QuizResults{
		QuestionStats: map[string]domain.QuestionStat{
			"a": {Seen: 1, Correct: 1},
			"b": {Seen: 9, Correct: 3},
		},
	}
	rollups := CategoryRollup(questions, results)
	if rollups[0].Category != "Common" {
		t.Fatalf("expected most-practiced category first, got %v", rollups)
	}
}
