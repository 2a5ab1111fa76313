package bank

import (
	"testing"
)

func TestNormalizeQuestionRepairsEverything(t *testing.T) {
	q := NormalizeQuestion(map[string]any{
		"question": "  What is 2 + 2?  ",
		"options":  []any{" 3 ", "4", "", "5", "6", "7"},
		"correct":  float64(1),
		"category": "Math",
	}, 0)

	if q.ID != "q-0001" {
		t.Fatalf("expected synthesized id q-0001, got %q", q.ID)
	}
	if q.Question != "What is 2 + 2?" {
		t.Fatalf("expected trimmed question, got %q", q.Question)
	}
	if len(q.Options) != OptionCount {
		t.Fatalf("expected %d options, got %d", OptionCount, len(q.Options))
	}
	if q.Options[0] != "3" || q.Options[1] != "4" {
		t.Fatalf("expected trimmed options, got %v", q.Options)
	}
	if q.Correct != 1 {
		t.Fatalf("expected correct=1, got %d", q.Correct)
	}
	if q.Category != "Math" {
		t.Fatalf("expected category Math, got %q", q.Category)
	}
	if q.Explanation == "" {
		t.Fatalf("expected placeholder explanation")
	}
}

func TestNormalizeQuestionPadsShortOptions(t *testing.T) {
	q := NormalizeQuestion(map[string]any{
		"id":      "x",
		"options": []any{"only one"},
	}, 3)

	if len(q.Options) != OptionCount {
		t.Fatalf("expected %d options, got %v", OptionCount, q.Options)
	}
	if q.Options[0] != "only one" {
		t.Fatalf("expected real option first, got %v", q.Options)
	}
	for i := 1; i < OptionCount; i++ {
		if q.Options[i] == "" {
			t.Fatalf("expected placeholder at %d, got empty", i)
		}
	}
}

func TestNormalizeQuestionResetsBadCorrectIndex(t *testing.T) {
	for _, correct := range []any{float64(-1), float64(9), "nope", nil, float64(1.5)} {
		q := NormalizeQuestion(map[string]any{
			"options": []any{"a", "b", "c", "d"},
			"correct": correct,
		}, 0)
		if q.Correct != 0 {
			t.Fatalf("correct=%v: expected reset to 0, got %d", correct, q.Correct)
		}
	}
}

func TestNormalizeQuestionCategoryFallsBackToTopic(t *testing.T) {
	q := NormalizeQuestion(map[string]any{"topic": "Networking"}, 0)
	if q.Category != "Networking" {
		t.Fatalf("expected topic fallback, got %q", q.Category)
	}

	q = NormalizeQuestion(map[string]any{}, 0)
	if q.Category != DefaultCategory {
		t.Fatalf("expected default category, got %q", q.Category)
	}
}

func TestNormalizeQuestionNeverFails(t *testing.T) {
	for _, raw := range []any{nil, "garbage", float64(42), []any{1, 2}, map[string]any{"options": "not a list"}} {
		q := NormalizeQuestion(raw, 7)
		if q.ID == "" {
			t.Fatalf("raw=%v: expected synthesized id", raw)
		}
		if len(q.Options) != OptionCount {
			t.Fatalf("raw=%v: expected %d options, got %d", raw, OptionCount, len(q.Options))
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			t.Fatalf("raw=%v: correct index %d out of bounds", raw, q.Correct)
		}
	}
}

func TestNormalizeFeed(t *testing.T) {
	questions := NormalizeFeed(map[string]any{
		"questions": []any{
			map[string]any{"id": "a", "options": []any{"1", "2", "3", "4"}},
			"garbage entry",
		},
	})
	if len(questions) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(questions))
	}
	if questions[0].ID != "a" {
		t.Fatalf("expected first id preserved, got %q", questions[0].ID)
	}
	if questions[1].ID != "q-0002" {
		t.Fatalf("expected synthesized id for garbage entry, got %q", questions[1].ID)
	}

	if got := NormalizeFeed("not a feed"); len(got) != 0 {
		t.Fatalf("expected empty bank from garbage feed, got %d", len(got))
	}
}
