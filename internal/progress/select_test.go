package progress

import (
	"fmt"
	"math/rand"
	"testing"

	"mcq-trainer/internal/domain"
)

func selectionBank() []domain.Question {
	questions := make([]domain.Question, 0, 10)
	categories := []string{"Math", "Web"}
	for i := 0; i < 10; i++ {
		questions = append(questions, domain.Question{
			ID:       string(rune('a' + i)),
			Options:  []string{"1", "2", "3", "4"},
			Category: categories[i%2],
		})
	}
	return questions
}

func TestSelectQuestionsLimitAndDistinct(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	results := DefaultResults(0, domain.ThemeSystem)

	picked := SelectQuestions(selectionBank(), results, Filters{Limit: 5}, rnd)
	if len(picked) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(picked))
	}
	seen := map[string]bool{}
	for _, q := range picked {
		if seen[q.ID] {
			t.Fatalf("duplicate question %q in selection", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSelectQuestionsShufflesAcrossRuns(t *testing.T) {
	results := DefaultResults(0, domain.ThemeSystem)
	rnd := rand.New(rand.NewSource(7))

	first := SelectQuestions(selectionBank(), results, Filters{Limit: 10}, rnd)
	varied := false
	for i := 0; i < 20 && !varied; i++ {
		next := SelectQuestions(selectionBank(), results, Filters{Limit: 10}, rnd)
		for j := range next {
			if next[j].ID != first[j].ID {
				varied = true
				break
			}
		}
	}
	if !varied {
		t.Fatalf("expected order to vary across repeated selections")
	}
}

func TestSelectQuestionsCategoryFilter(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))
	results := DefaultResults(0, domain.ThemeSystem)

	picked := SelectQuestions(selectionBank(), results, Filters{Limit: 100, Category: "math"}, rnd)
	if len(picked) != 5 {
		t.Fatalf("expected 5 math questions via case-insensitive match, got %d", len(picked))
	}
	for _, q := range picked {
		if q.Category != "Math" {
			t.Fatalf("unexpected category %q", q.Category)
		}
	}
}

func TestSelectQuestionsRetryMode(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))
	results := DefaultResults(0, domain.ThemeSystem)
	results.QuestionStats["a"] = domain.QuestionStat{Wrong: 1}
	results.QuestionStats["b"] = domain.QuestionStat{Wrong: 2, Mastered: true}
	results.QuestionStats["c"] = domain.QuestionStat{Correct: 4}

	picked := SelectQuestions(selectionBank(), results, Filters{Limit: 10, RetryMode: true}, rnd)
	if len(picked) != 1 || picked[0].ID != "a" {
		t.Fatalf("expected only unmastered missed question a, got %v", picked)
	}
}

func TestSelectQuestionsEmptyRetryPool(t *testing.T) {
	rnd := rand.New(rand.NewSource(4))
	results := DefaultResults(0, domain.ThemeSystem)

	picked := SelectQuestions(selectionBank(), results, Filters{Limit: 5, RetryMode: true}, rnd)
	if len(picked) != 0 {
		t.Fatalf("expected empty selection with empty retry pool, got %v", picked)
	}
}

func TestSelectQuestionsClampsLimit(t *testing.T) {
	rnd := rand.New(rand.NewSource(5))
	results := DefaultResults(0, domain.ThemeSystem)

	questions := make([]domain.Question, 0, MaxQuizSize+50)
	for i := 0; i < MaxQuizSize+50; i++ {
		questions = append(questions, domain.Question{ID: fmt.Sprintf("q-%03d", i), Options: []string{"1", "2", "3", "4"}})
	}

	picked := SelectQuestions(questions, results, Filters{Limit: 1000}, rnd)
	if len(picked) != MaxQuizSize {
		t.Fatalf("expected limit capped at %d, got %d", MaxQuizSize, len(picked))
	}

	picked = SelectQuestions(questions, results, Filters{}, rnd)
	if len(picked) != DefaultQuizSize {
		t.Fatalf("expected default limit %d, got %d", DefaultQuizSize, len(picked))
	}
}

func TestSelectQuestionsDoesNotMutateBank(t *testing.T) {
	rnd := rand.New(rand.NewSource(6))
	results := DefaultResults(0, domain.ThemeSystem)
	questions := selectionBank()
	original := selectionBank()

	_ = SelectQuestions(questions, results, Filters{Limit: 3}, rnd)
	for i := range questions {
		if questions[i].ID != original[i].ID {
			t.Fatalf("selection must not reorder the caller's bank slice")
		}
	}
}
