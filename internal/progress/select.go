package progress

import (
	"math/rand"
	"strings"

	"mcq-trainer/internal/domain"
)

const (
	// MaxQuizSize caps how many questions a single quiz may hold.
	MaxQuizSize = 100
	// DefaultQuizSize is used when the caller passes no limit.
	DefaultQuizSize = 10
)

// Filters narrows quiz selection. Category is an exact, case-insensitive
// match; empty matches everything. RetryMode restricts the pick to the
// current retry pool.
type Filters struct {
	Limit     int
	Category  string
	RetryMode bool
}

// SelectQuestions produces the active question set for a new quiz run:
// filter by category, optionally filter to the retry pool, then shuffle
// uniformly and truncate to the limit. It never mutates stored state; an
// empty result is the caller's signal that no questions are available
// under these filters.
func SelectQuestions(questions []domain.Question, results domain.QuizResults, filters Filters, rnd *rand.Rand) []domain.Question {
	limit := filters.Limit
	if limit <= 0 {
		limit = DefaultQuizSize
	}
	if limit > MaxQuizSize {
		limit = MaxQuizSize
	}

	category := strings.TrimSpace(filters.Category)
	pool := RetryPool(results.QuestionStats)

	eligible := make([]domain.Question, 0, len(questions))
	for _, question := range questions {
		if category != "" && !strings.EqualFold(question.Category, category) {
			continue
		}
		if filters.RetryMode {
			if _, ok := pool[question.ID]; !ok {
				continue
			}
		}
		eligible = append(eligible, question)
	}

	rnd.Shuffle(len(eligible), func(i, j int) {
		eligible[i], eligible[j] = eligible[j], eligible[i]
	})
	if len(eligible) > limit {
		eligible = eligible[:limit]
	}
	return eligible
}
