package progress

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"mcq-trainer/internal/domain"
)

// RetryPool derives the set of question ids answered wrong at least once
// and not currently mastered. Order-insensitive.
func RetryPool(stats map[string]domain.QuestionStat) map[string]struct{} {
	pool := make(map[string]struct{})
	for id, stat := range stats {
		if stat.Wrong > 0 && !stat.Mastered {
			pool[id] = struct{}{}
		}
	}
	return pool
}

// RetryPoolIDs returns the retry pool as a sorted id list, suitable for
// history snapshots and stable display.
func RetryPoolIDs(stats map[string]domain.QuestionStat) []string {
	pool := RetryPool(stats)
	ids := make([]string, 0, len(pool))
	for id := range pool {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Summarize computes the overall aggregate over all stored sessions.
func Summarize(results domain.QuizResults) domain.Summary {
	summary := domain.Summary{}
	for _, session := range results.Sessions {
		summary.TotalAnswers += session.TotalAnswers
		summary.CorrectAnswers += session.CorrectAnswers
	}
	summary.WrongAnswers = summary.TotalAnswers - summary.CorrectAnswers
	summary.AccuracyPercent = Percent(summary.CorrectAnswers, summary.TotalAnswers)
	for _, stat := range results.QuestionStats {
		if stat.Mastered {
			summary.MasteredQuestions++
		}
	}
	summary.RetryPoolSize = len(RetryPool(results.QuestionStats))
	if n := len(results.Sessions); n > 0 {
		summary.LastSessionAt = results.Sessions[n-1].SubmittedAt
	}
	return summary
}

// CategoryRollup groups bank questions by category and accumulates their
// stats. Categories with no practiced question are omitted. The result is
// ranked by seen descending, ties broken by collated category name, which
// gives a leaderboard of practiced topics.
func CategoryRollup(questions []domain.Question, results domain.QuizResults) []domain.CategoryStat {
	byCategory := make(map[string]*domain.CategoryStat)
	order := make([]string, 0)
	for _, question := range questions {
		stat, ok := results.QuestionStats[question.ID]
		if !ok || stat.Seen == 0 {
			continue
		}
		rollup, ok := byCategory[question.Category]
		if !ok {
			rollup = &domain.CategoryStat{Category: question.Category}
			byCategory[question.Category] = rollup
			order = append(order, question.Category)
		}
		rollup.Seen += stat.Seen
		rollup.Correct += stat.Correct
		rollup.Wrong += stat.Wrong
		if stat.Mastered {
			rollup.Mastered++
		}
	}

	rollups := make([]domain.CategoryStat, 0, len(order))
	for _, category := range order {
		rollup := *byCategory[category]
		rollup.AccuracyPercent = Percent(rollup.Correct, rollup.Seen)
		rollups = append(rollups, rollup)
	}

	collator := collate.New(language.Und)
	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].Seen != rollups[j].Seen {
			return rollups[i].Seen > rollups[j].Seen
		}
		return collator.CompareString(rollups[i].Category, rollups[j].Category) < 0
	})
	return rollups
}
