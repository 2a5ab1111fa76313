package progress

import (
	"mcq-trainer/internal/domain"
)

// MasteryStreak is the consecutive-correct count that grants mastery.
const MasteryStreak = 3

// ScoringOutcome bundles everything a caller needs after a session is
// scored: the replacement store, the appended session, the ids that
// flipped into mastery during this session, and the resulting retry-pool
// size.
type ScoringOutcome struct {
	Results       domain.QuizResults
	Session       domain.Session
	NewlyMastered []string
	RetryPoolSize int
}

// ScoreSession scores a completed quiz against the ordered active
// question list. answers maps question id to the selected option index
// and must cover every question; a missing or out-of-range answer aborts
// the whole operation with no state change. The previous store is never
// mutated: the returned store is a structurally fresh value.
func ScoreSession(questions []domain.Question, answers map[string]int, retryMode bool, prev domain.QuizResults, now int64) (ScoringOutcome, error) {
	// Validate up front so scoring is all-or-nothing.
	for _, question := range questions {
		selected, ok := answers[question.ID]
		if !ok {
			return ScoringOutcome{}, &domain.UnansweredQuestionError{QuestionID: question.ID}
		}
		if selected < 0 || selected >= len(question.Options) {
			return ScoringOutcome{}, &domain.AnswerIndexOutOfRangeError{
				QuestionID: question.ID,
				Index:      selected,
				Options:    len(question.Options),
			}
		}
	}

	next := cloneResults(prev)
	newlyMastered := []string{}
	sessionAnswers := make([]domain.SessionAnswer, 0, len(questions))
	correctCount := 0

	for _, question := range questions {
		selected := answers[question.ID]
		isCorrect := selected == question.Correct

		stat := next.QuestionStats[question.ID]
		stat.Seen++
		stat.LastAnsweredAt = now
		if isCorrect {
			correctCount++
			stat.Correct++
			stat.ConsecutiveCorrect++
			stat.LastResult = domain.ResultCorrect
			if stat.ConsecutiveCorrect >= MasteryStreak && !stat.Mastered {
				stat.Mastered = true
				newlyMastered = append(newlyMastered, question.ID)
			}
		} else {
			stat.Wrong++
			stat.ConsecutiveCorrect = 0
			stat.Mastered = false
			stat.LastResult = domain.ResultWrong
		}
		next.QuestionStats[question.ID] = stat

		sessionAnswers = append(sessionAnswers, domain.SessionAnswer{
			QuestionID:    question.ID,
			Category:      question.Category,
			SelectedIndex: selected,
			CorrectIndex:  question.Correct,
			IsCorrect:     isCorrect,
		})
	}

	session := domain.Session{
		ID:             SessionID(now),
		SubmittedAt:    now,
		TotalAnswers:   len(questions),
		CorrectAnswers: correctCount,
		WrongAnswers:   len(questions) - correctCount,
		ScorePercent:   Percent(correctCount, len(questions)),
		RetryMode:      retryMode,
		Answers:        sessionAnswers,
	}
	next.Sessions = tailSessions(append(next.Sessions, session), MaxSessions)

	poolIDs := RetryPoolIDs(next.QuestionStats)
	next.ErrorPoolHistory = tailHistory(append(next.ErrorPoolHistory, domain.ErrorPoolHistoryEntry{
		At:          now,
		QuestionIDs: poolIDs,
	}), MaxHistory)
	next.UpdatedAt = now

	return ScoringOutcome{
		Results:       next,
		Session:       session,
		NewlyMastered: newlyMastered,
		RetryPoolSize: len(poolIDs),
	}, nil
}

// ResetResults builds a fresh default store that keeps only the original
// creation timestamp and the given theme.
func ResetResults(prev domain.QuizResults, now int64) domain.QuizResults {
	next := DefaultResults(now, prev.Preferences.Theme)
	if prev.CreatedAt > 0 {
		next.CreatedAt = prev.CreatedAt
	}
	return next
}

// cloneResults deep-copies the mutable collections so the caller's store
// stays untouched.
func cloneResults(prev domain.QuizResults) domain.QuizResults {
	next := prev
	next.Sessions = make([]domain.Session, len(prev.Sessions))
	copy(next.Sessions, prev.Sessions)
	next.QuestionStats = make(map[string]domain.QuestionStat, len(prev.QuestionStats))
	for id, stat := range prev.QuestionStats {
		next.QuestionStats[id] = stat
	}
	next.ErrorPoolHistory = make([]domain.ErrorPoolHistoryEntry, len(prev.ErrorPoolHistory))
	copy(next.ErrorPoolHistory, prev.ErrorPoolHistory)
	return next
}
