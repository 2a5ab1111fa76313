package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mcq-trainer/internal/domain"
)

const (
	// MaxSessions caps the stored session log to the most recent entries.
	MaxSessions = 200
	// MaxHistory caps the stored retry-pool snapshots.
	MaxHistory = 100
)

// DefaultResults builds a fresh, empty store. Collections are allocated
// so a defaulted store round-trips through JSON unchanged.
func DefaultResults(now int64, theme domain.Theme) domain.QuizResults {
	if !domain.ValidTheme(theme) {
		theme = domain.ThemeSystem
	}
	return domain.QuizResults{
		CreatedAt:        now,
		UpdatedAt:        now,
		Sessions:         []domain.Session{},
		QuestionStats:    map[string]domain.QuestionStat{},
		ErrorPoolHistory: []domain.ErrorPoolHistoryEntry{},
		Preferences:      domain.Preferences{Theme: theme},
	}
}

// NormalizeResults reconstructs a valid QuizResults from an arbitrary
// deserialized blob. The blob is treated as adversarial: every field is
// coerced independently and malformed sub-entries are dropped without
// invalidating their siblings. The function is pure and never panics; a
// blob that is not record-shaped at the top level yields a fresh default
// store. fallbackTheme comes from the separately-persisted theme key so a
// corrupted results blob cannot clobber the theme choice.
func NormalizeResults(raw any, fallbackTheme domain.Theme, now int64) domain.QuizResults {
	rec, ok := raw.(map[string]any)
	if !ok {
		return DefaultResults(now, fallbackTheme)
	}

	results := DefaultResults(now, fallbackTheme)

	if createdAt := coerceMillis(rec["createdAt"]); createdAt > 0 {
		results.CreatedAt = createdAt
	}
	if updatedAt := coerceMillis(rec["updatedAt"]); updatedAt > 0 {
		results.UpdatedAt = updatedAt
	}

	if prefs, ok := rec["preferences"].(map[string]any); ok {
		if theme := domain.Theme(coerceString(prefs["theme"])); domain.ValidTheme(theme) {
			results.Preferences.Theme = theme
		}
	}

	if stats, ok := rec["questionStats"].(map[string]any); ok {
		for key, value := range stats {
			id := strings.TrimSpace(key)
			entry, ok := value.(map[string]any)
			if id == "" || !ok {
				continue
			}
			results.QuestionStats[id] = normalizeStat(entry)
		}
	}

	if sessions, ok := rec["sessions"].([]any); ok {
		for _, value := range sessions {
			if session, ok := normalizeSession(value); ok {
				results.Sessions = append(results.Sessions, session)
			}
		}
	}
	results.Sessions = tailSessions(results.Sessions, MaxSessions)

	if history, ok := rec["errorPoolHistory"].([]any); ok {
		for _, value := range history {
			if entry, ok := normalizeHistoryEntry(value); ok {
				results.ErrorPoolHistory = append(results.ErrorPoolHistory, entry)
			}
		}
	}
	results.ErrorPoolHistory = tailHistory(results.ErrorPoolHistory, MaxHistory)

	return results
}

func normalizeStat(rec map[string]any) domain.QuestionStat {
	return domain.QuestionStat{
		Seen:               coerceCount(rec["seen"]),
		Correct:            coerceCount(rec["correct"]),
		Wrong:              coerceCount(rec["wrong"]),
		ConsecutiveCorrect: coerceCount(rec["consecutiveCorrect"]),
		Mastered:           truthy(rec["mastered"]),
		LastResult:         coerceLastResult(rec["lastResult"]),
		LastAnsweredAt:     coerceMillis(rec["lastAnsweredAt"]),
	}
}

// normalizeSession rebuilds one stored session. A session that is not
// record-shaped or carries no answers sequence is dropped entirely; a
// single malformed session must not invalidate the rest of the log.
func normalizeSession(raw any) (domain.Session, bool) {
	rec, ok := raw.(map[string]any)
	if !ok {
		return domain.Session{}, false
	}
	rawAnswers, ok := rec["answers"].([]any)
	if !ok {
		return domain.Session{}, false
	}

	answers := make([]domain.SessionAnswer, 0, len(rawAnswers))
	for _, value := range rawAnswers {
		entry, ok := value.(map[string]any)
		if !ok {
			continue
		}
		questionID := strings.TrimSpace(coerceString(entry["questionId"]))
		if questionID == "" {
			continue
		}
		answers = append(answers, domain.SessionAnswer{
			QuestionID:    questionID,
			Category:      coerceString(entry["category"]),
			SelectedIndex: coerceIndex(entry["selectedIndex"]),
			CorrectIndex:  coerceIndex(entry["correctIndex"]),
			IsCorrect:     truthy(entry["isCorrect"]),
		})
	}

	submittedAt := coerceMillis(rec["submittedAt"])
	total := coerceCount(rec["totalAnswers"])
	correct := coerceCount(rec["correctAnswers"])

	// Re-derive when the persisted counters are sane; otherwise trust
	// what was stored rather than silently rewriting history.
	wrong := total - correct
	if wrong < 0 {
		wrong = coerceCount(rec["wrongAnswers"])
	}
	score := coerceCount(rec["scorePercent"])
	if total > 0 {
		score = Percent(correct, total)
	}

	id := strings.TrimSpace(coerceString(rec["id"]))
	if id == "" {
		id = SessionID(submittedAt)
	}

	return domain.Session{
		ID:             id,
		SubmittedAt:    submittedAt,
		TotalAnswers:   total,
		CorrectAnswers: correct,
		WrongAnswers:   wrong,
		ScorePercent:   score,
		RetryMode:      truthy(rec["retryMode"]),
		Answers:        answers,
	}, true
}

func normalizeHistoryEntry(raw any) (domain.ErrorPoolHistoryEntry, bool) {
	rec, ok := raw.(map[string]any)
	if !ok {
		return domain.ErrorPoolHistoryEntry{}, false
	}
	rawIDs, ok := rec["questionIds"].([]any)
	if !ok {
		return domain.ErrorPoolHistoryEntry{}, false
	}
	ids := make([]string, 0, len(rawIDs))
	for _, value := range rawIDs {
		if id := strings.TrimSpace(coerceString(value)); id != "" {
			ids = append(ids, id)
		}
	}
	return domain.ErrorPoolHistoryEntry{
		At:          coerceMillis(rec["at"]),
		QuestionIDs: ids,
	}, true
}

// Percent computes a rounded integer percentage; 0 when total is 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// SessionID derives a session identifier from its submission time.
func SessionID(at int64) string {
	return fmt.Sprintf("s-%s", strconv.FormatInt(at, 36))
}

func tailSessions(sessions []domain.Session, max int) []domain.Session {
	if len(sessions) <= max {
		return sessions
	}
	return sessions[len(sessions)-max:]
}

func tailHistory(history []domain.ErrorPoolHistoryEntry, max int) []domain.ErrorPoolHistoryEntry {
	if len(history) <= max {
		return history
	}
	return history[len(history)-max:]
}
