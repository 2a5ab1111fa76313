package domain

// Theme is a persisted display preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

// ValidTheme reports whether t is one of the three allowed literals.
func ValidTheme(t Theme) bool {
	return t == ThemeSystem || t == ThemeLight || t == ThemeDark
}

// NextTheme rotates system -> light -> dark -> system.
func NextTheme(t Theme) Theme {
	switch t {
	case ThemeSystem:
		return ThemeLight
	case ThemeLight:
		return ThemeDark
	default:
		return ThemeSystem
	}
}

// Question is a normalized multiple-choice question. Every question in the
// active bank has exactly 4 options and a correct index within bounds.
type Question struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"`
	Category    string   `json:"category"`
	Explanation string   `json:"explanation"`
}

// Values stored in QuestionStat.LastResult.
const (
	ResultCorrect = "correct"
	ResultWrong   = "wrong"
	ResultNone    = ""
)

// QuestionStat accumulates per-question performance, keyed by Question.ID.
// Mastered is granted at 3 consecutive correct answers and revoked by any
// wrong answer.
type QuestionStat struct {
	Seen               int    `json:"seen"`
	Correct            int    `json:"correct"`
	Wrong              int    `json:"wrong"`
	ConsecutiveCorrect int    `json:"consecutiveCorrect"`
	Mastered           bool   `json:"mastered"`
	LastResult         string `json:"lastResult"`
	LastAnsweredAt     int64  `json:"lastAnsweredAt"` // unix millis, 0 = never
}

// SessionAnswer records one answered question within a session. Category is
// snapshotted at answer time so historical sessions survive bank edits.
type SessionAnswer struct {
	QuestionID    string `json:"questionId"`
	Category      string `json:"category"`
	SelectedIndex int    `json:"selectedIndex"`
	CorrectIndex  int    `json:"correctIndex"`
	IsCorrect     bool   `json:"isCorrect"`
}

// Session is one completed, scored quiz attempt.
type Session struct {
	ID             string          `json:"id"`
	SubmittedAt    int64           `json:"submittedAt"` // unix millis
	TotalAnswers   int             `json:"totalAnswers"`
	CorrectAnswers int             `json:"correctAnswers"`
	WrongAnswers   int             `json:"wrongAnswers"`
	ScorePercent   int             `json:"scorePercent"`
	RetryMode      bool            `json:"retryMode"`
	Answers        []SessionAnswer `json:"answers"`
}

// ErrorPoolHistoryEntry is a snapshot of the retry pool taken after a
// session was scored.
type ErrorPoolHistoryEntry struct {
	At          int64    `json:"at"` // unix millis
	QuestionIDs []string `json:"questionIds"`
}

// Preferences holds durable user preferences stored inside the results
// blob. The theme is additionally mirrored under its own storage key so it
// survives a corrupted or reset results blob.
type Preferences struct {
	Theme Theme `json:"theme"`
}

// QuizResults is the root durable aggregate: sessions (append-only, most
// recent 200), per-question stats, retry-pool history (most recent 100)
// and preferences. It is treated as immutable; every mutation builds a new
// value.
type QuizResults struct {
	CreatedAt        int64                   `json:"createdAt"` // unix millis
	UpdatedAt        int64                   `json:"updatedAt"` // unix millis
	Sessions         []Session               `json:"sessions"`
	QuestionStats    map[string]QuestionStat `json:"questionStats"`
	ErrorPoolHistory []ErrorPoolHistoryEntry `json:"errorPoolHistory"`
	Preferences      Preferences             `json:"preferences"`
}

// Summary is a derived, non-persisted aggregate over all sessions.
type Summary struct {
	TotalAnswers      int   `json:"totalAnswers"`
	CorrectAnswers    int   `json:"correctAnswers"`
	WrongAnswers      int   `json:"wrongAnswers"`
	AccuracyPercent   int   `json:"accuracyPercent"`
	MasteredQuestions int   `json:"masteredQuestions"`
	RetryPoolSize     int   `json:"retryPoolSize"`
	LastSessionAt     int64 `json:"lastSessionAt"` // unix millis, 0 = no sessions
}

// CategoryStat is a derived per-category rollup over practiced questions.
type CategoryStat struct {
	Category        string `json:"category"`
	Seen            int    `json:"seen"`
	Correct         int    `json:"correct"`
	Wrong           int    `json:"wrong"`
	Mastered        int    `json:"mastered"`
	AccuracyPercent int    `json:"accuracyPercent"`
}
