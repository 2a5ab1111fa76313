package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNoQuestions is returned when quiz filters match zero questions.
	// It is a user-actionable notice, not a failure.
	ErrNoQuestions = errors.New("no questions match the selected filters")
	// ErrBankNotFound indicates the question bank could not be located.
	ErrBankNotFound = errors.New("question bank not found")
	// ErrResultsNotFound indicates no results blob exists yet under the
	// storage key. Callers fall back to a fresh default store.
	ErrResultsNotFound = errors.New("results not found")
	// ErrThemeNotFound indicates no theme has been persisted yet.
	ErrThemeNotFound = errors.New("theme preference not found")
	// ErrQuestionNotFound indicates an answer referenced a question id
	// outside the active quiz.
	ErrQuestionNotFound = errors.New("question not found in active quiz")
)

// UnansweredQuestionError aborts scoring when a question in the active
// list has no recorded answer. Scoring is all-or-nothing.
type UnansweredQuestionError struct {
	QuestionID string
}

func (e *UnansweredQuestionError) Error() string {
	return fmt.Sprintf("question %q has no recorded answer", e.QuestionID)
}

// AnswerIndexOutOfRangeError aborts scoring when a recorded answer index
// falls outside the question's option range.
type AnswerIndexOutOfRangeError struct {
	QuestionID string
	Index      int
	Options    int
}

func (e *AnswerIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("answer index %d out of range for question %q (%d options)", e.Index, e.QuestionID, e.Options)
}

// IncompleteSubmissionError rejects a submit while questions remain
// unanswered. No state is mutated.
type IncompleteSubmissionError struct {
	Missing int
}

func (e *IncompleteSubmissionError) Error() string {
	if e.Missing == 1 {
		return "1 question is still unanswered"
	}
	return fmt.Sprintf("%d questions are still unanswered", e.Missing)
}
