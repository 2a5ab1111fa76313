package app

import (
	"mcq-trainer/internal/domain"
)

// ActiveQuiz is the in-memory working state of one quiz run: the selected
// questions in presentation order plus the answers recorded so far.
// Nothing here touches storage; an abandoned quiz simply vanishes.
type ActiveQuiz struct {
	Questions []domain.Question
	RetryMode bool

	answers map[string]int
}

// Feedback is the immediate per-question response shown after an answer
// is recorded.
type Feedback struct {
	IsCorrect    bool
	CorrectIndex int
	Explanation  string
}

func newActiveQuiz(questions []domain.Question, retryMode bool) *ActiveQuiz {
	return &ActiveQuiz{
		Questions: questions,
		RetryMode: retryMode,
		answers:   make(map[string]int, len(questions)),
	}
}

// Record stores the selected option for a question and returns immediate
// feedback. Re-recording overwrites the previous pick.
func (q *ActiveQuiz) Record(questionID string, optionIndex int) (Feedback, error) {
	var question *domain.Question
	for i := range q.Questions {
		if q.Questions[i].ID == questionID {
			question = &q.Questions[i]
			break
		}
	}
	if question == nil {
		return Feedback{}, domain.ErrQuestionNotFound
	}
	if optionIndex < 0 || optionIndex >= len(question.Options) {
		return Feedback{}, &domain.AnswerIndexOutOfRangeError{
			QuestionID: questionID,
			Index:      optionIndex,
			Options:    len(question.Options),
		}
	}
	q.answers[questionID] = optionIndex
	return Feedback{
		IsCorrect:    optionIndex == question.Correct,
		CorrectIndex: question.Correct,
		Explanation:  question.Explanation,
	}, nil
}

// Answers returns a copy of the recorded answer map.
func (q *ActiveQuiz) Answers() map[string]int {
	answers := make(map[string]int, len(q.answers))
	for id, index := range q.answers {
		answers[id] = index
	}
	return answers
}

// Unanswered counts questions with no recorded answer yet.
func (q *ActiveQuiz) Unanswered() int {
	missing := 0
	for _, question := range q.Questions {
		if _, ok := q.answers[question.ID]; !ok {
			missing++
		}
	}
	return missing
}
