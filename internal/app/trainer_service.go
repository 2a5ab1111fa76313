package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"mcq-trainer/internal/bank"
	"mcq-trainer/internal/domain"
	"mcq-trainer/internal/progress"
)

// ResultsRepository abstracts the local key-value persistence. Results
// blob and theme live under independent keys so a corrupted blob cannot
// take the theme preference down with it.
type ResultsRepository interface {
	LoadResults(ctx context.Context) ([]byte, error)
	SaveResults(ctx context.Context, data []byte) error
	LoadTheme(ctx context.Context) (domain.Theme, error)
	SaveTheme(ctx context.Context, theme domain.Theme) error
}

// TrainerService contains the trainer use cases: starting a quiz,
// scoring a submission, aggregating progress, and preference changes.
type TrainerService struct {
	repo   ResultsRepository
	bank   bank.Loader
	bankID string
	now    func() time.Time
	rnd    *rand.Rand
}

func NewTrainerService(repo ResultsRepository, loader bank.Loader, bankID string) *TrainerService {
	return NewTrainerServiceWithClock(repo, loader, bankID, time.Now, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewTrainerServiceWithClock allows deterministic timestamps and shuffles
// in tests.
func NewTrainerServiceWithClock(repo ResultsRepository, loader bank.Loader, bankID string, now func() time.Time, rnd *rand.Rand) *TrainerService {
	return &TrainerService{repo: repo, bank: loader, bankID: bankID, now: now, rnd: rnd}
}

// Bank loads and returns the normalized question bank.
func (s *TrainerService) Bank(ctx context.Context) ([]domain.Question, error) {
	return s.bank.LoadBank(ctx, s.bankID)
}

// Results loads the persisted store and repairs it into a valid
// QuizResults. A missing or unparseable blob degrades to a fresh default
// store; it is never an error surfaced to the user.
func (s *TrainerService) Results(ctx context.Context) (domain.QuizResults, error) {
	theme := s.themeOrDefault(ctx)

	data, err := s.repo.LoadResults(ctx)
	if errors.Is(err, domain.ErrResultsNotFound) {
		return progress.DefaultResults(s.nowMillis(), theme), nil
	}
	if err != nil {
		return domain.QuizResults{}, fmt.Errorf("load results: %w", err)
	}

	var raw any
	// An unparseable blob normalizes the same as a missing one.
	_ = json.Unmarshal(data, &raw)
	return progress.NormalizeResults(raw, theme, s.nowMillis()), nil
}

// StartQuiz selects the active question set for a new quiz run.
// domain.ErrNoQuestions distinguishes "filters matched nothing" from a
// silently empty quiz.
func (s *TrainerService) StartQuiz(ctx context.Context, filters progress.Filters) (*ActiveQuiz, error) {
	questions, err := s.Bank(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.Results(ctx)
	if err != nil {
		return nil, err
	}
	selected := progress.SelectQuestions(questions, results, filters, s.rnd)
	if len(selected) == 0 {
		return nil, domain.ErrNoQuestions
	}
	return newActiveQuiz(selected, filters.RetryMode), nil
}

// SubmitQuiz scores a fully-answered active quiz, persists the updated
// store, and reports the outcome. An incomplete quiz is rejected with the
// count of missing answers and no state is touched.
func (s *TrainerService) SubmitQuiz(ctx context.Context, quiz *ActiveQuiz) (progress.ScoringOutcome, error) {
	if missing := quiz.Unanswered(); missing > 0 {
		return progress.ScoringOutcome{}, &domain.IncompleteSubmissionError{Missing: missing}
	}
	results, err := s.Results(ctx)
	if err != nil {
		return progress.ScoringOutcome{}, err
	}
	outcome, err := progress.ScoreSession(quiz.Questions, quiz.Answers(), quiz.RetryMode, results, s.nowMillis())
	if err != nil {
		return progress.ScoringOutcome{}, err
	}
	if err := s.persist(ctx, outcome.Results); err != nil {
		return progress.ScoringOutcome{}, err
	}
	return outcome, nil
}

// Summary aggregates overall counters from the stored sessions and stats.
func (s *TrainerService) Summary(ctx context.Context) (domain.Summary, error) {
	results, err := s.Results(ctx)
	if err != nil {
		return domain.Summary{}, err
	}
	return progress.Summarize(results), nil
}

// Categories returns the per-category rollup of practiced topics.
func (s *TrainerService) Categories(ctx context.Context) ([]domain.CategoryStat, error) {
	questions, err := s.Bank(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.Results(ctx)
	if err != nil {
		return nil, err
	}
	return progress.CategoryRollup(questions, results), nil
}

// ResetProgress replaces the store with a fresh default one, keeping only
// the original creation timestamp and the theme.
func (s *TrainerService) ResetProgress(ctx context.Context) (domain.QuizResults, error) {
	results, err := s.Results(ctx)
	if err != nil {
		return domain.QuizResults{}, err
	}
	next := progress.ResetResults(results, s.nowMillis())
	if err := s.persist(ctx, next); err != nil {
		return domain.QuizResults{}, err
	}
	return next, nil
}

// SetTheme persists the preference under its own key and mirrors it into
// the results blob.
func (s *TrainerService) SetTheme(ctx context.Context, theme domain.Theme) error {
	if !domain.ValidTheme(theme) {
		return fmt.Errorf("invalid theme %q", theme)
	}
	if err := s.repo.SaveTheme(ctx, theme); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	results, err := s.Results(ctx)
	if err != nil {
		return err
	}
	results.Preferences.Theme = theme
	return s.persist(ctx, results)
}

// CycleTheme rotates system -> light -> dark -> system and persists the
// new value.
func (s *TrainerService) CycleTheme(ctx context.Context) (domain.Theme, error) {
	next := domain.NextTheme(s.themeOrDefault(ctx))
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}

// Theme returns the currently persisted theme preference.
func (s *TrainerService) Theme(ctx context.Context) domain.Theme {
	return s.themeOrDefault(ctx)
}

func (s *TrainerService) themeOrDefault(ctx context.Context) domain.Theme {
	theme, err := s.repo.LoadTheme(ctx)
	if err != nil || !domain.ValidTheme(theme) {
		return domain.ThemeSystem
	}
	return theme
}

func (s *TrainerService) persist(ctx context.Context, results domain.QuizResults) error {
	data, err := json.Marshal(results)
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	if err := s.repo.SaveResults(ctx, data); err != nil {
		return fmt.Errorf("save results: %w", err)
	}
	return nil
}

func (s *TrainerService) nowMillis() int64 {
	return s.now().UnixMilli()
}
