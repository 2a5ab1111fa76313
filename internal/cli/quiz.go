package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"mcq-trainer/internal/app"
	"mcq-trainer/internal/config"
	"mcq-trainer/internal/domain"
	"mcq-trainer/internal/progress"
)

// NewQuizCmd builds the interactive quiz subcommand.
func NewQuizCmd(configPath *string) *cobra.Command {
	var (
		limit    int
		category string
		retry    bool
	)

	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Run a quiz round",
		Long:  "Selects questions under the given filters, asks them one by one, and scores the round on completion. Answers are kept in memory only until you submit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if limit == 0 {
				limit = cfg.Quiz.Limit
			}
			service, cleanup, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			quiz, err := service.StartQuiz(cmd.Context(), progress.Filters{
				Limit:     limit,
				Category:  category,
				RetryMode: retry,
			})
			if errors.Is(err, domain.ErrNoQuestions) {
				if retry {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing to retry: every missed question is mastered or the pool is empty.")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "No questions match the selected filters.")
				}
				return nil
			}
			if err != nil {
				return err
			}
			return runQuizLoop(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), service, quiz)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of questions to ask (default from config, capped at 100)")
	cmd.Flags().StringVar(&category, "category", "", "restrict to one category (case-insensitive)")
	cmd.Flags().BoolVar(&retry, "retry", false, "draw only from previously-missed, unmastered questions")
	return cmd
}

func runQuizLoop(ctx context.Context, in io.Reader, out io.Writer, service *app.TrainerService, quiz *app.ActiveQuiz) error {
	scanner := bufio.NewScanner(in)

	for i, question := range quiz.Questions {
		fmt.Fprintf(out, "\n[%d/%d] %s\n", i+1, len(quiz.Questions), question.Question)
		for j, option := range question.Options {
			fmt.Fprintf(out, "  %d) %s\n", j+1, option)
		}

		selected, ok := promptAnswer(scanner, out, len(question.Options))
		if !ok {
			fmt.Fprintln(out, "Quiz abandoned; nothing was saved.")
			return nil
		}

		feedback, err := quiz.Record(question.ID, selected)
		if err != nil {
			return err
		}
		if feedback.IsCorrect {
			fmt.Fprintln(out, "Correct!")
		} else {
			fmt.Fprintf(out, "Wrong. The answer was %d) %s\n",
				feedback.CorrectIndex+1, question.Options[feedback.CorrectIndex])
		}
		fmt.Fprintf(out, "  %s\n", feedback.Explanation)
	}

	outcome, err := service.SubmitQuiz(ctx, quiz)
	if err != nil {
		return err
	}

	session := outcome.Session
	fmt.Fprintf(out, "\nScore: %d/%d (%d%%)\n", session.CorrectAnswers, session.TotalAnswers, session.ScorePercent)
	if len(outcome.NewlyMastered) > 0 {
		fmt.Fprintf(out, "Newly mastered: %s\n", strings.Join(outcome.NewlyMastered, ", "))
	}
	fmt.Fprintf(out, "Retry pool: %d question(s)\n", outcome.RetryPoolSize)
	return nil
}

// promptAnswer reads a 1-based option number; q abandons the quiz.
func promptAnswer(scanner *bufio.Scanner, out io.Writer, options int) (int, bool) {
	for {
		fmt.Fprintf(out, "Your answer (1-%d, q to quit): ", options)
		if !scanner.Scan() {
			return 0, false
		}
		input := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(input, "q") {
			return 0, false
		}
		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > options {
			fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", options)
			continue
		}
		return n - 1, true
	}
}
