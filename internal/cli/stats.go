package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"mcq-trainer/internal/config"
)

// NewStatsCmd prints the overall summary and the per-category rollup.
func NewStatsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show progress statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			service, cleanup, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			summary, err := service.Summary(cmd.Context())
			if err != nil {
				return err
			}
			categories, err := service.Categories(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Answers:   %d total, %d correct, %d wrong (%d%% accuracy)\n",
				summary.TotalAnswers, summary.CorrectAnswers, summary.WrongAnswers, summary.AccuracyPercent)
			fmt.Fprintf(out, "Mastered:  %d question(s)\n", summary.MasteredQuestions)
			fmt.Fprintf(out, "Retry pool: %d question(s)\n", summary.RetryPoolSize)
			if summary.LastSessionAt > 0 {
				fmt.Fprintf(out, "Last quiz: %s\n", time.UnixMilli(summary.LastSessionAt).Format(time.RFC1123))
			} else {
				fmt.Fprintln(out, "Last quiz: never")
			}

			if len(categories) == 0 {
				fmt.Fprintln(out, "\nNo categories practiced yet.")
				return nil
			}
			fmt.Fprintln(out)
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CATEGORY\tSEEN\tCORRECT\tWRONG\tMASTERED\tACCURACY")
			for _, c := range categories {
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d%%\n",
					c.Category, c.Seen, c.Correct, c.Wrong, c.Mastered, c.AccuracyPercent)
			}
			return w.Flush()
		},
	}
}
