package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mcq-trainer/internal/config"
)

// NewResetCmd wipes all progress while keeping the original creation
// timestamp and the theme preference.
func NewResetCmd(configPath *string) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !yes {
				fmt.Fprint(out, "This wipes all sessions and statistics. Type 'reset' to confirm: ")
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "reset" {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			service, cleanup, err := buildService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := service.ResetProgress(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(out, "Progress reset.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation prompt")
	return cmd
}
