package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"mcq-trainer/internal/config"
	"mcq-trainer/internal/domain"
)

// NewThemeCmd shows, sets, or cycles the theme preference.
func NewThemeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:       "theme [system|light|dark|cycle]",
		Short:     "Show or change the theme preference",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"system", "light", "dark", "cycle"},
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

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				fmt.Fprintf(out, "Theme: %s\n", service.Theme(cmd.Context()))
				return nil
			}

			if args[0] == "cycle" {
				next, err := service.CycleTheme(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Theme: %s\n", next)
				return nil
			}

			theme := domain.Theme(args[0])
			if err := service.SetTheme(cmd.Context(), theme); err != nil {
				return err
			}
			fmt.Fprintf(out, "Theme: %s\n", theme)
			return nil
		},
	}
}
