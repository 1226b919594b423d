package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/toolgauge/toolgauge/internal/adapters/outbound/history"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/tui"
)

func newReportCmd() *cobra.Command {
	var (
		configDir   string
		jsonOutput  bool
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the latest saved evaluation report",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := history.New()

			if showHistory {
				entries, err := store.History(configDir)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			report, err := store.Latest(configDir)
			if err != nil {
				return err
			}

			if jsonOutput {
				return renderJSON(cmd, report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			return nil
		},
	}

	cmd.Flags().StringVar(&configDir, "config", ".", "Directory containing the .toolgauge history")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show evaluation run history")

	return cmd
}
