package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/toolgauge/toolgauge/internal/adapters/outbound/config"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/envelope"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/gitinfo"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/groundtruth"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/history"
	judgeAdapter "github.com/toolgauge/toolgauge/internal/adapters/outbound/judge"
	"github.com/toolgauge/toolgauge/internal/adapters/outbound/tui"
	"github.com/toolgauge/toolgauge/internal/application"
	"github.com/toolgauge/toolgauge/internal/domain/judging"
)

func newEvaluateCmd() *cobra.Command {
	var (
		analysisPath   string
		groundTruthDir string
		outputPath     string
		configDir      string
		quick          bool
		jsonOutput     bool
		noColor        bool
		judges         bool
		providerName   string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate one analysis output file",
		Long: "Run the deterministic check suite (and optionally the LLM judges) against a " +
			"tool-output envelope and print the scorecard. Exits 0 only on PASS or better.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				lipgloss.SetColorProfile(termenv.Ascii)
			}

			absAnalysis, err := filepath.Abs(analysisPath)
			if err != nil {
				return fmt.Errorf("resolving analysis path: %w", err)
			}

			var provider judging.Provider
			if judges {
				name := providerName
				if name == "" {
					cfg, err := config.New().Load(configDir)
					if err != nil {
						return err
					}
					name = cfg.Judge.Provider
				}
				provider, err = judgeAdapter.Resolve(name)
				if err != nil {
					return err
				}
			}

			svc := application.NewEvaluateService(
				envelope.New(),
				groundtruth.New(),
				config.New(),
				provider,
				gitinfo.New(),
			)

			report, err := svc.Evaluate(cmd.Context(), application.EvaluateOptions{
				AnalysisPath:   absAnalysis,
				GroundTruthDir: groundTruthDir,
				ConfigDir:      configDir,
				Quick:          quick,
				Judges:         judges,
			})
			if err != nil {
				return fmt.Errorf("evaluation failed: %w", err)
			}

			_ = history.New().Save(configDir, report) // best-effort

			if outputPath != "" {
				if err := os.WriteFile(outputPath, []byte(tui.RenderMarkdown(report)), 0644); err != nil {
					return fmt.Errorf("writing scorecard: %w", err)
				}
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if !report.Summary.Decision.Passing() {
				return fmt.Errorf("verdict %s (combined score %.2f)",
					report.Summary.Decision, report.Summary.CombinedScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&analysisPath, "analysis", "", "Path to the tool-output envelope JSON (required)")
	cmd.Flags().StringVar(&groundTruthDir, "ground-truth", "", "Directory of per-scenario ground-truth JSON files")
	cmd.Flags().StringVar(&outputPath, "output", "", "Write a markdown scorecard to this path")
	cmd.Flags().StringVar(&configDir, "config", ".", "Directory containing .toolgauge.yaml")
	cmd.Flags().BoolVar(&quick, "quick", false, "Skip performance checks and non-focused judges")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&judges, "judges", false, "Enable the LLM judge layer")
	cmd.Flags().StringVar(&providerName, "provider", "", "Judge provider (anthropic, openai, heuristic); defaults to config")
	_ = cmd.MarkFlagRequired("analysis")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
