// Package cli is the cobra command surface of the evaluation engine.
package cli

import "github.com/spf13/cobra"

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toolgauge",
		Short: "Score analysis-tool output against ground truth",
		Long: "Toolgauge evaluates the JSON output of an analysis tool with deterministic checks " +
			"and optional LLM judges, combines both into one score, and maps it to a verdict.",
		// Runtime failures print the error to stderr without a usage dump.
		SilenceUsage: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newEvaluateCmd())
	cmd.AddCommand(newReportCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
