package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/bramble/internal/cli"
)

// solveCmd represents the solve command
var solveCmd = &cobra.Command{
	Use:   "solve [problem.yaml]",
	Short: "Solve a planning problem",
	Long:  `Loads a problem document (initial state, goals, operator catalog) and reports SOLVED or FAILED along with the trace of executed operators.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opts := cli.SolveOptions{}
		if len(args) > 0 {
			opts.ProblemPath = args[0]
		}
		opts.Demo, _ = cmd.Flags().GetBool("demo")
		opts.JSON, _ = cmd.Flags().GetBool("json")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.DepthLimit, _ = cmd.Flags().GetInt("depth-limit")
		opts.Goals, _ = cmd.Flags().GetStringSlice("goal")
		opts.Initial, _ = cmd.Flags().GetStringSlice("fact")

		if err := cli.Solve(cmd.Context(), opts, os.Stdout); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().Bool("demo", false, "Run the bundled school demo domain")
	solveCmd.Flags().Bool("json", false, "Emit the result as JSON")
	solveCmd.Flags().Int("depth-limit", 0, "Abort if goal recursion exceeds this depth (0 = no guard)")
	solveCmd.Flags().StringSlice("goal", nil, "Override the problem's goal list")
	solveCmd.Flags().StringSlice("fact", nil, "Override the problem's initial facts")

	// Make 'solve' the default if no command is provided.
	rootCmd.Run = solveCmd.Run
	rootCmd.Flags().AddFlagSet(solveCmd.Flags())
}
