package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/epinet/experiment"
)

// newRunCmd creates the run command, which executes an experiment plan.
func newRunCmd() *cobra.Command {
	var paths bool

	cmd := &cobra.Command{
		Use:   "run [plan.toml|plan.yaml]",
		Short: "Run every experiment of a plan file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlan(cmd, args[0], paths)
		},
	}

	cmd.Flags().BoolVar(&paths, "paths", false, "compute the average shortest path length of every network")

	return cmd
}

// runPlan loads and runs a plan. Results collected before a failure are
// still printed.
func runPlan(cmd *cobra.Command, path string, paths bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	plan, err := experiment.LoadPlan(path)
	if err != nil {
		return err
	}
	logger.Debug("plan loaded", "path", path, "experiments", len(plan.Experiments))

	runner := experiment.NewRunner(
		experiment.WithLogger(logger),
		experiment.WithPathLength(paths),
	)
	results, runErr := runner.Run(ctx, plan)

	out := cmd.OutOrStdout()
	if len(results) > 0 {
		if err := renderResults(out, results, paths); err != nil {
			return err
		}
	}
	if runErr != nil {
		return runErr
	}

	prog.done("Plan complete", "runs", len(results))
	printSuccess(out, "%d runs across %d experiments", len(results), len(plan.Experiments))

	return nil
}
