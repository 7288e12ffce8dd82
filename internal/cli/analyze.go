package cli

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/epinet/converters"
	"github.com/katalvlaran/epinet/experiment"
	"github.com/katalvlaran/epinet/sir"
)

// analyzeOpts holds the flags of the analyze command.
type analyzeOpts struct {
	strict bool // reject asymmetric adjacency files
	paths  bool // compute the characteristic path length
}

// newAnalyzeCmd creates the analyze command, which loads an adjacency file
// and prints its structural summary.
func newAnalyzeCmd() *cobra.Command {
	var opts analyzeOpts

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Summarize the network stored in an adjacency file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject files whose adjacency is not symmetric")
	cmd.Flags().BoolVar(&opts.paths, "paths", false, "compute the average shortest path length (one BFS per vertex)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, path string, opts analyzeOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var readOpts []converters.Option
	if opts.strict {
		readOpts = append(readOpts, converters.WithStrictSymmetry())
	}

	logger.Debug("loading adjacency file", "path", path, "strict", opts.strict)
	g, err := converters.LoadFile[sir.State](path, readOpts...)
	if err != nil {
		return err
	}

	summary, err := experiment.Summarize(ctx, g, opts.paths)
	if err != nil {
		return err
	}
	prog.done("Analyzed network", "path", path, "n", summary.Vertices)

	out := cmd.OutOrStdout()
	if !summary.Symmetric {
		printWarning(out, "adjacency is not symmetric; clustering counts links in either direction")
	}

	return renderSummary(out, filepath.Base(path), summary, []string{"states", censusCell(sir.Census(g))})
}
