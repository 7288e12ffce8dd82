package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// The main package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand assembles the epinet command tree. Tables and generated
// networks go to the command's output stream; logs go to its error stream.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "epinet",
		Short:        "epinet builds and measures contact networks for epidemic models",
		Long:         `epinet generates Erdős–Rényi and Watts–Strogatz networks, loads adjacency files and reports clustering, Pareto conformity, components and path lengths.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("epinet %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCmd())
	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newRunCmd())

	return root
}

// Execute runs the epinet CLI under ctx with the process's standard streams.
func Execute(ctx context.Context) error {
	root := NewRootCommand()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	return root.ExecuteContext(ctx)
}
