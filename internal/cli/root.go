package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/uistyle"
)

var (
	version = uistyle.Version
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// It is typically called from main with values injected via ldflags.
func SetVersion(v, c, d string) {
	if v != "" {
		version = v
	}
	commit = c
	date = d
}

// Execute runs the graphtool CLI.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Command output goes to out, logs to
// logs.
func newRootCmd(out, logs io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "graphtool",
		Short:         "graphtool inspects, converts and crops images as graphs",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logs, level)
			installLogger(logger)
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetOut(out)
	root.SetErr(logs)
	root.SetVersionTemplate(fmt.Sprintf("graphtool %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInfoCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newCropCmd())

	return root
}
