package cli

import (
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// TerminalProbe reports whether r is attached to an interactive terminal.
type TerminalProbe func(r io.Reader) bool

type Options struct {
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
	BuildInfo  BuildInfo
	IsTerminal TerminalProbe
}

func Run(args []string, opts Options) error {
	resolved := normalizeOptions(opts)
	root := newRootCmd(resolved)
	// cobra falls back to os.Args for a nil slice.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(fileArgsFirst(args))
	return root.Execute()
}

// fileArgsFirst moves a leading positional argument that names an existing
// file behind "--", so a file called "version" or "help" is detected instead
// of being dispatched as a subcommand.
func fileArgsFirst(args []string) []string {
	if slices.Contains(args, "--") {
		return args
	}
	for i, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		st, err := os.Stat(arg)
		if err != nil || st.IsDir() {
			return args
		}
		out := make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, args[i+1:]...)
		return append(out, "--", arg)
	}
	return args
}

func normalizeOptions(opts Options) Options {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.IsTerminal == nil {
		opts.IsTerminal = isTerminal
	}
	return opts
}

func newRootCmd(opts Options) *cobra.Command {
	var debug bool
	cmd := newDetectCmd(opts, &debug)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetIn(opts.Stdin)
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "log detection details to stderr")
	cmd.AddCommand(
		newVersionCmd(opts),
	)
	return cmd
}
