package cli

import internalcli "github.com/r9s-ai/detect-indent/internal/cli"

type BuildInfo = internalcli.BuildInfo
type Options = internalcli.Options
type TerminalProbe = internalcli.TerminalProbe

func Run(args []string, opts Options) error {
	return internalcli.Run(args, opts)
}
