package cli

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/r9s-ai/detect-indent/indent"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const usageText = `Usage:
    $ detect-indent <file>
    echo <string> | detect-indent

    Example
      $ echo '  foo\n  bar' | detect-indent | wc --chars
      2
`

func newDetectCmd(opts Options, debug *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "detect-indent [file|-]",
		Short: "Print the indentation used by a file",
		Long: "Detect the indentation of a file, or of one line read from piped stdin, " +
			"and print it without a trailing newline.",
		Example: "  detect-indent main.go\n  echo '  foo' | detect-indent",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return errors.New("detect-indent accepts at most one file path")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(opts.Stderr, *debug)

			path := "-"
			if len(args) == 1 {
				path = strings.TrimSpace(args[0])
				if path == "" {
					path = "-"
				}
			}

			if path == "-" && opts.IsTerminal(opts.Stdin) {
				log.Debug("stdin is a terminal, printing usage")
				_, err := io.WriteString(opts.Stdout, usageText)
				return err
			}

			src, err := readDetectSource(path, opts.Stdin)
			if err != nil {
				return err
			}
			result := indent.Detect(src)
			fields := logrus.Fields{
				"source": sourceName(path),
				"bytes":  len(src),
				"amount": result.Amount(),
			}
			if kind, ok := result.Kind(); ok {
				fields["kind"] = kind.String()
			}
			log.WithFields(fields).Debugf("detected %s", result)

			_, err = io.WriteString(opts.Stdout, result.Indent())
			return err
		},
	}
}

// readDetectSource returns the whole file at path, or the first line of in
// when path is "-".
func readDetectSource(path string, in io.Reader) (string, error) {
	if path == "-" {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return "", errors.Wrap(err, "could not read line from stdin")
		}
		return line, nil
	}
	src, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(err, "file not found: '%s'", path)
		}
		return "", errors.Wrapf(err, "something went wrong reading the file: '%s'", path)
	}
	return string(src), nil
}

func sourceName(path string) string {
	if path == "-" {
		return "stdin"
	}
	return path
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
