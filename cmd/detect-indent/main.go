package main

import (
	"io"
	"os"

	"github.com/r9s-ai/detect-indent/cli"
	"github.com/sirupsen/logrus"
)

// Set via -ldflags at release time.
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	err := cli.Run(args, cli.Options{
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		BuildInfo: cli.BuildInfo{
			Version:   version,
			Commit:    commit,
			BuildDate: buildDate,
		},
	})
	if err != nil {
		logger := logrus.New()
		logger.SetOutput(stderr)
		logger.SetFormatter(messageFormatter{})
		logger.Errorf("detect-indent: %v", err)
		return 1
	}
	return 0
}

// messageFormatter writes only the entry message, one per line.
type messageFormatter struct{}

func (messageFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	return []byte(entry.Message + "\n"), nil
}
