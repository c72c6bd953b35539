// ABOUTME: Diagnostic logger construction backed by logrus.
// ABOUTME: Parses level names and writes text-formatted entries to the given writer.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// New returns a logrus logger writing to out at the named level.
// An empty level means info.
func New(level string, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()
	log.SetOutput(out)
	log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if strings.TrimSpace(level) == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.SetLevel(lvl)
	return log, nil
}

// Discard returns a logger that drops everything.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
