// Package logger is the logrus-backed tracer used by the HTTP clients.
// Fields are passed as "key:value" tags.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var std = newStd(os.Stderr)

func newStd(out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		PadLevelText:  true,
	})
	return l
}

// Configure sets the output and the level by name ("debug", "info", ...).
func Configure(out io.Writer, level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}

	std.SetOutput(out)
	std.SetLevel(lvl)
	return nil
}

func Trace(msg string, tags ...string) {
	std.WithFields(parseFields(tags...)).Trace(msg)
}

func Debug(msg string, tags ...string) {
	std.WithFields(parseFields(tags...)).Debug(msg)
}

func parseFields(tags ...string) logrus.Fields {
	result := make(logrus.Fields, len(tags))
	for _, tag := range tags {
		t := strings.SplitN(tag, ":", 2)
		if len(t) == 1 {
			result[strings.TrimSpace(t[0])] = ""
			continue
		}
		result[strings.TrimSpace(t[0])] = strings.TrimSpace(t[1])
	}
	return result
}
