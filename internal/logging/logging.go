// Package logging builds the logrus logger of the command line tool.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

const (
	TextFormat = "text"
	JSONFormat = "json"
)

type Option func(*logrus.Logger) error

func WithLevel(level string) Option {
	return func(l *logrus.Logger) error {
		if level == "" {
			return nil
		}
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			return err
		}
		l.SetLevel(lvl)
		return nil
	}
}

// WithFormat selects text or JSON lines. Timestamps are left out so output
// stays reproducible.
func WithFormat(format string) Option {
	return func(l *logrus.Logger) error {
		switch strings.ToLower(format) {
		case "", TextFormat:
			l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
		case JSONFormat:
			l.SetFormatter(&logrus.JSONFormatter{DisableTimestamp: true})
		default:
			return fmt.Errorf("unknown logger format: '%s'", format)
		}
		return nil
	}
}

func WithHook(hook logrus.Hook) Option {
	return func(l *logrus.Logger) error {
		l.AddHook(hook)
		return nil
	}
}

// New returns a logger writing to out at warn level unless an option says
// otherwise.
func New(out io.Writer, options ...Option) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(logrus.WarnLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true, DisableColors: true})
	for _, option := range options {
		if err := option(logger); err != nil {
			return nil, err
		}
	}
	return logger, nil
}
