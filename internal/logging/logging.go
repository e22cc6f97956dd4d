// Package logging builds the logfmt loggers used by the CLI.
package logging

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Levels accepted by New, lowest first.
var Levels = []string{"debug", "info", "warn", "error"}

// New creates a logfmt logger writing to w, filtered to the named level.
func New(w io.Writer, lvl string) (log.Logger, error) {
	opt, err := levelOption(lvl)
	if err != nil {
		return nil, err
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}

func levelOption(lvl string) (level.Option, error) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn", "":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("invalid log level %q (want one of %s)", lvl, strings.Join(Levels, ", "))
	}
}

// Timed runs fn and logs its duration at debug level.
func Timed(logger log.Logger, name string, fn func() error) error {
	start := time.Now()
	err := fn()
	elapsed := time.Since(start)

	if err != nil {
		_ = level.Debug(logger).Log("msg", "step failed", "step", name, "err", err, "took", elapsed)
	} else {
		_ = level.Debug(logger).Log("msg", "step done", "step", name, "took", elapsed)
	}
	return err
}

// TimedStep runs a step that cannot fail and logs its duration at debug level.
func TimedStep(logger log.Logger, name string, fn func()) {
	_ = Timed(logger, name, func() error {
		fn()
		return nil
	})
}
