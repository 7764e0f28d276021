// Package logging builds the go-kit loggers used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// Levels lists the accepted values for a log level flag, most verbose first.
var Levels = []string{"debug", "info", "warn", "error"}

// New returns a logfmt logger writing to w that drops records below lvl.
// Every record carries a UTC timestamp and its caller.
func New(w io.Writer, lvl string) (log.Logger, error) {
	opt, err := filterFor(lvl)
	if err != nil {
		return nil, err
	}
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	logger = level.NewFilter(logger, opt)
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)
	return logger, nil
}

func filterFor(lvl string) (level.Option, error) {
	switch strings.ToLower(lvl) {
	case "debug":
		return level.AllowDebug(), nil
	case "info", "":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("unknown log level %q, expected one of %s", lvl, strings.Join(Levels, ", "))
	}
}
