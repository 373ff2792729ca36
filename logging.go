package main

import (
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// newLogger builds the process logger. Output defaults to stderr.
func newLogger(cfg Config, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:       "portfolio",
		Level:      hclog.LevelFromString(cfg.LogLevel),
		JSONFormat: cfg.LogJSON,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}
