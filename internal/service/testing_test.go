package service

import (
	"io"

	"github.com/rs/zerolog"
)

// newTestLogger is a logger shared across this package's tests that
// discards output instead of writing to stderr during a run.
func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}
