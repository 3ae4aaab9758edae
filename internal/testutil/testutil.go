// Package testutil holds helpers shared by the package tests: a silent logger
// and a stub of the search API.
package testutil

import (
	"log/slog"
	"time"

	"tamilwords/internal/logging"
)

// RequestTimeout bounds requests made against a StubAPI.
const RequestTimeout = 2 * time.Second

// Logger returns a logger that discards everything.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}
