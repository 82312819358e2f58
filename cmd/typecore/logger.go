package main

import (
	"log"
	"os"

	"github.com/google/uuid"
)

// newRunLogger builds a stdlib *log.Logger prefixed with the run's
// session id, so interleaved engine events from separate typecore
// invocations (e.g. piped into a shared log file by a test harness)
// stay attributable.
func newRunLogger(session uuid.UUID) *log.Logger {
	return log.New(os.Stderr, "typecore["+session.String()[:8]+"] ", log.LstdFlags)
}
