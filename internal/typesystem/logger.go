package typesystem

import "log"

// Logger accepts structured events for unify/link/level/generalize
// decisions at adjustable verbosity (spec §6 — "Logger: accepts
// structured events ... at adjustable verbosity").
type Logger interface {
	Event(kind string, fields map[string]any)
}

// NopLogger discards every event. It is the Engine default so callers
// that don't care about diagnostics pay nothing for them.
type NopLogger struct{}

// Event implements Logger.
func (NopLogger) Event(string, map[string]any) {}

// StdLogger adapts *log.Logger to the Logger interface, matching the
// teacher's own use of the standard "log" package for diagnostics
// (internal/vm/debugger.go, cmd/lsp/server.go in the teacher repo).
type StdLogger struct {
	L *log.Logger
}

// Event implements Logger.
func (s StdLogger) Event(kind string, fields map[string]any) {
	if s.L == nil {
		return
	}
	s.L.Printf("%s %v", kind, fields)
}
