package ai

import "sync/atomic"

// debugLoggingEnabled controls per-frame debug logging of the AI subsystem.
// Set via EnableDebugLogging() during initialization based on config log_level.
var debugLoggingEnabled atomic.Bool

// EnableDebugLogging enables or disables debug logging for AI subsystem.
// Called from main after the log level is known.
func EnableDebugLogging(enabled bool) {
	debugLoggingEnabled.Store(enabled)
}

// IsDebugEnabled returns true if debug logging is enabled.
//
//	if ai.IsDebugEnabled() {
//	    slog.Debug("target selected", "target", t.ObjectID())
//	}
func IsDebugEnabled() bool {
	return debugLoggingEnabled.Load()
}
