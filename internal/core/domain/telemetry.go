package domain

// PassStatus represents the outcome of a compilation pass.
type PassStatus string

const (
	// PassStatusPending indicates the pass is planned but has not run yet.
	PassStatusPending PassStatus = "pending"
	// PassStatusRunning indicates the pass is currently executing.
	PassStatusRunning PassStatus = "running"
	// PassStatusCompleted indicates the compiler produced output.
	PassStatusCompleted PassStatus = "completed"
	// PassStatusFailed indicates the pass failed.
	PassStatusFailed PassStatus = "failed"
	// PassStatusUpToDate indicates every selected unit was already compiled.
	PassStatusUpToDate PassStatus = "up-to-date"
	// PassStatusNoSource indicates the pass found nothing to compile.
	PassStatusNoSource PassStatus = "no-source"
)

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Status derives the pass status from a compile result.
func (r CompileResult) Status() PassStatus {
	switch {
	case r.NoSource:
		return PassStatusNoSource
	case r.UpToDate:
		return PassStatusUpToDate
	default:
		return PassStatusCompleted
	}
}
