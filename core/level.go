package core

// Level represents the severity level of a log entry
type Level int8

const (
	// DebugLevel is used for stack trace blocks emitted by decorators
	DebugLevel Level = iota
	// InfoLevel is the default for start and end decorators
	InfoLevel
	// WarnLevel for warning messages
	WarnLevel
	// ErrorLevel is the default for error decorators
	ErrorLevel
	// FatalLevel for fatal messages
	FatalLevel
	// PanicLevel for panic messages
	PanicLevel
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	case FatalLevel:
		return "FATAL"
	case PanicLevel:
		return "PANIC"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether l is one of the declared levels.
func (l Level) Valid() bool {
	return l >= DebugLevel && l <= PanicLevel
}
