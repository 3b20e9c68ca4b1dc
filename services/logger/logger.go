package logger

import "log"

// Level defines the log levels
type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	ErrorLevel
)

// Logger interface defines the logging methods
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
	Debug(format string, v ...interface{})
}

// DefaultLogger implements Logger on top of the log package
type DefaultLogger struct {
	level Level
}

// NewDefaultLogger creates a new DefaultLogger instance
func NewDefaultLogger(level Level) *DefaultLogger {
	return &DefaultLogger{
		level: level,
	}
}

// Info logs informational messages
func (l *DefaultLogger) Info(format string, v ...interface{}) {
	if l.level <= InfoLevel {
		log.Printf("[INFO] "+format, v...)
	}
}

// Error logs errors
func (l *DefaultLogger) Error(format string, v ...interface{}) {
	if l.level <= ErrorLevel {
		log.Printf("[ERROR] "+format, v...)
	}
}

// Debug logs debug messages
func (l *DefaultLogger) Debug(format string, v ...interface{}) {
	if l.level <= DebugLevel {
		log.Printf("[DEBUG] "+format, v...)
	}
}
