// Package logging decouples the rest of the application from the logging
// backend. Production code gets a logrus-backed implementation; tests use
// the Recorder to assert on emitted warnings.
package logging

// Logger is the structured logging surface used throughout the application.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)

	// WithError returns a logger with an error field attached.
	WithError(err error) Logger

	// WithField returns a logger with a single field attached.
	WithField(key string, value interface{}) Logger

	// Fatal logs the message and exits the process with a non-zero status.
	Fatal(msg string, fields ...Field)
}

// Field is a key-value pair attached to a log message.
type Field struct {
	Key   string
	Value interface{}
}

// F is shorthand for constructing a Field at a call site.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
