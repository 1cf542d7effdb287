package supersede

import "log"

// Logger receives debug output from schedulers and controllers. Task results
// and errors are never logged.
type Logger interface {
	Printf(string, ...any)
}

// LoggerFunc adapts a printf-style function to Logger.
type LoggerFunc func(string, ...any)

func (f LoggerFunc) Printf(msg string, args ...any) { f(msg, args...) }

// defaultLogger writes nothing.
var defaultLogger = LoggerFunc(func(string, ...any) {})

// StdLogger writes to the standard library logger.
var StdLogger = LoggerFunc(log.Printf)
