package bloom

import (
	"log"
)

// Logger consumes diagnostic messages from the sharded coordinator.
type Logger func(v ...interface{})

// StdLogger adapts a standard library logger. A nil argument falls back
// to log.Default.
func StdLogger(logger *log.Logger) Logger {
	if logger == nil {
		logger = log.Default()
	}
	return func(v ...interface{}) {
		logger.Println(v...)
	}
}
