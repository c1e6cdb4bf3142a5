package logging

import (
	"io"
	"log"
	"os"

	"ovpncc/application/logging"
)

// LogLogger implements logging.Logger over the standard log package.
type LogLogger struct {
	logger *log.Logger
}

func NewLogLogger() logging.Logger {
	return &LogLogger{logger: log.New(os.Stderr, "", log.LstdFlags)}
}

func NewLogLoggerWithWriter(w io.Writer) logging.Logger {
	return &LogLogger{logger: log.New(w, "", log.LstdFlags)}
}

func (l *LogLogger) Printf(format string, v ...any) {
	l.logger.Printf(format, v...)
}
