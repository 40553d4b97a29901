package logger

import (
	"log"
	"os"
)

// Satisfies Logger interface
type stderrLogger struct {
	logger *log.Logger
}

func newStderrLogger() *stderrLogger {
	return &stderrLogger{
		logger: log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime),
	}
}

func (l *stderrLogger) log(entry *LogEntry) {
	msg := "[" + entry.Source + ": " + entry.Level + "] " + entry.Message
	if entry.Error != "" {
		msg += ": " + entry.Error
	}
	l.logger.Println(msg + entry.Meta.stringSuffix())
}

func (l *stderrLogger) Log(entry *LogEntry) {
	if !preprocess(entry, nil) {
		return
	}

	l.log(entry)

	if entry.rawLevel >= FatalLogLevel {
		handleCritical(entry)
	}
}
