package logger

import (
	"log"
	"os"
)

type Level int

const (
	DebugLevel Level = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

// Logger is the minimal leveled interface the services take.
type Logger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

type defaultLogger struct {
	level Level
	std   *log.Logger
}

func NewDefaultLogger(level Level) Logger {
	return &defaultLogger{
		level: level,
		std:   log.New(os.Stdout, "", log.LstdFlags),
	}
}

func (l *defaultLogger) logf(level Level, prefix, format string, args ...interface{}) {
	if level < l.level {
		return
	}
	l.std.Printf(prefix+format, args...)
}

func (l *defaultLogger) Debugf(format string, args ...interface{}) {
	l.logf(DebugLevel, "[DEBUG] ", format, args...)
}

func (l *defaultLogger) Infof(format string, args ...interface{}) {
	l.logf(InfoLevel, "[INFO] ", format, args...)
}

func (l *defaultLogger) Warnf(format string, args ...interface{}) {
	l.logf(WarnLevel, "[WARN] ", format, args...)
}

func (l *defaultLogger) Errorf(format string, args ...interface{}) {
	l.logf(ErrorLevel, "[ERROR] ", format, args...)
}
