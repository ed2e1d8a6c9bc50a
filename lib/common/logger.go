// Package common provides logging utilities shared by the application packages.
package common

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// --------------------------------------------------------------------------
// Log Levels
// --------------------------------------------------------------------------

type LogLevel int

const (
	ERROR LogLevel = iota
	WARNING
	INFO
	DEBUG
)

// ParseLogLevel converts a string level to a LogLevel
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return DEBUG, nil
	case "info":
		return INFO, nil
	case "warning", "warn":
		return WARNING, nil
	case "error":
		return ERROR, nil
	default:
		return INFO, fmt.Errorf("invalid log level: %s. must be one of debug, info, warn, error", level)
	}
}

// --------------------------------------------------------------------------
// Custom Logger
// --------------------------------------------------------------------------

// Logger is a named, leveled logger with custom formatting
type Logger struct {
	name   string
	level  LogLevel
	logger *log.Logger
}

func (l *Logger) SetLevel(level LogLevel) {
	l.level = level
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.level >= DEBUG {
		l.log("DEBUG", format, args...)
	}
}

func (l *Logger) Infof(format string, args ...interface{}) {
	if l.level >= INFO {
		l.log("INFO", format, args...)
	}
}

func (l *Logger) Warningf(format string, args ...interface{}) {
	if l.level >= WARNING {
		l.log("WARN", format, args...)
	}
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	if l.level >= ERROR {
		l.log("ERROR", format, args...)
	}
}

// log formats and writes a log message. this internal helper is used by the public methods
func (l *Logger) log(levelStr string, format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	l.logger.Printf("%-5s | %-15s | %s", levelStr, l.name, message)
}

// --------------------------------------------------------------------------
// Logger Registry
// --------------------------------------------------------------------------

var (
	registryMu   sync.Mutex
	registry     = map[string]*Logger{}
	defaultLevel = INFO
)

// GetLogger returns the named logger, creating it on first use.
// Loggers are singletons per name so levels set during initialization apply
// everywhere.
func GetLogger(pkgName string) *Logger {
	registryMu.Lock()
	defer registryMu.Unlock()

	if l, ok := registry[pkgName]; ok {
		return l
	}

	// Create standard logger with custom flags
	stdLogger := log.New(os.Stderr, "", log.Ldate|log.Ltime)

	l := &Logger{
		name:   pkgName,
		level:  defaultLevel,
		logger: stdLogger,
	}
	registry[pkgName] = l
	return l
}

// SetLevelAll sets the level of every registered and future logger
func SetLevelAll(level LogLevel) {
	registryMu.Lock()
	defer registryMu.Unlock()

	defaultLevel = level
	for _, l := range registry {
		l.level = level
	}
}
