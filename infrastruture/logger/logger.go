// Package logger writes colour-tagged log lines for one component.
package logger

import (
	"errors"
	"io"
	"log"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	infoColor    = "\033[32m"
	warningColor = "\033[33m"
	errorColor   = "\033[31m"
	colorReset   = "\033[0m"
)

// ErrNilWriter is returned when a logger is created without an output.
var ErrNilWriter = errors.New("log writer is nil")

// Logger prefixes every line with a coloured component name and a level tag.
// Implements i.Logger.
type Logger struct {
	prefix string
	color  string
	out    *log.Logger
}

// New creates a logger for the component named prefix, written to w.
func New(prefix, color string, w io.Writer) (*Logger, error) {
	if w == nil {
		return nil, ErrNilWriter
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    log.New(w, "", log.LstdFlags),
	}, nil
}

// FileConfig describes a rotating log file.
type FileConfig struct {
	Path       string // File to write, rotated in place
	MaxSizeMB  int    // Size at which the file is rotated
	MaxBackups int    // Rotated files to keep
	MaxAgeDays int    // Days to keep rotated files
}

// NewRotatingFile opens a log file that lumberjack rotates by size and age.
// Several loggers may share it.
func NewRotatingFile(fc FileConfig) (io.WriteCloser, error) {
	if fc.Path == "" {
		return nil, errors.New("log file path is empty")
	}

	return &lumberjack.Logger{
		Filename:   fc.Path,
		MaxSize:    fc.MaxSizeMB,
		MaxBackups: fc.MaxBackups,
		MaxAge:     fc.MaxAgeDays,
		Compress:   true,
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.write(infoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.write(warningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.write(errorColor, "ERROR", msg)
}

func (l *Logger) write(levelColor, level, msg string) {
	l.out.Printf("%s[%s]%s %s[%s]%s %s", l.color, l.prefix, colorReset, levelColor, level, colorReset, msg)
}
