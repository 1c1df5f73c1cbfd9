package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Level represents a log level
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of a log level
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) zap() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// ParseLevel parses a log level string
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// Logger is a leveled printf-style logger on top of zap. Output is
// discarded unless a file or writer is configured, so the TUI owns the
// terminal.
type Logger struct {
	mu    sync.Mutex
	level Level
	atom  zap.AtomicLevel
	zl    *zap.Logger
	sugar *zap.SugaredLogger
	file  *lumberjack.Logger
}

var (
	// Default is the default logger instance
	Default *Logger
)

func init() {
	Default = New()
}

// New creates a new logger based on JOIN_LOG_LEVEL and JOIN_LOG_FILE.
func New() *Logger {
	l := &Logger{
		level: LevelInfo,
		atom:  zap.NewAtomicLevelAt(zapcore.InfoLevel),
	}

	if levelStr := os.Getenv("JOIN_LOG_LEVEL"); levelStr != "" {
		if level, err := ParseLevel(levelStr); err == nil {
			l.level = level
			l.atom.SetLevel(level.zap())
		}
	}

	if logFile := os.Getenv("JOIN_LOG_FILE"); logFile != "" {
		l.setFile(logFile)
	} else {
		l.setCore(zapcore.NewCore(consoleEncoder(), zapcore.AddSync(io.Discard), l.atom))
	}

	return l
}

// Configure applies settings loaded from the config file. An empty path
// leaves the current output alone.
func (l *Logger) Configure(level, path string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	l.SetLevel(lvl)
	if path != "" {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.closeFile()
		l.setFile(path)
	}
	return nil
}

// setFile points the logger at a rotating JSON log file. Callers hold mu
// or own l exclusively.
func (l *Logger) setFile(path string) {
	l.file = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    2, // megabytes
		MaxBackups: 3,
		MaxAge:     14, // days
	}
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "time"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	l.setCore(zapcore.NewCore(zapcore.NewJSONEncoder(cfg), zapcore.AddSync(l.file), l.atom))
}

func (l *Logger) setCore(core zapcore.Core) {
	l.zl = zap.New(core)
	l.sugar = l.zl.Sugar()
}

func (l *Logger) closeFile() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// consoleEncoder renders "<time>\t[LEVEL]\tmessage" lines.
func consoleEncoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05")
	cfg.EncodeLevel = func(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString("[" + lvl.CapitalString() + "]")
	}
	cfg.CallerKey = ""
	return zapcore.NewConsoleEncoder(cfg)
}

// Close flushes the logger and closes any open file handles
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.zl.Sync()
	return l.closeFile()
}

// SetLevel sets the log level
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	l.atom.SetLevel(level.zap())
}

// SetOutput sends plain console-formatted lines to w
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closeFile()
	l.setCore(zapcore.NewCore(consoleEncoder(), zapcore.AddSync(w), l.atom))
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(LevelDebug, format, v...)
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	l.log(LevelInfo, format, v...)
}

// Warn logs a warning message
func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(LevelWarn, format, v...)
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	l.log(LevelError, format, v...)
}

func (l *Logger) log(level Level, format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	switch level {
	case LevelDebug:
		l.sugar.Debugf(format, v...)
	case LevelInfo:
		l.sugar.Infof(format, v...)
	case LevelWarn:
		l.sugar.Warnf(format, v...)
	default:
		l.sugar.Errorf(format, v...)
	}
}

// Package-level functions that use the default logger

// Debug logs a debug message using the default logger
func Debug(format string, v ...interface{}) {
	Default.Debug(format, v...)
}

// Info logs an info message using the default logger
func Info(format string, v ...interface{}) {
	Default.Info(format, v...)
}

// Warn logs a warning message using the default logger
func Warn(format string, v ...interface{}) {
	Default.Warn(format, v...)
}

// Error logs an error message using the default logger
func Error(format string, v ...interface{}) {
	Default.Error(format, v...)
}

// Close closes the default logger
func Close() error {
	return Default.Close()
}
