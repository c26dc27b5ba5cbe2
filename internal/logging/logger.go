package logging

import (
	"encoding/json"
	"io"
	"log"
	"os"
	"strings"
	"sync"
	"time"
)

type Fields map[string]interface{}

// Level orders log severities; lines below the configured level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var (
	mu       sync.RWMutex
	minLevel = LevelInfo
	logger   = log.New(os.Stderr, "", 0)
)

// ParseLevel maps a level name (debug, info, warn, error) to a Level.
// Unknown names map to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// SetLevel sets the minimum level that is written.
func SetLevel(l Level) {
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

// SetOutput redirects log lines to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	logger = log.New(w, "", 0)
	mu.Unlock()
}

func enabled(l Level) bool {
	mu.RLock()
	defer mu.RUnlock()
	return l >= minLevel
}

func output(level, msg string, fields Fields) {
	out := make(Fields, len(fields)+3)
	for k, v := range fields {
		out[k] = v
	}
	out["level"] = level
	out["ts"] = time.Now().UTC().Format(time.RFC3339)
	out["msg"] = msg
	mu.RLock()
	l := logger
	mu.RUnlock()
	b, err := json.Marshal(out)
	if err != nil {
		// fallback to plain logging
		l.Printf("%s: %s (%v)\n", level, msg, fields)
		return
	}
	l.Println(string(b))
}

// Debug logs a diagnostic message with optional fields.
func Debug(msg string, fields Fields) {
	if enabled(LevelDebug) {
		output("debug", msg, fields)
	}
}

// Info logs an informational message with optional fields.
func Info(msg string, fields Fields) {
	if enabled(LevelInfo) {
		output("info", msg, fields)
	}
}

// Warn logs a recoverable problem.
func Warn(msg string, fields Fields) {
	if enabled(LevelWarn) {
		output("warn", msg, fields)
	}
}

// Error logs an error message and includes the error text in the fields.
func Error(msg string, err error, fields Fields) {
	if !enabled(LevelError) {
		return
	}
	output("error", msg, withError(fields, err))
}

// Fatal logs a fatal error and exits the process.
func Fatal(msg string, err error, fields Fields) {
	output("fatal", msg, withError(fields, err))
	os.Exit(1)
}

func withError(fields Fields, err error) Fields {
	if err == nil {
		return fields
	}
	out := make(Fields, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["error"] = err.Error()
	return out
}
