package infrastructure

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"weatherhistory.app/internal/ports"
	"weatherhistory.app/pkg/errors"
)

// FileLoggerAdapter writes one JSON object per line to a log file.
// It receives the upstream request log when WEATHER_ENABLE_LOGGING is set.
type FileLoggerAdapter struct {
	filePath string
	mutex    sync.Mutex
	file     *os.File
}

// NewFileLoggerAdapter opens logPath for appending, creating missing directories
func NewFileLoggerAdapter(logPath string) (*FileLoggerAdapter, error) {
	if logPath == "" {
		return nil, errors.NewConfigurationError("log file path cannot be empty", nil)
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, errors.NewConfigurationError("failed to create log directory", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.NewConfigurationError("failed to open log file", err)
	}

	return &FileLoggerAdapter{
		filePath: logPath,
		file:     file,
	}, nil
}

// Path returns the log file location
func (f *FileLoggerAdapter) Path() string {
	return f.filePath
}

// Debug logs a debug message to file
func (f *FileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	f.writeLogEntry("DEBUG", msg, fields)
}

// Info logs an info message to file
func (f *FileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	f.writeLogEntry("INFO", msg, fields)
}

// Warn logs a warning message to file
func (f *FileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	f.writeLogEntry("WARN", msg, fields)
}

// Error logs an error message to file
func (f *FileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	f.writeLogEntry("ERROR", msg, fields)
}

// Close flushes and closes the log file. Later writes are dropped.
func (f *FileLoggerAdapter) Close() error {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return nil
	}
	err := f.file.Close()
	f.file = nil
	return err
}

func (f *FileLoggerAdapter) writeLogEntry(level, msg string, fields []ports.Field) {
	entry := make(map[string]interface{}, len(fields)+3)
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			entry[field.Key] = err.Error()
			continue
		}
		entry[field.Key] = field.Value
	}
	entry["timestamp"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["level"] = level
	entry["message"] = msg

	line, err := json.Marshal(entry)
	if err != nil {
		line = []byte(fmt.Sprintf(`{"level":"ERROR","message":"failed to marshal log entry","error":%q}`, err.Error()))
	}

	f.mutex.Lock()
	defer f.mutex.Unlock()

	if f.file == nil {
		return
	}
	if _, err := f.file.Write(append(line, '\n')); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}
