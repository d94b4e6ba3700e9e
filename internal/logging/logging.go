package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the global slog instance for the application
var Logger *slog.Logger

// Init initializes the logging system, writing logs to ~/.bulletin/logs/bulletin.log
// Uses text format for human readability. The returned closer releases the file.
func Init() (io.Closer, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return InitAt(filepath.Join(homeDir, ".bulletin", "logs"))
}

// InitAt is Init with an explicit log directory
func InitAt(logDir string) (io.Closer, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, err
	}

	// Open log file in append mode
	logPath := filepath.Join(logDir, "bulletin.log")
	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	handler := slog.NewTextHandler(file, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})

	Logger = slog.New(handler)
	slog.SetDefault(Logger)

	// The terminal belongs to the TUI, so the standard logger goes to the file too
	log.SetOutput(file)
	log.SetFlags(log.LstdFlags)

	return file, nil
}
