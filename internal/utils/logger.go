package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

type GeneratorLogger struct {
	file       *os.File
	logger     *log.Logger
	multiWrite io.Writer
}

func NewGeneratorLogger(siteName string) (*GeneratorLogger, error) {
	// Sanitize site name for file system
	sanitizedSite := strings.ReplaceAll(strings.ToLower(siteName), " ", "_")

	// Create logs directory if it doesn't exist
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Create site directory inside logs
	siteDir := filepath.Join(logsDir, sanitizedSite)
	if err := os.MkdirAll(siteDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create site directory: %w", err)
	}

	// Create log file with timestamp
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logPath := filepath.Join(siteDir, fmt.Sprintf("generate_%s_%s.log", sanitizedSite, timestamp))

	file, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	// Create multi-writer for both file and stdout
	multiWrite := io.MultiWriter(os.Stdout, file)
	logger := log.New(multiWrite, "", log.Ldate|log.Ltime|log.Lmicroseconds)

	return &GeneratorLogger{
		file:       file,
		logger:     logger,
		multiWrite: multiWrite,
	}, nil
}

func (gl *GeneratorLogger) LogInfo(format string, v ...interface{}) {
	gl.log("INFO", format, v...)
}

func (gl *GeneratorLogger) LogError(format string, v ...interface{}) {
	gl.log("ERROR", format, v...)
}

func (gl *GeneratorLogger) LogDebug(format string, v ...interface{}) {
	gl.log("DEBUG", format, v...)
}

func (gl *GeneratorLogger) log(level string, format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	gl.logger.Printf("[%s] %s", level, message)
}

func (gl *GeneratorLogger) Close() error {
	return gl.file.Close()
}
