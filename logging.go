package main

import (
	"fmt"
	"io"
	"log"
	"os"
)

// setupLogging configures the standard logger and opens -log, if given.
// Output stays on stderr; logOutput picks the final destination once the
// frontend is open.
func setupLogging(cfg *Config) (*os.File, error) {
	log.SetPrefix("retro-snake: ")
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	if cfg.LogFile == "" {
		return nil, nil
	}
	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// logOutput returns where logs go while the game runs. The terminal
// frontend draws over stdout and stderr, so without a log file its logs
// are dropped.
func logOutput(frontend string, file *os.File) io.Writer {
	if file != nil {
		return file
	}
	if frontend == frontendTerminal {
		return io.Discard
	}
	return os.Stderr
}
