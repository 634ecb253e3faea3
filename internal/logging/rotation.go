package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// RotationConfig controls size-based rotation of the claudepane log file.
type RotationConfig struct {
	// MaxSizeMB is the maximum size of the log file in megabytes before
	// rotation. A value of 0 disables rotation.
	MaxSizeMB int
	// MaxBackups is the number of rotated log files to keep.
	// A value of 0 keeps no backups.
	MaxBackups int
}

// DefaultRotationConfig returns a RotationConfig with sensible defaults.
func DefaultRotationConfig() RotationConfig {
	return RotationConfig{
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}

// RotatingWriter is an io.WriteCloser that rotates the underlying file once
// it exceeds the configured size. Rotated files are renamed to
// {path}.1 .. {path}.{MaxBackups}, oldest last. It is safe for concurrent use.
type RotatingWriter struct {
	mu sync.Mutex

	path       string
	maxSize    int64 // bytes; 0 disables rotation
	maxBackups int

	file *os.File
	size int64
}

// NewRotatingWriter opens (creating if needed) the log file at path.
func NewRotatingWriter(path string, cfg RotationConfig) (*RotatingWriter, error) {
	rw := &RotatingWriter{
		path:       path,
		maxSize:    int64(cfg.MaxSizeMB) * 1024 * 1024,
		maxBackups: cfg.MaxBackups,
	}
	if err := rw.open(); err != nil {
		return nil, err
	}
	return rw, nil
}

// open opens the log file for appending and records its current size.
// The caller must hold the mutex (or be the constructor).
func (rw *RotatingWriter) open() error {
	if err := os.MkdirAll(filepath.Dir(rw.path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(rw.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return fmt.Errorf("failed to stat log file: %w", err)
	}

	rw.file = file
	rw.size = info.Size()
	return nil
}

// Write appends p to the log file, rotating first if the write would push
// the file past the size limit.
func (rw *RotatingWriter) Write(p []byte) (int, error) {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.maxSize > 0 && rw.size+int64(len(p)) > rw.maxSize {
		if err := rw.rotate(); err != nil {
			return 0, err
		}
	}

	n, err := rw.file.Write(p)
	rw.size += int64(n)
	return n, err
}

// rotate shifts backups up by one and reopens a fresh log file.
// The caller must hold the mutex.
func (rw *RotatingWriter) rotate() error {
	if err := rw.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file for rotation: %w", err)
	}

	if rw.maxBackups > 0 {
		// Shift existing backups: .2 -> .3, .1 -> .2, etc.
		for i := rw.maxBackups - 1; i >= 1; i-- {
			src := fmt.Sprintf("%s.%d", rw.path, i)
			dst := fmt.Sprintf("%s.%d", rw.path, i+1)
			if _, err := os.Stat(src); err == nil {
				_ = os.Rename(src, dst)
			}
		}
		if err := os.Rename(rw.path, rw.path+".1"); err != nil {
			return fmt.Errorf("failed to rotate log file: %w", err)
		}
	} else {
		if err := os.Remove(rw.path); err != nil {
			return fmt.Errorf("failed to truncate log file: %w", err)
		}
	}

	return rw.open()
}

// Close closes the underlying log file.
func (rw *RotatingWriter) Close() error {
	rw.mu.Lock()
	defer rw.mu.Unlock()

	if rw.file == nil {
		return nil
	}
	err := rw.file.Close()
	rw.file = nil
	return err
}
