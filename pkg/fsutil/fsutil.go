// Package fsutil provides small filesystem helpers for durable writes and syncing.
package fsutil

import (
	"fmt"
	"os"
)

// IsRegularFile reports whether path exists and is a regular file.
// Symlinks are followed.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Exists reports whether anything is present at path.
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// WriteAllSync writes data to f and fsyncs it. A failure part way leaves
// whatever bytes already reached f.
func WriteAllSync(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("fsync: %w", err)
	}
	return nil
}

// AppendLine opens path for append (creating it with perm if absent), writes
// line in a single write call, fsyncs and closes.
func AppendLine(path string, line []byte, perm os.FileMode) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, perm)
	if err != nil {
		return err
	}
	if err := WriteAllSync(f, line); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// FsyncDir fsyncs a directory so that entry creation or removal is durable.
func FsyncDir(dirPath string) error {
	d, err := os.Open(dirPath)
	if err != nil {
		return fmt.Errorf("fsync dir open: %w", err)
	}
	defer d.Close()
	return d.Sync()
}
