// Package atomicfile writes a file atomically: data goes to a temp
// file in the destination directory which is renamed over the
// destination on Close. A conversion that dies half-way never leaves
// a truncated output file behind.
package atomicfile

import (
	"errors"
	"io"
	"os"
	"path/filepath"
)

// ErrCancelled is returned by calls made after Cancel()
var ErrCancelled = errors.New("cancelled")

var _ io.WriteCloser = &File{}

// File writes to a destination path atomically
type File struct {
	dstPath string
	tmpPath string
	tmpFile *os.File
	err     error
}

// New creates a File that will write to path on Close
func New(path string) (*File, error) {
	dir, name := filepath.Split(path)
	dir, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, &os.PathError{Op: "open", Path: path, Err: os.ErrInvalid}
	}
	tmpFile, err := os.CreateTemp(dir, name)
	if err != nil {
		return nil, err
	}
	return &File{
		dstPath: path,
		tmpPath: tmpFile.Name(),
		tmpFile: tmpFile,
	}, nil
}

// Write writes data to the temp file. After the first error all
// subsequent calls return that error.
func (f *File) Write(d []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	n, err := f.tmpFile.Write(d)
	if err != nil {
		f.err = err
		_ = f.Close()
	}
	return n, err
}

// Cancel removes the temp file without creating the destination.
// Safe to call via defer, a no-op after Close.
func (f *File) Cancel() {
	if f == nil || f.tmpFile == nil {
		return
	}
	f.err = ErrCancelled
	_ = f.Close()
}

// Close finalizes the write. On success the temp file replaces the
// destination; on any earlier error the temp file is removed and the
// destination untouched. Can be called multiple times.
func (f *File) Close() error {
	if f.tmpFile == nil {
		return f.err
	}
	tmpFile := f.tmpFile
	f.tmpFile = nil

	// https://www.joeshaw.org/dont-defer-close-on-writable-files/
	errSync := tmpFile.Sync()
	errClose := tmpFile.Close()

	err := f.err
	if err == nil {
		err = errSync
	}
	if err == nil {
		err = errClose
	}
	if err == nil {
		err = os.Rename(f.tmpPath, f.dstPath)
		if err == nil {
			return nil
		}
	}
	// remember the first error, delete the temp file
	if f.err == nil {
		f.err = err
	}
	_ = os.Remove(f.tmpPath)
	return f.err
}
