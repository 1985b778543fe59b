// Package runlog is the optional run log of the converter. Parse
// warnings must not abort the run, but they also must not vanish when
// the user asked for a log, so everything goes here.
//
// The format is one size-prefixed record per event:
//
//	--- ${size} ${timestamp_in_unix_epoch_ms} ${name}\n
//	${payload}\n
//
// which makes the log greppable and safe for multi-line payloads.
package runlog

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/toon-format/toon-go"
)

var hdrPrefix = []byte("--- ")

// File is a run log backed by a file. All methods are safe to call
// on a nil receiver and do nothing, so callers don't have to guard
// every call on whether logging was requested.
type File struct {
	mu  sync.Mutex
	f   *os.File
	buf bytes.Buffer
}

// New creates a run log writing to path, appending if it exists
func New(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

func (l *File) write(name string, payload []byte) error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buf.Reset()
	l.buf.Write(hdrPrefix)
	l.buf.WriteString(strconv.Itoa(len(payload)))
	l.buf.WriteByte(' ')
	ms := time.Now().UTC().UnixMilli()
	l.buf.WriteString(strconv.FormatInt(ms, 10))
	l.buf.WriteByte(' ')
	l.buf.WriteString(name)
	l.buf.WriteByte('\n')
	l.buf.Write(payload)
	if len(payload) == 0 || payload[len(payload)-1] != '\n' {
		l.buf.WriteByte('\n')
	}
	_, err := l.f.Write(l.buf.Bytes())
	return err
}

// Logf logs a formatted message with record name "log"
func (l *File) Logf(format string, args ...any) {
	if l == nil {
		return
	}
	s := fmt.Sprintf(format, args...)
	l.write("log", []byte(s))
}

// Event logs a named event with key/value pairs, toon-encoded
func (l *File) Event(name string, keyVals ...string) {
	if l == nil {
		return
	}
	n := len(keyVals)
	m := make(map[string]string, n/2)
	for i := 0; i+1 < n; i += 2 {
		m[keyVals[i]] = keyVals[i+1]
	}
	d, err := toon.Marshal(m)
	if err != nil {
		return
	}
	l.write(name, d)
}

// Close closes the underlying file
func (l *File) Close() error {
	if l == nil || l.f == nil {
		return nil
	}
	err := l.f.Close()
	l.f = nil
	return err
}
