package ldif

import (
	"bufio"
	"encoding/base64"
	"errors"
	"io"
	"strings"
)

// ErrInvalidBase64 marks a "name:: value" line whose value doesn't
// decode. It's reported via Options.Warnf, never returned from
// ReadNextRecord, so one bad value doesn't kill the whole stream.
var ErrInvalidBase64 = errors.New("invalid base64 encoding")

// Options configure optional Reader behavior. The zero value is valid.
type Options struct {
	// Warnf, if set, is called for recoverable anomalies (bad base64,
	// lines without a colon, url refs that can't be resolved)
	Warnf func(format string, args ...any)

	// FetchValue resolves "name:< url" value references. If nil,
	// such values become empty strings (with a warning)
	FetchValue func(url string) (string, error)

	// MaxRecords limits how many records are read, 0 means no limit
	MaxRecords int

	// IgnoreAttrs are attribute names to drop while parsing,
	// compared case-insensitively
	IgnoreAttrs []string
}

// Reader reads (parses) LDIF records from a bufio.Reader
type Reader struct {
	r    *bufio.Reader
	opts Options

	ignored map[string]bool

	// Record is available after ReadNextRecord().
	// A new Record is allocated for each read so it's safe to retain.
	Record *Record

	// RecordsRead counts records returned so far
	RecordsRead int

	// one physical line of look-ahead, needed for unfolding
	peeked  string
	hasPeek bool

	err  error
	done bool
}

// NewReader creates a new reader
func NewReader(r *bufio.Reader) *Reader {
	return NewReaderOptions(r, Options{})
}

// NewReaderOptions creates a new reader with options
func NewReaderOptions(r *bufio.Reader, opts Options) *Reader {
	res := &Reader{
		r:    r,
		opts: opts,
	}
	if len(opts.IgnoreAttrs) > 0 {
		res.ignored = map[string]bool{}
		for _, name := range opts.IgnoreAttrs {
			res.ignored[strings.ToLower(name)] = true
		}
	}
	return res
}

// Done returns true if we're finished reading from the reader
func (r *Reader) Done() bool {
	return r.err != nil || r.done
}

// Err returns error from last read. io.EOF is swallowed, it just
// means the stream ended
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) warnf(format string, args ...any) {
	if r.opts.Warnf != nil {
		r.opts.Warnf(format, args...)
	}
}

// readRaw reads one physical line, without the line ending.
// Tolerates both "\n" and "\r\n" and a missing newline on the
// last line of the stream.
func (r *Reader) readRaw() (string, bool) {
	if r.done {
		return "", false
	}
	s, err := r.r.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			r.err = err
			r.done = true
			return "", false
		}
		r.done = true
		if s == "" {
			return "", false
		}
	}
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, true
}

func (r *Reader) readPhysical() (string, bool) {
	if r.hasPeek {
		r.hasPeek = false
		return r.peeked, true
	}
	return r.readRaw()
}

func (r *Reader) peekPhysical() (string, bool) {
	if !r.hasPeek {
		s, ok := r.readRaw()
		if !ok {
			return "", false
		}
		r.peeked = s
		r.hasPeek = true
	}
	return r.peeked, true
}

// nextLogicalLine reads one logical line, unfolding continuations.
// A physical line starting with a space or tab continues the previous
// line; the marker is stripped and the rest appended with no separator.
func (r *Reader) nextLogicalLine() (string, bool) {
	line, ok := r.readPhysical()
	if !ok {
		return "", false
	}
	for {
		next, ok := r.peekPhysical()
		if !ok || next == "" || (next[0] != ' ' && next[0] != '\t') {
			return line, true
		}
		r.hasPeek = false
		line += next[1:]
	}
}

// parseAttrLine splits "name: value", "name:: base64" or "name:< url".
// Returns ok=false for lines that don't contribute a value.
func (r *Reader) parseAttrLine(line string) (name string, value string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx == -1 {
		r.warnf("skipping line without ':': '%s'", line)
		return "", "", false
	}
	name = line[:idx]
	rest := line[idx+1:]

	if strings.HasPrefix(rest, ":") {
		// base64-encoded value
		enc := strings.TrimLeft(rest[1:], " ")
		d, err := base64.StdEncoding.DecodeString(enc)
		if err != nil {
			r.warnf("%s: attribute '%s': %s", ErrInvalidBase64, name, err)
			return name, "", true
		}
		return name, string(d), true
	}

	if strings.HasPrefix(rest, "<") {
		// value by url reference (RFC 2849)
		url := strings.TrimSpace(rest[1:])
		if r.opts.FetchValue == nil {
			r.warnf("attribute '%s': url value '%s' skipped, fetching not enabled", name, url)
			return name, "", true
		}
		v, err := r.opts.FetchValue(url)
		if err != nil {
			r.warnf("attribute '%s': fetching '%s' failed: %s", name, url, err)
			return name, "", true
		}
		return name, v, true
	}

	// exactly one leading space after the colon is part of the syntax
	value = strings.TrimPrefix(rest, " ")
	return name, value, true
}

// ReadNextRecord reads the next record. Returns false when there are
// no more records. Check Err() for errors.
// After reading, the record is in Record.
func (r *Reader) ReadNextRecord() bool {
	if r.Done() {
		return false
	}
	if r.opts.MaxRecords > 0 && r.RecordsRead >= r.opts.MaxRecords {
		r.done = true
		return false
	}

	rec := &Record{}
	for {
		line, ok := r.nextLogicalLine()
		if !ok {
			// end of stream flushes a pending record
			break
		}
		if line == "" {
			if rec.Empty() {
				// stray blank lines between records
				continue
			}
			break
		}
		if line[0] == '#' {
			// comments, folded continuations were already merged in
			continue
		}
		name, value, ok := r.parseAttrLine(line)
		if !ok {
			continue
		}
		if r.ignored[strings.ToLower(name)] {
			continue
		}
		rec.Add(name, value)
	}

	if rec.Empty() {
		return false
	}
	r.Record = rec
	r.RecordsRead++
	return true
}

// ReadAll parses all records into memory. This is what the cli uses:
// column auto-discovery needs a full pass over the records before
// any output is written, and holding them in a slice avoids requiring
// a re-readable source.
func ReadAll(rd io.Reader, opts Options) ([]*Record, error) {
	r := NewReaderOptions(bufio.NewReader(rd), opts)
	var recs []*Record
	for r.ReadNextRecord() {
		recs = append(recs, r.Record)
	}
	return recs, r.Err()
}
