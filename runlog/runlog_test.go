package runlog

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/alecthomas/assert"
)

// parses "--- ${size} ${ms} ${name}\n${payload}\n" records
func parseLog(t *testing.T, d []byte) map[string]string {
	res := map[string]string{}
	s := string(d)
	for s != "" {
		assert.True(t, strings.HasPrefix(s, "--- "), "bad header in '%s'", s)
		hdr, rest, ok := strings.Cut(s, "\n")
		assert.True(t, ok)
		parts := strings.SplitN(hdr[len("--- "):], " ", 3)
		assert.Equal(t, 3, len(parts))
		size, err := strconv.Atoi(parts[0])
		assert.NoError(t, err)
		_, err = strconv.ParseInt(parts[1], 10, 64)
		assert.NoError(t, err)
		name := parts[2]
		payload := rest[:size]
		res[name] = payload
		rest = rest[size:]
		// optional padding newline
		s = strings.TrimPrefix(rest, "\n")
	}
	return res
}

func TestRunLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, err := New(path)
	assert.NoError(t, err)

	l.Logf("skipping line %d: %s", 3, "garbage")
	l.Event("done", "records", "12", "columns", "4")
	err = l.Close()
	assert.NoError(t, err)

	d, err := os.ReadFile(path)
	assert.NoError(t, err)
	events := parseLog(t, d)
	assert.Equal(t, "skipping line 3: garbage", events["log"])
	assert.True(t, strings.Contains(events["done"], "12"))
	assert.True(t, strings.Contains(events["done"], "records"))
}

func TestNilReceiver(t *testing.T) {
	var l *File
	// all methods are no-ops on nil
	l.Logf("ignored")
	l.Event("ignored", "k", "v")
	assert.NoError(t, l.Close())
}

func TestAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.log")
	l, err := New(path)
	assert.NoError(t, err)
	l.Logf("one")
	assert.NoError(t, l.Close())

	l, err = New(path)
	assert.NoError(t, err)
	l.Logf("two")
	assert.NoError(t, l.Close())

	d, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.True(t, strings.Contains(string(d), "one"))
	assert.True(t, strings.Contains(string(d), "two"))
}
