package u

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert"
	"github.com/klauspost/compress/zstd"
)

func writeGzipped(t *testing.T, path string, d []byte) {
	f, err := os.Create(path)
	assert.NoError(t, err)
	w := gzip.NewWriter(f)
	_, err = w.Write(d)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, f.Close())
}

func writeZstd(t *testing.T, path string, d []byte) {
	f, err := os.Create(path)
	assert.NoError(t, err)
	w, err := zstd.NewWriter(f)
	assert.NoError(t, err)
	_, err = w.Write(d)
	assert.NoError(t, err)
	assert.NoError(t, w.Close())
	assert.NoError(t, f.Close())
}

func TestOpenFileMaybeCompressed(t *testing.T) {
	dir := t.TempDir()
	content := []byte("dn: cn=a\nmail: a@x\n")

	plain := filepath.Join(dir, "export.ldif")
	assert.NoError(t, os.WriteFile(plain, content, 0644))
	gz := filepath.Join(dir, "export.ldif.gz")
	writeGzipped(t, gz, content)
	zst := filepath.Join(dir, "export.ldif.zst")
	writeZstd(t, zst, content)

	for _, path := range []string{plain, gz, zst} {
		d, err := ReadFileMaybeCompressed(path)
		assert.NoError(t, err, "path: %s", path)
		assert.Equal(t, content, d, "path: %s", path)
	}
}

func TestOpenFileMaybeCompressedMissing(t *testing.T) {
	_, err := OpenFileMaybeCompressed(filepath.Join(t.TempDir(), "nope.gz"))
	assert.Error(t, err)
}
