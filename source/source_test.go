package source

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert"
)

func TestOpenLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.ldif")
	content := "dn: cn=a\n"
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rc, err := Open(context.Background(), path, nil)
	assert.NoError(t, err)
	d, err := io.ReadAll(rc)
	assert.NoError(t, err)
	assert.NoError(t, rc.Close())
	assert.Equal(t, content, string(d))
}

func TestOpenStdin(t *testing.T) {
	rc, err := Open(context.Background(), "-", nil)
	assert.NoError(t, err)
	assert.NoError(t, rc.Close())
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "nope.ldif"), nil)
	assert.Error(t, err)
}

func TestOpenS3NeedsConfig(t *testing.T) {
	ctx := context.Background()
	_, err := Open(ctx, "s3://bucket/key", nil)
	assert.Error(t, err)
	_, err = Open(ctx, "s3://bucket/key", &Config{S3Endpoint: "s3.example.com"})
	assert.Error(t, err)
}

func TestOpenS3BadLocation(t *testing.T) {
	cfg := &Config{
		S3Endpoint: "s3.example.com",
		S3Access:   "a",
		S3Secret:   "s",
	}
	_, err := Open(context.Background(), "s3://bucketonly", cfg)
	assert.Error(t, err)
}

func TestOpenSFTPBadLocation(t *testing.T) {
	// no user, no config fallback
	_, err := Open(context.Background(), "sftp://host/path", nil)
	assert.Error(t, err)
	// missing key file
	_, err = Open(context.Background(), "sftp://root@host/path", &Config{
		SSHKeyPath: filepath.Join(t.TempDir(), "no-such-key"),
	})
	assert.Error(t, err)
}

func TestFetchValueFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "val.txt")
	assert.NoError(t, os.WriteFile(path, []byte("hello"), 0644))
	v, err := FetchValue(context.Background(), "file://"+path)
	assert.NoError(t, err)
	assert.Equal(t, "hello", v)
}

func TestFetchValueUnsupportedScheme(t *testing.T) {
	_, err := FetchValue(context.Background(), "gopher://x")
	assert.Error(t, err)
}
