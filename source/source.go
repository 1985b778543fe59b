// Package source resolves the input location of an LDIF export into
// an open reader. Plain files (possibly compressed) are the common
// case; http(s), s3 and sftp locations cover pulling exports straight
// off the server they were made on.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/carlmjohnson/requests"
	"github.com/melbahja/goph"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/sftp"

	"github.com/kjk/ldif2csv/u"
)

// Config carries credentials for remote sources. Only needed for
// s3:// and sftp:// locations.
type Config struct {
	S3Endpoint string
	S3Access   string
	S3Secret   string
	S3Region   string

	// path to the ssh private key, "~" is expanded
	SSHKeyPath string
	// fallback when the sftp url has no user part
	SSHUser string
}

// Open opens location loc for reading. Supported:
//   - "-" for stdin
//   - a file path, decompressed when the extension says .gz/.bz2/.zst/.br
//   - http:// and https:// urls
//   - s3://bucket/key (credentials from Config)
//   - sftp://user@host/path (private key from Config)
func Open(ctx context.Context, loc string, cfg *Config) (io.ReadCloser, error) {
	switch {
	case loc == "-":
		return io.NopCloser(os.Stdin), nil
	case strings.HasPrefix(loc, "http://"), strings.HasPrefix(loc, "https://"):
		return openHTTP(ctx, loc)
	case strings.HasPrefix(loc, "s3://"):
		return openS3(ctx, loc, cfg)
	case strings.HasPrefix(loc, "sftp://"):
		return openSFTP(loc, cfg)
	}
	return u.OpenFileMaybeCompressed(loc)
}

func openHTTP(ctx context.Context, uri string) (io.ReadCloser, error) {
	var buf bytes.Buffer
	err := requests.
		URL(uri).
		ToWriter(&buf).
		Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching '%s' failed: %w", uri, err)
	}
	return io.NopCloser(&buf), nil
}

// FetchValue resolves a "name:< url" LDIF value reference.
// file:// paths are read locally, http(s) is fetched.
func FetchValue(ctx context.Context, uri string) (string, error) {
	if path, ok := strings.CutPrefix(uri, "file://"); ok {
		d, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		var s string
		err := requests.
			URL(uri).
			ToString(&s).
			Fetch(ctx)
		return s, err
	}
	return "", fmt.Errorf("unsupported url scheme in '%s'", uri)
}

func openS3(ctx context.Context, loc string, cfg *Config) (io.ReadCloser, error) {
	if cfg == nil || cfg.S3Access == "" || cfg.S3Secret == "" || cfg.S3Endpoint == "" {
		return nil, fmt.Errorf("s3 source '%s' needs endpoint, access and secret in the config file", loc)
	}
	rest := strings.TrimPrefix(loc, "s3://")
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 location '%s', expected s3://bucket/key", loc)
	}
	mc, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.S3Access, cfg.S3Secret, ""),
		Region: cfg.S3Region,
		Secure: true,
	})
	if err != nil {
		return nil, err
	}
	obj, err := mc.GetObject(ctx, bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// closes the sftp file, the sftp session and the ssh connection,
// in that order
type sftpFile struct {
	f      *sftp.File
	ftp    *sftp.Client
	client *goph.Client
}

func (s *sftpFile) Read(p []byte) (int, error) {
	return s.f.Read(p)
}

func (s *sftpFile) Close() error {
	err := s.f.Close()
	s.ftp.Close()
	s.client.Close()
	return err
}

func openSFTP(loc string, cfg *Config) (io.ReadCloser, error) {
	uri, err := url.Parse(loc)
	if err != nil {
		return nil, fmt.Errorf("invalid sftp location '%s': %w", loc, err)
	}
	user := uri.User.Username()
	if user == "" && cfg != nil {
		user = cfg.SSHUser
	}
	if user == "" || uri.Hostname() == "" || uri.Path == "" {
		return nil, fmt.Errorf("invalid sftp location '%s', expected sftp://user@host/path", loc)
	}
	keyPath := "~/.ssh/id_rsa"
	if cfg != nil && cfg.SSHKeyPath != "" {
		keyPath = cfg.SSHKeyPath
	}
	keyPath = u.ExpandTildeInPath(keyPath)
	if !u.FileExists(keyPath) {
		return nil, fmt.Errorf("ssh key '%s' doesn't exist", keyPath)
	}
	auth, err := goph.Key(keyPath, "")
	if err != nil {
		return nil, err
	}
	client, err := goph.New(user, uri.Hostname(), auth)
	if err != nil {
		return nil, err
	}
	ftp, err := client.NewSftp()
	if err != nil {
		client.Close()
		return nil, err
	}
	f, err := ftp.Open(uri.Path)
	if err != nil {
		ftp.Close()
		client.Close()
		return nil, err
	}
	return &sftpFile{
		f:      f,
		ftp:    ftp,
		client: client,
	}, nil
}
