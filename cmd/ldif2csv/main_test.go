package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert"
)

func TestSplitNames(t *testing.T) {
	assert.Nil(t, splitNames(""))
	assert.Equal(t, []string{"mail", "dn", "foo"}, splitNames("mail,dn,foo"))
	assert.Equal(t, []string{"dn"}, splitNames("dn"))
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ldif2csv.ini")
	data := `[output]
field_sep = |
multi_sep = +

[s3]
endpoint = s3.example.com
access = AKIA
secret = shhh

[ssh]
key_path = ~/.ssh/id_ed25519
user = root
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := loadConfig(path)
	assert.NoError(t, err)
	assert.Equal(t, "|", cfg.fieldSep)
	assert.Equal(t, "+", cfg.multiSep)
	assert.Equal(t, "", cfg.quote)
	assert.Equal(t, "s3.example.com", cfg.src.S3Endpoint)
	assert.Equal(t, "AKIA", cfg.src.S3Access)
	assert.Equal(t, "shhh", cfg.src.S3Secret)
	assert.Equal(t, "~/.ssh/id_ed25519", cfg.src.SSHKeyPath)
	assert.Equal(t, "root", cfg.src.SSHUser)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.ini"))
	assert.Error(t, err)
}

func TestResolveFormatRejectsMultiChar(t *testing.T) {
	cfg := &fileConfig{fieldSep: "||"}
	_, err := resolveFormat(cfg)
	assert.Error(t, err)
}

// runs after TestResolveFormatRejectsMultiChar: flag.Set below marks
// the "f" flag as set for the rest of the process, which would make
// resolveFormat ignore config-file field separators in later tests
func TestResolveFormat(t *testing.T) {
	// config file values fill in flags the user didn't set
	cfg := &fileConfig{fieldSep: "|", multiSep: "+"}
	f, err := resolveFormat(cfg)
	assert.NoError(t, err)
	assert.Equal(t, "|", f.FieldSep)
	assert.Equal(t, "+", f.MultiSep)
	assert.Equal(t, `"`, f.Quote)

	// no config file: built-in defaults
	f, err = resolveFormat(nil)
	assert.NoError(t, err)
	assert.Equal(t, ";", f.FieldSep)
	assert.Equal(t, ",", f.MultiSep)

	// a flag set on the command line beats the config file
	assert.NoError(t, flag.Set("f", "#"))
	f, err = resolveFormat(cfg)
	assert.NoError(t, err)
	assert.Equal(t, "#", f.FieldSep)
	assert.Equal(t, "+", f.MultiSep)
}
