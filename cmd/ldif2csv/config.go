package main

import (
	"github.com/go-ini/ini"

	"github.com/kjk/ldif2csv/source"
)

/*
Optional ini config file, for things that don't belong on the command
line (credentials) and for changing the default separators:

	[output]
	field_sep = ;
	multi_sep = ,
	quote = "

	[s3]
	endpoint = s3.example.com
	access = ...
	secret = ...
	region = ...

	[ssh]
	key_path = ~/.ssh/id_ed25519
	user = root
*/

type fileConfig struct {
	fieldSep string
	multiSep string
	quote    string

	src source.Config
}

func loadConfig(path string) (*fileConfig, error) {
	f, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	res := &fileConfig{}

	out := f.Section("output")
	res.fieldSep = out.Key("field_sep").String()
	res.multiSep = out.Key("multi_sep").String()
	res.quote = out.Key("quote").String()

	s3 := f.Section("s3")
	res.src.S3Endpoint = s3.Key("endpoint").String()
	res.src.S3Access = s3.Key("access").String()
	res.src.S3Secret = s3.Key("secret").String()
	res.src.S3Region = s3.Key("region").String()

	ssh := f.Section("ssh")
	res.src.SSHKeyPath = ssh.Key("key_path").String()
	res.src.SSHUser = ssh.Key("user").String()

	return res, nil
}
