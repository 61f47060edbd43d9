package main

import (
	"flag"
	"github.com/1f349/zinnia/creds"
	"github.com/spf13/afero"
)

// credentialFlags selects where the registrar API credentials come from.
// Environment variables are the default source.
type credentialFlags struct {
	keyring    bool
	keyFile    string
	secretFile string
}

func (c *credentialFlags) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.keyring, "keyring", false, "load credentials from the OS keyring")
	f.StringVar(&c.keyFile, "key-file", "", "/path/to/key.txt : load the api key from the first line of a file")
	f.StringVar(&c.secretFile, "secret-file", "", "/path/to/secret.txt : load the api secret from the first line of a file")
}

func (c *credentialFlags) load(fs afero.Fs) (creds.KeyPair, error) {
	keyLoader := creds.Loader(creds.EnvLoader{Name: creds.EnvApiKey})
	secretLoader := creds.Loader(creds.EnvLoader{Name: creds.EnvApiSecret})
	if c.keyring {
		keyLoader = creds.KeyringLoader{User: creds.KeyringApiKey}
		secretLoader = creds.KeyringLoader{User: creds.KeyringApiSecret}
	}
	if c.keyFile != "" {
		keyLoader = creds.FileLoader{Fs: fs, Path: c.keyFile}
	}
	if c.secretFile != "" {
		secretLoader = creds.FileLoader{Fs: fs, Path: c.secretFile}
	}
	return creds.LoadKeyPair(keyLoader, secretLoader)
}
