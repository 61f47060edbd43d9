package creds

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/spf13/afero"
	"github.com/zalando/go-keyring"
	"os"
	"strings"
)

const (
	// KeyringService is the service name used in the OS keyring
	KeyringService = "zinnia"

	KeyringApiKey    = "api-key"
	KeyringApiSecret = "api-secret"

	EnvApiKey    = "GODADDY_API_KEY"
	EnvApiSecret = "GODADDY_API_SECRET"
)

var ErrEmptyCredential = errors.New("empty credential")

// Loader resolves a single credential value from some backing store.
type Loader interface {
	Load() (string, error)
}

// KeyPair holds the registrar API key and secret.
type KeyPair struct {
	Key    string
	Secret string
}

// LoadKeyPair resolves both halves of the API credentials, failing on the
// first loader error or empty value.
func LoadKeyPair(key, secret Loader) (KeyPair, error) {
	k, err := key.Load()
	if err != nil {
		return KeyPair{}, fmt.Errorf("load api key: %w", err)
	}
	s, err := secret.Load()
	if err != nil {
		return KeyPair{}, fmt.Errorf("load api secret: %w", err)
	}
	return KeyPair{Key: k, Secret: s}, nil
}

// EnvLoader reads a credential from the named environment variable.
type EnvLoader struct {
	Name string
}

func (e EnvLoader) Load() (string, error) {
	v := os.Getenv(e.Name)
	if v == "" {
		return "", fmt.Errorf("%w: environment variable %s is not set", ErrEmptyCredential, e.Name)
	}
	return v, nil
}

// FileLoader reads a credential from the first line of a file.
type FileLoader struct {
	Fs   afero.Fs
	Path string
}

func (f FileLoader) Load() (string, error) {
	open, err := f.Fs.Open(f.Path)
	if err != nil {
		return "", err
	}
	defer open.Close()
	sc := bufio.NewScanner(open)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: %s is empty", ErrEmptyCredential, f.Path)
	}
	v := strings.TrimSpace(sc.Text())
	if v == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrEmptyCredential, f.Path)
	}
	return v, nil
}

// KeyringLoader reads a credential stored in the OS keyring under the
// zinnia service.
type KeyringLoader struct {
	User string
}

func (k KeyringLoader) Load() (string, error) {
	v, err := keyring.Get(KeyringService, k.User)
	if err != nil {
		return "", fmt.Errorf("keyring %s/%s: %w", KeyringService, k.User, err)
	}
	if v == "" {
		return "", fmt.Errorf("%w: keyring %s/%s", ErrEmptyCredential, KeyringService, k.User)
	}
	return v, nil
}

// Store writes a credential into the OS keyring.
func Store(user, value string) error {
	if value == "" {
		return ErrEmptyCredential
	}
	return keyring.Set(KeyringService, user, value)
}

// Clear removes a credential from the OS keyring.
func Clear(user string) error {
	return keyring.Delete(KeyringService, user)
}
