package creds

import (
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/zalando/go-keyring"
	"testing"
)

type staticLoader string

func (s staticLoader) Load() (string, error) {
	if s == "" {
		return "", ErrEmptyCredential
	}
	return string(s), nil
}

func TestLoadKeyPair(t *testing.T) {
	pair, err := LoadKeyPair(staticLoader("test-key"), staticLoader("test-secret"))
	assert.NoError(t, err)
	assert.Equal(t, KeyPair{Key: "test-key", Secret: "test-secret"}, pair)

	_, err = LoadKeyPair(staticLoader(""), staticLoader("test-secret"))
	assert.ErrorIs(t, err, ErrEmptyCredential)

	_, err = LoadKeyPair(staticLoader("test-key"), staticLoader(""))
	assert.ErrorIs(t, err, ErrEmptyCredential)
}

func TestEnvLoader(t *testing.T) {
	t.Setenv(EnvApiKey, "abc123")
	v, err := EnvLoader{Name: EnvApiKey}.Load()
	assert.NoError(t, err)
	assert.Equal(t, "abc123", v)

	t.Setenv(EnvApiSecret, "")
	_, err = EnvLoader{Name: EnvApiSecret}.Load()
	assert.ErrorIs(t, err, ErrEmptyCredential)
}

func TestFileLoader(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "key.txt", []byte("abc123\nignored\n"), 0600))
	assert.NoError(t, afero.WriteFile(fs, "spaced.txt", []byte("  abc123  \n"), 0600))
	assert.NoError(t, afero.WriteFile(fs, "empty.txt", []byte(""), 0600))
	assert.NoError(t, afero.WriteFile(fs, "blank.txt", []byte("   \nabc\n"), 0600))

	v, err := FileLoader{Fs: fs, Path: "key.txt"}.Load()
	assert.NoError(t, err)
	assert.Equal(t, "abc123", v)

	v, err = FileLoader{Fs: fs, Path: "spaced.txt"}.Load()
	assert.NoError(t, err)
	assert.Equal(t, "abc123", v)

	_, err = FileLoader{Fs: fs, Path: "empty.txt"}.Load()
	assert.ErrorIs(t, err, ErrEmptyCredential)

	_, err = FileLoader{Fs: fs, Path: "blank.txt"}.Load()
	assert.ErrorIs(t, err, ErrEmptyCredential)

	_, err = FileLoader{Fs: fs, Path: "missing.txt"}.Load()
	assert.Error(t, err)
}

func TestKeyringLoader(t *testing.T) {
	keyring.MockInit()
	assert.NoError(t, Store(KeyringApiKey, "abc123"))

	v, err := KeyringLoader{User: KeyringApiKey}.Load()
	assert.NoError(t, err)
	assert.Equal(t, "abc123", v)

	_, err = KeyringLoader{User: KeyringApiSecret}.Load()
	assert.Error(t, err)

	assert.NoError(t, Clear(KeyringApiKey))
	_, err = KeyringLoader{User: KeyringApiKey}.Load()
	assert.Error(t, err)
}

func TestStore_Empty(t *testing.T) {
	keyring.MockInit()
	assert.ErrorIs(t, Store(KeyringApiKey, ""), ErrEmptyCredential)
}
