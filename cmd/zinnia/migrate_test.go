package main

import (
	"context"
	"github.com/1f349/zinnia/conf"
	"github.com/1f349/zinnia/creds"
	"github.com/1f349/zinnia/godaddy"
	"github.com/google/subcommands"
	"github.com/julienschmidt/httprouter"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/zalando/go-keyring"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testRegistrar(t *testing.T) *httptest.Server {
	router := httprouter.New()
	router.GET("/v1/domains/:domain/records", func(rw http.ResponseWriter, req *http.Request, params httprouter.Params) {
		if req.Header.Get("Authorization") != "sso-key test-key:test-secret" {
			rw.WriteHeader(http.StatusUnauthorized)
			_, _ = rw.Write([]byte(`{"code":"UNAUTHORIZED","message":"Authenticated user is not allowed access"}`))
			return
		}
		if req.URL.Query().Get("offset") != "0" {
			_, _ = rw.Write([]byte(`[]`))
			return
		}
		switch params.ByName("domain") {
		case "example.com":
			_, _ = rw.Write([]byte(`[
  {"type":"A","name":"@","data":"151.101.1.195","ttl":600},
  {"type":"CAA","name":"@","data":"0 issue \"letsencrypt.org\"","ttl":3600},
  {"type":"TXT","name":"@","data":"v=spf1 -all","ttl":3600}
]`))
		case "broken.example":
			_, _ = rw.Write([]byte(`[
  {"type":"A","name":"@","data":"151.101.1.195","ttl":600},
  {"type":"MX","name":"@","data":"mail.broken.example","ttl":3600}
]`))
		default:
			rw.WriteHeader(http.StatusNotFound)
			_, _ = rw.Write([]byte(`{"code":"UNKNOWN_DOMAIN","message":"The given domain is not registered, or does not have a zone file"}`))
		}
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestMigrateRun(t *testing.T) {
	srv := testRegistrar(t)
	t.Setenv(creds.EnvApiKey, "test-key")
	t.Setenv(creds.EnvApiSecret, "test-secret")

	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "test.yml", []byte("api:\n  url: "+srv.URL+"\n"), 0600))

	m := &migrateCmd{domain: "Example.com.", configPath: "test.yml", outputPath: "out/zone.tf"}
	assert.Equal(t, subcommands.ExitSuccess, m.run(context.Background(), fs))

	b, err := afero.ReadFile(fs, "out/zone.tf")
	assert.NoError(t, err)
	out := string(b)
	assert.Contains(t, out, `resource "google_dns_managed_zone" "example-com" {`)
	assert.Contains(t, out, `  rrdatas      = ["151.101.1.195"]`)
	assert.Contains(t, out, `  rrdatas      = ["\"v=spf1 -all\""]`)
	assert.NotContains(t, out, "CAA")
}

func TestMigrateRun_Strict(t *testing.T) {
	srv := testRegistrar(t)
	t.Setenv(creds.EnvApiKey, "test-key")
	t.Setenv(creds.EnvApiSecret, "test-secret")

	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "test.yml", []byte("api:\n  url: "+srv.URL+"\n"), 0600))

	m := &migrateCmd{domain: "example.com", configPath: "test.yml", outputPath: "out/zone.tf", strict: true}
	assert.Equal(t, subcommands.ExitFailure, m.run(context.Background(), fs))

	exists, err := afero.Exists(fs, "out/zone.tf")
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestRunMigrate_NoPartialOutput(t *testing.T) {
	srv := testRegistrar(t)
	client := godaddy.NewClient(srv.URL, creds.KeyPair{Key: "test-key", Secret: "test-secret"})
	fs := afero.NewMemMapFs()
	config, err := conf.Load(fs, "")
	assert.NoError(t, err)

	assert.Equal(t, subcommands.ExitFailure, runMigrate(context.Background(), fs, client, config, "broken.example"))
	exists, err := afero.Exists(fs, config.Output)
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.Equal(t, subcommands.ExitFailure, runMigrate(context.Background(), fs, client, config, "missing.example"))
	exists, err = afero.Exists(fs, config.Output)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestMigrateRun_Validation(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, domain := range []string{"", "bad_domain!", "www.example.com", "com"} {
		m := &migrateCmd{domain: domain}
		assert.Equal(t, subcommands.ExitUsageError, m.run(context.Background(), fs), domain)
	}
}

func TestMigrateRun_MissingCredentials(t *testing.T) {
	t.Setenv(creds.EnvApiKey, "")
	t.Setenv(creds.EnvApiSecret, "")
	m := &migrateCmd{domain: "example.com"}
	assert.Equal(t, subcommands.ExitFailure, m.run(context.Background(), afero.NewMemMapFs()))
}

func TestCredentialFlags_Load(t *testing.T) {
	t.Setenv(creds.EnvApiKey, "env-key")
	t.Setenv(creds.EnvApiSecret, "env-secret")
	fs := afero.NewMemMapFs()
	assert.NoError(t, afero.WriteFile(fs, "key.txt", []byte("file-key\n"), 0600))

	pair, err := (&credentialFlags{}).load(fs)
	assert.NoError(t, err)
	assert.Equal(t, creds.KeyPair{Key: "env-key", Secret: "env-secret"}, pair)

	pair, err = (&credentialFlags{keyFile: "key.txt"}).load(fs)
	assert.NoError(t, err)
	assert.Equal(t, creds.KeyPair{Key: "file-key", Secret: "env-secret"}, pair)

	keyring.MockInit()
	assert.NoError(t, creds.Store(creds.KeyringApiKey, "ring-key"))
	assert.NoError(t, creds.Store(creds.KeyringApiSecret, "ring-secret"))
	pair, err = (&credentialFlags{keyring: true}).load(fs)
	assert.NoError(t, err)
	assert.Equal(t, creds.KeyPair{Key: "ring-key", Secret: "ring-secret"}, pair)
}
