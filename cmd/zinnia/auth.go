package main

import (
	"context"
	"flag"
	"github.com/1f349/zinnia/creds"
	"github.com/1f349/zinnia/logger"
	"github.com/google/subcommands"
	"os"
)

type authCmd struct {
	key    string
	secret string
	clear  bool
}

func (a *authCmd) Name() string { return "auth" }

func (a *authCmd) Synopsis() string { return "Store registrar API credentials in the OS keyring" }

func (a *authCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&a.key, "key", "", "api key to store, read from "+creds.EnvApiKey+" when empty")
	f.StringVar(&a.secret, "secret", "", "api secret to store, read from "+creds.EnvApiSecret+" when empty")
	f.BoolVar(&a.clear, "clear", false, "remove the stored credentials instead")
}

func (a *authCmd) Usage() string {
	return `auth [-key <api key>] [-secret <api secret>] [-clear]
  Store registrar API credentials in the OS keyring for use with -keyring,
  or remove them again with -clear
`
}

func (a *authCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if a.clear {
		if err := creds.Clear(creds.KeyringApiKey); err != nil {
			logger.Logger.Error("Failed to clear api key", "err", err)
			return subcommands.ExitFailure
		}
		if err := creds.Clear(creds.KeyringApiSecret); err != nil {
			logger.Logger.Error("Failed to clear api secret", "err", err)
			return subcommands.ExitFailure
		}
		logger.Logger.Info("Cleared stored credentials")
		return subcommands.ExitSuccess
	}

	key := a.key
	if key == "" {
		key = os.Getenv(creds.EnvApiKey)
	}
	secret := a.secret
	if secret == "" {
		secret = os.Getenv(creds.EnvApiSecret)
	}
	if key == "" || secret == "" {
		logger.Logger.Error("Both an api key and secret are required")
		return subcommands.ExitUsageError
	}

	if err := creds.Store(creds.KeyringApiKey, key); err != nil {
		logger.Logger.Error("Failed to store api key", "err", err)
		return subcommands.ExitFailure
	}
	if err := creds.Store(creds.KeyringApiSecret, secret); err != nil {
		logger.Logger.Error("Failed to store api secret", "err", err)
		return subcommands.ExitFailure
	}
	logger.Logger.Info("Stored credentials in the OS keyring")
	return subcommands.ExitSuccess
}
