package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/1f349/zinnia/conf"
	"github.com/1f349/zinnia/godaddy"
	"github.com/1f349/zinnia/logger"
	"github.com/google/subcommands"
	"github.com/spf13/afero"
	"slices"
	"strings"
)

type domainsCmd struct {
	configPath string
	creds      credentialFlags
}

func (d *domainsCmd) Name() string { return "domains" }

func (d *domainsCmd) Synopsis() string { return "List the domains registered to the API key" }

func (d *domainsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&d.configPath, "conf", "", "/path/to/config.yml : path to the config file")
	d.creds.SetFlags(f)
}

func (d *domainsCmd) Usage() string {
	return `domains [-conf <config file>]
  List the domains registered to the API key
`
}

func (d *domainsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	fs := afero.NewOsFs()
	config, err := conf.Load(fs, d.configPath)
	if err != nil {
		logger.Logger.Error("Invalid config file", "err", err)
		return subcommands.ExitFailure
	}
	pair, err := d.creds.load(fs)
	if err != nil {
		logger.Logger.Error("Failed to load credentials", "err", err)
		return subcommands.ExitFailure
	}

	client := godaddy.NewClient(config.Api.Url, pair)
	domains, err := client.Domains(ctx)
	if err != nil {
		logger.Logger.Error("Failed to fetch domains", "err", err)
		return subcommands.ExitFailure
	}

	slices.SortFunc(domains, func(a, b godaddy.Domain) int {
		return strings.Compare(a.Domain, b.Domain)
	})
	for _, domain := range domains {
		fmt.Printf("%s\t%s\t%s\n", domain.Domain, domain.Status, domain.Expires)
	}
	return subcommands.ExitSuccess
}
