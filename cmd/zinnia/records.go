package main

import (
	"context"
	"flag"
	"fmt"
	"github.com/1f349/zinnia/conf"
	"github.com/1f349/zinnia/converters"
	"github.com/1f349/zinnia/godaddy"
	"github.com/1f349/zinnia/logger"
	"github.com/google/subcommands"
	"github.com/miekg/dns"
	"github.com/spf13/afero"
	"slices"
	"strings"
	"time"
)

// domainFetchPause spaces out requests when walking every domain on the
// account, the registrar rate limits to 60 requests per minute.
const domainFetchPause = 2 * time.Second

type recordsCmd struct {
	domain     string
	configPath string
	creds      credentialFlags
}

func (r *recordsCmd) Name() string { return "records" }

func (r *recordsCmd) Synopsis() string { return "Print DNS records as zone file lines" }

func (r *recordsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.domain, "domain", "", "example.com : domain to print, all domains when omitted")
	f.StringVar(&r.configPath, "conf", "", "/path/to/config.yml : path to the config file")
	r.creds.SetFlags(f)
}

func (r *recordsCmd) Usage() string {
	return `records [-domain <domain>] [-conf <config file>]
  Print the DNS records of a domain as zone file lines, or of every domain
  on the account when no domain is given
`
}

func (r *recordsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	fs := afero.NewOsFs()
	config, err := conf.Load(fs, r.configPath)
	if err != nil {
		logger.Logger.Error("Invalid config file", "err", err)
		return subcommands.ExitFailure
	}
	pair, err := r.creds.load(fs)
	if err != nil {
		logger.Logger.Error("Failed to load credentials", "err", err)
		return subcommands.ExitFailure
	}
	client := godaddy.NewClient(config.Api.Url, pair)

	domains := []string{strings.ToLower(strings.TrimSuffix(r.domain, "."))}
	if r.domain == "" {
		all, err := client.Domains(ctx)
		if err != nil {
			logger.Logger.Error("Failed to fetch domains", "err", err)
			return subcommands.ExitFailure
		}
		domains = domains[:0]
		for _, domain := range all {
			domains = append(domains, domain.Domain)
		}
		slices.Sort(domains)
	}

	for n, domain := range domains {
		if n > 0 {
			time.Sleep(domainFetchPause)
		}
		if err := printZoneFile(ctx, client, domain); err != nil {
			logger.Logger.Error("Failed to fetch records", "domain", domain, "err", err)
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}

func printZoneFile(ctx context.Context, client *godaddy.Client, domain string) error {
	records, err := client.Records(ctx, domain)
	if err != nil {
		return err
	}

	zone := dns.Fqdn(domain)
	fmt.Printf("; Zone file for %s\n", zone)
	for _, r := range records {
		record, err := converters.ConvertRecord(r, zone)
		if err != nil {
			logger.Logger.Warn("Skipping record", "name", r.Name, "type", r.Type, "err", err)
			continue
		}
		line := record.RR(record.TtlOrDefault()).String()

		if strings.Count(line, "\t") > 2 {
			prefix, suffix, _ := strings.Cut(line, "\t")
			if prefix == zone {
				prefix = "@"
			} else {
				prefix, _ = strings.CutSuffix(prefix, "."+zone)
			}
			line = prefix + "\t" + suffix
		}

		fmt.Println(line)
	}
	return nil
}
