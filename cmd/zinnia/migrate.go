package main

import (
	"context"
	"flag"
	"github.com/1f349/zinnia/conf"
	"github.com/1f349/zinnia/godaddy"
	"github.com/1f349/zinnia/logger"
	"github.com/1f349/zinnia/terraform"
	validateDomain "github.com/chmike/domain"
	"github.com/google/subcommands"
	"github.com/rcrowley/go-metrics"
	"github.com/spf13/afero"
	"golang.org/x/net/publicsuffix"
	"strings"
)

type migrateCmd struct {
	domain     string
	outputPath string
	configPath string
	strict     bool
	creds      credentialFlags
}

func (m *migrateCmd) Name() string { return "migrate" }

func (m *migrateCmd) Synopsis() string {
	return "Migrate registrar DNS records into a Cloud DNS Terraform file"
}

func (m *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&m.domain, "domain", "", "example.com : domain to migrate")
	f.StringVar(&m.outputPath, "out", "", "/path/to/migrated.tf : path of the generated Terraform file")
	f.StringVar(&m.configPath, "conf", "", "/path/to/config.yml : path to the config file")
	f.BoolVar(&m.strict, "strict", false, "abort on unsupported record types instead of skipping them")
	m.creds.SetFlags(f)
}

func (m *migrateCmd) Usage() string {
	return `migrate -domain <domain> [-out <output file>] [-conf <config file>] [-strict]
  Fetch all DNS records for the domain and write a Terraform file describing
  the equivalent Cloud DNS zone
`
}

func (m *migrateCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	return m.run(ctx, afero.NewOsFs())
}

func (m *migrateCmd) run(ctx context.Context, fs afero.Fs) subcommands.ExitStatus {
	if m.domain == "" {
		logger.Logger.Error("Domain flag is missing")
		return subcommands.ExitUsageError
	}
	domain := strings.ToLower(strings.TrimSuffix(m.domain, "."))
	if err := validateDomain.Check(domain); err != nil {
		logger.Logger.Error("Invalid domain", "domain", domain, "err", err)
		return subcommands.ExitUsageError
	}
	if apex, err := publicsuffix.EffectiveTLDPlusOne(domain); err != nil || apex != domain {
		logger.Logger.Error("Domain is not a registrable zone apex", "domain", domain)
		return subcommands.ExitUsageError
	}

	config, err := conf.Load(fs, m.configPath)
	if err != nil {
		logger.Logger.Error("Invalid config file", "err", err)
		return subcommands.ExitFailure
	}
	if m.outputPath != "" {
		config.Output = m.outputPath
	}
	if m.strict {
		config.Strict = true
	}

	pair, err := m.creds.load(fs)
	if err != nil {
		logger.Logger.Error("Failed to load credentials", "err", err)
		return subcommands.ExitFailure
	}

	client := godaddy.NewClient(config.Api.Url, pair)
	return runMigrate(ctx, fs, client, config, domain)
}

// runMigrate fetches, compiles and renders the zone. The output file is only
// touched once the whole zone compiled.
func runMigrate(ctx context.Context, fs afero.Fs, client *godaddy.Client, config conf.Conf, domain string) subcommands.ExitStatus {
	records, err := client.Records(ctx, domain)
	if err != nil {
		logger.Logger.Error("Failed to fetch records", "domain", domain, "err", err)
		return subcommands.ExitFailure
	}
	logger.Logger.Info("Fetched records", "domain", domain, "count", len(records))

	zone, err := terraform.CompileZone(domain, records, config.Zone, config.Strict)
	if err != nil {
		logger.Logger.Error("Failed to compile zone", "domain", domain, "err", err)
		return subcommands.ExitFailure
	}

	err = afero.WriteFile(fs, config.Output, []byte(zone.Render()), 0644)
	if err != nil {
		logger.Logger.Error("Failed to write output file", "path", config.Output, "err", err)
		return subcommands.ExitFailure
	}

	skipped := metrics.GetOrRegisterCounter("compile.records.unsupported", metrics.DefaultRegistry).Count()
	if skipped > 0 {
		logger.Logger.Warn("Some records were not migrated", "unsupported", skipped)
	}
	logger.Logger.Info("Wrote Terraform file", "path", config.Output, "sets", len(zone.Sets), "records", zone.Records())
	return subcommands.ExitSuccess
}
