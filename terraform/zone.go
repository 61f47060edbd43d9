package terraform

import (
	"errors"
	"fmt"
	"github.com/1f349/zinnia/conf"
	"github.com/1f349/zinnia/converters"
	"github.com/1f349/zinnia/godaddy"
	"github.com/1f349/zinnia/logger"
	"github.com/miekg/dns"
	"github.com/rcrowley/go-metrics"
	"slices"
	"strings"
)

const DefaultVisibility = "public"

// ResourceKey identifies the rrset a record belongs to. All records sharing
// a key collapse into a single record set resource.
type ResourceKey struct {
	Type string
	Name string
}

func (k ResourceKey) String() string {
	return k.Type + " " + k.Name
}

// RecordSet is one google_dns_record_set resource.
type RecordSet struct {
	Key     ResourceKey
	Label   string
	Ttl     uint32
	Rrdatas []string
}

// Zone is the compiled document: the managed zone preamble plus every record
// set in first-seen key order. Built once per run, rendered, then discarded.
type Zone struct {
	Domain      string
	Label       string
	Description string
	Visibility  string
	Sets        []*RecordSet
}

// CompileZone converts registrar records into a zone document. Records keep
// their input order: the first appearance of a (type, name) key fixes the
// position of its resource block and values append in input order with exact
// duplicates dropped.
//
// Unsupported record types are skipped with a warning unless strict mode is
// enabled. Apex NS records are always skipped because Cloud DNS assigns the
// zone nameservers itself.
func CompileZone(domain string, records []godaddy.Record, zoneConf conf.ZoneConf, strict bool) (*Zone, error) {
	zone := dns.Fqdn(strings.ToLower(domain))
	z := &Zone{
		Domain:      zone,
		Label:       zoneConf.Name,
		Description: zoneConf.Description,
		Visibility:  zoneConf.Visibility,
	}
	if z.Label == "" {
		z.Label = ZoneLabel(zone)
	}
	if z.Description == "" {
		z.Description = fmt.Sprintf("%s DNS zone. Managed by Terraform", strings.TrimSuffix(zone, "."))
	}
	if z.Visibility == "" {
		z.Visibility = DefaultVisibility
	}

	duplicateCounter := metrics.GetOrRegisterCounter("compile.records.duplicate", metrics.DefaultRegistry)
	unsupportedCounter := metrics.GetOrRegisterCounter("compile.records.unsupported", metrics.DefaultRegistry)
	apexNsCounter := metrics.GetOrRegisterCounter("compile.records.apex_ns", metrics.DefaultRegistry)

	sets := make(map[ResourceKey]*RecordSet)
	for _, r := range records {
		record, err := converters.ConvertRecord(r, zone)
		if err != nil {
			var unsupported converters.ErrUnsupportedType
			if errors.As(err, &unsupported) && !strict {
				logger.Logger.Warn("Skipping unsupported record", "name", r.Name, "type", r.Type)
				unsupportedCounter.Inc(1)
				continue
			}
			return nil, err
		}
		if record.Type == dns.TypeNS && record.Name == zone {
			logger.Logger.Warn("Skipping apex NS record, Cloud DNS assigns the zone nameservers", "data", r.Data)
			apexNsCounter.Inc(1)
			continue
		}

		key := ResourceKey{Type: dns.TypeToString[record.Type], Name: record.Name}
		set := sets[key]
		if set == nil {
			set = &RecordSet{Key: key, Ttl: record.TtlOrDefault()}
			sets[key] = set
			z.Sets = append(z.Sets, set)
		} else if record.TtlOrDefault() != set.Ttl {
			logger.Logger.Warn("Multiple TTLs for record set, using the first", "key", key, "ttl", set.Ttl, "ignored", record.TtlOrDefault())
		}

		rrdata := record.Value.Rrdata()
		if slices.Contains(set.Rrdatas, rrdata) {
			duplicateCounter.Inc(1)
			continue
		}
		set.Rrdatas = append(set.Rrdatas, rrdata)
		metrics.GetOrRegisterCounter("compile.records.type."+key.Type, metrics.DefaultRegistry).Inc(1)
	}

	if err := assignLabels(z.Sets); err != nil {
		return nil, err
	}
	return z, nil
}

// Records reports how many rrdata values the zone carries.
func (z *Zone) Records() int {
	n := 0
	for _, set := range z.Sets {
		n += len(set.Rrdatas)
	}
	return n
}
