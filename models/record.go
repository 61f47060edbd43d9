package models

import (
	"github.com/gobuffalo/nulls"
	"github.com/miekg/dns"
)

// DefaultTtl is used when the registrar reports no TTL for a record.
const DefaultTtl uint32 = 3600

type Record struct {
	Name  string
	Type  uint16
	Ttl   nulls.UInt32
	Value RecordValue
}

func (r Record) RR(ttl uint32) dns.RR {
	return r.Value.ValueRR(dns.RR_Header{
		Name:   r.Name,
		Rrtype: r.Type,
		Class:  dns.ClassINET,
		Ttl:    ttl,
	})
}

// TtlOrDefault resolves the effective TTL for rendering.
func (r Record) TtlOrDefault() uint32 {
	if r.Ttl.Valid {
		return r.Ttl.UInt32
	}
	return DefaultTtl
}

type RecordValue interface {
	ValueRR(header dns.RR_Header) dns.RR
	ValueType() uint16
	// Rrdata renders the value as a single Cloud DNS rrdatas entry.
	Rrdata() string
}
