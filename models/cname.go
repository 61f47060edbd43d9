package models

import (
	"github.com/miekg/dns"
)

type CNAME struct {
	Target string
}

func (cname CNAME) ValueRR(header dns.RR_Header) dns.RR {
	return &dns.CNAME{
		Hdr:    header,
		Target: cname.Target,
	}
}

func (cname CNAME) ValueType() uint16 {
	return dns.TypeCNAME
}

func (cname CNAME) Rrdata() string {
	return cname.Target
}
