package models

import (
	"github.com/miekg/dns"
)

type NS struct {
	Ns string
}

func (ns NS) ValueRR(header dns.RR_Header) dns.RR {
	return &dns.NS{
		Hdr: header,
		Ns:  ns.Ns,
	}
}

func (ns NS) ValueType() uint16 {
	return dns.TypeNS
}

func (ns NS) Rrdata() string {
	return ns.Ns
}
