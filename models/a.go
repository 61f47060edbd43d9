package models

import (
	"github.com/miekg/dns"
	"net"
)

type A struct {
	net.IP
}

func (a A) ValueRR(header dns.RR_Header) dns.RR {
	return &dns.A{
		Hdr: header,
		A:   a.IP,
	}
}

func (a A) ValueType() uint16 {
	return dns.TypeA
}

func (a A) Rrdata() string {
	return a.IP.String()
}
