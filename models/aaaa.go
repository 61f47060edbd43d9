package models

import (
	"github.com/miekg/dns"
	"net"
)

type AAAA struct {
	net.IP
}

func (aaaa AAAA) ValueRR(header dns.RR_Header) dns.RR {
	return &dns.AAAA{
		Hdr:  header,
		AAAA: aaaa.IP,
	}
}

func (aaaa AAAA) ValueType() uint16 {
	return dns.TypeAAAA
}

func (aaaa AAAA) Rrdata() string {
	return aaaa.IP.String()
}
