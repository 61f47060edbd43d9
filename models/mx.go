package models

import (
	"fmt"
	"github.com/miekg/dns"
)

type MX struct {
	Preference uint16
	Mx         string
}

func (mx MX) ValueRR(header dns.RR_Header) dns.RR {
	return &dns.MX{
		Hdr:        header,
		Preference: mx.Preference,
		Mx:         mx.Mx,
	}
}

func (mx MX) ValueType() uint16 {
	return dns.TypeMX
}

func (mx MX) Rrdata() string {
	return fmt.Sprintf("%d %s", mx.Preference, mx.Mx)
}
