package models

import (
	"fmt"
	"github.com/miekg/dns"
)

type SRV struct {
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   string
}

func (srv SRV) ValueRR(header dns.RR_Header) dns.RR {
	return &dns.SRV{
		Hdr:      header,
		Priority: srv.Priority,
		Weight:   srv.Weight,
		Port:     srv.Port,
		Target:   srv.Target,
	}
}

func (srv SRV) ValueType() uint16 {
	return dns.TypeSRV
}

func (srv SRV) Rrdata() string {
	return fmt.Sprintf("%d %d %d %s", srv.Priority, srv.Weight, srv.Port, srv.Target)
}
