package models

import (
	"github.com/miekg/dns"
	"strings"
)

// maxTxtSegment is the longest character-string a TXT record may carry.
const maxTxtSegment = 255

type TXT struct {
	Value string
}

func (txt TXT) ValueRR(header dns.RR_Header) dns.RR {
	return &dns.TXT{
		Hdr: header,
		Txt: splitTxtValue(txt.Value),
	}
}

func (txt TXT) ValueType() uint16 {
	return dns.TypeTXT
}

// Rrdata renders the value in DNS presentation form: split into 255 octet
// segments, each quoted with backslash and quote escaped, joined by spaces.
func (txt TXT) Rrdata() string {
	segments := splitTxtValue(txt.Value)
	quoted := make([]string, len(segments))
	for i, segment := range segments {
		quoted[i] = quoteTxtSegment(segment)
	}
	return strings.Join(quoted, " ")
}

// splitTxtValue cuts the raw value into segments no longer than 255 octets.
// Always returns at least one segment.
func splitTxtValue(value string) []string {
	if len(value) <= maxTxtSegment {
		return []string{value}
	}
	segments := make([]string, 0, (len(value)+maxTxtSegment-1)/maxTxtSegment)
	for len(value) > maxTxtSegment {
		segments = append(segments, value[:maxTxtSegment])
		value = value[maxTxtSegment:]
	}
	return append(segments, value)
}

func quoteTxtSegment(segment string) string {
	segment = strings.ReplaceAll(segment, `\`, `\\`)
	segment = strings.ReplaceAll(segment, `"`, `\"`)
	return `"` + segment + `"`
}
