package converters

import (
	"errors"
	"fmt"
	"github.com/1f349/zinnia/godaddy"
	"github.com/1f349/zinnia/models"
	"github.com/1f349/zinnia/utils"
	"github.com/gobuffalo/nulls"
	"github.com/miekg/dns"
	"math"
	"net/netip"
	"strings"
)

type ErrInvalidRecord struct {
	Name   string
	Value  string
	AType  string
	Reason error
}

func (e ErrInvalidRecord) Error() string {
	return fmt.Sprintf("invalid record: name='%s', type='%s', value='%s' because %s", e.Name, e.AType, e.Value, e.Reason)
}

func (e ErrInvalidRecord) Unwrap() error {
	return e.Reason
}

type ErrUnsupportedType struct {
	AType string
}

func (e ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported record type '%s'", e.AType)
}

var (
	ErrEmptyData       = errors.New("empty data")
	ErrInvalidDomain   = errors.New("invalid domain name")
	ErrMissingPriority = errors.New("missing priority")
	ErrMissingWeight   = errors.New("missing weight")
	ErrMissingPort     = errors.New("missing port")
)

// Converters maps record types to value builders taking the registrar record
// and the fully qualified zone name.
var Converters = map[uint16]func(r godaddy.Record, zone string) (models.RecordValue, error){
	dns.TypeNS: func(r godaddy.Record, zone string) (models.RecordValue, error) {
		target, err := qualifiedTarget(r.Data, zone)
		if err != nil {
			return nil, err
		}
		return &models.NS{Ns: target}, nil
	},
	dns.TypeA: func(r godaddy.Record, zone string) (models.RecordValue, error) {
		ip, err := netip.ParseAddr(r.Data)
		if err != nil {
			return nil, err
		}
		if !ip.Is4() {
			return nil, errors.New("not an IPv4 address")
		}
		return &models.A{IP: ip.AsSlice()}, nil
	},
	dns.TypeAAAA: func(r godaddy.Record, zone string) (models.RecordValue, error) {
		ip, err := netip.ParseAddr(r.Data)
		if err != nil {
			return nil, err
		}
		if !ip.Is6() {
			return nil, errors.New("not an IPv6 address")
		}
		return &models.AAAA{IP: ip.AsSlice()}, nil
	},
	dns.TypeTXT: func(r godaddy.Record, zone string) (models.RecordValue, error) {
		return &models.TXT{Value: r.Data}, nil
	},
	dns.TypeCNAME: func(r godaddy.Record, zone string) (models.RecordValue, error) {
		target, err := qualifiedTarget(r.Data, zone)
		if err != nil {
			return nil, err
		}
		return &models.CNAME{Target: target}, nil
	},
	dns.TypeMX: func(r godaddy.Record, zone string) (models.RecordValue, error) {
		preference, err := uint16Field(r.Priority, ErrMissingPriority)
		if err != nil {
			return nil, err
		}
		target, err := qualifiedTarget(r.Data, zone)
		if err != nil {
			return nil, err
		}
		return &models.MX{
			Preference: preference,
			Mx:         target,
		}, nil
	},
	dns.TypeSRV: func(r godaddy.Record, zone string) (models.RecordValue, error) {
		priority, err := uint16Field(r.Priority, ErrMissingPriority)
		if err != nil {
			return nil, err
		}
		weight, err := uint16Field(r.Weight, ErrMissingWeight)
		if err != nil {
			return nil, err
		}
		port, err := uint16Field(r.Port, ErrMissingPort)
		if err != nil {
			return nil, err
		}
		target, err := qualifiedTarget(r.Data, zone)
		if err != nil {
			return nil, err
		}
		return &models.SRV{
			Priority: priority,
			Weight:   weight,
			Port:     port,
			Target:   target,
		}, nil
	},
}

// ConvertRecord translates a registrar record into a normalized record with
// a fully qualified owner name.
func ConvertRecord(r godaddy.Record, zone string) (*models.Record, error) {
	aType, ok := dns.StringToType[strings.ToUpper(r.Type)]
	if !ok {
		return nil, ErrUnsupportedType{AType: r.Type}
	}
	converter, ok := Converters[aType]
	if !ok {
		return nil, ErrUnsupportedType{AType: r.Type}
	}
	value, err := converter(r, zone)
	if err != nil {
		return nil, ErrInvalidRecord{Name: r.Name, Value: r.Data, AType: r.Type, Reason: err}
	}
	return &models.Record{
		Name:  OwnerName(r, zone),
		Type:  aType,
		Ttl:   r.Ttl,
		Value: value,
	}, nil
}

// OwnerName expands the registrar record name against the zone. SRV entries
// carry their service and protocol labels in separate fields which become
// the leading labels of the owner name.
func OwnerName(r godaddy.Record, zone string) string {
	name := utils.ResolveRecordName(r.Name, zone)
	if r.Protocol != "" {
		name = r.Protocol + "." + name
	}
	if r.Service != "" {
		name = r.Service + "." + name
	}
	return name
}

func qualifiedTarget(data, zone string) (string, error) {
	if data == "" {
		return "", ErrEmptyData
	}
	target := utils.QualifyTarget(data, zone)
	if _, ok := dns.IsDomainName(target); !ok {
		return "", ErrInvalidDomain
	}
	return target, nil
}

func uint16Field(v nulls.Int, missing error) (uint16, error) {
	if !v.Valid {
		return 0, missing
	}
	if v.Int < 0 || v.Int > math.MaxUint16 {
		return 0, fmt.Errorf("value %d out of range", v.Int)
	}
	return uint16(v.Int), nil
}
