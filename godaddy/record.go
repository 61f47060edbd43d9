package godaddy

import "github.com/gobuffalo/nulls"

// Record is a single DNS entry as returned by the GoDaddy records endpoint.
// Names are relative to the zone with "@" marking the apex. SRV entries carry
// the owner prefix split across Service and Protocol.
type Record struct {
	Type     string       `json:"type"`
	Name     string       `json:"name"`
	Data     string       `json:"data"`
	Ttl      nulls.UInt32 `json:"ttl"`
	Priority nulls.Int    `json:"priority"`
	Weight   nulls.Int    `json:"weight"`
	Port     nulls.Int    `json:"port"`
	Service  string       `json:"service,omitempty"`
	Protocol string       `json:"protocol,omitempty"`
}

// Domain is a registered domain on the account.
type Domain struct {
	Domain  string `json:"domain"`
	Status  string `json:"status"`
	Expires string `json:"expires"`
}
