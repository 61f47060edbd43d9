package terraform

import (
	"fmt"
	"strconv"
	"strings"
)

// maxLabelAttempts bounds collision disambiguation per record set.
const maxLabelAttempts = 100

type ErrLabelCollision struct {
	Key ResourceKey
}

func (e ErrLabelCollision) Error() string {
	return fmt.Sprintf("cannot allocate a unique resource label for record set '%s'", e.Key)
}

// ZoneLabel derives the managed zone resource name from the zone name.
//
// - ("example.com.") -> "example-com"
func ZoneLabel(zone string) string {
	return SanitizeName(zone)
}

// SanitizeName converts a DNS name into a valid Terraform identifier. Dots
// become dashes, the wildcard label is spelled out, underscores survive and
// anything else outside [a-z0-9] is dropped.
//
// - ("example.com.") -> "example-com"
// - ("*.example.com.") -> "wildcard-example-com"
// - ("_dmarc.example.com.") -> "_dmarc-example-com"
func SanitizeName(name string) string {
	name = strings.ToLower(strings.TrimSuffix(name, "."))
	var b strings.Builder
	for _, c := range name {
		switch {
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '_', c == '-':
			b.WriteRune(c)
		case c == '.':
			b.WriteByte('-')
		case c == '*':
			b.WriteString("wildcard")
		}
	}
	out := b.String()
	if out == "" || !validLabelStart(out[0]) {
		out = "_" + out
	}
	return out
}

func validLabelStart(c byte) bool {
	return c >= 'a' && c <= 'z' || c == '_'
}

// assignLabels gives every record set a unique identifier derived from its
// key. Distinct keys sharing a sanitized form get a counter suffix in
// first-seen order.
func assignLabels(sets []*RecordSet) error {
	taken := make(map[string]bool, len(sets))
	for _, set := range sets {
		base := SanitizeName(set.Key.Name) + "-" + strings.ToLower(set.Key.Type)
		label := base
		for n := 2; taken[label]; n++ {
			if n > maxLabelAttempts {
				return ErrLabelCollision{Key: set.Key}
			}
			label = base + "-" + strconv.Itoa(n)
		}
		taken[label] = true
		set.Label = label
	}
	return nil
}
