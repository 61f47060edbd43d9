package terraform

import (
	"fmt"
	"github.com/1f349/zinnia/utils"
	"strings"
)

// Render produces the full Terraform document: the managed zone preamble
// followed by one record set block per rrset. Output is byte identical for
// identical input so repeated runs diff cleanly under version control.
func (z *Zone) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "resource \"google_dns_managed_zone\" %s {\n", hclQuote(z.Label))
	fmt.Fprintf(&b, "  name        = %s\n", hclQuote(z.Label))
	fmt.Fprintf(&b, "  dns_name    = %s\n", hclQuote(z.Domain))
	fmt.Fprintf(&b, "  description = %s\n", hclQuote(z.Description))
	fmt.Fprintf(&b, "  visibility  = %s\n", hclQuote(z.Visibility))
	b.WriteString("}\n")

	for _, set := range z.Sets {
		b.WriteByte('\n')
		z.renderSet(&b, set)
	}
	return b.String()
}

func (z *Zone) renderSet(b *strings.Builder, set *RecordSet) {
	fmt.Fprintf(b, "resource \"google_dns_record_set\" %s {\n", hclQuote(set.Label))
	fmt.Fprintf(b, "  name         = %s\n", z.recordName(set.Key.Name))
	fmt.Fprintf(b, "  managed_zone = google_dns_managed_zone.%s.name\n", z.Label)
	fmt.Fprintf(b, "  type         = %s\n", hclQuote(set.Key.Type))
	fmt.Fprintf(b, "  ttl          = %d\n", set.Ttl)
	if len(set.Rrdatas) == 1 {
		fmt.Fprintf(b, "  rrdatas      = [%s]\n", hclQuote(set.Rrdatas[0]))
	} else {
		b.WriteString("  rrdatas = [\n")
		for _, rrdata := range set.Rrdatas {
			fmt.Fprintf(b, "    %s,\n", hclQuote(rrdata))
		}
		b.WriteString("  ]\n")
	}
	b.WriteString("}\n")
}

// recordName renders the name attribute against the managed zone dns_name so
// the generated file carries a single source of truth for the zone domain.
func (z *Zone) recordName(name string) string {
	ref := fmt.Sprintf("${google_dns_managed_zone.%s.dns_name}", z.Label)
	prefix := utils.SimplifyRecordName(name, z.Domain)
	if prefix == "@" {
		return `"` + ref + `"`
	}
	return `"` + prefix + "." + ref + `"`
}

// hclQuote renders s as an HCL string literal. Backslashes and quotes take a
// leading backslash and interpolation openers are doubled so the value
// survives as literal text.
func hclQuote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "${", "$${")
	s = strings.ReplaceAll(s, "%{", "%%{")
	return `"` + s + `"`
}
