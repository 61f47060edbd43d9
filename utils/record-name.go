package utils

import "strings"

// ResolveRecordName expands shortened record names relative to the provided zone
//
// The name "" is equivalent to "@"
//
// - ("@", "example.com.") -> "example.com."
// - ("ns1", "example.com.") -> "ns1.example.com."
// - ("ns2.example.com.", "example.org.") -> "ns2.example.com."
// - ("ns3", "") -> "ns3."
func ResolveRecordName(name, zone string) string {
	if strings.HasSuffix(name, ".") {
		return name
	}

	// resolve @ and relative names
	switch name {
	case "@", "":
		name = zone
	default:
		name = name + "." + zone
	}
	return name
}

// SimplifyRecordName shortens the record name relative to the provided zone
//
// - ("example.com.", "example.com.") -> "@"
// - ("ns1.example.com.", "example.com.") -> "ns1"
// - ("ns2.example.com.", "example.org.") -> "ns2.example.com."
func SimplifyRecordName(name, zone string) string {
	if name == zone {
		return "@"
	}
	return strings.TrimSuffix(name, "."+zone)
}

// QualifyTarget expands a record target hostname relative to the provided zone
//
// The registrar stores apex targets as "@", relative targets as bare labels
// and absolute hostnames without the trailing dot
//
// - ("@", "example.com.") -> "example.com."
// - ("mail", "example.com.") -> "mail.example.com."
// - ("ghs.googlehosted.com", "example.com.") -> "ghs.googlehosted.com."
// - ("ns1.example.net.", "example.com.") -> "ns1.example.net."
func QualifyTarget(target, zone string) string {
	if strings.HasSuffix(target, ".") {
		return target
	}

	switch {
	case target == "@", target == "":
		return zone
	case strings.Contains(target, "."):
		return target + "."
	default:
		return target + "." + zone
	}
}
