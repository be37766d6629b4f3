package settings

import (
	"encoding/json"
	"strings"
)

// Namespace groups related settings rows under a shared key prefix in the flat
// settings table, and carries the decode rule for values read back out of it.
// The storage shape stays string-keyed, string-valued rows, so data written by
// older versions of the system remains readable.
type Namespace struct {
	Prefix string
	decode func(key, raw string) interface{}
}

var (
	// Company holds general company information (name, address, stats).
	Company = Namespace{Prefix: "company_", decode: decodeLoose}
	// Footer holds footer-specific settings; keys containing "certification"
	// are stored as the literal strings "true"/"false" and decode to booleans.
	Footer = Namespace{Prefix: "footer_", decode: decodeFooter}
	// Dashboard holds admin dashboard layout settings (JSON structures).
	Dashboard = Namespace{Prefix: "dashboard_", decode: decodeLoose}
)

// passthroughPrefixes are recognized namespace prefixes: a write whose key
// already carries one of these is stored unmodified instead of getting the
// target namespace's prefix prepended.
var passthroughPrefixes = []string{Footer.Prefix, Dashboard.Prefix}

func hasPassthroughPrefix(key string) bool {
	for _, p := range passthroughPrefixes {
		if strings.HasPrefix(key, p) {
			return true
		}
	}
	return false
}

// decodeLoose attempts a JSON decode and falls back to the raw string. Decode
// failures are absorbed on purpose: stored values are best-effort typed.
func decodeLoose(_ string, raw string) interface{} {
	var decoded interface{}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return raw
	}
	return decoded
}

// decodeFooter treats certification flags as booleans ("true" and only "true"
// decodes to true) and everything else like decodeLoose.
func decodeFooter(key string, raw string) interface{} {
	if strings.Contains(key, "certification") {
		return strings.EqualFold(raw, "true")
	}
	return decodeLoose(key, raw)
}

// decodeValue applies the namespace decode rule to a stripped key.
func (ns Namespace) decodeValue(key, raw string) interface{} {
	if ns.decode == nil {
		return decodeLoose(key, raw)
	}
	return ns.decode(key, raw)
}
