package domain

// Zone is a domain managed by the DNS provider.
type Zone struct {
	ID   string
	Name string
}

// Record is a single DNS record within a zone. The provider owns it; the
// session only holds a transient copy while a zone is being browsed.
type Record struct {
	ID      string
	Type    string
	Name    string
	Content string
	TTL     int
	Proxied bool
}

// SearchMatch pairs a record with the zone it was found in.
type SearchMatch struct {
	ZoneID   string
	ZoneName string
	Record   Record
}

// AutoTTL is the provider's sentinel TTL for automatic expiry.
const AutoTTL = 1

// RecordTypes is the fixed set of record types the bot manages.
var RecordTypes = []string{"A", "AAAA", "CNAME", "MX", "TXT", "NS", "CAA", "SRV"}

// ValidRecordType reports whether t is one of the managed record types.
func ValidRecordType(t string) bool {
	for _, rt := range RecordTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// Proxiable reports whether the proxied flag is meaningful for a record type.
func Proxiable(t string) bool {
	switch t {
	case "A", "AAAA", "CNAME":
		return true
	}
	return false
}

var contentExamples = map[string]string{
	"A":     "192.168.1.1",
	"AAAA":  "2001:db8::1",
	"CNAME": "target.example.com",
	"MX":    "10 mail.example.com",
	"TXT":   `"v=spf1 include:example.com ~all"`,
	"NS":    "ns1.example.com",
	"CAA":   `0 issue "letsencrypt.org"`,
	"SRV":   "10 60 5060 sipserver.example.com",
}

// ContentExample returns sample content for a record type, shown when
// prompting the operator for content.
func ContentExample(t string) string {
	if example, ok := contentExamples[t]; ok {
		return example
	}
	return "example.com"
}
