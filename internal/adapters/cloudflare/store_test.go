package cloudflare

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cf "github.com/cloudflare/cloudflare-go"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/domain"
	"github.com/SamanGhn/Cloudflare-Dashboard/internal/ports"
)

func TestMergeRecord(t *testing.T) {
	current := domain.Record{
		ID:      "rec-1",
		Type:    "A",
		Name:    "www.example.com",
		Content: "203.0.113.10",
		TTL:     3600,
		Proxied: true,
	}

	t.Run("empty patch keeps everything", func(t *testing.T) {
		assert.Equal(t, current, mergeRecord(current, ports.RecordPatch{}))
	})

	t.Run("content only", func(t *testing.T) {
		content := "198.51.100.7"
		merged := mergeRecord(current, ports.RecordPatch{Content: &content})
		assert.Equal(t, "198.51.100.7", merged.Content)
		assert.Equal(t, 3600, merged.TTL)
		assert.True(t, merged.Proxied)
	})

	t.Run("proxied false is applied", func(t *testing.T) {
		proxied := false
		merged := mergeRecord(current, ports.RecordPatch{Proxied: &proxied})
		assert.False(t, merged.Proxied)
		assert.Equal(t, "203.0.113.10", merged.Content)
	})

	t.Run("all fields", func(t *testing.T) {
		content := "198.51.100.7"
		ttl := domain.AutoTTL
		proxied := false
		merged := mergeRecord(current, ports.RecordPatch{Content: &content, TTL: &ttl, Proxied: &proxied})
		assert.Equal(t, domain.Record{
			ID:      "rec-1",
			Type:    "A",
			Name:    "www.example.com",
			Content: "198.51.100.7",
			TTL:     domain.AutoTTL,
			Proxied: false,
		}, merged)
	})
}

func TestFromDNSRecord(t *testing.T) {
	proxied := true
	record := fromDNSRecord(cf.DNSRecord{
		ID:      "rec-1",
		Type:    "A",
		Name:    "www.example.com",
		Content: "203.0.113.10",
		TTL:     1,
		Proxied: &proxied,
	})
	assert.Equal(t, domain.Record{
		ID:      "rec-1",
		Type:    "A",
		Name:    "www.example.com",
		Content: "203.0.113.10",
		TTL:     1,
		Proxied: true,
	}, record)

	t.Run("nil proxied means not proxied", func(t *testing.T) {
		record := fromDNSRecord(cf.DNSRecord{ID: "rec-2", Type: "MX"})
		assert.False(t, record.Proxied)
	})
}

func TestMatchesTerm(t *testing.T) {
	record := domain.Record{Name: "Mail.Example.com", Content: "10 mx.example.net"}

	tests := []struct {
		term string
		want bool
	}{
		{"mail", true},
		{"MAIL", true},
		{"example.com", true},
		{"mx.example.net", true},
		{"10 ", true},
		{"ghost", false},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, matchesTerm(record, tt.term))
		})
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"apex passthrough", "@", "@"},
		{"plain ascii", "www.example.com", "www.example.com"},
		{"unicode to punycode", "münchen.example.com", "xn--mnchen-3ya.example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeName(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
