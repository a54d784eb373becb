package ports

import (
	"context"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/domain"
)

// RecordPatch carries the fields of a partial record update. Nil fields keep
// the current remote value.
type RecordPatch struct {
	Content *string
	TTL     *int
	Proxied *bool
}

// RecordStore is the narrow client interface to the DNS provider. All
// operations are synchronous from the caller's point of view; failures come
// back as errors, never as panics.
type RecordStore interface {
	ListZones(ctx context.Context) ([]domain.Zone, error)
	// ListRecords returns the zone's records restricted to the managed
	// record types. typeFilter narrows the listing to a single type when
	// non-empty.
	ListRecords(ctx context.Context, zoneID, typeFilter string) ([]domain.Record, error)
	GetRecord(ctx context.Context, zoneID, recordID string) (domain.Record, error)
	CreateRecord(ctx context.Context, zoneID string, record domain.Record) error
	// UpdateRecord merges the patch over the current remote record,
	// preserving unspecified fields.
	UpdateRecord(ctx context.Context, zoneID, recordID string, patch RecordPatch) error
	DeleteRecord(ctx context.Context, zoneID, recordID string) error
	// Search matches term case-insensitively against record name or content
	// across all zones.
	Search(ctx context.Context, term string) ([]domain.SearchMatch, error)
}
