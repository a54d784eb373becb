package cloudflare

import (
	"context"
	"fmt"
	"strings"
	"time"

	cf "github.com/cloudflare/cloudflare-go"
	"golang.org/x/net/idna"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/domain"
	"github.com/SamanGhn/Cloudflare-Dashboard/internal/ports"
)

// callTimeout bounds every remote call so a hung provider request cannot
// stall a conversation indefinitely.
const callTimeout = 15 * time.Second

// Store implements ports.RecordStore on top of the Cloudflare v4 API.
type Store struct {
	api *cf.API
}

var _ ports.RecordStore = (*Store)(nil)

func New(apiToken string) (*Store, error) {
	api, err := cf.NewWithAPIToken(apiToken)
	if err != nil {
		return nil, fmt.Errorf("init cloudflare client: %w", err)
	}
	return &Store{api: api}, nil
}

func (s *Store) ListZones(ctx context.Context) ([]domain.Zone, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	zones, err := s.api.ListZones(ctx)
	if err != nil {
		return nil, fmt.Errorf("list zones: %w", err)
	}

	out := make([]domain.Zone, 0, len(zones))
	for _, z := range zones {
		out = append(out, domain.Zone{ID: z.ID, Name: z.Name})
	}
	return out, nil
}

func (s *Store) ListRecords(ctx context.Context, zoneID, typeFilter string) ([]domain.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params := cf.ListDNSRecordsParams{}
	if typeFilter != "" {
		if !domain.ValidRecordType(typeFilter) {
			return nil, fmt.Errorf("unsupported record type %q", typeFilter)
		}
		params.Type = typeFilter
	}

	records, _, err := s.api.ListDNSRecords(ctx, cf.ZoneIdentifier(zoneID), params)
	if err != nil {
		return nil, fmt.Errorf("list dns records: %w", err)
	}

	out := make([]domain.Record, 0, len(records))
	for _, r := range records {
		// The provider can return types outside the managed set.
		if !domain.ValidRecordType(r.Type) {
			continue
		}
		out = append(out, fromDNSRecord(r))
	}
	return out, nil
}

func (s *Store) GetRecord(ctx context.Context, zoneID, recordID string) (domain.Record, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	record, err := s.api.GetDNSRecord(ctx, cf.ZoneIdentifier(zoneID), recordID)
	if err != nil {
		return domain.Record{}, fmt.Errorf("get dns record: %w", err)
	}
	return fromDNSRecord(record), nil
}

func (s *Store) CreateRecord(ctx context.Context, zoneID string, record domain.Record) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	name, err := normalizeName(record.Name)
	if err != nil {
		return err
	}

	proxied := record.Proxied
	_, err = s.api.CreateDNSRecord(ctx, cf.ZoneIdentifier(zoneID), cf.CreateDNSRecordParams{
		Type:    record.Type,
		Name:    name,
		Content: record.Content,
		TTL:     record.TTL,
		Proxied: &proxied,
	})
	if err != nil {
		return fmt.Errorf("create dns record: %w", err)
	}
	return nil
}

// UpdateRecord merges the patch over the current remote record so
// unspecified fields keep their remote values.
func (s *Store) UpdateRecord(ctx context.Context, zoneID, recordID string, patch ports.RecordPatch) error {
	current, err := s.GetRecord(ctx, zoneID, recordID)
	if err != nil {
		return err
	}

	merged := mergeRecord(current, patch)

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	proxied := merged.Proxied
	_, err = s.api.UpdateDNSRecord(ctx, cf.ZoneIdentifier(zoneID), cf.UpdateDNSRecordParams{
		ID:      recordID,
		Type:    merged.Type,
		Name:    merged.Name,
		Content: merged.Content,
		TTL:     merged.TTL,
		Proxied: &proxied,
	})
	if err != nil {
		return fmt.Errorf("update dns record: %w", err)
	}
	return nil
}

func (s *Store) DeleteRecord(ctx context.Context, zoneID, recordID string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if err := s.api.DeleteDNSRecord(ctx, cf.ZoneIdentifier(zoneID), recordID); err != nil {
		return fmt.Errorf("delete dns record: %w", err)
	}
	return nil
}

// Search walks every zone's records. O(zones x records) per call, which is
// fine for administrative zone counts.
func (s *Store) Search(ctx context.Context, term string) ([]domain.SearchMatch, error) {
	zones, err := s.ListZones(ctx)
	if err != nil {
		return nil, err
	}

	var matches []domain.SearchMatch
	for _, zone := range zones {
		records, err := s.ListRecords(ctx, zone.ID, "")
		if err != nil {
			return nil, err
		}
		for _, record := range records {
			if matchesTerm(record, term) {
				matches = append(matches, domain.SearchMatch{
					ZoneID:   zone.ID,
					ZoneName: zone.Name,
					Record:   record,
				})
			}
		}
	}
	return matches, nil
}

func matchesTerm(record domain.Record, term string) bool {
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(record.Name), term) ||
		strings.Contains(strings.ToLower(record.Content), term)
}

func mergeRecord(current domain.Record, patch ports.RecordPatch) domain.Record {
	if patch.Content != nil {
		current.Content = *patch.Content
	}
	if patch.TTL != nil {
		current.TTL = *patch.TTL
	}
	if patch.Proxied != nil {
		current.Proxied = *patch.Proxied
	}
	return current
}

func fromDNSRecord(r cf.DNSRecord) domain.Record {
	return domain.Record{
		ID:      r.ID,
		Type:    r.Type,
		Name:    r.Name,
		Content: r.Content,
		TTL:     r.TTL,
		Proxied: r.Proxied != nil && *r.Proxied,
	}
}

// normalizeName converts internationalized record names to punycode before
// they reach the API. "@" (zone apex) passes through untouched.
func normalizeName(name string) (string, error) {
	if name == "@" {
		return name, nil
	}
	ascii, err := idna.ToASCII(name)
	if err != nil {
		return "", fmt.Errorf("normalize record name %q: %w", name, err)
	}
	return ascii, nil
}
