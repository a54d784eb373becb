package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SamanGhn/Cloudflare-Dashboard/internal/domain"
	"github.com/SamanGhn/Cloudflare-Dashboard/internal/ports"
)

// fakeStore is an in-memory ports.RecordStore that records every mutating
// call in order, so tests can assert on exact call sequences.
type fakeStore struct {
	zones   map[string]domain.Zone
	records map[string][]domain.Record

	listZonesErr   error
	listRecordsErr error
	createErr      error
	updateErr      error
	deleteErr      error

	calls   []string
	created []domain.Record
	patches []ports.RecordPatch
}

var _ ports.RecordStore = (*fakeStore)(nil)

func newFakeStore(zones []domain.Zone) *fakeStore {
	s := &fakeStore{
		zones:   make(map[string]domain.Zone),
		records: make(map[string][]domain.Record),
	}
	for _, z := range zones {
		s.zones[z.ID] = z
	}
	return s
}

func (s *fakeStore) ListZones(_ context.Context) ([]domain.Zone, error) {
	s.calls = append(s.calls, "listZones")
	if s.listZonesErr != nil {
		return nil, s.listZonesErr
	}
	var out []domain.Zone
	for _, z := range s.zones {
		out = append(out, z)
	}
	return out, nil
}

func (s *fakeStore) ListRecords(_ context.Context, zoneID, typeFilter string) ([]domain.Record, error) {
	s.calls = append(s.calls, "listRecords:"+zoneID)
	if s.listRecordsErr != nil {
		return nil, s.listRecordsErr
	}
	var out []domain.Record
	for _, r := range s.records[zoneID] {
		if typeFilter == "" || r.Type == typeFilter {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeStore) GetRecord(_ context.Context, zoneID, recordID string) (domain.Record, error) {
	s.calls = append(s.calls, "getRecord:"+recordID)
	for _, r := range s.records[zoneID] {
		if r.ID == recordID {
			return r, nil
		}
	}
	return domain.Record{}, domain.ErrRecordNotFound
}

func (s *fakeStore) CreateRecord(_ context.Context, zoneID string, record domain.Record) error {
	s.calls = append(s.calls, fmt.Sprintf("create:%s:%s", record.Type, record.Name))
	s.created = append(s.created, record)
	if s.createErr != nil {
		return s.createErr
	}
	record.ID = fmt.Sprintf("rec-%d", len(s.created))
	s.records[zoneID] = append(s.records[zoneID], record)
	return nil
}

func (s *fakeStore) UpdateRecord(_ context.Context, zoneID, recordID string, patch ports.RecordPatch) error {
	s.calls = append(s.calls, "update:"+recordID)
	s.patches = append(s.patches, patch)
	if s.updateErr != nil {
		return s.updateErr
	}
	for i, r := range s.records[zoneID] {
		if r.ID != recordID {
			continue
		}
		if patch.Content != nil {
			r.Content = *patch.Content
		}
		if patch.TTL != nil {
			r.TTL = *patch.TTL
		}
		if patch.Proxied != nil {
			r.Proxied = *patch.Proxied
		}
		s.records[zoneID][i] = r
		return nil
	}
	return domain.ErrRecordNotFound
}

func (s *fakeStore) DeleteRecord(_ context.Context, zoneID, recordID string) error {
	s.calls = append(s.calls, "delete:"+recordID)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i, r := range s.records[zoneID] {
		if r.ID == recordID {
			s.records[zoneID] = append(s.records[zoneID][:i], s.records[zoneID][i+1:]...)
			return nil
		}
	}
	return domain.ErrRecordNotFound
}

func (s *fakeStore) Search(_ context.Context, term string) ([]domain.SearchMatch, error) {
	s.calls = append(s.calls, "search:"+term)
	term = strings.ToLower(term)
	var matches []domain.SearchMatch
	for zoneID, records := range s.records {
		for _, r := range records {
			if strings.Contains(strings.ToLower(r.Name), term) ||
				strings.Contains(strings.ToLower(r.Content), term) {
				matches = append(matches, domain.SearchMatch{
					ZoneID:   zoneID,
					ZoneName: s.zones[zoneID].Name,
					Record:   r,
				})
			}
		}
	}
	return matches, nil
}

type fakeLog struct {
	entries   []domain.ChangeEntry
	appendErr error
}

var _ ports.ChangeLog = (*fakeLog)(nil)

func (l *fakeLog) Append(entry domain.ChangeEntry) error {
	if l.appendErr != nil {
		return l.appendErr
	}
	l.entries = append(l.entries, entry)
	return nil
}

func (l *fakeLog) Recent(limit int) ([]domain.ChangeEntry, error) {
	if limit > 0 && len(l.entries) > limit {
		return l.entries[len(l.entries)-limit:], nil
	}
	return l.entries, nil
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}
