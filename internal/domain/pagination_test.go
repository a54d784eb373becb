package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(recordType, name string) Record {
	return Record{Type: recordType, Name: name, Content: "content"}
}

func TestGroupByTypeSortsTypesAndKeepsOrderWithinType(t *testing.T) {
	records := []Record{
		rec("TXT", "t1"),
		rec("A", "a1"),
		rec("CNAME", "c1"),
		rec("A", "a2"),
		rec("TXT", "t2"),
	}

	grouped := GroupByType(records)

	names := make([]string, 0, len(grouped))
	for _, r := range grouped {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"a1", "a2", "c1", "t1", "t2"}, names)
}

func TestPaginateCoversAllRecordsExactlyOnce(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		pageSize  int
		wantPages int
	}{
		{name: "exact multiple", total: 16, pageSize: 8, wantPages: 2},
		{name: "partial last page", total: 17, pageSize: 8, wantPages: 3},
		{name: "single page", total: 3, pageSize: 8, wantPages: 1},
		{name: "empty", total: 0, pageSize: 8, wantPages: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := make([]Record, 0, tt.total)
			for i := 0; i < tt.total; i++ {
				records = append(records, rec("A", string(rune('a'+i%26))+"-"+string(rune('0'+i/26))))
			}

			var union []Record
			page := Paginate(records, 1, tt.pageSize)
			assert.Equal(t, tt.wantPages, page.TotalPages)

			for n := 1; n <= page.TotalPages; n++ {
				p := Paginate(records, n, tt.pageSize)
				if tt.total > 0 {
					require.NotEmpty(t, p.Records, "page %d", n)
				}
				union = append(union, p.Records...)
			}

			assert.Equal(t, GroupByType(records), union)
		})
	}
}

func TestPaginateIsIdempotent(t *testing.T) {
	records := []Record{
		rec("TXT", "t1"), rec("A", "a1"), rec("MX", "m1"),
		rec("A", "a2"), rec("CNAME", "c1"),
	}

	first := Paginate(records, 1, 3)
	second := Paginate(records, 1, 3)
	assert.Equal(t, first, second)
}

func TestPaginateClampsPageNumber(t *testing.T) {
	records := make([]Record, 10)
	for i := range records {
		records[i] = rec("A", "r")
	}

	below := Paginate(records, 0, 8)
	assert.Equal(t, 1, below.Number)
	assert.False(t, below.HasPrev)
	assert.True(t, below.HasNext)

	above := Paginate(records, 99, 8)
	assert.Equal(t, 2, above.Number)
	assert.True(t, above.HasPrev)
	assert.False(t, above.HasNext)
	assert.Len(t, above.Records, 2)
}

func TestPaginateEmptyInput(t *testing.T) {
	page := Paginate(nil, 1, 8)

	assert.Empty(t, page.Records)
	assert.Equal(t, 1, page.Number)
	assert.Equal(t, 0, page.TotalPages)
	assert.False(t, page.HasPrev)
	assert.False(t, page.HasNext)
}
