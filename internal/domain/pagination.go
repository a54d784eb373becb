package domain

import "sort"

// DefaultPageSize is the number of records shown per page.
const DefaultPageSize = 8

// Page is a bounded-size view of a zone's record list.
type Page struct {
	Records    []Record
	Number     int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// GroupByType returns records grouped by type, with types in sorted order.
// Order within a type is preserved from the input.
func GroupByType(records []Record) []Record {
	grouped := make(map[string][]Record)
	for _, r := range records {
		grouped[r.Type] = append(grouped[r.Type], r)
	}

	types := make([]string, 0, len(grouped))
	for t := range grouped {
		types = append(types, t)
	}
	sort.Strings(types)

	out := make([]Record, 0, len(records))
	for _, t := range types {
		out = append(out, grouped[t]...)
	}
	return out
}

// Paginate slices the type-grouped record list into a page. The page number
// is clamped into the valid range; the record sets per zone are small enough
// that regrouping on every call is fine.
func Paginate(records []Record, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	grouped := GroupByType(records)
	totalPages := (len(grouped) + pageSize - 1) / pageSize

	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(grouped) {
		start = len(grouped)
	}
	if end > len(grouped) {
		end = len(grouped)
	}

	return Page{
		Records:    grouped[start:end],
		Number:     page,
		TotalPages: totalPages,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
	}
}
