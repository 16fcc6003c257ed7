package orbrowser

import (
	"strings"

	"golang.org/x/text/cases"
)

// Lookup returns the record whose id equals the given string exactly.
func Lookup(records []Record, id string) (Record, bool) {
	for _, rec := range records {
		if rec.Str("id") == id {
			return rec, true
		}
	}
	return Record{}, false
}

// Search returns every record whose id, name, or architecture.modality
// field contains the query as a case-insensitive substring. Input order
// is preserved; missing fields compare as empty strings.
func Search(records []Record, query string) []Record {
	fold := cases.Fold()
	q := fold.String(query)
	var matches []Record
	for _, rec := range records {
		if strings.Contains(fold.String(rec.Str("id")), q) ||
			strings.Contains(fold.String(rec.Str("name")), q) ||
			strings.Contains(fold.String(rec.Sub("architecture").Str("modality")), q) {
			matches = append(matches, rec)
		}
	}
	return matches
}

// SearchAll runs Search once per query and unions the results,
// deduplicated by id in first-seen order across the queries as supplied.
func SearchAll(records []Record, queries []string) []Record {
	seen := make(map[string]bool)
	var all []Record
	for _, q := range queries {
		for _, rec := range Search(records, q) {
			id := rec.Str("id")
			if seen[id] {
				continue
			}
			seen[id] = true
			all = append(all, rec)
		}
	}
	return all
}
