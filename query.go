package refdex

import "strings"

// MatchRow is one query result. Anchor is empty for a page-level match
// (file name or title matched the needle).
type MatchRow struct {
	File   string
	Title  string
	Anchor string
}

// QueryResult carries the truncated rows plus the distinct match count
// before truncation.
type QueryResult struct {
	Rows []MatchRow
	// Total is the number of distinct matching rows regardless of limit.
	Total int
}

// QueryManifest matches needle case-insensitively as a substring against
// file names, titles, and individual anchors, in manifest order.
//
// For each entry a page-level row is emitted when the file name or title
// matches, then one anchor-level row per matching anchor, iterating groups
// in lexical order and each bucket as stored. The emitted sequence is
// deduplicated keeping first occurrences, Total is counted over the full
// deduplicated sequence, and only then are rows truncated to limit.
// Page-level and anchor-level rows compete for the same limit. A limit of
// zero or less yields no rows but still reports the true total.
func QueryManifest(m *Manifest, needle string, limit int) QueryResult {
	needle = strings.ToLower(needle)

	// Track seen rows so duplicates are dropped while first-occurrence
	// order is preserved.
	seen := make(map[MatchRow]struct{})
	var rows []MatchRow
	emit := func(row MatchRow) {
		if _, ok := seen[row]; ok {
			return
		}
		seen[row] = struct{}{}
		rows = append(rows, row)
	}

	for _, entry := range m.Entries {
		if strings.Contains(strings.ToLower(entry.File), needle) ||
			strings.Contains(strings.ToLower(entry.Title), needle) {
			emit(MatchRow{File: entry.File, Title: entry.Title})
		}
		for _, group := range AnchorGroups() {
			for _, anchor := range entry.Anchors[group] {
				if strings.Contains(strings.ToLower(anchor), needle) {
					emit(MatchRow{File: entry.File, Title: entry.Title, Anchor: anchor})
				}
			}
		}
	}

	total := len(rows)
	if limit <= 0 {
		rows = nil
	} else if len(rows) > limit {
		rows = rows[:limit]
	}

	return QueryResult{Rows: rows, Total: total}
}
