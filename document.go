package refdex

import (
	"context"
	"sort"
)

// Document represents one scanned reference page. Records are created once
// by a scanner and treated as immutable afterwards, except for the explicit
// SortAnchors step the build pipeline applies before indexing.
type Document struct {
	File        string                   `json:"file"`
	Title       string                   `json:"title"`
	Class       PageClass                `json:"class"`
	IDCount     int                      `json:"id_count"`
	ContentHash string                   `json:"content_hash"`
	Anchors     map[AnchorGroup][]string `json:"anchors"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.File == "" {
		return Errorf(EINVALID, "document file name required")
	}
	if d.Class == "" {
		return Errorf(EINVALID, "document page class required")
	}
	if d.IDCount < 0 {
		return Errorf(EINVALID, "document id count must not be negative")
	}
	return nil
}

// SortAnchors sorts every anchor bucket lexically in place. Scanners return
// buckets in first-occurrence order; the build pipeline calls SortAnchors
// before indexing so persisted records carry lexical order only.
func (d *Document) SortAnchors() {
	for _, anchors := range d.Anchors {
		sort.Strings(anchors)
	}
}

// GroupedCount returns the total number of anchors across all buckets.
// It never exceeds IDCount: ungrouped and duplicate ids count toward
// IDCount but never enter a bucket.
func (d *Document) GroupedCount() int {
	var n int
	for _, anchors := range d.Anchors {
		n += len(anchors)
	}
	return n
}

// DocumentScanner reads one document and produces its record.
// Implementations hide how anchors and titles are extracted from the
// underlying page format.
type DocumentScanner interface {
	Scan(ctx context.Context, path string) (*Document, error)
}
