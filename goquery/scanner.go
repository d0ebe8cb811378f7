// Package goquery implements document scanning on top of
// github.com/PuerkitoBio/goquery. Only attribute-level extraction is
// performed: every id attribute in document order plus the first title.
package goquery

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/refdex"
)

// Ensure Scanner implements refdex.DocumentScanner at compile time.
var _ refdex.DocumentScanner = (*Scanner)(nil)

// Scanner reads reference HTML pages and produces document records.
// It is stateless and safe to reuse across scans.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan reads the page at path and extracts its record: every id attribute
// value in document order, the first <title> text (file name when absent),
// the page class, and anchors bucketed by group.
//
// The read is permissive: bytes that are not valid UTF-8 are dropped rather
// than failing the scan. Buckets are deduplicated per document but left in
// first-occurrence order; sorting belongs to the build pipeline.
func (s *Scanner) Scan(ctx context.Context, path string) (*refdex.Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, refdex.Errorf(refdex.ENOTFOUND, "document %q not found", path)
		}
		return nil, refdex.Errorf(refdex.EINTERNAL, "cannot read document %q: %v", path, err)
	}

	// Drop undecodable bytes instead of aborting the scan.
	content := strings.ToValidUTF8(string(b), "")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, refdex.Errorf(refdex.EINVALID, "failed to parse HTML in %q: %v", path, err)
	}

	var ids []string
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		if id, ok := sel.Attr("id"); ok && id != "" {
			ids = append(ids, id)
		}
	})

	file := filepath.Base(path)

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = file
	}

	// Dedup exact ids before grouping; the raw count keeps duplicates.
	seen := make(map[string]struct{}, len(ids))
	anchors := make(map[refdex.AnchorGroup][]string)
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if group, ok := refdex.ClassifyAnchor(id); ok {
			anchors[group] = append(anchors[group], id)
		}
	}

	return &refdex.Document{
		File:        file,
		Title:       title,
		Class:       refdex.ClassifyPage(file),
		IDCount:     len(ids),
		ContentHash: fmt.Sprintf("%x", xxhash.Sum64(b)),
		Anchors:     anchors,
	}, nil
}
