// Package refdex turns a directory of reference HTML documents into a
// deterministic, queryable JSON manifest. It extracts addressable anchors
// and titles from each page, classifies pages and anchors into namespaces,
// builds sorted indexes over those namespaces, and answers case-insensitive
// substring queries against the persisted manifest.
//
// This package contains domain types and the pure core (classification,
// namespace extraction, index building, manifest assembly, querying)
// following Ben Johnson's Standard Package Layout. Implementations of the
// interfaces live in subdirectories named after their primary dependency
// (e.g., goquery/, fs/, slog/).
package refdex
