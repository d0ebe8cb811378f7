package refdex

import "context"

// ManifestNotes are fixed informational strings embedded in every manifest.
var ManifestNotes = []string{
	"Use this manifest to map natural-language tasks to exact API anchors.",
	"Anchors and indexes are sorted; rebuilding an unchanged corpus reproduces the manifest byte for byte.",
}

// Manifest is the persisted record summarizing a scanned corpus. It is
// built once per invocation, written as a flat JSON file, and loaded
// read-only by the query engine in an independent run.
type Manifest struct {
	DocRoot      string      `json:"doc_root"`
	PagesScanned int         `json:"pages_scanned"`
	Entries      []*Document `json:"entries"`
	Indexes      *Indexes    `json:"indexes"`
	Notes        []string    `json:"notes"`
}

// Assemble composes a manifest from its already-built parts. Pure
// composition: documents are embedded in the order given (sorted by file
// name, per the caller) and the indexes verbatim.
func Assemble(docRoot string, docs []*Document, indexes *Indexes) *Manifest {
	return &Manifest{
		DocRoot:      docRoot,
		PagesScanned: len(docs),
		Entries:      docs,
		Indexes:      indexes,
		Notes:        ManifestNotes,
	}
}

// BuildManifest scans the given pages in order and assembles the full
// manifest. paths must already be sorted by file name; scanning is
// sequential and the whole manifest is held in memory. Skipped anchors are
// returned for diagnostics and never abort the build.
func BuildManifest(ctx context.Context, docRoot string, paths []string, scanner DocumentScanner) (*Manifest, []SkippedAnchor, error) {
	docs := make([]*Document, 0, len(paths))
	for _, path := range paths {
		doc, err := scanner.Scan(ctx, path)
		if err != nil {
			return nil, nil, err
		}
		if err := doc.Validate(); err != nil {
			return nil, nil, err
		}
		doc.SortAnchors()
		docs = append(docs, doc)
	}

	indexes, skipped := BuildIndexes(docs)
	return Assemble(docRoot, docs, indexes), skipped, nil
}

// ManifestStore persists and loads manifests.
type ManifestStore interface {
	WriteManifest(path string, m *Manifest) error
	LoadManifest(path string) (*Manifest, error)
}

// PageLister enumerates the scannable pages of a document root.
// Implementations return absolute or root-relative paths sorted by file
// name, and ENOTFOUND when the root does not exist.
type PageLister interface {
	ListPages(root string) ([]string, error)
}
