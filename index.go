package refdex

import "sort"

// Indexes are the global lookups derived from all scanned documents.
// Namespace keys and class keys are emitted in lexical order; every value
// slice is sorted by BuildIndexes before the indexes leave the builder.
type Indexes struct {
	OperatorsByNamespace map[string][]AnchorRef `json:"operators_by_namespace"`
	TypesByNamespace     map[string][]AnchorRef `json:"types_by_namespace"`
	PagesByClass         map[PageClass][]string `json:"pages_by_class"`
}

// SkippedAnchor describes an anchor that could not enter a namespace index
// because it has no namespace segment. Skipped anchors still count toward
// the owning document's raw anchor total.
type SkippedAnchor struct {
	File   string
	Anchor string
	Group  AnchorGroup
}

// BuildIndexes aggregates document records into the global indexes.
// Documents are expected in file-name order with sorted anchor buckets;
// given that, the output is fully deterministic: pair lists sorted by
// (file, id), class file lists sorted lexically.
//
// Anchors with fewer than three dot segments are skipped and reported
// rather than aborting the build or indexing under a malformed namespace.
func BuildIndexes(docs []*Document) (*Indexes, []SkippedAnchor) {
	idx := &Indexes{
		OperatorsByNamespace: map[string][]AnchorRef{},
		TypesByNamespace:     map[string][]AnchorRef{},
		PagesByClass:         map[PageClass][]string{},
	}

	var skipped []SkippedAnchor
	collect := func(doc *Document, group AnchorGroup, into map[string][]AnchorRef) {
		for _, anchor := range doc.Anchors[group] {
			ns, err := AnchorNamespace(anchor)
			if err != nil {
				skipped = append(skipped, SkippedAnchor{File: doc.File, Anchor: anchor, Group: group})
				continue
			}
			into[ns] = append(into[ns], AnchorRef{ID: anchor, File: doc.File})
		}
	}

	for _, doc := range docs {
		collect(doc, GroupOperators, idx.OperatorsByNamespace)
		collect(doc, GroupTypes, idx.TypesByNamespace)
		idx.PagesByClass[doc.Class] = append(idx.PagesByClass[doc.Class], doc.File)
	}

	for _, refs := range idx.OperatorsByNamespace {
		sortAnchorRefs(refs)
	}
	for _, refs := range idx.TypesByNamespace {
		sortAnchorRefs(refs)
	}
	for _, files := range idx.PagesByClass {
		sort.Strings(files)
	}

	return idx, skipped
}

// sortAnchorRefs sorts refs by the (file, id) tuple ascending.
func sortAnchorRefs(refs []AnchorRef) {
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].File != refs[j].File {
			return refs[i].File < refs[j].File
		}
		return refs[i].ID < refs[j].ID
	})
}

// NamespaceKeys returns the sorted keys of a namespace index. Code that
// iterates an index (as opposed to marshaling it, where encoding/json
// already sorts map keys) goes through this to keep ordering explicit.
func NamespaceKeys(index map[string][]AnchorRef) []string {
	keys := make([]string, 0, len(index))
	for k := range index {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
