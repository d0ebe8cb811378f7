package refdex

import "strings"

// namespaceSegment is the 0-indexed dot-delimited segment of an anchor that
// names its namespace (e.g. "mesh" in "bpy.ops.mesh.fill").
const namespaceSegment = 2

// AnchorRef points at one anchor occurrence in a source document.
type AnchorRef struct {
	ID   string `json:"id"`
	File string `json:"file"`
}

// AnchorNamespace extracts the namespace token from a dot-delimited anchor.
// The anchor is split into at most four segments and the third one is the
// namespace. Anchors with fewer than three segments return an EINVALID
// error; callers decide whether to skip or abort.
func AnchorNamespace(anchor string) (string, error) {
	parts := strings.SplitN(anchor, ".", namespaceSegment+2)
	if len(parts) <= namespaceSegment {
		return "", Errorf(EINVALID, "anchor %q has no namespace segment", anchor)
	}
	return parts[namespaceSegment], nil
}
