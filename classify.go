package refdex

import "strings"

// PageClass is a coarse category assigned to a document from its file name.
type PageClass string

// Page classes, one per topic area. Every file name maps to exactly one
// class; PageOther is the catch-all.
const (
	PageOps       PageClass = "ops_page"
	PageTypes     PageClass = "types_page"
	PageApp       PageClass = "app_page"
	PageBpy       PageClass = "bpy_page"
	PageBmesh     PageClass = "bmesh_page"
	PageMathutils PageClass = "mathutils_page"
	PageGPU       PageClass = "gpu_page"
	PageOther     PageClass = "other_page"
)

// AnchorGroup is a topic bucket assigned to an anchor from its leading
// dotted prefix. Anchors outside every group stay ungrouped.
type AnchorGroup string

// Anchor groups.
const (
	GroupOperators AnchorGroup = "operators"
	GroupTypes     AnchorGroup = "types"
	GroupApp       AnchorGroup = "app"
	GroupBpy       AnchorGroup = "bpy"
	GroupBmesh     AnchorGroup = "bmesh"
	GroupMathutils AnchorGroup = "mathutils"
	GroupGPU       AnchorGroup = "gpu"
)

// pageRule maps a file-name prefix to a page class.
type pageRule struct {
	Prefix string
	Class  PageClass
}

// pageRules are evaluated top to bottom, first match wins. The generic
// "bpy." rule must stay after the more specific bpy.* rules or every
// operators/types page would classify as a plain bpy page.
var pageRules = []pageRule{
	{Prefix: "bpy.ops.", Class: PageOps},
	{Prefix: "bpy.types.", Class: PageTypes},
	{Prefix: "bpy.app", Class: PageApp},
	{Prefix: "bpy.", Class: PageBpy},
	{Prefix: "bmesh", Class: PageBmesh},
	{Prefix: "mathutils", Class: PageMathutils},
	{Prefix: "gpu", Class: PageGPU},
}

// anchorRule maps an anchor prefix to an anchor group.
type anchorRule struct {
	Prefix string
	Group  AnchorGroup
}

// anchorRules mirror pageRules; same ordering constraint applies to the
// generic "bpy." rule.
var anchorRules = []anchorRule{
	{Prefix: "bpy.ops.", Group: GroupOperators},
	{Prefix: "bpy.types.", Group: GroupTypes},
	{Prefix: "bpy.app.", Group: GroupApp},
	{Prefix: "bpy.", Group: GroupBpy},
	{Prefix: "bmesh.", Group: GroupBmesh},
	{Prefix: "mathutils.", Group: GroupMathutils},
	{Prefix: "gpu.", Group: GroupGPU},
}

// ClassifyPage returns the page class for a document file name. It is a
// total function: file names matching no rule return PageOther.
func ClassifyPage(fileName string) PageClass {
	for _, r := range pageRules {
		if strings.HasPrefix(fileName, r.Prefix) {
			return r.Class
		}
	}
	return PageOther
}

// ClassifyAnchor returns the anchor group for an anchor identifier. The
// second return value reports whether any rule matched; ungrouped anchors
// are excluded from grouped structures but still count toward a document's
// raw anchor total.
func ClassifyAnchor(anchor string) (AnchorGroup, bool) {
	for _, r := range anchorRules {
		if strings.HasPrefix(anchor, r.Prefix) {
			return r.Group, true
		}
	}
	return "", false
}

// AnchorGroups returns all anchor groups in lexical order. The query engine
// and any other code iterating a document's anchor buckets uses this order
// so results stay deterministic.
func AnchorGroups() []AnchorGroup {
	return []AnchorGroup{
		GroupApp,
		GroupBmesh,
		GroupBpy,
		GroupGPU,
		GroupMathutils,
		GroupOperators,
		GroupTypes,
	}
}
