package refdex_test

import (
	"testing"

	"github.com/fwojciec/refdex"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPage(t *testing.T) {
	t.Parallel()

	t.Run("specific rules win over the generic bpy rule", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, refdex.PageOps, refdex.ClassifyPage("bpy.ops.mesh.html"))
		assert.Equal(t, refdex.PageTypes, refdex.ClassifyPage("bpy.types.object.html"))
		assert.Equal(t, refdex.PageApp, refdex.ClassifyPage("bpy.app.handlers.html"))
	})

	t.Run("generic bpy pages", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, refdex.PageBpy, refdex.ClassifyPage("bpy.context.html"))
		assert.Equal(t, refdex.PageBpy, refdex.ClassifyPage("bpy.data.html"))
	})

	t.Run("remaining topic areas", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, refdex.PageBmesh, refdex.ClassifyPage("bmesh.ops.html"))
		assert.Equal(t, refdex.PageMathutils, refdex.ClassifyPage("mathutils.geometry.html"))
		assert.Equal(t, refdex.PageGPU, refdex.ClassifyPage("gpu.shader.html"))
	})

	t.Run("is total with a catch-all", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, refdex.PageOther, refdex.ClassifyPage("index.html"))
		assert.Equal(t, refdex.PageOther, refdex.ClassifyPage(""))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		first := refdex.ClassifyPage("bpy.ops.mesh.html")
		second := refdex.ClassifyPage("bpy.ops.mesh.html")
		assert.Equal(t, first, second)
	})
}

func TestClassifyAnchor(t *testing.T) {
	t.Parallel()

	t.Run("specific rules win over the generic bpy rule", func(t *testing.T) {
		t.Parallel()

		group, ok := refdex.ClassifyAnchor("bpy.ops.mesh.fill")
		assert.True(t, ok)
		assert.Equal(t, refdex.GroupOperators, group)

		group, ok = refdex.ClassifyAnchor("bpy.types.Object")
		assert.True(t, ok)
		assert.Equal(t, refdex.GroupTypes, group)

		group, ok = refdex.ClassifyAnchor("bpy.app.handlers.frame_change_pre")
		assert.True(t, ok)
		assert.Equal(t, refdex.GroupApp, group)

		group, ok = refdex.ClassifyAnchor("bpy.context")
		assert.True(t, ok)
		assert.Equal(t, refdex.GroupBpy, group)
	})

	t.Run("non-bpy groups require the trailing dot", func(t *testing.T) {
		t.Parallel()

		group, ok := refdex.ClassifyAnchor("bmesh.types.BMesh")
		assert.True(t, ok)
		assert.Equal(t, refdex.GroupBmesh, group)

		group, ok = refdex.ClassifyAnchor("mathutils.Vector")
		assert.True(t, ok)
		assert.Equal(t, refdex.GroupMathutils, group)

		group, ok = refdex.ClassifyAnchor("gpu.shader.from_builtin")
		assert.True(t, ok)
		assert.Equal(t, refdex.GroupGPU, group)
	})

	t.Run("unmatched anchors have no group", func(t *testing.T) {
		t.Parallel()

		_, ok := refdex.ClassifyAnchor("installation")
		assert.False(t, ok)

		_, ok = refdex.ClassifyAnchor("freestyle.types.StrokeShader")
		assert.False(t, ok)
	})
}

func TestAnchorGroups_LexicalOrder(t *testing.T) {
	t.Parallel()

	groups := refdex.AnchorGroups()
	for i := 1; i < len(groups); i++ {
		assert.Less(t, string(groups[i-1]), string(groups[i]))
	}
	assert.Len(t, groups, 7)
}
