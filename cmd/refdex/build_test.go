package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/refdex"
	main "github.com/fwojciec/refdex/cmd/refdex"
	"github.com/fwojciec/refdex/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps(stdout, stderr *bytes.Buffer) *main.Dependencies {
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Logger: slog.New(slog.NewTextHandler(stderr, nil)),
	}
}

func TestBuildCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("scans listed pages and writes the manifest", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		deps.Pages = &mock.PageLister{
			ListPagesFn: func(root string) ([]string, error) {
				assert.Equal(t, "/docs", root)
				return []string{"/docs/bpy.ops.mesh.html"}, nil
			},
		}
		deps.Scanner = &mock.DocumentScanner{
			ScanFn: func(_ context.Context, path string) (*refdex.Document, error) {
				return &refdex.Document{
					File:    "bpy.ops.mesh.html",
					Title:   "Mesh Operators",
					Class:   refdex.PageOps,
					IDCount: 1,
					Anchors: map[refdex.AnchorGroup][]string{
						refdex.GroupOperators: {"bpy.ops.mesh.fill"},
					},
				}, nil
			},
		}

		var written *refdex.Manifest
		deps.Manifests = &mock.ManifestStore{
			WriteManifestFn: func(path string, m *refdex.Manifest) error {
				assert.Equal(t, "/out/manifest.json", path)
				written = m
				return nil
			},
		}

		cmd := &main.BuildCmd{DocRoot: "/docs", Out: "/out/manifest.json"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		require.NotNil(t, written)
		assert.Equal(t, 1, written.PagesScanned)
		assert.Equal(t, []refdex.AnchorRef{
			{ID: "bpy.ops.mesh.fill", File: "bpy.ops.mesh.html"},
		}, written.Indexes.OperatorsByNamespace["mesh"])

		output := stdout.String()
		assert.Contains(t, output, "Wrote manifest: /out/manifest.json")
		assert.Contains(t, output, "Scanned pages: 1")
	})

	t.Run("fails before any work when the doc root is missing", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		deps.Pages = &mock.PageLister{
			ListPagesFn: func(root string) ([]string, error) {
				return nil, refdex.Errorf(refdex.ENOTFOUND, "doc root not found: %s", root)
			},
		}
		deps.Manifests = &mock.ManifestStore{
			WriteManifestFn: func(string, *refdex.Manifest) error {
				t.Fatal("no manifest may be written for a missing doc root")
				return nil
			},
		}

		cmd := &main.BuildCmd{DocRoot: "/missing", Out: "/out/manifest.json"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, refdex.ENOTFOUND, refdex.ErrorCode(err))
		assert.Contains(t, stderr.String(), "doc root not found")
	})

	t.Run("logs skipped anchors without failing the build", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := testDeps(stdout, stderr)

		deps.Pages = &mock.PageLister{
			ListPagesFn: func(string) ([]string, error) {
				return []string{"/docs/bpy.ops.mesh.html"}, nil
			},
		}
		deps.Scanner = &mock.DocumentScanner{
			ScanFn: func(_ context.Context, _ string) (*refdex.Document, error) {
				return &refdex.Document{
					File:    "bpy.ops.mesh.html",
					Title:   "Mesh Operators",
					Class:   refdex.PageOps,
					IDCount: 1,
					Anchors: map[refdex.AnchorGroup][]string{
						refdex.GroupOperators: {"bpy.ops"},
					},
				}, nil
			},
		}
		deps.Manifests = &mock.ManifestStore{
			WriteManifestFn: func(string, *refdex.Manifest) error { return nil },
		}

		cmd := &main.BuildCmd{DocRoot: "/docs", Out: "/out/manifest.json"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "anchor skipped from namespace index")
		assert.Contains(t, stderr.String(), "anchor=bpy.ops")
	})
}
