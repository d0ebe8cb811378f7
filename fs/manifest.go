// Package fs provides filesystem persistence for manifests and page
// discovery over a document root.
package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/refdex"
)

// pageExt is the only recognized document extension.
const pageExt = ".html"

// Ensure Store implements the refdex interfaces at compile time.
var (
	_ refdex.ManifestStore = (*Store)(nil)
	_ refdex.PageLister    = (*Store)(nil)
)

// Store reads and writes manifests as flat JSON files and lists scannable
// pages. It holds no state; the manifest on disk is the only artifact.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// WriteManifest serializes m as indented JSON to path, creating parent
// directories as needed. encoding/json emits map keys in sorted order, so
// writing the same manifest twice produces byte-identical files.
func (s *Store) WriteManifest(path string, m *refdex.Manifest) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return refdex.Errorf(refdex.EINTERNAL, "cannot encode manifest: %v", err)
	}
	b = append(b, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return refdex.Errorf(refdex.EINTERNAL, "cannot create manifest directory %q: %v", dir, err)
		}
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return refdex.Errorf(refdex.EINTERNAL, "cannot write manifest %q: %v", path, err)
	}
	return nil
}

// LoadManifest reads and decodes the manifest at path.
func (s *Store) LoadManifest(path string) (*refdex.Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, refdex.Errorf(refdex.ENOTFOUND, "manifest %q not found", path)
		}
		return nil, refdex.Errorf(refdex.EINTERNAL, "cannot read manifest %q: %v", path, err)
	}

	var m refdex.Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, refdex.Errorf(refdex.EINVALID, "invalid manifest JSON %q: %v", path, err)
	}
	return &m, nil
}

// ListPages returns the paths of all .html pages directly under root,
// sorted by file name. Subdirectories are not descended into. A missing
// root is an ENOTFOUND error; the build must fail before any work.
func (s *Store) ListPages(root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, refdex.Errorf(refdex.ENOTFOUND, "doc root not found: %s", root)
		}
		return nil, refdex.Errorf(refdex.EINTERNAL, "cannot stat doc root %q: %v", root, err)
	}
	if !info.IsDir() {
		return nil, refdex.Errorf(refdex.EINVALID, "doc root is not a directory: %s", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, refdex.Errorf(refdex.EINTERNAL, "cannot read doc root %q: %v", root, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), pageExt) {
			continue
		}
		paths = append(paths, filepath.Join(root, entry.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}
