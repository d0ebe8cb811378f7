package mock

import "github.com/fwojciec/refdex"

var _ refdex.ManifestStore = (*ManifestStore)(nil)

// ManifestStore is a mock implementation of refdex.ManifestStore.
type ManifestStore struct {
	WriteManifestFn func(path string, m *refdex.Manifest) error
	LoadManifestFn  func(path string) (*refdex.Manifest, error)
}

func (s *ManifestStore) WriteManifest(path string, m *refdex.Manifest) error {
	return s.WriteManifestFn(path, m)
}

func (s *ManifestStore) LoadManifest(path string) (*refdex.Manifest, error) {
	return s.LoadManifestFn(path)
}
