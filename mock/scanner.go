package mock

import (
	"context"

	"github.com/fwojciec/refdex"
)

var _ refdex.DocumentScanner = (*DocumentScanner)(nil)

// DocumentScanner is a mock implementation of refdex.DocumentScanner.
type DocumentScanner struct {
	ScanFn func(ctx context.Context, path string) (*refdex.Document, error)
}

func (s *DocumentScanner) Scan(ctx context.Context, path string) (*refdex.Document, error) {
	return s.ScanFn(ctx, path)
}
