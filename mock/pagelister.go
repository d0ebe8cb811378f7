package mock

import "github.com/fwojciec/refdex"

var _ refdex.PageLister = (*PageLister)(nil)

// PageLister is a mock implementation of refdex.PageLister.
type PageLister struct {
	ListPagesFn func(root string) ([]string, error)
}

func (l *PageLister) ListPages(root string) ([]string, error) {
	return l.ListPagesFn(root)
}
