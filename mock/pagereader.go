package mock

import (
	"context"

	"github.com/fwojciec/storyllms"
)

var _ storyllms.PageReader = (*PageReader)(nil)

// PageReader is a mock implementation of storyllms.PageReader.
type PageReader struct {
	ReadPageFn func(ctx context.Context, storyID string) (string, error)
}

func (r *PageReader) ReadPage(ctx context.Context, storyID string) (string, error) {
	return r.ReadPageFn(ctx, storyID)
}
