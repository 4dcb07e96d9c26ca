package mock

import (
	"context"

	"github.com/fwojciec/storyllms"
)

var _ storyllms.DocsWriter = (*DocsWriter)(nil)

// DocsWriter is a mock implementation of storyllms.DocsWriter.
type DocsWriter struct {
	WriteDocsFn func(ctx context.Context, docs *storyllms.Docs) error
}

func (w *DocsWriter) WriteDocs(ctx context.Context, docs *storyllms.Docs) error {
	return w.WriteDocsFn(ctx, docs)
}
