package mock

import (
	"context"

	"github.com/fwojciec/storyllms"
)

var _ storyllms.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of storyllms.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context) ([]*storyllms.Entry, error)
	CloseFn   func() error
}

func (e *Extractor) Extract(ctx context.Context) ([]*storyllms.Entry, error) {
	return e.ExtractFn(ctx)
}

func (e *Extractor) Close() error {
	return e.CloseFn()
}
