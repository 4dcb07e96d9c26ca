package mock

import (
	"context"

	"github.com/fwojciec/storyllms"
)

var _ storyllms.Evaluator = (*Evaluator)(nil)

// Evaluator is a mock implementation of storyllms.Evaluator.
type Evaluator struct {
	EvalFn func(ctx context.Context, js string, out any) error
}

func (e *Evaluator) Eval(ctx context.Context, js string, out any) error {
	return e.EvalFn(ctx, js, out)
}
