package rod

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/storyllms"
	"github.com/go-rod/rod"
)

// Ensure pageEvaluator implements storyllms.Evaluator.
var _ storyllms.Evaluator = (*pageEvaluator)(nil)

// pageEvaluator adapts a live page to the Evaluator interface registry
// lookup runs against. Promises returned by the script are awaited.
type pageEvaluator struct {
	page *rod.Page
}

func (pe *pageEvaluator) Eval(ctx context.Context, js string, out any) error {
	obj, err := pe.page.Context(ctx).Evaluate(rod.Eval(js).ByPromise())
	if err != nil {
		return err
	}

	// Strategy scripts answer with a JSON string or null; take the string
	// directly instead of round-tripping it through another marshal.
	if s, ok := out.(*string); ok {
		if obj.Value.Nil() {
			*s = ""
		} else {
			*s = obj.Value.Str()
		}
		return nil
	}

	data, err := json.Marshal(obj.Value.Val())
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
