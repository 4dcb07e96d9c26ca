// Package registry locates and normalizes the story registry a built
// Storybook exposes on its preview page. The registry's shape varies
// across Storybook versions, so lookup tries a fixed sequence of known
// shapes and reports which one matched. Lookup runs against a
// storyllms.Evaluator so the logic is testable without a browser.
package registry

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/storyllms"
)

// Strategy locates story data in one known registry shape. Its script
// acts as both predicate and extractor: it evaluates to null when the
// shape is absent, or to the projected story data as a JSON string.
type Strategy struct {
	// Name identifies the shape in logs and reports.
	Name string

	js string
}

// Report describes how a lookup succeeded.
type Report struct {
	// Strategy is the name of the strategy that produced the data.
	Strategy string

	// Skipped lists registry items excluded during normalization, with
	// the reason for each.
	Skipped []string
}

// Locate finds the story registry through the known shapes in priority
// order and returns the normalized entry collection in registry order.
// When no shape matches it returns EUNSUPPORTED with a diagnostic listing
// the registry's observed property names.
func Locate(ctx context.Context, ev storyllms.Evaluator) ([]*storyllms.Entry, *Report, error) {
	for _, strategy := range Strategies() {
		var raw string
		if err := ev.Eval(ctx, strategy.js, &raw); err != nil {
			if ctx.Err() != nil {
				return nil, nil, ctx.Err()
			}
			continue
		}
		if raw == "" || raw == "null" {
			continue
		}

		var p payload
		if err := json.Unmarshal([]byte(raw), &p); err != nil {
			continue
		}
		entries, skipped, ok := normalize(p)
		if !ok {
			continue
		}
		return entries, &Report{Strategy: strategy.Name, Skipped: skipped}, nil
	}
	return nil, nil, unsupported(ctx, ev)
}

// unsupported builds the failure diagnostic for a registry that matched
// no known shape.
func unsupported(ctx context.Context, ev storyllms.Evaluator) error {
	var raw string
	if err := ev.Eval(ctx, observeJS, &raw); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return storyllms.Errorf(storyllms.EUNSUPPORTED, "story registry matched no known shape (diagnostics unavailable: %v)", err)
	}

	var observed struct {
		Preview []string `json:"preview"`
		Store   []string `json:"store"`
	}
	if err := json.Unmarshal([]byte(raw), &observed); err != nil {
		return storyllms.Errorf(storyllms.EUNSUPPORTED, "story registry matched no known shape")
	}
	return storyllms.Errorf(storyllms.EUNSUPPORTED,
		"story registry matched no known shape: preview properties %v, store properties %v; please report this storybook version",
		observed.Preview, observed.Store)
}
