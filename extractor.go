package storyllms

import "context"

// Extractor extracts documentable entries from a built Storybook site.
// Implementations drive a headless browser against locally served files.
type Extractor interface {
	// Extract loads the site's preview page, locates the story registry
	// and returns the normalized entry collection.
	// Returns ENOTFOUND if the registry never appears on the page, and
	// EUNSUPPORTED if it appears in no recognizable shape.
	Extract(ctx context.Context) ([]*Entry, error)

	// Close releases browser resources.
	// Must be called when the Extractor is no longer needed.
	Close() error
}

// PageReader reads the rendered documentation view of a single story.
type PageReader interface {
	// ReadPage navigates to the documentation view of the given story id,
	// waits for the docs container to attach and returns its inner HTML.
	ReadPage(ctx context.Context, storyID string) (string, error)
}

// Evaluator evaluates JavaScript on a live page and unmarshals the result
// into out. It is the narrow capability registry lookup needs, so lookup
// logic can be tested without a browser.
type Evaluator interface {
	Eval(ctx context.Context, js string, out any) error
}
