package storyllms

import "context"

// EntryDoc holds the generated documents for a single entry.
type EntryDoc struct {
	// ID is the output file stem under the llms directory.
	ID string

	// Text is the plain-text document body.
	Text string

	// HTML is the styled page body.
	HTML string
}

// Docs is the full document set produced by one generation run.
type Docs struct {
	// Summary is the llms.txt body.
	Summary string

	// SummaryHTML is the llms/index.html body.
	SummaryHTML string

	// Sitemap is the llms/sitemap.xml body.
	Sitemap string

	// Entries are the per-entry documents.
	Entries []EntryDoc
}

// DocsWriter persists a generated document set into the site tree.
type DocsWriter interface {
	// WriteDocs writes all documents. The per-entry output directory is
	// cleared and recreated first; the summary, index and sitemap are
	// written after every per-entry file so an interrupted run cannot
	// leave them pointing at missing content.
	WriteDocs(ctx context.Context, docs *Docs) error
}
