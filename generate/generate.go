// Package generate provides documentation generation orchestration.
// It coordinates registry extraction, prose-page enrichment, document
// formatting and output writing for one run.
package generate

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/storyllms"
	"github.com/fwojciec/storyllms/sitemap"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Generator orchestrates one documentation generation run.
type Generator struct {
	Extractor storyllms.Extractor
	Pages     storyllms.PageReader
	Converter storyllms.Converter
	Docs      storyllms.DocsWriter

	// Logger receives recovered per-page failures. Defaults to slog.Default().
	Logger *slog.Logger

	// Now supplies the sitemap timestamp. Defaults to time.Now.
	Now func() time.Time
}

// Result holds the outcome of a generation run.
type Result struct {
	Entries     int    // documented entries written
	ProsePages  int    // prose-page entries enriched through the browser
	EmptyPages  int    // prose-page entries that yielded no content
	Files       int    // files written under the dist tree
	Fingerprint string // hash of the summary text
}

// Generate runs the full pipeline: extract the story registry, enrich
// prose pages with their rendered documentation, format every document
// and write the output tree.
//
// Extraction failures are fatal and nothing is written. Per-page
// enrichment failures are logged and leave that page's content empty.
func (g *Generator) Generate(ctx context.Context, cfg storyllms.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.WithDefaults()

	entries, err := g.Extractor.Extract(ctx)
	if err != nil {
		return nil, fmt.Errorf("extracting story registry: %w", err)
	}

	enriched, err := g.enrich(ctx, entries)
	if err != nil {
		return nil, err
	}

	docs, result, err := g.format(cfg, enriched)
	if err != nil {
		return nil, err
	}

	if err := g.Docs.WriteDocs(ctx, docs); err != nil {
		return nil, fmt.Errorf("writing documents: %w", err)
	}

	return result, nil
}

// enrich returns the entry collection with prose pages carrying their
// rendered markdown bodies. Extracted entries are never mutated; prose
// entries are replaced by enriched copies. Pages are read sequentially
// in collection order; a failed page keeps an empty body and the run
// continues.
func (g *Generator) enrich(ctx context.Context, entries []*storyllms.Entry) ([]*storyllms.Entry, error) {
	enriched := make([]*storyllms.Entry, len(entries))
	for i, e := range entries {
		if !e.DocsOnly() {
			enriched[i] = e
			continue
		}

		clone := *e
		clone.Stories = append([]storyllms.Story(nil), e.Stories...)
		for j := range clone.Stories {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			s := &clone.Stories[j]
			html, err := g.Pages.ReadPage(ctx, s.ID)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				g.logger().Warn("docs page extraction failed", "story", s.ID, "err", err)
				continue
			}

			markdown, err := g.Converter.Convert(html)
			if err != nil {
				g.logger().Warn("docs page conversion failed", "story", s.ID, "err", err)
				continue
			}

			s.Parameters.FullSource = markdown
		}
		enriched[i] = &clone
	}
	return enriched, nil
}

// format renders every document of the run and tallies the result.
func (g *Generator) format(cfg storyllms.Config, entries []*storyllms.Entry) (*storyllms.Docs, *Result, error) {
	result := &Result{Entries: len(entries)}
	docs := &storyllms.Docs{}

	for _, e := range entries {
		text := storyllms.FormatEntryText(e)

		var body template.HTML
		if e.DocsOnly() {
			result.ProsePages++
			if text == "" {
				result.EmptyPages++
				g.logger().Warn("prose page has no content", "entry", e.ID)
			} else {
				rendered, err := renderProse(text)
				if err != nil {
					return nil, nil, fmt.Errorf("rendering prose page %q: %w", e.ID, err)
				}
				body = rendered
			}
		}

		page, err := storyllms.FormatEntryHTML(cfg, e, body)
		if err != nil {
			return nil, nil, fmt.Errorf("formatting entry %q: %w", e.ID, err)
		}

		docs.Entries = append(docs.Entries, storyllms.EntryDoc{ID: e.ID, Text: text, HTML: page})
	}

	docs.Summary = storyllms.FormatSummary(cfg, entries)

	index, err := storyllms.FormatSummaryHTML(cfg, entries)
	if err != nil {
		return nil, nil, fmt.Errorf("formatting summary: %w", err)
	}
	docs.SummaryHTML = index

	sm, err := sitemap.Format(cfg, entries, g.now())
	if err != nil {
		return nil, nil, fmt.Errorf("formatting sitemap: %w", err)
	}
	docs.Sitemap = sm

	result.Files = len(docs.Entries)*2 + 3
	result.Fingerprint = fmt.Sprintf("%x", xxhash.Sum64String(docs.Summary))
	return docs, result, nil
}

// proseRenderer renders prose-page markdown for the HTML rendition.
var proseRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))

func renderProse(markdown string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := proseRenderer.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger != nil {
		return g.Logger
	}
	return slog.Default()
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}
