package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/storyllms"
)

// Ensure LoggingWriter implements storyllms.DocsWriter.
var _ storyllms.DocsWriter = (*LoggingWriter)(nil)

// LoggingWriter wraps a DocsWriter with operation logging.
type LoggingWriter struct {
	next   storyllms.DocsWriter
	logger *slog.Logger
}

// NewLoggingWriter creates a new LoggingWriter.
func NewLoggingWriter(next storyllms.DocsWriter, logger *slog.Logger) *LoggingWriter {
	return &LoggingWriter{next: next, logger: logger}
}

// WriteDocs delegates to the wrapped writer and logs the operation. The
// file count covers the summary, index, sitemap and both documents of
// every entry.
func (w *LoggingWriter) WriteDocs(ctx context.Context, docs *storyllms.Docs) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("docs write",
			"entries", len(docs.Entries),
			"files", len(docs.Entries)*2+3,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteDocs(ctx, docs)
}
