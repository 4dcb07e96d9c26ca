package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/storyllms"
)

// Ensure LoggingPageReader implements storyllms.PageReader.
var _ storyllms.PageReader = (*LoggingPageReader)(nil)

// LoggingPageReader wraps a PageReader with operation logging.
type LoggingPageReader struct {
	next   storyllms.PageReader
	logger *slog.Logger
}

// NewLoggingPageReader creates a new LoggingPageReader.
func NewLoggingPageReader(next storyllms.PageReader, logger *slog.Logger) *LoggingPageReader {
	return &LoggingPageReader{next: next, logger: logger}
}

// ReadPage delegates to the wrapped reader and logs the operation.
func (r *LoggingPageReader) ReadPage(ctx context.Context, storyID string) (html string, err error) {
	defer func(begin time.Time) {
		r.logger.Info("docs page read",
			"story", storyID,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadPage(ctx, storyID)
}
