package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/storyllms"
)

// Ensure LoggingExtractor implements storyllms.Extractor.
var _ storyllms.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with operation logging.
type LoggingExtractor struct {
	next   storyllms.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next storyllms.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(ctx context.Context) (entries []*storyllms.Entry, err error) {
	defer func(begin time.Time) {
		e.logger.Info("registry extraction",
			"entries", len(entries),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(ctx)
}

// Close delegates to the wrapped extractor.
func (e *LoggingExtractor) Close() error {
	return e.next.Close()
}
