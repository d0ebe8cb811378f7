// Package slog provides log/slog decorators for refdex services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/refdex"
)

// Ensure LoggingScanner implements refdex.DocumentScanner.
var _ refdex.DocumentScanner = (*LoggingScanner)(nil)

// LoggingScanner wraps a DocumentScanner with per-page logging.
type LoggingScanner struct {
	next   refdex.DocumentScanner
	logger *slog.Logger
}

// NewLoggingScanner creates a new LoggingScanner.
func NewLoggingScanner(next refdex.DocumentScanner, logger *slog.Logger) *LoggingScanner {
	return &LoggingScanner{next: next, logger: logger}
}

// Scan delegates to the wrapped scanner and logs the operation.
func (s *LoggingScanner) Scan(ctx context.Context, path string) (doc *refdex.Document, err error) {
	defer func(begin time.Time) {
		var ids, grouped int
		if doc != nil {
			ids = doc.IDCount
			grouped = doc.GroupedCount()
		}
		s.logger.Info("page scan",
			"path", path,
			"ids", ids,
			"grouped", grouped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scan(ctx, path)
}

// LogSkippedAnchors reports anchors that were excluded from the namespace
// indexes, one warn line each.
func LogSkippedAnchors(logger *slog.Logger, skipped []refdex.SkippedAnchor) {
	for _, sk := range skipped {
		logger.Warn("anchor skipped from namespace index",
			"file", sk.File,
			"anchor", sk.Anchor,
			"group", string(sk.Group),
		)
	}
}
