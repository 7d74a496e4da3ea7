package pg

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/uptrace/bun"

	"github.com/rise-and-shine/tablekit/logger"
)

// Verify that queryLogHook implements bun.QueryHook interface at compile time.
var _ bun.QueryHook = (*queryLogHook)(nil)

// slowQueryThreshold is the duration after which a query is logged at warn level.
const slowQueryThreshold = 100 * time.Millisecond

// queryLogHook logs database queries through the tablekit logger.
// Successful queries are logged at debug level only when enabled; failed,
// empty-result and slow queries are always logged.
type queryLogHook struct {
	enabled bool
}

func newQueryLogHook(enabled bool) *queryLogHook {
	return &queryLogHook{enabled: enabled}
}

// BeforeQuery implements bun.QueryHook and returns the context unchanged.
func (h *queryLogHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

// AfterQuery implements bun.QueryHook and logs the executed query.
func (h *queryLogHook) AfterQuery(ctx context.Context, event *bun.QueryEvent) {
	duration := time.Since(event.StartTime)

	isNoRows := errors.Is(event.Err, sql.ErrNoRows)
	isTxDone := errors.Is(event.Err, sql.ErrTxDone)
	hasError := event.Err != nil && !isNoRows && !isTxDone
	isSlow := duration >= slowQueryThreshold

	if !h.enabled && !hasError && !isNoRows && !isSlow {
		return
	}

	logEntry := logger.Named("pg.query_log").
		WithContext(ctx).
		With("query", formatQuery(event.Query)).
		With("duration", duration.Round(time.Microsecond))

	if len(event.QueryArgs) > 0 {
		logEntry = logEntry.With("args", event.QueryArgs)
	}

	switch {
	case hasError:
		logEntry.With("error", event.Err).Error("[pg] - " + event.Operation())
	case isNoRows:
		logEntry.With("error", event.Err).Warn("[pg] - " + event.Operation())
	case isSlow:
		logEntry.Warn("[pg] - " + event.Operation())
	default:
		logEntry.Debug("[pg] - " + event.Operation())
	}
}

// formatQuery cleans \" symbols from the query string.
func formatQuery(query string) string {
	return strings.ReplaceAll(query, "\"", "")
}
