// Package tablestore provides a generic PostgreSQL-backed store for paginated
// table listings. It fetches one page of rows together with the total row
// count, which drives both the page count and the footer's page-size options.
package tablestore

import (
	"context"

	"github.com/code19m/errx"
	"github.com/uptrace/bun"

	"github.com/rise-and-shine/tablekit/pagination"
	"github.com/rise-and-shine/tablekit/pg"
)

// Store provides read access to a single table of rows of type E.
//
// E must be a bun model (annotated with `bun` struct tags). The zero filter
// function leaves the base query untouched.
type Store[E any] struct {
	idb        bun.IDB
	filterFunc func(q *bun.SelectQuery) *bun.SelectQuery
}

// New creates a Store for rows of type E.
func New[E any](idb bun.IDB) *Store[E] {
	return &Store[E]{idb: idb}
}

// WithFilter returns a copy of the store that applies fn to every query.
func (s *Store[E]) WithFilter(fn func(q *bun.SelectQuery) *bun.SelectQuery) *Store[E] {
	return &Store[E]{idb: s.idb, filterFunc: fn}
}

// ListPage fetches a single page of rows plus the total count and wraps them
// in a pagination response. The request must be normalized by the caller.
func (s *Store[E]) ListPage(
	ctx context.Context,
	req pagination.Request,
	orders ...OrderBy,
) (pagination.Response[E], error) {
	var rows = make([]E, 0)

	q := s.idb.NewSelect().Model(&rows)
	q = s.applyFilter(q)
	for _, order := range orders {
		q = q.Order(order.expr())
	}
	q = q.Limit(req.Limit()).Offset(req.Offset())

	totalCount, err := q.ScanAndCount(ctx)
	if err != nil {
		return pagination.Response[E]{}, errx.Wrap(err, errx.WithDetails(pg.ErrorDetails(err, q)))
	}

	return pagination.NewResponse(rows, int64(totalCount), req), nil
}

// Count returns the total number of rows visible to the store.
func (s *Store[E]) Count(ctx context.Context) (int64, error) {
	q := s.idb.NewSelect().Model((*E)(nil))
	q = s.applyFilter(q)

	count, err := q.Count(ctx)
	if err != nil {
		return 0, errx.Wrap(err, errx.WithDetails(pg.ErrorDetails(err, q)))
	}

	return int64(count), nil
}

func (s *Store[E]) applyFilter(q *bun.SelectQuery) *bun.SelectQuery {
	if s.filterFunc != nil {
		return s.filterFunc(q)
	}
	return q
}
