// Package pagination provides request/response plumbing for paginated table
// listings. Responses carry the page-size options computed by the sizeopts
// package so the host's footer selector can be rendered straight from the
// listing payload.
package pagination

import (
	"github.com/rise-and-shine/tablekit/sizeopts"
)

// Request holds the paging parameters of a table listing request.
type Request struct {
	PageNumber int `query:"page_number" json:"page_number"`
	PageSize   int `query:"page_size"   json:"page_size"`
}

// Normalize applies defaults and constraints.
func (r *Request) Normalize(opts ...Option) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if r.PageNumber <= 0 {
		r.PageNumber = 1
	}
	if r.PageSize <= 0 {
		r.PageSize = o.DefaultPageSize
	}
	if r.PageSize > o.MaxPageSize {
		r.PageSize = o.MaxPageSize
	}
}

// Offset returns the offset value.
func (r *Request) Offset() int {
	return (r.PageNumber - 1) * r.PageSize
}

// Limit returns the limit value.
func (r *Request) Limit() int {
	return r.PageSize
}

// Response is a paginated table listing payload.
//
// SizeOptions holds the footer's page-size choices. When the option set is
// trivial (one entry or none) no selector should be rendered, so the field is
// left nil and omitted from JSON.
type Response[T any] struct {
	PageNumber  int               `json:"page_number"`
	PageSize    int               `json:"page_size"`
	PageCount   int               `json:"page_count"`
	TotalCount  int64             `json:"total_count"`
	SizeOptions []sizeopts.Option `json:"size_options,omitempty"`
	PageContent []T               `json:"page_content"`
}

// NewResponse creates a paginated response from items and total count.
// A non-positive page size is clamped to 1, so a zero-value Request is safe
// even when the caller skipped Normalize.
func NewResponse[T any](items []T, totalCount int64, req Request) Response[T] {
	if req.PageSize <= 0 {
		req.PageSize = 1
	}

	pageCount := int(totalCount) / req.PageSize
	if int(totalCount)%req.PageSize > 0 {
		pageCount++
	}

	var options []sizeopts.Option
	if generated := sizeopts.Generate(int(totalCount)); len(generated) > 1 {
		options = generated
	}

	return Response[T]{
		PageNumber:  req.PageNumber,
		PageSize:    req.PageSize,
		PageCount:   pageCount,
		TotalCount:  totalCount,
		SizeOptions: options,
		PageContent: items,
	}
}
