// Package pagination_test contains tests for the pagination package.
package pagination_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/tablekit/pagination"
	"github.com/rise-and-shine/tablekit/sizeopts"
)

func TestRequestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		req      pagination.Request
		opts     []pagination.Option
		expected pagination.Request
	}{
		{
			name:     "zero values fall back to defaults",
			req:      pagination.Request{},
			expected: pagination.Request{PageNumber: 1, PageSize: 20},
		},
		{
			name:     "negative values fall back to defaults",
			req:      pagination.Request{PageNumber: -2, PageSize: -5},
			expected: pagination.Request{PageNumber: 1, PageSize: 20},
		},
		{
			name:     "valid values kept",
			req:      pagination.Request{PageNumber: 3, PageSize: 10},
			expected: pagination.Request{PageNumber: 3, PageSize: 10},
		},
		{
			name:     "page size capped at max",
			req:      pagination.Request{PageNumber: 1, PageSize: 500},
			expected: pagination.Request{PageNumber: 1, PageSize: 100},
		},
		{
			name:     "custom max page size",
			req:      pagination.Request{PageNumber: 1, PageSize: 50},
			opts:     []pagination.Option{pagination.WithMaxPageSize(20)},
			expected: pagination.Request{PageNumber: 1, PageSize: 20},
		},
		{
			name:     "custom default page size",
			req:      pagination.Request{PageNumber: 1},
			opts:     []pagination.Option{pagination.WithDefaultPageSize(5)},
			expected: pagination.Request{PageNumber: 1, PageSize: 5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.Normalize(tc.opts...)
			assert.Equal(t, tc.expected, tc.req)
		})
	}
}

func TestRequestLimitOffset(t *testing.T) {
	req := pagination.Request{PageNumber: 3, PageSize: 10}
	req.Normalize()

	assert.Equal(t, 10, req.Limit())
	assert.Equal(t, 20, req.Offset())
}

func TestNewResponse(t *testing.T) {
	req := pagination.Request{PageNumber: 2, PageSize: 5}
	req.Normalize()

	items := []string{"f", "g", "h", "i", "j"}
	resp := pagination.NewResponse(items, 11, req)

	assert.Equal(t, 2, resp.PageNumber)
	assert.Equal(t, 5, resp.PageSize)
	assert.Equal(t, 3, resp.PageCount)
	assert.Equal(t, int64(11), resp.TotalCount)
	assert.Equal(t, items, resp.PageContent)
	assert.Equal(t, []sizeopts.Option{
		{Label: "Top 3", Value: 3},
		{Label: "Top 5", Value: 5},
		{Label: "Top 11", Value: 11},
	}, resp.SizeOptions)
}

func TestNewResponseSuppressesTrivialSizeOptions(t *testing.T) {
	req := pagination.Request{PageNumber: 1, PageSize: 3}
	req.Normalize()

	tests := []struct {
		name       string
		totalCount int64
	}{
		{name: "empty table", totalCount: 0},
		{name: "single row", totalCount: 1},
		{name: "three rows", totalCount: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := pagination.NewResponse([]int{}, tc.totalCount, req)
			assert.Nil(t, resp.SizeOptions)
		})
	}
}

func TestNewResponsePageCount(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int64
		pageSize   int
		expected   int
	}{
		{name: "exact multiple", totalCount: 20, pageSize: 5, expected: 4},
		{name: "with remainder", totalCount: 21, pageSize: 5, expected: 5},
		{name: "empty", totalCount: 0, pageSize: 5, expected: 0},
		{name: "less than one page", totalCount: 2, pageSize: 5, expected: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := pagination.Request{PageNumber: 1, PageSize: tc.pageSize}
			req.Normalize()

			resp := pagination.NewResponse([]int{}, tc.totalCount, req)
			assert.Equal(t, tc.expected, resp.PageCount)
		})
	}
}

func TestNewResponseClampsNonPositivePageSize(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
	}{
		{name: "zero-value request", pageSize: 0},
		{name: "negative page size", pageSize: -5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := pagination.Request{PageSize: tc.pageSize}

			resp := pagination.NewResponse([]int{}, 7, req)

			assert.Equal(t, 1, resp.PageSize)
			assert.Equal(t, 7, resp.PageCount)
		})
	}
}
