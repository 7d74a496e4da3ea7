// Package tablestore_test contains tests for the tablestore package.
package tablestore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rise-and-shine/tablekit/tablestore"
)

func TestParseOrder(t *testing.T) {
	tests := []struct {
		name          string
		orderString   string
		allowedFields []string
		expected      []tablestore.OrderBy
	}{
		{
			name:          "empty string",
			orderString:   "",
			allowedFields: []string{"name", "created_at"},
			expected:      nil,
		},
		{
			name:          "valid single order",
			orderString:   "name:asc",
			allowedFields: []string{"name", "created_at"},
			expected: []tablestore.OrderBy{
				{Field: "name", Direction: tablestore.Asc},
			},
		},
		{
			name:          "valid multiple orders",
			orderString:   "name:asc,created_at:desc",
			allowedFields: []string{"name", "created_at"},
			expected: []tablestore.OrderBy{
				{Field: "name", Direction: tablestore.Asc},
				{Field: "created_at", Direction: tablestore.Desc},
			},
		},
		{
			name:          "disallowed field filtered out",
			orderString:   "name:asc,secret:desc",
			allowedFields: []string{"name"},
			expected: []tablestore.OrderBy{
				{Field: "name", Direction: tablestore.Asc},
			},
		},
		{
			name:          "invalid direction filtered out",
			orderString:   "name:upwards,created_at:desc",
			allowedFields: []string{"name", "created_at"},
			expected: []tablestore.OrderBy{
				{Field: "created_at", Direction: tablestore.Desc},
			},
		},
		{
			name:          "missing colon filtered out",
			orderString:   "name_asc,created_at:desc",
			allowedFields: []string{"name", "created_at"},
			expected: []tablestore.OrderBy{
				{Field: "created_at", Direction: tablestore.Desc},
			},
		},
		{
			name:          "spaces and mixed case normalized",
			orderString:   " name : ASC ",
			allowedFields: []string{"name"},
			expected: []tablestore.OrderBy{
				{Field: "name", Direction: tablestore.Asc},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			actual := tablestore.ParseOrder(tc.orderString, tc.allowedFields...)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
