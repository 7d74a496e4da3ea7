// Package footer_test contains tests for the footer package.
package footer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/tablekit/footer"
	"github.com/rise-and-shine/tablekit/sizeopts"
)

func TestNewSuppressesTrivialTables(t *testing.T) {
	tests := []struct {
		name       string
		totalCount int
	}{
		{name: "empty table", totalCount: 0},
		{name: "single row", totalCount: 1},
		{name: "two rows", totalCount: 2},
		{name: "three rows", totalCount: 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := footer.New(footer.Config{
				TotalCount: tc.totalCount,
				Page:       1,
				PageSize:   3,
			})
			assert.Nil(t, ctrl)
		})
	}
}

func TestNewBuildsControl(t *testing.T) {
	ctrl := footer.New(footer.Config{
		TotalCount: 7,
		Page:       2,
		PageSize:   5,
	})

	require.NotNil(t, ctrl)
	assert.Equal(t, 2, ctrl.Page)
	assert.Equal(t, 5, ctrl.PageSize)
	assert.Equal(t, 7, ctrl.TotalCount)
	assert.Equal(t, []sizeopts.Option{
		{Label: "Top 3", Value: 3},
		{Label: "Top 5", Value: 5},
		{Label: "Top 7", Value: 7},
	}, ctrl.Options)
}

func TestControlForwardsCallbacks(t *testing.T) {
	var gotPage, gotSize int

	ctrl := footer.New(footer.Config{
		TotalCount:       25,
		Page:             1,
		PageSize:         10,
		OnPageChange:     func(page int) { gotPage = page },
		OnPageSizeChange: func(size int) { gotSize = size },
	})
	require.NotNil(t, ctrl)

	ctrl.SelectPage(3)
	ctrl.SelectPageSize(20)

	assert.Equal(t, 3, gotPage)
	assert.Equal(t, 20, gotSize)
}

func TestControlNilCallbacks(t *testing.T) {
	ctrl := footer.New(footer.Config{TotalCount: 25, Page: 1, PageSize: 10})
	require.NotNil(t, ctrl)

	// Must not panic without callbacks configured.
	ctrl.SelectPage(2)
	ctrl.SelectPageSize(5)
}
