package pg_test

import (
	"context"
	"testing"
	"time"

	"github.com/rise-and-shine/tablekit/pg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

func TestBaseModelBeforeAppendModel(t *testing.T) {
	t.Run("insert sets both timestamps", func(t *testing.T) {
		m := &pg.BaseModel{}

		err := m.BeforeAppendModel(context.Background(), (*bun.InsertQuery)(nil))

		require.NoError(t, err)
		assert.False(t, m.CreatedAt.IsZero())
		assert.False(t, m.UpdatedAt.IsZero())
	})

	t.Run("update refreshes only updated_at", func(t *testing.T) {
		created := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		m := &pg.BaseModel{CreatedAt: created, UpdatedAt: created}

		err := m.BeforeAppendModel(context.Background(), (*bun.UpdateQuery)(nil))

		require.NoError(t, err)
		assert.Equal(t, created, m.CreatedAt)
		assert.True(t, m.UpdatedAt.After(created))
	})

	t.Run("select leaves timestamps untouched", func(t *testing.T) {
		m := &pg.BaseModel{}

		err := m.BeforeAppendModel(context.Background(), (*bun.SelectQuery)(nil))

		require.NoError(t, err)
		assert.True(t, m.CreatedAt.IsZero())
		assert.True(t, m.UpdatedAt.IsZero())
	})
}
